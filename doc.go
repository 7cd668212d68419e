// Package main provides the entry point for the on-call relay service.
// It runs a web server using the Fiber framework that accepts
// operation-discriminated events from an incident-management platform,
// mirrors the newly on-call person into a Slack user group, and exposes
// create/read/delete operations on the identity mapping tables. The
// application uses gorm for mapping persistence and AWS Secrets Manager
// for the Slack bot credential.
package main

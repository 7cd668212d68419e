package config

import (
	"github.com/oncall-relay/oncall-relay/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Slack     Slack
	AWS       AWS
}

// Webserver implement webserver settings.
type Webserver struct {
	Domain       string // domain name for the webserver
	Port         int    // listening port for the webserver
	ShutDownTime int    // wait time for shutdown
	URL          string // base url for the webserver
	APIKey       string // static key required on inbound event requests
}

// Slack holds the outbound chat API settings.
type Slack struct {
	APIURL             string // base url of the Slack Web API
	BotTokenSecretName string // secret name holding the bot credential
}

// AWS holds settings for the AWS SDK clients.
type AWS struct {
	Region string // region for the Secrets Manager client
}

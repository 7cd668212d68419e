package config

import (
	"errors"
)

var (
	// ErrEmptyAPIKey error if config webserver.apikey is empty.
	ErrEmptyAPIKey = errors.New("toml config webserver.apikey can not be empty")

	// ErrEmptySecretName error if config slack.bottokensecretname is empty.
	ErrEmptySecretName = errors.New("toml config slack.bottokensecretname can not be empty")

	// ErrEmptySlackAPIURL error if config slack.apiurl is empty.
	ErrEmptySlackAPIURL = errors.New("toml config slack.apiurl can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")
)

package secrets

import (
	"errors"
)

var (
	// ErrClientNotInitialized is returned when the Secrets Manager client is not initialized.
	ErrClientNotInitialized = errors.New("secrets manager client not initialized")

	// ErrSecretNameEmpty is returned when a secret is requested with an empty name.
	ErrSecretNameEmpty = errors.New("secret name cannot be empty")

	// ErrSecretEmpty is returned when the stored secret has no string value.
	ErrSecretEmpty = errors.New("secret has no string value")
)

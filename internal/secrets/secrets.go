// Package secrets retrieves named credentials from AWS Secrets Manager.
package secrets

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// API is the subset of the Secrets Manager client used by the Store.
// Supply a custom implementation to inject a mock.
type API interface {
	GetSecretValue(
		ctx context.Context,
		params *secretsmanager.GetSecretValueInput,
		optFns ...func(*secretsmanager.Options),
	) (*secretsmanager.GetSecretValueOutput, error)
}

// Store wraps the Secrets Manager client.
type Store struct {
	api API
}

// New creates a Store with the given API implementation.
func New(api API) *Store {
	return &Store{api: api}
}

// NewFromConfig creates a Store backed by an AWS SDK v2 Secrets Manager client.
func NewFromConfig(cfg aws.Config) *Store {
	return New(secretsmanager.NewFromConfig(cfg))
}

// GetSecret retrieves the current string value of the named secret.
// Callers must treat any error as "cannot proceed", not as a fatal
// process error.
func (s *Store) GetSecret(ctx context.Context, name string) (string, error) {
	if s == nil || s.api == nil {
		return "", ErrClientNotInitialized
	}
	if name == "" {
		return "", ErrSecretNameEmpty
	}

	out, err := s.api.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(name),
	})
	if err != nil {
		return "", err
	}

	if out.SecretString == nil || *out.SecretString == "" {
		return "", ErrSecretEmpty
	}

	return *out.SecretString, nil
}

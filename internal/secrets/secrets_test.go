package secrets

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockAPI is a mock Secrets Manager API holding canned responses by secret name.
type mockAPI struct {
	values map[string]string
	err    error
	calls  int
}

func (m *mockAPI) GetSecretValue(
	_ context.Context,
	params *secretsmanager.GetSecretValueInput,
	_ ...func(*secretsmanager.Options),
) (*secretsmanager.GetSecretValueOutput, error) {
	m.calls++

	if m.err != nil {
		return nil, m.err
	}

	v, ok := m.values[aws.ToString(params.SecretId)]
	if !ok {
		return nil, errors.New("ResourceNotFoundException")
	}

	return &secretsmanager.GetSecretValueOutput{SecretString: aws.String(v)}, nil
}

func TestGetSecret(t *testing.T) {
	store := New(&mockAPI{values: map[string]string{"bot-token": "xoxb-123"}})

	got, err := store.GetSecret(context.Background(), "bot-token")
	require.NoError(t, err)
	assert.Equal(t, "xoxb-123", got)
}

func TestGetSecretMissing(t *testing.T) {
	store := New(&mockAPI{values: map[string]string{}})

	got, err := store.GetSecret(context.Background(), "bot-token")
	assert.Error(t, err)
	assert.Empty(t, got)
}

func TestGetSecretRetrievalFailure(t *testing.T) {
	store := New(&mockAPI{err: errors.New("throttled")})

	got, err := store.GetSecret(context.Background(), "bot-token")
	assert.Error(t, err)
	assert.Empty(t, got)
}

func TestGetSecretEmptyValue(t *testing.T) {
	store := New(&mockAPI{values: map[string]string{"bot-token": ""}})

	_, err := store.GetSecret(context.Background(), "bot-token")
	assert.ErrorIs(t, err, ErrSecretEmpty)
}

func TestGetSecretEmptyName(t *testing.T) {
	api := &mockAPI{values: map[string]string{}}
	store := New(api)

	_, err := store.GetSecret(context.Background(), "")
	assert.ErrorIs(t, err, ErrSecretNameEmpty)
	assert.Zero(t, api.calls, "no remote call should be made for an empty name")
}

func TestGetSecretNilStore(t *testing.T) {
	var store *Store

	_, err := store.GetSecret(context.Background(), "bot-token")
	assert.ErrorIs(t, err, ErrClientNotInitialized)
}

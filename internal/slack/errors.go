package slack

import (
	"errors"
)

var (
	// ErrClientNotInitialized is returned when the Slack client is not initialized.
	ErrClientNotInitialized = errors.New("slack client not initialized")

	// ErrTokenEmpty is returned when an update is attempted without a bot credential.
	ErrTokenEmpty = errors.New("slack bot token cannot be empty")

	// ErrUpdateFailed is returned when the Slack API answers with a non-success status.
	ErrUpdateFailed = errors.New("usergroup membership update failed")
)

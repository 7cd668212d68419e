// Package slack implements the outbound client replacing a Slack user
// group's membership.
package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

const (
	defaultTimeout = 30 * time.Second

	updateEndpoint = "/usergroups.users.update"
)

// updateRequest is the membership-replace request body. The users field is
// plural on the wire but always carries exactly one member: the relay fully
// replaces the group with the newly on-call person.
type updateRequest struct {
	UserGroup string `json:"usergroup"`
	Users     string `json:"users"`
}

// Client issues membership-replace calls against the Slack Web API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client for the given Slack Web API base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// UpdateUserGroupMembers replaces the membership of the user group with the
// single given member. On a non-success HTTP status it returns
// ErrUpdateFailed; no retry is performed. On success it returns the decoded
// JSON response body.
func (c *Client) UpdateUserGroupMembers(
	ctx context.Context,
	token string,
	userGroupID string,
	userID string,
) (map[string]any, error) {
	if c == nil || c.httpClient == nil {
		return nil, ErrClientNotInitialized
	}
	if token == "" {
		return nil, ErrTokenEmpty
	}

	payload, err := json.Marshal(updateRequest{
		UserGroup: userGroupID,
		Users:     userID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode usergroup update request")
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+updateEndpoint,
		bytes.NewReader(payload),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build usergroup update request")
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "usergroup update request failed")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil, errors.Wrapf(ErrUpdateFailed, "status %d", resp.StatusCode)
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "failed to decode usergroup update response")
	}

	return body, nil
}

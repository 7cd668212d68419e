package models

import "time"

// User maps an incident-platform person to their Slack identity.
type User struct {
	// VictorOpsUserID is the incident-platform identifier for a person.
	VictorOpsUserID string `gorm:"primaryKey;column:victorops_user_id" json:"victorOpsUserId"`
	// SlackUserID is the Slack member placed into the user group.
	SlackUserID string `gorm:"not null;column:slack_user_id" json:"slackUserId"`
	// UpdatedAt is the timestamp of the last full overwrite (managed by GORM).
	UpdatedAt time.Time `json:"-"`
}

// TableName specifies the database table name for the User model.
func (User) TableName() string {
	return "users"
}

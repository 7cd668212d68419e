// Package models contains database model definitions.
package models

import "time"

// Team maps an incident-platform group to the Slack user group whose
// membership is replaced on an on-call handoff.
type Team struct {
	// VictorOpsGroupID is the incident-platform identifier for the on-call rotation.
	VictorOpsGroupID string `gorm:"primaryKey;column:victorops_group_id" json:"victorOpsGroupId"`
	// SlackUserGroupID is the Slack user group receiving the newly on-call member.
	SlackUserGroupID string `gorm:"not null;column:slack_user_group_id" json:"slackUserGroupId"`
	// UpdatedAt is the timestamp of the last full overwrite (managed by GORM).
	UpdatedAt time.Time `json:"-"`
}

// TableName specifies the database table name for the Team model.
func (Team) TableName() string {
	return "teams"
}

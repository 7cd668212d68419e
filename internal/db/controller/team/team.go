// Package team provides the mapping-store accessor for team records.
package team

import (
	"errors"

	"gorm.io/gorm"

	"github.com/oncall-relay/oncall-relay/internal/db/models"
)

const (
	groupQueryPattern = "victorops_group_id = ?"
)

var (
	// ErrTeamNotFound is returned when no team mapping exists for the group id.
	ErrTeamNotFound = errors.New("team mapping not found")
	// ErrGroupIDEmpty is returned when a team operation is attempted with an empty group id.
	ErrGroupIDEmpty = errors.New("victorops group id cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves a team mapping by its VictorOps group id.
// Absence is reported as ErrTeamNotFound, never as a bare gorm error.
func Get(db *gorm.DB, groupID string) (*models.Team, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if groupID == "" {
		return nil, ErrGroupIDEmpty
	}

	var team models.Team
	result := db.Where(groupQueryPattern, groupID).First(&team)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, result.Error
	}

	return &team, nil
}

// Put creates or fully replaces the team mapping for the given group id.
// Last writer wins; there is no optimistic-concurrency check.
func Put(db *gorm.DB, team *models.Team) error {
	if db == nil {
		return ErrDBNil
	}
	if team == nil || team.VictorOpsGroupID == "" {
		return ErrGroupIDEmpty
	}

	var existing models.Team
	result := db.Where(groupQueryPattern, team.VictorOpsGroupID).First(&existing)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		result = db.Create(team)
		return result.Error
	}
	if result.Error != nil {
		return result.Error
	}

	// full overwrite of the existing record
	existing.SlackUserGroupID = team.SlackUserGroupID
	result = db.Save(&existing)

	return result.Error
}

// Delete removes the team mapping for the given group id.
// Deleting a non-existent mapping is not an error.
func Delete(db *gorm.DB, groupID string) error {
	if db == nil {
		return ErrDBNil
	}
	if groupID == "" {
		return ErrGroupIDEmpty
	}

	result := db.Where(groupQueryPattern, groupID).Delete(&models.Team{})

	return result.Error
}

// Package user provides the mapping-store accessor for user records.
package user

import (
	"errors"

	"gorm.io/gorm"

	"github.com/oncall-relay/oncall-relay/internal/db/models"
)

const (
	userQueryPattern = "victorops_user_id = ?"
)

var (
	// ErrUserNotFound is returned when no user mapping exists for the user id.
	ErrUserNotFound = errors.New("user mapping not found")
	// ErrUserIDEmpty is returned when a user operation is attempted with an empty user id.
	ErrUserIDEmpty = errors.New("victorops user id cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves a user mapping by its VictorOps user id.
// Absence is reported as ErrUserNotFound, never as a bare gorm error.
func Get(db *gorm.DB, userID string) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if userID == "" {
		return nil, ErrUserIDEmpty
	}

	var user models.User
	result := db.Where(userQueryPattern, userID).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, result.Error
	}

	return &user, nil
}

// Put creates or fully replaces the user mapping for the given user id.
// Last writer wins; there is no optimistic-concurrency check.
func Put(db *gorm.DB, user *models.User) error {
	if db == nil {
		return ErrDBNil
	}
	if user == nil || user.VictorOpsUserID == "" {
		return ErrUserIDEmpty
	}

	var existing models.User
	result := db.Where(userQueryPattern, user.VictorOpsUserID).First(&existing)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		result = db.Create(user)
		return result.Error
	}
	if result.Error != nil {
		return result.Error
	}

	// full overwrite of the existing record
	existing.SlackUserID = user.SlackUserID
	result = db.Save(&existing)

	return result.Error
}

// Delete removes the user mapping for the given user id.
// Deleting a non-existent mapping is not an error.
func Delete(db *gorm.DB, userID string) error {
	if db == nil {
		return ErrDBNil
	}
	if userID == "" {
		return ErrUserIDEmpty
	}

	result := db.Where(userQueryPattern, userID).Delete(&models.User{})

	return result.Error
}

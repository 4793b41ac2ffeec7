// Package model contains the GORM persistence models. They mirror the
// domain entities but carry storage concerns (indexes, column tags) the
// domain must not know about.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Unique index names are load-bearing: the repository maps storage-level
// unique violations back to the taken-key domain errors by matching
// these names in the driver error.
const (
	UniqueUsernameConstraint = "uq_accounts_username"
	UniqueEmailConstraint    = "uq_accounts_email"
)

// AccountModel is the persistence shape of entity.Account. The unique
// indexes on username and email are the authoritative guard against the
// check-then-insert race; the application pre-checks only improve error
// messages.
type AccountModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Username     string         `gorm:"uniqueIndex:uq_accounts_username;not null"`
	Email        string         `gorm:"uniqueIndex:uq_accounts_email;not null"`
	PasswordHash string         `gorm:"not null"`
	First        string         `gorm:"not null"`
	Last         string         `gorm:"not null"`
	Weight       float64        `gorm:"not null"`
	Admin        bool           `gorm:"not null;default:false"`
	Workouts     []WorkoutModel `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName overrides the default table name.
func (AccountModel) TableName() string {
	return "accounts"
}

// WorkoutModel holds the reference to a workout record. The workout
// subsystem owns the row contents; the account core only persists the
// relation.
type WorkoutModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedAt time.Time
}

// TableName overrides the default table name.
func (WorkoutModel) TableName() string {
	return "workouts"
}

// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the identity and profile record of a registered user.
// PasswordHash is held here for credential verification only; it must
// never leave the usecase layer (views are built without it).
type Account struct {
	ID           uuid.UUID // Surrogate identifier, assigned at creation, immutable.
	Username     string    // Globally unique login name.
	Email        string    // Globally unique contact address.
	PasswordHash string    // bcrypt digest of the password, never a plaintext.
	First        string    // Given name, for display.
	Last         string    // Family name, for display.
	Weight       float64   // Profile attribute, kilograms.
	Admin        bool      // Gates visibility on the administrative paths.
	Workouts     []Workout // Owned and mutated by the workout subsystem; persisted by reference only.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Workout is an opaque reference to a workout record. The account core
// persists the relation but never reads or writes its contents.
type Workout struct {
	ID        uuid.UUID
	AccountID uuid.UUID
}

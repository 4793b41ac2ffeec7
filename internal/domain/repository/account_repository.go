// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"fittrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountFields carries the mutable fields applied by UpdateByUsername.
// Every field is written unconditionally; the caller decides what changes.
type AccountFields struct {
	Username string
	Email    string
	First    string
	Last     string
	Weight   float64
	Admin    bool
}

// AccountRepository defines the operations the account core requires of
// its credential store. Uniqueness of username and email is enforced by
// the store itself (unique indexes); Insert and UpdateByUsername return
// domainerrors.ErrUsernameTaken / ErrEmailTaken when a concurrent writer
// has already claimed a key, even after an application-level pre-check
// passed. No multi-document guarantees beyond per-row atomicity are
// assumed.
type AccountRepository interface {
	// FindByID retrieves a single account by its surrogate identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByUsername retrieves a single account by its unique username.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)

	// FindByEmail retrieves a single account by its unique email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Insert persists a new account and assigns its ID.
	Insert(ctx context.Context, account *entity.Account) error

	// UpdateByUsername applies fields to the account identified by
	// oldUsername and returns the updated record.
	UpdateByUsername(ctx context.Context, oldUsername string, fields AccountFields) (*entity.Account, error)

	// DeleteByUsername removes the account matching username. Returns
	// ErrAccountNotFound when no row matched.
	DeleteByUsername(ctx context.Context, username string) error
}

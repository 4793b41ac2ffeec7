package postgres

import (
	"testing"

	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/errors"
	"fittrack/internal/infra/persistence/model"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func pgUniqueViolation(constraint string) *pgconn.PgError {
	return &pgconn.PgError{
		Code:           uniqueViolationCode,
		Severity:       "ERROR",
		Message:        `duplicate key value violates unique constraint "` + constraint + `"`,
		ConstraintName: constraint,
	}
}

func TestIsUniqueConstraintViolation(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "driver unique violation",
			err:  pgUniqueViolation(model.UniqueUsernameConstraint),
			want: true,
		},
		{
			name: "wrapped driver unique violation",
			err:  errors.Wrap(pgUniqueViolation(model.UniqueEmailConstraint), "insert failed"),
			want: true,
		},
		{
			name: "other driver error code",
			err:  &pgconn.PgError{Code: "23503", ConstraintName: "fk_workouts_account"},
			want: false,
		},
		{
			name: "unrelated failure",
			err:  errors.New("connection refused"),
			want: false,
		},
		{
			name: "record not found",
			err:  gorm.ErrRecordNotFound,
			want: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isUniqueConstraintViolation(tc.err))
		})
	}
}

func TestUniqueViolationError(t *testing.T) {
	t.Run("email constraint maps to email conflict", func(t *testing.T) {
		err := uniqueViolationError(pgUniqueViolation(model.UniqueEmailConstraint))

		assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
	})

	t.Run("username constraint maps to username conflict", func(t *testing.T) {
		err := uniqueViolationError(pgUniqueViolation(model.UniqueUsernameConstraint))

		assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
	})

	t.Run("wrapped email violation keeps the email conflict", func(t *testing.T) {
		err := uniqueViolationError(errors.Wrap(pgUniqueViolation(model.UniqueEmailConstraint), "update failed"))

		assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
	})

	t.Run("unnamed constraint defaults to username conflict", func(t *testing.T) {
		err := uniqueViolationError(&pgconn.PgError{Code: uniqueViolationCode})

		assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
	})
}

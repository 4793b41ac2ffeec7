package postgres

import (
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/errors"
	"fittrack/internal/infra/persistence/model"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL unique_violation error code.
const uniqueViolationCode = "23505"

func isUniqueConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// uniqueViolationError maps a storage-level unique violation to the
// taken-key error of the constraint it names. The driver error carries
// the constraint name, which is how a late-arriving race loser gets the
// same conflict error the pre-check would have produced.
func uniqueViolationError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.ConstraintName {
		case model.UniqueEmailConstraint:
			return domainerrors.ErrEmailTaken.WrapMessage("email unique constraint violated")
		case model.UniqueUsernameConstraint:
			return domainerrors.ErrUsernameTaken.WrapMessage("username unique constraint violated")
		}
	}

	// Default to the username conflict: it is the first key checked on
	// every write path.
	return domainerrors.ErrUsernameTaken.WrapMessage("username unique constraint violated")
}

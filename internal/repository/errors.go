package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Houeta/staffdesk/internal/apperror"
)

// PostgreSQL SQLSTATE codes translated into the shared taxonomy.
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgLockNotAvailable     = "55P03"
	pgForeignKeyViolation  = "23503"
	pgUniqueViolation      = "23505"
)

// translate maps driver-level errors onto the apperror sentinels so that
// callers never inspect SQLSTATE codes themselves.
func translate(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperror.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgSerializationFailure, pgDeadlockDetected, pgLockNotAvailable:
			return fmt.Errorf("%w: %s", apperror.ErrContention, pgErr.Message)
		case pgForeignKeyViolation, pgUniqueViolation:
			return fmt.Errorf("%w: %s", apperror.ErrConstraintViolation, pgErr.Message)
		}
	}

	return err
}

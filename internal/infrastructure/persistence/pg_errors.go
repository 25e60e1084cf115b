package persistence

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/partserp/backend/internal/domain/shared"
)

// Postgres error codes we translate into domain errors.
const (
	pgUniqueViolation = "23505"
	pgLockNotAvail    = "55P03"
)

// pgErrorCode extracts the SQLSTATE from a driver error. GORM runs on
// pgx; lib/pq errors can still surface from migration helpers.
func pgErrorCode(err error) string {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// translatePgError maps driver-level Postgres errors onto domain errors.
// A unique violation becomes the given duplicate error; a lock timeout
// (from SET LOCAL lock_timeout) becomes ErrLockTimeout. Everything else
// passes through unchanged.
func translatePgError(err error, duplicate *shared.DomainError) error {
	if err == nil {
		return nil
	}
	switch pgErrorCode(err) {
	case pgUniqueViolation:
		if duplicate != nil {
			return duplicate
		}
	case pgLockNotAvail:
		return shared.ErrLockTimeout
	}
	return err
}

package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/sqlscan"
	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/heartmarshall/planboard-backend/internal/domain"
)

// MapError converts driver errors to domain errors.
// context.DeadlineExceeded and context.Canceled are NOT mapped, they pass
// through. Unclassified failures become a storage CollaboratorError.
func MapError(err error, entity string, id int64) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %d: %w", entity, id, err)
	}

	if errors.Is(err, sql.ErrNoRows) || sqlscan.NotFound(err) {
		return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
	}

	if class := classify(err); class != nil {
		return fmt.Errorf("%s %d: %w", entity, id, class)
	}

	if isDomain(err) {
		return err
	}

	return domain.NewCollaboratorError("storage", fmt.Errorf("%s %d: %w", entity, id, err))
}

// classify maps constraint violations of either dialect. Missing parents
// (foreign keys) are reported as not found.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return domain.ErrConflict
		case "23503": // foreign_key_violation
			return domain.ErrNotFound
		case "23514", "23502": // check_violation, not_null_violation
			return domain.ErrValidation
		}
		return nil
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return domain.ErrConflict
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return domain.ErrNotFound
		case sqlite3.SQLITE_CONSTRAINT_CHECK, sqlite3.SQLITE_CONSTRAINT_NOTNULL:
			return domain.ErrValidation
		}
	}
	return nil
}

func isDomain(err error) bool {
	for _, target := range []error{domain.ErrNotFound, domain.ErrValidation, domain.ErrConflict, domain.ErrCollaborator} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/xonadon/xonadon-api/internal/store"
)

// SQLSTATE codes the apartment schema can raise.
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
	notNullViolationCode    = "23502"
)

// MapError translates a database error into the store error callers match
// on. The driver error stays in the chain. Anything else is returned as is.
//
// A foreign key violation can only come from rooms.apartment_id, so it means
// the apartment vanished between the lookup and the insert.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case uniqueViolationCode:
		return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
	case foreignKeyViolationCode:
		return fmt.Errorf("%w: %v", store.ErrApartmentNotFound, err)
	case checkViolationCode:
		return fmt.Errorf("%w: %s rejected on %s: %v",
			store.ErrInvalidEntity, pgErr.ConstraintName, pgErr.TableName, err)
	case notNullViolationCode:
		return fmt.Errorf("%w: %s.%s is required: %v",
			store.ErrInvalidEntity, pgErr.TableName, pgErr.ColumnName, err)
	}
	return err
}

// IsUniqueViolation reports whether err is a primary key or unique index
// conflict.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// CheckRowsAffected returns notFound (store.ErrNotFound if nil) when a
// DELETE matched no rows.
func CheckRowsAffected(result sql.Result, notFound error) error {
	if result == nil {
		return errors.New("nil result provided to CheckRowsAffected")
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n > 0 {
		return nil
	}
	if notFound == nil {
		return store.ErrNotFound
	}
	return notFound
}

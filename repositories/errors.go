package repositories

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Store errors returned by every repository.
var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicate        = errors.New("record already exists")
	ErrReferenced       = errors.New("record is referenced by other records")
	ErrInvalidReference = errors.New("referenced record does not exist")
)

// PostgreSQL SQLSTATE codes mapped to store errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translateError maps driver errors onto the store errors. fkErr is the error
// reported for a foreign key violation, which depends on the statement: a
// delete is blocked by children while an insert points at a missing parent.
func translateError(err error, fkErr error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
		case pgForeignKeyViolation:
			if fkErr != nil {
				return fmt.Errorf("%w: %s", fkErr, pgErr.ConstraintName)
			}
		}
	}
	return err
}

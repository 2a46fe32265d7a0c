package repository

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/samber/oops"
	"gorm.io/gorm"
)

var (
	ErrNotFound            = errors.New("record not found")
	ErrDuplicateKey        = errors.New("duplicate key")
	ErrForeignKeyViolation = errors.New("foreign key violation")
)

// translate maps driver errors onto the repository sentinels and wraps
// anything else as a storage error carrying the failed operation.
func translate(err error, op string, attrs ...any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return oops.Code("STORAGE_DUPLICATE_KEY").
				In("repository").
				With("op", op).
				With("constraint", pgErr.ConstraintName).
				Wrap(errors.Join(ErrDuplicateKey, err))
		case pgerrcode.ForeignKeyViolation:
			return oops.Code("STORAGE_FOREIGN_KEY").
				In("repository").
				With("op", op).
				With("constraint", pgErr.ConstraintName).
				Wrap(errors.Join(ErrForeignKeyViolation, err))
		}
	}

	return oops.Code("STORAGE_ERROR").
		In("repository").
		With("op", op).
		With(attrs...).
		Wrap(err)
}

package postgres

import (
	"errors"
	"strings"

	"zoo-management/internal/domain/crud"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type op int

const (
	opWrite op = iota
	opDelete
)

// translate lleva los errores de gorm/pgx a los errores de crud.
// Una violación de FK al escribir es una referencia inexistente; al borrar,
// la fila sigue referenciada.
func translate(err error, o op) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return crud.ErrNotFound
	}

	dup, fk := classify(err)
	switch {
	case dup:
		return errors.Join(crud.ErrDuplicate, err)
	case fk && o == opDelete:
		return errors.Join(crud.ErrReferenced, err)
	case fk:
		return errors.Join(crud.ErrMissingReference, err)
	default:
		return err
	}
}

func classify(err error) (duplicate, foreignKey bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation, pgErr.Code == pgForeignKeyViolation
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true, false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return false, true
	}

	// sqlite sin traducir (tests).
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed"), strings.Contains(msg, "FOREIGN KEY constraint failed")
}

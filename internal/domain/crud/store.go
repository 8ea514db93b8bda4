package crud

import (
	"context"
	"errors"
)

// Errores que devuelven los adapters de storage. El engine los traduce a
// errores de negocio (apperr) donde corresponde.
var (
	ErrNotFound         = errors.New("crud: not found")
	ErrDuplicate        = errors.New("crud: duplicate key")
	ErrReferenced       = errors.New("crud: row still referenced")
	ErrMissingReference = errors.New("crud: referenced row missing")
)

// Store es el contrato mínimo de persistencia por entidad.
type Store[E any] interface {
	Create(ctx context.Context, e E) error
	Update(ctx context.Context, e E) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (E, error)
	List(ctx context.Context) ([]E, error)
}

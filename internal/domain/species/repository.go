package species

import (
	"context"

	"zoo-management/internal/domain/crud"
)

type Repository interface {
	crud.Store[Species]
}

// AnimalCounter lo implementa el storage de animales.
type AnimalCounter interface {
	CountBySpecies(ctx context.Context, speciesID string) (int, error)
}

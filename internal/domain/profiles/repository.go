package profiles

import (
	"context"

	"zoo-management/internal/domain/crud"
)

type Repository interface {
	crud.Store[Profile]
}

// AssignedAnimals resuelve las etiquetas "<animal> (<especie>)" de un empleado.
type AssignedAnimals interface {
	AnimalLabels(ctx context.Context, employeeID string) ([]string, error)
}

package assignments

import (
	"context"

	"zoo-management/internal/domain/crud"
)

// Repository indexa por Key(employeeID, zooAnimalID).
type Repository interface {
	crud.Store[Assignment]
	ListByEmployee(ctx context.Context, employeeID string) ([]Assignment, error)
}

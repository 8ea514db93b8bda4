package animals

import "zoo-management/internal/domain/crud"

type Repository interface {
	crud.Store[ZooAnimal]
}

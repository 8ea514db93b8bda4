package professions

import "zoo-management/internal/domain/crud"

type Repository interface {
	crud.Store[Profession]
}

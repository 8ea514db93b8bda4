package employees

import "zoo-management/internal/domain/crud"

type Repository interface {
	crud.Store[Employee]
}

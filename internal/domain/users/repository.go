package users

import (
	"context"

	"zoo-management/internal/domain/crud"
)

type Repository interface {
	crud.Store[User]

	// GetByEmail compara exacto, igual que el índice único.
	GetByEmail(ctx context.Context, email string) (User, error)
	// Page filtra por nombre/email (sin distinguir mayúsculas) y pagina
	// ordenando por nombre. Devuelve el total filtrado.
	Page(ctx context.Context, q PageQuery) ([]User, int, error)
	Count(ctx context.Context) (int, error)
}

package professions

import (
	"zoo-management/internal/httpx"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta api/Profession/*.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/Profession", func(pr chi.Router) {
		httpx.MountCRUD[AddInput, UpdateInput, DTO](pr, svc)
	})
}

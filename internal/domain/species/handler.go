package species

import (
	"zoo-management/internal/httpx"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta api/Species/*.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/Species", func(sr chi.Router) {
		httpx.MountCRUD[AddInput, UpdateInput, DTO](sr, svc)
	})
}

package animals

import (
	"zoo-management/internal/httpx"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta api/ZooAnimal/*.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/ZooAnimal", func(ar chi.Router) {
		httpx.MountCRUD[AddInput, UpdateInput, DTO](ar, svc)
	})
}

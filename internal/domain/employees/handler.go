package employees

import (
	"zoo-management/internal/httpx"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta api/Employee/*.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/Employee", func(er chi.Router) {
		httpx.MountCRUD[AddInput, UpdateInput, DTO](er, svc)
	})
}

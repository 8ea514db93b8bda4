package assignments

import (
	"net/http"

	"zoo-management/internal/httpx"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta api/AnimalAssignments/*. La clave es compuesta, así
// que GetByIds recibe los dos ids y Delete lee el par del body.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/AnimalAssignments", func(ar chi.Router) {
		ar.Get("/GetAll", getAllHandler(svc))
		ar.Get("/GetByIds/{employeeId}/{zooAnimalId}", getByIDsHandler(svc))
		ar.Post("/Add", addHandler(svc))
		ar.Delete("/Delete", deleteHandler(svc))
	})
}

// getAllHandler godoc
// @Summary Listar asignaciones empleado-animal
// @Tags AnimalAssignments
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario"
// @Param Authorization header string false "Bearer <token>"
// @Success 200 {object} httpx.Envelope{result=[]DTO}
// @Failure 401 {object} httpx.Envelope
// @Failure 403 {object} httpx.Envelope
// @Router /api/AnimalAssignments/GetAll [get]
func getAllHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := httpx.Caller(w, r)
		if !ok {
			return
		}
		items, err := svc.GetAll(r.Context(), caller)
		if err != nil {
			httpx.Fail(w, r, err)
			return
		}
		httpx.Result(w, http.StatusOK, items)
	}
}

// getByIDsHandler godoc
// @Summary Obtener una asignación por su clave compuesta
// @Tags AnimalAssignments
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario"
// @Param Authorization header string false "Bearer <token>"
// @Param employeeId path string true "ID del empleado"
// @Param zooAnimalId path string true "ID del animal"
// @Success 200 {object} httpx.Envelope{result=DTO}
// @Failure 400 {object} httpx.Envelope
// @Failure 404 {object} httpx.Envelope
// @Router /api/AnimalAssignments/GetByIds/{employeeId}/{zooAnimalId} [get]
func getByIDsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := httpx.Caller(w, r)
		if !ok {
			return
		}
		employeeID, err := httpx.IDParam(r, "employeeId")
		if err != nil {
			httpx.Fail(w, r, err)
			return
		}
		zooAnimalID, err := httpx.IDParam(r, "zooAnimalId")
		if err != nil {
			httpx.Fail(w, r, err)
			return
		}

		item, err := svc.GetByIDs(r.Context(), caller, employeeID, zooAnimalID)
		if err != nil {
			httpx.Fail(w, r, err)
			return
		}
		httpx.Result(w, http.StatusOK, item)
	}
}

// addHandler godoc
// @Summary Asignar un animal a un empleado
// @Tags AnimalAssignments
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario"
// @Param Authorization header string false "Bearer <token>"
// @Param payload body AddInput true "Par empleado/animal"
// @Success 201 {object} httpx.Envelope{result=AddInput}
// @Failure 404 {object} httpx.Envelope "empleado o animal inexistente"
// @Failure 409 {object} httpx.Envelope "la relación ya existe"
// @Router /api/AnimalAssignments/Add [post]
func addHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := httpx.Caller(w, r)
		if !ok {
			return
		}
		var in AddInput
		if err := httpx.Decode(r, &in); err != nil {
			httpx.Fail(w, r, err)
			return
		}
		if err := svc.Add(r.Context(), caller, in); err != nil {
			httpx.Fail(w, r, err)
			return
		}
		httpx.Result(w, http.StatusCreated, in)
	}
}

// deleteHandler godoc
// @Summary Quitar una asignación (solo Admin)
// @Tags AnimalAssignments
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario"
// @Param Authorization header string false "Bearer <token>"
// @Param payload body PairInput true "Par empleado/animal"
// @Success 200 {object} httpx.Envelope
// @Failure 403 {object} httpx.Envelope
// @Failure 404 {object} httpx.Envelope
// @Router /api/AnimalAssignments/Delete [delete]
func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := httpx.Caller(w, r)
		if !ok {
			return
		}
		var in PairInput
		if err := httpx.Decode(r, &in); err != nil {
			httpx.Fail(w, r, err)
			return
		}
		if err := svc.Delete(r.Context(), caller, in.EmployeeID, in.ZooAnimalID); err != nil {
			httpx.Fail(w, r, err)
			return
		}
		httpx.OK(w)
	}
}

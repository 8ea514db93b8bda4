package users

import (
	"net/http"
	"strconv"

	"zoo-management/internal/httpx"
	"zoo-management/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta api/User/* y api/Authorization/*.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/User", func(ur chi.Router) {
		ur.Get("/GetById/{id}", getUserHandler(svc))
		ur.Get("/GetPage", getPageHandler(svc))
		ur.Post("/Add", addUserHandler(svc))
		ur.Put("/Update/{id}", updateUserHandler(svc))
		ur.Delete("/Delete/{id}", deleteUserHandler(svc))
	})

	r.Route("/api/Authorization", func(ar chi.Router) {
		ar.Post("/Login", loginHandler(svc))
		ar.Post("/Logout", logoutHandler(svc))
	})
}

// getUserHandler godoc
// @Summary Obtener un usuario
// @Description Admin y Personnel ven cualquier usuario; un Client solo a sí mismo.
// @Tags User
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario"
// @Param Authorization header string false "Bearer <token>"
// @Param id path string true "ID del usuario"
// @Success 200 {object} httpx.Envelope{result=DTO}
// @Failure 403 {object} httpx.Envelope
// @Failure 404 {object} httpx.Envelope
// @Router /api/User/GetById/{id} [get]
func getUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := httpx.Caller(w, r)
		if !ok {
			return
		}
		id, err := httpx.IDParam(r, "id")
		if err != nil {
			httpx.Fail(w, r, err)
			return
		}
		u, err := svc.GetByID(r.Context(), caller, id)
		if err != nil {
			httpx.Fail(w, r, err)
			return
		}
		httpx.Result(w, http.StatusOK, u)
	}
}

// getPageHandler lee ?page=&pageSize=&search=. Valores inválidos caen al default.
// @Summary Listar usuarios paginado
// @Tags User
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario"
// @Param Authorization header string false "Bearer <token>"
// @Param page query int false "Página (desde 1)"
// @Param pageSize query int false "Tamaño de página (máx 100)"
// @Param search query string false "Filtro por nombre o email"
// @Success 200 {object} httpx.Envelope{result=Page[DTO]}
// @Failure 403 {object} httpx.Envelope
// @Router /api/User/GetPage [get]
func getPageHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := httpx.Caller(w, r)
		if !ok {
			return
		}
		q := r.URL.Query()
		page, _ := strconv.Atoi(q.Get("page"))
		size, _ := strconv.Atoi(q.Get("pageSize"))

		res, err := svc.GetPage(r.Context(), caller, PageQuery{
			Page:     page,
			PageSize: size,
			Search:   q.Get("search"),
		})
		if err != nil {
			httpx.Fail(w, r, err)
			return
		}
		httpx.Result(w, http.StatusOK, res)
	}
}

// addUserHandler godoc
// @Summary Crear usuario (solo Admin)
// @Tags User
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario"
// @Param Authorization header string false "Bearer <token>"
// @Param payload body AddInput true "Datos del usuario; role por defecto Client"
// @Success 201 {object} httpx.Envelope{result=string}
// @Failure 400 {object} httpx.Envelope
// @Failure 409 {object} httpx.Envelope "UserAlreadyExists"
// @Router /api/User/Add [post]
func addUserHandler(svc *Service) http.HandlerFunc {
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
		id, err := svc.Add(r.Context(), &caller, in)
		if err != nil {
			httpx.Fail(w, r, err)
			return
		}
		httpx.Result(w, http.StatusCreated, id)
	}
}

// updateUserHandler godoc
// @Summary Modificar usuario (Admin o el propio usuario)
// @Tags User
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario"
// @Param Authorization header string false "Bearer <token>"
// @Param id path string true "ID del usuario"
// @Param payload body UpdateInput true "Campos a cambiar; role solo Admin"
// @Success 200 {object} httpx.Envelope
// @Failure 403 {object} httpx.Envelope
// @Failure 404 {object} httpx.Envelope
// @Router /api/User/Update/{id} [put]
func updateUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := httpx.Caller(w, r)
		if !ok {
			return
		}
		id, err := httpx.IDParam(r, "id")
		if err != nil {
			httpx.Fail(w, r, err)
			return
		}
		var in UpdateInput
		if err := httpx.Decode(r, &in); err != nil {
			httpx.Fail(w, r, err)
			return
		}
		if err := svc.Update(r.Context(), caller, id, in); err != nil {
			httpx.Fail(w, r, err)
			return
		}
		httpx.OK(w)
	}
}

// deleteUserHandler godoc
// @Summary Borrar usuario (Admin o el propio usuario)
// @Tags User
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario"
// @Param Authorization header string false "Bearer <token>"
// @Param id path string true "ID del usuario"
// @Success 200 {object} httpx.Envelope
// @Failure 403 {object} httpx.Envelope
// @Failure 404 {object} httpx.Envelope
// @Router /api/User/Delete/{id} [delete]
func deleteUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := httpx.Caller(w, r)
		if !ok {
			return
		}
		id, err := httpx.IDParam(r, "id")
		if err != nil {
			httpx.Fail(w, r, err)
			return
		}
		if err := svc.Delete(r.Context(), caller, id); err != nil {
			httpx.Fail(w, r, err)
			return
		}
		httpx.OK(w)
	}
}

// loginHandler es público.
// @Summary Login con email y contraseña
// @Tags Authorization
// @Accept json
// @Produce json
// @Param payload body LoginInput true "Credenciales"
// @Success 200 {object} httpx.Envelope{result=LoginResult}
// @Failure 400 {object} httpx.Envelope "WrongPassword"
// @Failure 404 {object} httpx.Envelope "UserNotFound"
// @Router /api/Authorization/Login [post]
func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in LoginInput
		if err := httpx.Decode(r, &in); err != nil {
			httpx.Fail(w, r, err)
			return
		}
		res, err := svc.Login(r.Context(), in)
		if err != nil {
			httpx.Fail(w, r, err)
			return
		}
		httpx.Result(w, http.StatusOK, res)
	}
}

// logoutHandler godoc
// @Summary Revocar el token actual
// @Tags Authorization
// @Produce json
// @Param Authorization header string true "Bearer <token>"
// @Success 200 {object} httpx.Envelope
// @Failure 401 {object} httpx.Envelope
// @Router /api/Authorization/Logout [post]
func logoutHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := httpx.Caller(w, r); !ok {
			return
		}
		claims, _ := middleware.GetClaims(r.Context())
		if err := svc.Logout(r.Context(), claims); err != nil {
			httpx.Fail(w, r, err)
			return
		}
		httpx.OK(w)
	}
}

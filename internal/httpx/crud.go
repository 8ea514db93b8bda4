package httpx

import (
	"context"
	"net/http"

	"zoo-management/internal/domain/authz"

	"github.com/go-chi/chi/v5"
)

// CRUDService es lo que expone un crud.Engine configurado.
type CRUDService[A, U, D any] interface {
	GetAll(ctx context.Context, caller authz.Principal) ([]D, error)
	GetByID(ctx context.Context, caller authz.Principal, id string) (D, error)
	Add(ctx context.Context, caller authz.Principal, in A) (string, error)
	Update(ctx context.Context, caller authz.Principal, id string, in U) error
	Delete(ctx context.Context, caller authz.Principal, id string) error
}

// MountCRUD registra GetAll, GetById/{id}, Add, Update/{id} y Delete/{id}.
func MountCRUD[A, U, D any](rt chi.Router, svc CRUDService[A, U, D]) {
	rt.Get("/GetAll", func(w http.ResponseWriter, r *http.Request) {
		caller, ok := Caller(w, r)
		if !ok {
			return
		}
		items, err := svc.GetAll(r.Context(), caller)
		if err != nil {
			Fail(w, r, err)
			return
		}
		Result(w, http.StatusOK, items)
	})

	rt.Get("/GetById/{id}", func(w http.ResponseWriter, r *http.Request) {
		caller, ok := Caller(w, r)
		if !ok {
			return
		}
		id, err := IDParam(r, "id")
		if err != nil {
			Fail(w, r, err)
			return
		}
		item, err := svc.GetByID(r.Context(), caller, id)
		if err != nil {
			Fail(w, r, err)
			return
		}
		Result(w, http.StatusOK, item)
	})

	rt.Post("/Add", func(w http.ResponseWriter, r *http.Request) {
		caller, ok := Caller(w, r)
		if !ok {
			return
		}
		var in A
		if err := Decode(r, &in); err != nil {
			Fail(w, r, err)
			return
		}
		id, err := svc.Add(r.Context(), caller, in)
		if err != nil {
			Fail(w, r, err)
			return
		}
		Result(w, http.StatusCreated, id)
	})

	rt.Put("/Update/{id}", func(w http.ResponseWriter, r *http.Request) {
		caller, ok := Caller(w, r)
		if !ok {
			return
		}
		id, err := IDParam(r, "id")
		if err != nil {
			Fail(w, r, err)
			return
		}
		var in U
		if err := Decode(r, &in); err != nil {
			Fail(w, r, err)
			return
		}
		if err := svc.Update(r.Context(), caller, id, in); err != nil {
			Fail(w, r, err)
			return
		}
		OK(w)
	})

	rt.Delete("/Delete/{id}", func(w http.ResponseWriter, r *http.Request) {
		caller, ok := Caller(w, r)
		if !ok {
			return
		}
		id, err := IDParam(r, "id")
		if err != nil {
			Fail(w, r, err)
			return
		}
		if err := svc.Delete(r.Context(), caller, id); err != nil {
			Fail(w, r, err)
			return
		}
		OK(w)
	})
}

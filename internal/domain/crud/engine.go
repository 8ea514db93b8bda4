// Package crud implementa el patrón get-all / get-by-id / add / update /
// delete una sola vez, parametrizado por entidad, input de alta, input de
// modificación y DTO de lectura. Cada módulo de dominio lo configura con su
// regla de autorización y sus restricciones de unicidad.
package crud

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"zoo-management/internal/domain/apperr"
	"zoo-management/internal/domain/authz"
	"zoo-management/internal/domain/validation"

	"github.com/google/uuid"
)

// Constraint es una regla de unicidad evaluada contra las filas existentes.
// Es un pre-check: la garantía real la da el índice único del storage.
type Constraint[E any] struct {
	Message string
	// UpdateMessage reemplaza a Message en Update; vacío usa Message.
	UpdateMessage string
	Conflicts     func(existing, candidate E) bool
}

type Hook[E any] func(ctx context.Context, caller authz.Principal, item E)

type Config[E, A, U, D any] struct {
	// Noun se usa en mensajes: "The <noun> was not found!".
	Noun string
	// Indefinite: "an employee", "a species".
	Indefinite string

	Rule  authz.Rule
	Store Store[E]

	ID      func(E) string
	New     func(id string, in A) E
	Apply   func(e *E, in U)
	Project func(ctx context.Context, items []E) ([]D, error)

	Validate     func(e E) error
	Check        func(ctx context.Context, e E) error // existencia de referencias, en Add y Update
	Unique       []Constraint[E]
	Less         func(a, b D) bool
	NotFoundCode apperr.Code

	BeforeDelete func(ctx context.Context, item E) error
	AfterAdd     Hook[E]
	AfterDelete  Hook[E]
}

type Engine[E, A, U, D any] struct {
	cfg Config[E, A, U, D]
	ids func() string
}

func NewEngine[E, A, U, D any](cfg Config[E, A, U, D]) *Engine[E, A, U, D] {
	if cfg.NotFoundCode == "" {
		cfg.NotFoundCode = apperr.CodeEntityNotFound
	}
	return &Engine[E, A, U, D]{
		cfg: cfg,
		ids: uuid.NewString,
	}
}

func (e *Engine[E, A, U, D]) GetAll(ctx context.Context, caller authz.Principal) ([]D, error) {
	if !authz.CanPerform(e.cfg.Rule, caller.Role, authz.OpList, false) {
		return nil, apperr.Forbidden(apperr.CodeCannotRead, fmt.Sprintf("You are not allowed to view %s!", e.cfg.Indefinite))
	}

	items, err := e.cfg.Store.List(ctx)
	if err != nil {
		return nil, err
	}
	out, err := e.cfg.Project(ctx, items)
	if err != nil {
		return nil, err
	}
	if e.cfg.Less != nil {
		sort.SliceStable(out, func(i, j int) bool { return e.cfg.Less(out[i], out[j]) })
	}
	return out, nil
}

func (e *Engine[E, A, U, D]) GetByID(ctx context.Context, caller authz.Principal, id string) (D, error) {
	var zero D
	if !authz.CanPerform(e.cfg.Rule, caller.Role, authz.OpRead, false) {
		return zero, apperr.Forbidden(apperr.CodeCannotRead, fmt.Sprintf("You are not allowed to view %s!", e.cfg.Indefinite))
	}

	item, err := e.find(ctx, id, "")
	if err != nil {
		return zero, err
	}
	out, err := e.cfg.Project(ctx, []E{item})
	if err != nil {
		return zero, err
	}
	if len(out) == 0 {
		return zero, e.notFound("")
	}
	return out[0], nil
}

func (e *Engine[E, A, U, D]) Add(ctx context.Context, caller authz.Principal, in A) (string, error) {
	if !authz.CanPerform(e.cfg.Rule, caller.Role, authz.OpAdd, false) {
		return "", apperr.Forbidden(apperr.CodeCannotAdd, fmt.Sprintf("You are not allowed to add %s!", e.cfg.Indefinite))
	}

	id := e.ids()
	item := e.cfg.New(id, in)
	if err := e.validate(item); err != nil {
		return "", err
	}
	if err := e.check(ctx, item); err != nil {
		return "", err
	}
	if err := e.checkUnique(ctx, item, "", apperr.CodeCannotAdd); err != nil {
		return "", err
	}

	if err := e.cfg.Store.Create(ctx, item); err != nil {
		return "", e.translate(err, apperr.CodeCannotAdd)
	}

	if e.cfg.AfterAdd != nil {
		e.cfg.AfterAdd(ctx, caller, item)
	}
	return e.cfg.ID(item), nil
}

func (e *Engine[E, A, U, D]) Update(ctx context.Context, caller authz.Principal, id string, in U) error {
	if !authz.CanPerform(e.cfg.Rule, caller.Role, authz.OpUpdate, false) {
		return apperr.Forbidden(apperr.CodeCannotUpdate, fmt.Sprintf("You are not allowed to update %s!", e.cfg.Indefinite))
	}

	item, err := e.find(ctx, id, " for update")
	if err != nil {
		return err
	}
	e.cfg.Apply(&item, in)

	if err := e.validate(item); err != nil {
		return err
	}
	if err := e.check(ctx, item); err != nil {
		return err
	}
	if err := e.checkUnique(ctx, item, e.cfg.ID(item), apperr.CodeCannotUpdate); err != nil {
		return err
	}

	if err := e.cfg.Store.Update(ctx, item); err != nil {
		return e.translate(err, apperr.CodeCannotUpdate)
	}
	return nil
}

func (e *Engine[E, A, U, D]) Delete(ctx context.Context, caller authz.Principal, id string) error {
	if !authz.CanPerform(e.cfg.Rule, caller.Role, authz.OpDelete, false) {
		return apperr.Forbidden(apperr.CodeCannotDelete, fmt.Sprintf("Only admin can delete %s!", e.cfg.Indefinite))
	}

	item, err := e.find(ctx, id, " for deletion")
	if err != nil {
		return err
	}
	if e.cfg.BeforeDelete != nil {
		if err := e.cfg.BeforeDelete(ctx, item); err != nil {
			return err
		}
	}

	if err := e.cfg.Store.Delete(ctx, id); err != nil {
		return e.translate(err, apperr.CodeCannotDelete)
	}

	if e.cfg.AfterDelete != nil {
		e.cfg.AfterDelete(ctx, caller, item)
	}
	return nil
}

func (e *Engine[E, A, U, D]) find(ctx context.Context, id, suffix string) (E, error) {
	item, err := e.cfg.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return item, e.notFound(suffix)
		}
		return item, err
	}
	return item, nil
}

// validate aplica los tags `validate` de la entidad y luego Config.Validate.
func (e *Engine[E, A, U, D]) validate(item E) error {
	if err := validation.Struct(item); err != nil {
		return err
	}
	if e.cfg.Validate == nil {
		return nil
	}
	return e.cfg.Validate(item)
}

func (e *Engine[E, A, U, D]) check(ctx context.Context, item E) error {
	if e.cfg.Check == nil {
		return nil
	}
	return e.cfg.Check(ctx, item)
}

// checkUnique recorre las filas existentes; excludeID deja fuera la fila
// que se está modificando.
func (e *Engine[E, A, U, D]) checkUnique(ctx context.Context, candidate E, excludeID string, code apperr.Code) error {
	if len(e.cfg.Unique) == 0 {
		return nil
	}
	existing, err := e.cfg.Store.List(ctx)
	if err != nil {
		return err
	}
	for _, c := range e.cfg.Unique {
		for _, row := range existing {
			if excludeID != "" && e.cfg.ID(row) == excludeID {
				continue
			}
			if !c.Conflicts(row, candidate) {
				continue
			}
			if excludeID != "" && c.UpdateMessage != "" {
				return apperr.Conflict(code, c.UpdateMessage)
			}
			return apperr.Conflict(code, c.Message)
		}
	}
	return nil
}

// translate mapea errores del storage. ErrMissingReference se deja pasar
// sin mapear: llega al borde como falla inesperada (500).
func (e *Engine[E, A, U, D]) translate(err error, code apperr.Code) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return e.notFound("")
	case errors.Is(err, ErrDuplicate):
		return apperr.Conflict(code, fmt.Sprintf("The %s already exists!", e.cfg.Noun))
	case errors.Is(err, ErrReferenced):
		return apperr.Conflict(code, fmt.Sprintf("The %s is still referenced by other records!", e.cfg.Noun))
	default:
		return err
	}
}

func (e *Engine[E, A, U, D]) notFound(suffix string) error {
	return apperr.NotFound(e.cfg.NotFoundCode, fmt.Sprintf("The %s was not found%s!", e.cfg.Noun, suffix))
}

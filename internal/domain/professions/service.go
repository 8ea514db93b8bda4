package professions

import (
	"context"
	"strings"

	"zoo-management/internal/domain/authz"
	"zoo-management/internal/domain/crud"
)

type Service struct {
	*crud.Engine[Profession, AddInput, UpdateInput, DTO]
}

func NewService(repo Repository) *Service {
	return &Service{Engine: crud.NewEngine(crud.Config[Profession, AddInput, UpdateInput, DTO]{
		Noun:       "profession",
		Indefinite: "a profession",
		Rule:       authz.StaffManaged,
		Store:      repo,
		ID:         func(p Profession) string { return p.ID },
		New: func(id string, in AddInput) Profession {
			return Profession{ID: id, Name: strings.TrimSpace(in.Name)}
		},
		Apply: func(p *Profession, in UpdateInput) {
			p.Name = strings.TrimSpace(in.Name)
		},
		Project: func(_ context.Context, items []Profession) ([]DTO, error) {
			out := make([]DTO, 0, len(items))
			for _, p := range items {
				out = append(out, ToDTO(p))
			}
			return out, nil
		},
		Unique: []crud.Constraint[Profession]{{
			Message:       "A profession with this name already exists!",
			UpdateMessage: "Another profession with this name already exists!",
			Conflicts: func(existing, candidate Profession) bool {
				return strings.ToLower(existing.Name) == strings.ToLower(candidate.Name)
			},
		}},
	})}
}

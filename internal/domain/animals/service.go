package animals

import (
	"context"
	"strings"

	"zoo-management/internal/domain/apperr"
	"zoo-management/internal/domain/authz"
	"zoo-management/internal/domain/crud"
	"zoo-management/internal/domain/notifications"
	"zoo-management/internal/domain/species"
)

type Service struct {
	*crud.Engine[ZooAnimal, AddInput, UpdateInput, DTO]
	speciesRepo species.Repository
}

func NewService(repo Repository, speciesRepo species.Repository, sink notifications.Sink) *Service {
	s := &Service{speciesRepo: speciesRepo}

	cfg := crud.Config[ZooAnimal, AddInput, UpdateInput, DTO]{
		Noun:         "animal",
		Indefinite:   "animals",
		Rule:         authz.StaffManaged,
		Store:        repo,
		NotFoundCode: apperr.CodeZooAnimalNotFound,
		ID:           func(a ZooAnimal) string { return a.ID },
		New: func(id string, in AddInput) ZooAnimal {
			return ZooAnimal{
				ID:           id,
				Name:         strings.TrimSpace(in.Name),
				Age:          in.Age,
				IsEndangered: in.IsEndangered,
				SpeciesID:    strings.TrimSpace(in.SpeciesID),
			}
		},
		Apply: func(a *ZooAnimal, in UpdateInput) {
			a.Name = strings.TrimSpace(in.Name)
			a.Age = in.Age
			a.IsEndangered = in.IsEndangered
			a.SpeciesID = strings.TrimSpace(in.SpeciesID)
		},
		Project:  s.project,
		// Orden: especie (nombre común) y luego nombre.
		Less: func(a, b DTO) bool {
			if a.Species != b.Species {
				return a.Species < b.Species
			}
			return a.Name < b.Name
		},
	}

	if sink != nil {
		cfg.AfterAdd = func(ctx context.Context, caller authz.Principal, a ZooAnimal) {
			sink.Notify(notifications.AnimalAdded(a.Name, s.speciesName(ctx, a.SpeciesID), a.Age, caller.Name))
		}
		cfg.AfterDelete = func(ctx context.Context, caller authz.Principal, a ZooAnimal) {
			sink.Notify(notifications.AnimalDeleted(a.Name, s.speciesName(ctx, a.SpeciesID), caller.Name))
		}
	}

	s.Engine = crud.NewEngine(cfg)
	return s
}

func (s *Service) project(ctx context.Context, items []ZooAnimal) ([]DTO, error) {
	names, err := s.speciesNames(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]DTO, 0, len(items))
	for _, a := range items {
		out = append(out, DTO{
			ID:           a.ID,
			Name:         a.Name,
			Species:      names[a.SpeciesID],
			Age:          a.Age,
			IsEndangered: a.IsEndangered,
		})
	}
	return out, nil
}

func (s *Service) speciesNames(ctx context.Context) (map[string]string, error) {
	all, err := s.speciesRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(all))
	for _, sp := range all {
		out[sp.ID] = sp.CommonName
	}
	return out, nil
}

// speciesName para los avisos; si no se encuentra queda vacío ("Unknown").
func (s *Service) speciesName(ctx context.Context, id string) string {
	sp, err := s.speciesRepo.GetByID(ctx, id)
	if err != nil {
		return ""
	}
	return sp.CommonName
}

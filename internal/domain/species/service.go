package species

import (
	"context"
	"strings"

	"zoo-management/internal/domain/apperr"
	"zoo-management/internal/domain/authz"
	"zoo-management/internal/domain/crud"
	"zoo-management/internal/domain/notifications"
)

type Service struct {
	*crud.Engine[Species, AddInput, UpdateInput, DTO]
}

func NewService(repo Repository, animals AnimalCounter, sink notifications.Sink) *Service {
	cfg := crud.Config[Species, AddInput, UpdateInput, DTO]{
		Noun:       "species",
		Indefinite: "a species",
		Rule:       authz.StaffManaged,
		Store:      repo,
		ID:         func(s Species) string { return s.ID },
		New: func(id string, in AddInput) Species {
			return Species{
				ID:             id,
				CommonName:     strings.TrimSpace(in.CommonName),
				ScientificName: strings.TrimSpace(in.ScientificName),
				Habitat:        strings.TrimSpace(in.Habitat),
				Diet:           strings.TrimSpace(in.Diet),
			}
		},
		Apply: applyUpdate,
		Project: func(_ context.Context, items []Species) ([]DTO, error) {
			out := make([]DTO, 0, len(items))
			for _, s := range items {
				out = append(out, ToDTO(s))
			}
			return out, nil
		},
		Unique: []crud.Constraint[Species]{
			{
				Message: "The species already exists!",
				Conflicts: func(existing, candidate Species) bool {
					return strings.ToLower(existing.CommonName) == strings.ToLower(candidate.CommonName)
				},
			},
			{
				Message: "The species already exists!",
				Conflicts: func(existing, candidate Species) bool {
					return strings.ToLower(existing.ScientificName) == strings.ToLower(candidate.ScientificName)
				},
			},
		},
	}

	if animals != nil {
		cfg.BeforeDelete = func(ctx context.Context, s Species) error {
			n, err := animals.CountBySpecies(ctx, s.ID)
			if err != nil {
				return err
			}
			if n > 0 {
				return apperr.Conflict(apperr.CodeCannotDelete, "The species is still used by zoo animals!")
			}
			return nil
		}
	}

	if sink != nil {
		cfg.AfterAdd = func(_ context.Context, caller authz.Principal, s Species) {
			sink.Notify(notifications.SpeciesAdded(s.CommonName, s.ScientificName, caller.Name))
		}
		cfg.AfterDelete = func(_ context.Context, caller authz.Principal, s Species) {
			sink.Notify(notifications.SpeciesDeleted(s.CommonName, s.ScientificName, caller.Name))
		}
	}

	return &Service{Engine: crud.NewEngine(cfg)}
}

func applyUpdate(s *Species, in UpdateInput) {
	if in.CommonName != nil {
		s.CommonName = strings.TrimSpace(*in.CommonName)
	}
	if in.ScientificName != nil {
		s.ScientificName = strings.TrimSpace(*in.ScientificName)
	}
	if in.Habitat != nil {
		s.Habitat = strings.TrimSpace(*in.Habitat)
	}
	if in.Diet != nil {
		s.Diet = strings.TrimSpace(*in.Diet)
	}
}

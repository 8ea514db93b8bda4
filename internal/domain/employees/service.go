package employees

import (
	"context"
	"strings"

	"zoo-management/internal/domain/authz"
	"zoo-management/internal/domain/crud"
	"zoo-management/internal/domain/notifications"
	"zoo-management/internal/domain/professions"
)

type Service struct {
	*crud.Engine[Employee, AddInput, UpdateInput, DTO]
	professionRepo professions.Repository
}

// NewService no valida que la profesión exista: una referencia inválida
// la rechaza el storage y llega al borde como error inesperado.
func NewService(repo Repository, professionRepo professions.Repository, sink notifications.Sink) *Service {
	s := &Service{professionRepo: professionRepo}

	cfg := crud.Config[Employee, AddInput, UpdateInput, DTO]{
		Noun:       "employee",
		Indefinite: "an employee",
		Rule:       authz.StaffManaged,
		Store:      repo,
		ID:         func(e Employee) string { return e.ID },
		New: func(id string, in AddInput) Employee {
			return Employee{
				ID:           id,
				FullName:     strings.TrimSpace(in.FullName),
				Age:          in.Age,
				ProfessionID: strings.TrimSpace(in.ProfessionID),
			}
		},
		Apply: func(e *Employee, in UpdateInput) {
			e.FullName = strings.TrimSpace(in.FullName)
			e.Age = in.Age
			e.ProfessionID = strings.TrimSpace(in.ProfessionID)
		},
		Project: s.project,
	}

	if sink != nil {
		cfg.AfterAdd = func(ctx context.Context, caller authz.Principal, e Employee) {
			sink.Notify(notifications.EmployeeAdded(e.FullName, e.Age, s.professionName(ctx, e.ProfessionID), caller.Name))
		}
		cfg.AfterDelete = func(ctx context.Context, caller authz.Principal, e Employee) {
			sink.Notify(notifications.EmployeeDeleted(e.FullName, e.Age, s.professionName(ctx, e.ProfessionID), caller.Name))
		}
	}

	s.Engine = crud.NewEngine(cfg)
	return s
}

func (s *Service) project(ctx context.Context, items []Employee) ([]DTO, error) {
	all, err := s.professionRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(all))
	for _, p := range all {
		names[p.ID] = p.Name
	}

	out := make([]DTO, 0, len(items))
	for _, e := range items {
		out = append(out, DTO{
			ID:             e.ID,
			FullName:       e.FullName,
			Age:            e.Age,
			ProfessionName: names[e.ProfessionID],
		})
	}
	return out, nil
}

func (s *Service) professionName(ctx context.Context, id string) string {
	p, err := s.professionRepo.GetByID(ctx, id)
	if err != nil {
		return ""
	}
	return p.Name
}

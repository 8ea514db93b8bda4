package profiles

import (
	"context"
	"strings"

	"zoo-management/internal/domain/authz"
	"zoo-management/internal/domain/crud"
	"zoo-management/internal/domain/employees"
	"zoo-management/internal/domain/professions"
)

type Service struct {
	*crud.Engine[Profile, AddInput, UpdateInput, DTO]

	employeeRepo   employees.Repository
	professionRepo professions.Repository
	animals        AssignedAnimals
}

func NewService(
	repo Repository,
	employeeRepo employees.Repository,
	professionRepo professions.Repository,
	animals AssignedAnimals,
) *Service {
	s := &Service{
		employeeRepo:   employeeRepo,
		professionRepo: professionRepo,
		animals:        animals,
	}

	s.Engine = crud.NewEngine(crud.Config[Profile, AddInput, UpdateInput, DTO]{
		Noun:       "profile",
		Indefinite: "a profile",
		Rule:       authz.StaffManaged,
		Store:      repo,
		ID:         func(p Profile) string { return p.ID },
		New: func(id string, in AddInput) Profile {
			return Profile{
				ID:          id,
				Email:       strings.TrimSpace(in.Email),
				PhoneNumber: strings.TrimSpace(in.PhoneNumber),
				EmployeeID:  strings.TrimSpace(in.EmployeeID),
			}
		},
		Apply: func(p *Profile, in UpdateInput) {
			p.Email = strings.TrimSpace(in.Email)
			p.PhoneNumber = strings.TrimSpace(in.PhoneNumber)
		},
		Project: s.project,
		Unique: []crud.Constraint[Profile]{
			{
				Message:       "Email already in use!",
				UpdateMessage: "Another profile with this email already exists!",
				Conflicts: func(existing, candidate Profile) bool {
					return strings.ToLower(existing.Email) == strings.ToLower(candidate.Email)
				},
			},
			{
				// El teléfono se compara exacto.
				Message:       "Phone number already in use!",
				UpdateMessage: "Another profile with this phone number already exists!",
				Conflicts: func(existing, candidate Profile) bool {
					return existing.PhoneNumber == candidate.PhoneNumber
				},
			},
		},
	})
	return s
}

func (s *Service) project(ctx context.Context, items []Profile) ([]DTO, error) {
	out := make([]DTO, 0, len(items))
	if len(items) == 0 {
		return out, nil
	}

	profs, err := s.professionRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	profNames := make(map[string]string, len(profs))
	for _, p := range profs {
		profNames[p.ID] = p.Name
	}

	for _, p := range items {
		dto := DTO{
			ID:          p.ID,
			Email:       p.Email,
			PhoneNumber: p.PhoneNumber,
			EmployeeID:  p.EmployeeID,
			ZooAnimals:  []string{},
		}

		if emp, err := s.employeeRepo.GetByID(ctx, p.EmployeeID); err == nil {
			dto.EmployeeName = emp.FullName
			dto.ProfessionName = profNames[emp.ProfessionID]
		}

		if s.animals != nil {
			labels, err := s.animals.AnimalLabels(ctx, p.EmployeeID)
			if err != nil {
				return nil, err
			}
			dto.ZooAnimals = labels
		}

		out = append(out, dto)
	}
	return out, nil
}

package assignments

import (
	"context"
	"errors"
	"strings"

	"zoo-management/internal/domain/animals"
	"zoo-management/internal/domain/apperr"
	"zoo-management/internal/domain/authz"
	"zoo-management/internal/domain/crud"
	"zoo-management/internal/domain/employees"
	"zoo-management/internal/domain/professions"
	"zoo-management/internal/domain/species"
)

type Lookups struct {
	Employees   employees.Repository
	Professions professions.Repository
	Animals     animals.Repository
	Species     species.Repository
}

type Service struct {
	engine *crud.Engine[Assignment, AddInput, struct{}, DTO]
	repo   Repository
	lk     Lookups
}

func NewService(repo Repository, lk Lookups) *Service {
	s := &Service{repo: repo, lk: lk}
	s.engine = crud.NewEngine(crud.Config[Assignment, AddInput, struct{}, DTO]{
		Noun:       "relationship",
		Indefinite: "relationships",
		Rule:       authz.StaffManaged,
		Store:      repo,
		ID:         func(a Assignment) string { return a.Key() },
		New: func(_ string, in AddInput) Assignment {
			return Assignment{
				EmployeeID:  strings.TrimSpace(in.EmployeeID),
				ZooAnimalID: strings.TrimSpace(in.ZooAnimalID),
			}
		},
		Apply:   func(*Assignment, struct{}) {},
		Project: s.project,
		Check:   s.checkEnds,
		Unique: []crud.Constraint[Assignment]{{
			Message: "This relationship already exists!",
			Conflicts: func(existing, candidate Assignment) bool {
				return existing.EmployeeID == candidate.EmployeeID && existing.ZooAnimalID == candidate.ZooAnimalID
			},
		}},
	})
	return s
}

func (s *Service) GetAll(ctx context.Context, caller authz.Principal) ([]DTO, error) {
	return s.engine.GetAll(ctx, caller)
}

func (s *Service) GetByIDs(ctx context.Context, caller authz.Principal, employeeID, zooAnimalID string) (DTO, error) {
	return s.engine.GetByID(ctx, caller, Key(employeeID, zooAnimalID))
}

func (s *Service) Add(ctx context.Context, caller authz.Principal, in AddInput) error {
	_, err := s.engine.Add(ctx, caller, in)
	return err
}

func (s *Service) Delete(ctx context.Context, caller authz.Principal, employeeID, zooAnimalID string) error {
	return s.engine.Delete(ctx, caller, Key(employeeID, zooAnimalID))
}

// checkEnds exige que existan el empleado y el animal.
func (s *Service) checkEnds(ctx context.Context, a Assignment) error {
	notFound := apperr.NotFound(apperr.CodeEntityNotFound, "The employee or animal was not found!")

	if _, err := s.lk.Employees.GetByID(ctx, a.EmployeeID); err != nil {
		if errors.Is(err, crud.ErrNotFound) {
			return notFound
		}
		return err
	}
	if _, err := s.lk.Animals.GetByID(ctx, a.ZooAnimalID); err != nil {
		if errors.Is(err, crud.ErrNotFound) {
			return notFound
		}
		return err
	}
	return nil
}

func (s *Service) project(ctx context.Context, items []Assignment) ([]DTO, error) {
	if len(items) == 0 {
		return []DTO{}, nil
	}
	names, err := loadNames(ctx, s.lk)
	if err != nil {
		return nil, err
	}

	out := make([]DTO, 0, len(items))
	for _, a := range items {
		emp := names.employees[a.EmployeeID]
		ani := names.animals[a.ZooAnimalID]
		out = append(out, DTO{
			EmployeeID:     a.EmployeeID,
			EmployeeName:   emp.FullName,
			ProfessionName: names.professions[emp.ProfessionID],
			ZooAnimalID:    a.ZooAnimalID,
			AnimalName:     ani.Name,
			SpeciesName:    names.species[ani.SpeciesID],
		})
	}
	return out, nil
}

type nameIndex struct {
	employees   map[string]employees.Employee
	professions map[string]string
	animals     map[string]animals.ZooAnimal
	species     map[string]string
}

func loadNames(ctx context.Context, lk Lookups) (nameIndex, error) {
	idx := nameIndex{
		employees:   map[string]employees.Employee{},
		professions: map[string]string{},
		animals:     map[string]animals.ZooAnimal{},
		species:     map[string]string{},
	}

	emps, err := lk.Employees.List(ctx)
	if err != nil {
		return idx, err
	}
	for _, e := range emps {
		idx.employees[e.ID] = e
	}

	profs, err := lk.Professions.List(ctx)
	if err != nil {
		return idx, err
	}
	for _, p := range profs {
		idx.professions[p.ID] = p.Name
	}

	anis, err := lk.Animals.List(ctx)
	if err != nil {
		return idx, err
	}
	for _, a := range anis {
		idx.animals[a.ID] = a
	}

	sps, err := lk.Species.List(ctx)
	if err != nil {
		return idx, err
	}
	for _, sp := range sps {
		idx.species[sp.ID] = sp.CommonName
	}
	return idx, nil
}

// AnimalLabels devuelve "<animal> (<especie>)" para cada animal asignado al
// empleado. Lo usa la vista de perfiles.
func (s *Service) AnimalLabels(ctx context.Context, employeeID string) ([]string, error) {
	links, err := s.repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(links))
	for _, l := range links {
		a, err := s.lk.Animals.GetByID(ctx, l.ZooAnimalID)
		if err != nil {
			if errors.Is(err, crud.ErrNotFound) {
				continue
			}
			return nil, err
		}
		sp := ""
		if x, err := s.lk.Species.GetByID(ctx, a.SpeciesID); err == nil {
			sp = x.CommonName
		}
		out = append(out, a.Name+" ("+sp+")")
	}
	return out, nil
}

// Package memory es el storage por defecto en dev y tests. Un único Store
// guarda todas las tablas bajo el mismo mutex para poder aplicar las reglas
// de FK (existencia, cascade y restrict) igual que la base.
package memory

import (
	"errors"
	"strings"
	"sync"

	"zoo-management/internal/domain/animals"
	"zoo-management/internal/domain/assignments"
	"zoo-management/internal/domain/crud"
	"zoo-management/internal/domain/employees"
	"zoo-management/internal/domain/professions"
	"zoo-management/internal/domain/profiles"
	"zoo-management/internal/domain/species"
	"zoo-management/internal/domain/users"
)

var ErrIDRequired = errors.New("memory: id required")

// table mantiene orden de inserción: GetAll devuelve en ese orden.
type table[E any] struct {
	byID  map[string]E
	order []string
}

func newTable[E any]() table[E] {
	return table[E]{byID: make(map[string]E)}
}

func (t *table[E]) get(id string) (E, bool) {
	e, ok := t.byID[id]
	return e, ok
}

func (t *table[E]) has(id string) bool {
	_, ok := t.byID[id]
	return ok
}

func (t *table[E]) insert(id string, e E) error {
	if strings.TrimSpace(id) == "" {
		return ErrIDRequired
	}
	if t.has(id) {
		return crud.ErrDuplicate
	}
	t.byID[id] = e
	t.order = append(t.order, id)
	return nil
}

func (t *table[E]) replace(id string, e E) error {
	if !t.has(id) {
		return crud.ErrNotFound
	}
	t.byID[id] = e
	return nil
}

func (t *table[E]) remove(id string) error {
	if !t.has(id) {
		return crud.ErrNotFound
	}
	delete(t.byID, id)
	for i, x := range t.order {
		if x == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return nil
}

func (t *table[E]) list(keep func(E) bool) []E {
	out := make([]E, 0, len(t.order))
	for _, id := range t.order {
		e := t.byID[id]
		if keep == nil || keep(e) {
			out = append(out, e)
		}
	}
	return out
}

type Store struct {
	mu sync.RWMutex

	users       table[users.User]
	professions table[professions.Profession]
	employees   table[employees.Employee]
	profiles    table[profiles.Profile]
	species     table[species.Species]
	animals     table[animals.ZooAnimal]
	assignments table[assignments.Assignment]
}

func NewStore() *Store {
	return &Store{
		users:       newTable[users.User](),
		professions: newTable[professions.Profession](),
		employees:   newTable[employees.Employee](),
		profiles:    newTable[profiles.Profile](),
		species:     newTable[species.Species](),
		animals:     newTable[animals.ZooAnimal](),
		assignments: newTable[assignments.Assignment](),
	}
}

func (s *Store) Users() users.Repository             { return userRepo{s} }
func (s *Store) Professions() professions.Repository { return professionRepo{s} }
func (s *Store) Employees() employees.Repository     { return employeeRepo{s} }
func (s *Store) Profiles() profiles.Repository       { return profileRepo{s} }
func (s *Store) Species() species.Repository         { return speciesRepo{s} }
func (s *Store) Animals() AnimalRepository           { return animalRepo{s} }
func (s *Store) Assignments() assignments.Repository { return assignmentRepo{s} }

// Cascadas. Se llaman con el lock tomado.

func (s *Store) deleteEmployeeCascade(id string) {
	for _, p := range s.profiles.list(func(p profiles.Profile) bool { return p.EmployeeID == id }) {
		_ = s.profiles.remove(p.ID)
	}
	for _, a := range s.assignments.list(func(a assignments.Assignment) bool { return a.EmployeeID == id }) {
		_ = s.assignments.remove(a.Key())
	}
	_ = s.employees.remove(id)
}

func (s *Store) deleteAnimalCascade(id string) {
	for _, a := range s.assignments.list(func(a assignments.Assignment) bool { return a.ZooAnimalID == id }) {
		_ = s.assignments.remove(a.Key())
	}
	_ = s.animals.remove(id)
}

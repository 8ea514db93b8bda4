package memory

import (
	"context"
	"sort"
	"strings"

	"zoo-management/internal/domain/animals"
	"zoo-management/internal/domain/assignments"
	"zoo-management/internal/domain/crud"
	"zoo-management/internal/domain/employees"
	"zoo-management/internal/domain/professions"
	"zoo-management/internal/domain/profiles"
	"zoo-management/internal/domain/species"
	"zoo-management/internal/domain/users"
)

// -------------------------
// Users
// -------------------------

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, u users.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	// Índice único de email: comparación exacta.
	if len(r.s.users.list(func(x users.User) bool { return x.Email == u.Email })) > 0 {
		return crud.ErrDuplicate
	}
	return r.s.users.insert(u.ID, u)
}

func (r userRepo) Update(_ context.Context, u users.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if len(r.s.users.list(func(x users.User) bool { return x.Email == u.Email && x.ID != u.ID })) > 0 {
		return crud.ErrDuplicate
	}
	return r.s.users.replace(u.ID, u)
}

func (r userRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.users.remove(id)
}

func (r userRepo) GetByID(_ context.Context, id string) (users.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users.get(id)
	if !ok {
		return users.User{}, crud.ErrNotFound
	}
	return u, nil
}

func (r userRepo) List(_ context.Context) ([]users.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.users.list(nil), nil
}

func (r userRepo) GetByEmail(_ context.Context, email string) (users.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	found := r.s.users.list(func(x users.User) bool { return x.Email == email })
	if len(found) == 0 {
		return users.User{}, crud.ErrNotFound
	}
	return found[0], nil
}

func (r userRepo) Page(_ context.Context, q users.PageQuery) ([]users.User, int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(q.Search))
	all := r.s.users.list(func(x users.User) bool {
		if search == "" {
			return true
		}
		return strings.Contains(strings.ToLower(x.Name), search) ||
			strings.Contains(strings.ToLower(x.Email), search)
	})
	sort.SliceStable(all, func(i, j int) bool { return all[i].Name < all[j].Name })

	total := len(all)
	start := (q.Page - 1) * q.PageSize
	if start < 0 {
		start = 0
	}
	if start >= total {
		return []users.User{}, total, nil
	}
	end := start + q.PageSize
	if q.PageSize <= 0 || end > total {
		end = total
	}
	return all[start:end], total, nil
}

func (r userRepo) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.users.byID), nil
}

// -------------------------
// Professions
// -------------------------

type professionRepo struct{ s *Store }

func (r professionRepo) Create(_ context.Context, p professions.Profession) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.professions.insert(p.ID, p)
}

func (r professionRepo) Update(_ context.Context, p professions.Profession) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.professions.replace(p.ID, p)
}

// Delete borra en cascada los empleados de la profesión.
func (r professionRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.professions.has(id) {
		return crud.ErrNotFound
	}
	for _, e := range r.s.employees.list(func(e employees.Employee) bool { return e.ProfessionID == id }) {
		r.s.deleteEmployeeCascade(e.ID)
	}
	return r.s.professions.remove(id)
}

func (r professionRepo) GetByID(_ context.Context, id string) (professions.Profession, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.professions.get(id)
	if !ok {
		return professions.Profession{}, crud.ErrNotFound
	}
	return p, nil
}

func (r professionRepo) List(_ context.Context) ([]professions.Profession, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.professions.list(nil), nil
}

// -------------------------
// Employees
// -------------------------

type employeeRepo struct{ s *Store }

func (r employeeRepo) Create(_ context.Context, e employees.Employee) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.professions.has(e.ProfessionID) {
		return crud.ErrMissingReference
	}
	return r.s.employees.insert(e.ID, e)
}

func (r employeeRepo) Update(_ context.Context, e employees.Employee) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.employees.has(e.ID) {
		return crud.ErrNotFound
	}
	if !r.s.professions.has(e.ProfessionID) {
		return crud.ErrMissingReference
	}
	return r.s.employees.replace(e.ID, e)
}

func (r employeeRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.employees.has(id) {
		return crud.ErrNotFound
	}
	r.s.deleteEmployeeCascade(id)
	return nil
}

func (r employeeRepo) GetByID(_ context.Context, id string) (employees.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.employees.get(id)
	if !ok {
		return employees.Employee{}, crud.ErrNotFound
	}
	return e, nil
}

func (r employeeRepo) List(_ context.Context) ([]employees.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.employees.list(nil), nil
}

// -------------------------
// Profiles
// -------------------------

type profileRepo struct{ s *Store }

func (r profileRepo) Create(_ context.Context, p profiles.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.employees.has(p.EmployeeID) {
		return crud.ErrMissingReference
	}
	// Un perfil por empleado (FK única).
	if len(r.s.profiles.list(func(x profiles.Profile) bool { return x.EmployeeID == p.EmployeeID })) > 0 {
		return crud.ErrDuplicate
	}
	return r.s.profiles.insert(p.ID, p)
}

func (r profileRepo) Update(_ context.Context, p profiles.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.profiles.has(p.ID) {
		return crud.ErrNotFound
	}
	if !r.s.employees.has(p.EmployeeID) {
		return crud.ErrMissingReference
	}
	if len(r.s.profiles.list(func(x profiles.Profile) bool { return x.EmployeeID == p.EmployeeID && x.ID != p.ID })) > 0 {
		return crud.ErrDuplicate
	}
	return r.s.profiles.replace(p.ID, p)
}

func (r profileRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.profiles.remove(id)
}

func (r profileRepo) GetByID(_ context.Context, id string) (profiles.Profile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.profiles.get(id)
	if !ok {
		return profiles.Profile{}, crud.ErrNotFound
	}
	return p, nil
}

func (r profileRepo) List(_ context.Context) ([]profiles.Profile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.profiles.list(nil), nil
}

// -------------------------
// Species
// -------------------------

type speciesRepo struct{ s *Store }

func (r speciesRepo) Create(_ context.Context, sp species.Species) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.species.insert(sp.ID, sp)
}

func (r speciesRepo) Update(_ context.Context, sp species.Species) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.species.replace(sp.ID, sp)
}

// Delete es restrict: falla si algún animal la referencia.
func (r speciesRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.species.has(id) {
		return crud.ErrNotFound
	}
	if len(r.s.animals.list(func(a animals.ZooAnimal) bool { return a.SpeciesID == id })) > 0 {
		return crud.ErrReferenced
	}
	return r.s.species.remove(id)
}

func (r speciesRepo) GetByID(_ context.Context, id string) (species.Species, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	sp, ok := r.s.species.get(id)
	if !ok {
		return species.Species{}, crud.ErrNotFound
	}
	return sp, nil
}

func (r speciesRepo) List(_ context.Context) ([]species.Species, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.species.list(nil), nil
}

// -------------------------
// Zoo animals
// -------------------------

// AnimalRepository es el repo de animales más el conteo que usa species.
type AnimalRepository interface {
	animals.Repository
	species.AnimalCounter
}

type animalRepo struct{ s *Store }

func (r animalRepo) Create(_ context.Context, a animals.ZooAnimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.species.has(a.SpeciesID) {
		return crud.ErrMissingReference
	}
	return r.s.animals.insert(a.ID, a)
}

func (r animalRepo) Update(_ context.Context, a animals.ZooAnimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.animals.has(a.ID) {
		return crud.ErrNotFound
	}
	if !r.s.species.has(a.SpeciesID) {
		return crud.ErrMissingReference
	}
	return r.s.animals.replace(a.ID, a)
}

func (r animalRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.animals.has(id) {
		return crud.ErrNotFound
	}
	r.s.deleteAnimalCascade(id)
	return nil
}

func (r animalRepo) GetByID(_ context.Context, id string) (animals.ZooAnimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.animals.get(id)
	if !ok {
		return animals.ZooAnimal{}, crud.ErrNotFound
	}
	return a, nil
}

func (r animalRepo) List(_ context.Context) ([]animals.ZooAnimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.animals.list(nil), nil
}

func (r animalRepo) CountBySpecies(_ context.Context, speciesID string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.animals.list(func(a animals.ZooAnimal) bool { return a.SpeciesID == speciesID })), nil
}

// -------------------------
// Assignments (clave compuesta)
// -------------------------

type assignmentRepo struct{ s *Store }

func (r assignmentRepo) Create(_ context.Context, a assignments.Assignment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.employees.has(a.EmployeeID) || !r.s.animals.has(a.ZooAnimalID) {
		return crud.ErrMissingReference
	}
	return r.s.assignments.insert(a.Key(), a)
}

// Update no cambia nada: la fila es solo la clave.
func (r assignmentRepo) Update(_ context.Context, a assignments.Assignment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.assignments.replace(a.Key(), a)
}

func (r assignmentRepo) Delete(_ context.Context, key string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.assignments.remove(key)
}

func (r assignmentRepo) GetByID(_ context.Context, key string) (assignments.Assignment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.assignments.get(key)
	if !ok {
		return assignments.Assignment{}, crud.ErrNotFound
	}
	return a, nil
}

func (r assignmentRepo) List(_ context.Context) ([]assignments.Assignment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.assignments.list(nil), nil
}

func (r assignmentRepo) ListByEmployee(_ context.Context, employeeID string) ([]assignments.Assignment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.assignments.list(func(a assignments.Assignment) bool { return a.EmployeeID == employeeID }), nil
}

// Package postgres implementa los repositorios sobre gorm. En producción
// corre sobre Postgres (pgx); los tests usan el mismo código sobre sqlite.
package postgres

import (
	"context"
	"strings"

	"zoo-management/internal/domain/animals"
	"zoo-management/internal/domain/assignments"
	"zoo-management/internal/domain/crud"
	"zoo-management/internal/domain/employees"
	"zoo-management/internal/domain/professions"
	"zoo-management/internal/domain/profiles"
	"zoo-management/internal/domain/species"
	"zoo-management/internal/domain/users"

	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Users() users.Repository {
	return userRepo{
		table: table[users.User, userRow]{db: s.db, toRow: toUserRow, fromRow: userRow.entity},
	}
}

func (s *Store) Professions() professions.Repository {
	return table[professions.Profession, professionRow]{db: s.db, toRow: toProfessionRow, fromRow: professionRow.entity}
}

func (s *Store) Employees() employees.Repository {
	return table[employees.Employee, employeeRow]{db: s.db, toRow: toEmployeeRow, fromRow: employeeRow.entity}
}

func (s *Store) Profiles() profiles.Repository {
	return table[profiles.Profile, profileRow]{db: s.db, toRow: toProfileRow, fromRow: profileRow.entity}
}

func (s *Store) Species() species.Repository {
	return table[species.Species, speciesRow]{db: s.db, toRow: toSpeciesRow, fromRow: speciesRow.entity}
}

// AnimalRepository es el repo de animales más el conteo que usa species.
type AnimalRepository interface {
	animals.Repository
	species.AnimalCounter
}

func (s *Store) Animals() AnimalRepository {
	return animalRepo{
		table: table[animals.ZooAnimal, animalRow]{db: s.db, toRow: toAnimalRow, fromRow: animalRow.entity},
	}
}

func (s *Store) Assignments() assignments.Repository {
	return assignmentRepo{db: s.db}
}

// -------------------------
// Users
// -------------------------

type userRepo struct {
	table[users.User, userRow]
}

func (r userRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	var row userRow
	if err := r.db.WithContext(ctx).First(&row, "email = ?", email).Error; err != nil {
		return users.User{}, translate(err, opWrite)
	}
	return row.entity(), nil
}

func (r userRepo) Page(ctx context.Context, q users.PageQuery) ([]users.User, int, error) {
	tx := r.db.WithContext(ctx).Model(&userRow{})
	if search := strings.ToLower(strings.TrimSpace(q.Search)); search != "" {
		like := "%" + search + "%"
		tx = tx.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (q.Page - 1) * q.PageSize
	if offset < 0 {
		offset = 0
	}
	var rows []userRow
	page := tx.Order("name, id").Offset(offset)
	if q.PageSize > 0 {
		page = page.Limit(q.PageSize)
	}
	if err := page.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return r.entities(rows), int(total), nil
}

func (r userRepo) Count(ctx context.Context) (int, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&userRow{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return int(n), nil
}

// -------------------------
// Zoo animals
// -------------------------

type animalRepo struct {
	table[animals.ZooAnimal, animalRow]
}

func (r animalRepo) CountBySpecies(ctx context.Context, speciesID string) (int, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&animalRow{}).Where("species_id = ?", speciesID).Count(&n).Error
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// -------------------------
// Assignments (clave compuesta)
// -------------------------

type assignmentRepo struct {
	db *gorm.DB
}

func (r assignmentRepo) Create(ctx context.Context, a assignments.Assignment) error {
	row := toAssignmentRow(a)
	return translate(r.db.WithContext(ctx).Create(&row).Error, opWrite)
}

// Update no cambia nada: la fila es solo la clave.
func (r assignmentRepo) Update(ctx context.Context, a assignments.Assignment) error {
	_, err := r.GetByID(ctx, a.Key())
	return err
}

func (r assignmentRepo) Delete(ctx context.Context, key string) error {
	employeeID, animalID, ok := assignments.SplitKey(key)
	if !ok {
		return crud.ErrNotFound
	}
	res := r.db.WithContext(ctx).
		Where("employee_id = ? AND zoo_animal_id = ?", employeeID, animalID).
		Delete(&assignmentRow{})
	if res.Error != nil {
		return translate(res.Error, opDelete)
	}
	if res.RowsAffected == 0 {
		return crud.ErrNotFound
	}
	return nil
}

func (r assignmentRepo) GetByID(ctx context.Context, key string) (assignments.Assignment, error) {
	employeeID, animalID, ok := assignments.SplitKey(key)
	if !ok {
		return assignments.Assignment{}, crud.ErrNotFound
	}
	var row assignmentRow
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND zoo_animal_id = ?", employeeID, animalID).
		First(&row).Error
	if err != nil {
		return assignments.Assignment{}, translate(err, opWrite)
	}
	return row.entity(), nil
}

func (r assignmentRepo) List(ctx context.Context) ([]assignments.Assignment, error) {
	return r.find(ctx, r.db.WithContext(ctx))
}

func (r assignmentRepo) ListByEmployee(ctx context.Context, employeeID string) ([]assignments.Assignment, error) {
	return r.find(ctx, r.db.WithContext(ctx).Where("employee_id = ?", employeeID))
}

func (r assignmentRepo) find(_ context.Context, tx *gorm.DB) ([]assignments.Assignment, error) {
	var rows []assignmentRow
	if err := tx.Order("created_at, employee_id, zoo_animal_id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]assignments.Assignment, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.entity())
	}
	return out, nil
}

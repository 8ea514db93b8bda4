package postgres

import (
	"time"

	"zoo-management/internal/domain/animals"
	"zoo-management/internal/domain/assignments"
	"zoo-management/internal/domain/authz"
	"zoo-management/internal/domain/employees"
	"zoo-management/internal/domain/professions"
	"zoo-management/internal/domain/profiles"
	"zoo-management/internal/domain/species"
	"zoo-management/internal/domain/users"
)

// Las relaciones belongs-to solo están para que AutoMigrate cree las FKs;
// nunca se cargan.

type userRow struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Name      string    `gorm:"size:200;not null"`
	Email     string    `gorm:"size:320;not null;uniqueIndex"`
	Password  string    `gorm:"not null"`
	Role      string    `gorm:"size:20;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (userRow) TableName() string { return "users" }

func toUserRow(u users.User) userRow {
	return userRow{ID: u.ID, Name: u.Name, Email: u.Email, Password: u.Password, Role: string(u.Role)}
}

func (r userRow) entity() users.User {
	return users.User{ID: r.ID, Name: r.Name, Email: r.Email, Password: r.Password, Role: authz.Role(r.Role)}
}

type professionRow struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Name      string    `gorm:"size:200;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (professionRow) TableName() string { return "professions" }

func toProfessionRow(p professions.Profession) professionRow {
	return professionRow{ID: p.ID, Name: p.Name}
}

func (r professionRow) entity() professions.Profession {
	return professions.Profession{ID: r.ID, Name: r.Name}
}

type employeeRow struct {
	ID           string    `gorm:"primaryKey;size:36"`
	FullName     string    `gorm:"size:200;not null"`
	Age          int       `gorm:"not null"`
	ProfessionID string    `gorm:"size:36;not null;index"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`

	Profession *professionRow `gorm:"foreignKey:ProfessionID;constraint:OnDelete:CASCADE"`
}

func (employeeRow) TableName() string { return "employees" }

func toEmployeeRow(e employees.Employee) employeeRow {
	return employeeRow{ID: e.ID, FullName: e.FullName, Age: e.Age, ProfessionID: e.ProfessionID}
}

func (r employeeRow) entity() employees.Employee {
	return employees.Employee{ID: r.ID, FullName: r.FullName, Age: r.Age, ProfessionID: r.ProfessionID}
}

type profileRow struct {
	ID          string    `gorm:"primaryKey;size:36"`
	Email       string    `gorm:"size:320;not null"`
	PhoneNumber string    `gorm:"size:50;not null"`
	EmployeeID  string    `gorm:"size:36;not null;uniqueIndex"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`

	Employee *employeeRow `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

func (profileRow) TableName() string { return "employee_profiles" }

func toProfileRow(p profiles.Profile) profileRow {
	return profileRow{ID: p.ID, Email: p.Email, PhoneNumber: p.PhoneNumber, EmployeeID: p.EmployeeID}
}

func (r profileRow) entity() profiles.Profile {
	return profiles.Profile{ID: r.ID, Email: r.Email, PhoneNumber: r.PhoneNumber, EmployeeID: r.EmployeeID}
}

type speciesRow struct {
	ID             string    `gorm:"primaryKey;size:36"`
	CommonName     string    `gorm:"size:200;not null"`
	ScientificName string    `gorm:"size:200;not null"`
	Habitat        string    `gorm:"size:200"`
	Diet           string    `gorm:"size:200"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (speciesRow) TableName() string { return "species" }

func toSpeciesRow(s species.Species) speciesRow {
	return speciesRow{ID: s.ID, CommonName: s.CommonName, ScientificName: s.ScientificName, Habitat: s.Habitat, Diet: s.Diet}
}

func (r speciesRow) entity() species.Species {
	return species.Species{ID: r.ID, CommonName: r.CommonName, ScientificName: r.ScientificName, Habitat: r.Habitat, Diet: r.Diet}
}

type animalRow struct {
	ID           string    `gorm:"primaryKey;size:36"`
	Name         string    `gorm:"size:200;not null"`
	Age          int       `gorm:"not null"`
	IsEndangered bool      `gorm:"not null"`
	SpeciesID    string    `gorm:"size:36;not null;index"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`

	Species *speciesRow `gorm:"foreignKey:SpeciesID;constraint:OnDelete:RESTRICT"`
}

func (animalRow) TableName() string { return "zoo_animals" }

func toAnimalRow(a animals.ZooAnimal) animalRow {
	return animalRow{ID: a.ID, Name: a.Name, Age: a.Age, IsEndangered: a.IsEndangered, SpeciesID: a.SpeciesID}
}

func (r animalRow) entity() animals.ZooAnimal {
	return animals.ZooAnimal{ID: r.ID, Name: r.Name, Age: r.Age, IsEndangered: r.IsEndangered, SpeciesID: r.SpeciesID}
}

// assignmentRow: PK compuesta (employee_id, zoo_animal_id).
type assignmentRow struct {
	EmployeeID  string    `gorm:"primaryKey;size:36"`
	ZooAnimalID string    `gorm:"primaryKey;size:36;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`

	Employee  *employeeRow `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	ZooAnimal *animalRow   `gorm:"foreignKey:ZooAnimalID;constraint:OnDelete:CASCADE"`
}

func (assignmentRow) TableName() string { return "employee_zoo_animals" }

func toAssignmentRow(a assignments.Assignment) assignmentRow {
	return assignmentRow{EmployeeID: a.EmployeeID, ZooAnimalID: a.ZooAnimalID}
}

func (r assignmentRow) entity() assignments.Assignment {
	return assignments.Assignment{EmployeeID: r.EmployeeID, ZooAnimalID: r.ZooAnimalID}
}

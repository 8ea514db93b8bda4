package assignments_test

import (
	"context"
	"errors"
	"testing"

	"zoo-management/internal/adapters/storage/memory"
	"zoo-management/internal/domain/animals"
	"zoo-management/internal/domain/apperr"
	"zoo-management/internal/domain/assignments"
	"zoo-management/internal/domain/authz"
	"zoo-management/internal/domain/employees"
	"zoo-management/internal/domain/professions"
	"zoo-management/internal/domain/species"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	admin     = authz.Principal{ID: "u-admin", Name: "Admin", Role: authz.RoleAdmin}
	personnel = authz.Principal{ID: "u-staff", Name: "Staff", Role: authz.RolePersonnel}
	client    = authz.Principal{ID: "u-client", Name: "Client", Role: authz.RoleClient}
)

type fixture struct {
	svc        *assignments.Service
	employeeID string
	animalID   string
}

func setup(t *testing.T) fixture {
	t.Helper()
	st := memory.NewStore()
	ctx := context.Background()

	profID, err := professions.NewService(st.Professions()).Add(ctx, admin, professions.AddInput{Name: "Keeper"})
	require.NoError(t, err)
	empID, err := employees.NewService(st.Employees(), st.Professions(), nil).
		Add(ctx, admin, employees.AddInput{FullName: "Jane Doe", Age: 30, ProfessionID: profID})
	require.NoError(t, err)
	spID, err := species.NewService(st.Species(), st.Animals(), nil).
		Add(ctx, admin, species.AddInput{CommonName: "Lion", ScientificName: "Panthera leo"})
	require.NoError(t, err)
	aniID, err := animals.NewService(st.Animals(), st.Species(), nil).
		Add(ctx, admin, animals.AddInput{Name: "Simba", Age: 4, SpeciesID: spID})
	require.NoError(t, err)

	svc := assignments.NewService(st.Assignments(), assignments.Lookups{
		Employees:   st.Employees(),
		Professions: st.Professions(),
		Animals:     st.Animals(),
		Species:     st.Species(),
	})
	return fixture{svc: svc, employeeID: empID, animalID: aniID}
}

func TestAssignments_AddTwiceIsConflict(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	in := assignments.AddInput{EmployeeID: f.employeeID, ZooAnimalID: f.animalID}

	require.NoError(t, f.svc.Add(ctx, personnel, in))
	err := f.svc.Add(ctx, personnel, in)
	assert.True(t, errors.Is(err, apperr.ErrConflict))

	got, err := f.svc.GetByIDs(ctx, client, f.employeeID, f.animalID)
	require.NoError(t, err)
	assert.Equal(t, assignments.DTO{
		EmployeeID:     f.employeeID,
		EmployeeName:   "Jane Doe",
		ProfessionName: "Keeper",
		ZooAnimalID:    f.animalID,
		AnimalName:     "Simba",
		SpeciesName:    "Lion",
	}, got)

	labels, err := f.svc.AnimalLabels(ctx, f.employeeID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Simba (Lion)"}, labels)
}

func TestAssignments_MissingEndsAreNotFound(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	err := f.svc.Add(ctx, admin, assignments.AddInput{EmployeeID: "nope", ZooAnimalID: f.animalID})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	err = f.svc.Add(ctx, admin, assignments.AddInput{EmployeeID: f.employeeID, ZooAnimalID: "nope"})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestAssignments_DeleteExactPair(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	require.NoError(t, f.svc.Add(ctx, admin, assignments.AddInput{EmployeeID: f.employeeID, ZooAnimalID: f.animalID}))

	assert.True(t, errors.Is(f.svc.Delete(ctx, personnel, f.employeeID, f.animalID), apperr.ErrForbidden))
	assert.True(t, errors.Is(f.svc.Delete(ctx, admin, f.animalID, f.employeeID), apperr.ErrNotFound))
	require.NoError(t, f.svc.Delete(ctx, admin, f.employeeID, f.animalID))

	all, err := f.svc.GetAll(ctx, client)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestAssignments_ClientCannotAdd(t *testing.T) {
	f := setup(t)
	err := f.svc.Add(context.Background(), client, assignments.AddInput{EmployeeID: f.employeeID, ZooAnimalID: f.animalID})
	assert.True(t, errors.Is(err, apperr.ErrForbidden))
}

package profiles_test

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
	"zoo-management/internal/domain/profiles"
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
	svc       *profiles.Service
	employees *employees.Service
	links     *assignments.Service
	profID    string
	animalID  string
}

func setup(t *testing.T) fixture {
	t.Helper()
	st := memory.NewStore()
	ctx := context.Background()

	profID, err := professions.NewService(st.Professions()).Add(ctx, admin, professions.AddInput{Name: "Keeper"})
	require.NoError(t, err)
	spID, err := species.NewService(st.Species(), st.Animals(), nil).
		Add(ctx, admin, species.AddInput{CommonName: "Lion", ScientificName: "Panthera leo"})
	require.NoError(t, err)
	aniID, err := animals.NewService(st.Animals(), st.Species(), nil).
		Add(ctx, admin, animals.AddInput{Name: "Simba", Age: 4, SpeciesID: spID})
	require.NoError(t, err)

	links := assignments.NewService(st.Assignments(), assignments.Lookups{
		Employees: st.Employees(), Professions: st.Professions(), Animals: st.Animals(), Species: st.Species(),
	})
	return fixture{
		svc:       profiles.NewService(st.Profiles(), st.Employees(), st.Professions(), links),
		employees: employees.NewService(st.Employees(), st.Professions(), nil),
		links:     links,
		profID:    profID,
		animalID:  aniID,
	}
}

func (f fixture) newEmployee(t *testing.T, name string) string {
	t.Helper()
	id, err := f.employees.Add(context.Background(), admin, employees.AddInput{FullName: name, Age: 30, ProfessionID: f.profID})
	require.NoError(t, err)
	return id
}

func TestProfiles_AddGetWithAnimals(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	empID := f.newEmployee(t, "Jane Doe")
	require.NoError(t, f.links.Add(ctx, admin, assignments.AddInput{EmployeeID: empID, ZooAnimalID: f.animalID}))

	id, err := f.svc.Add(ctx, personnel, profiles.AddInput{Email: "jane@zoo.test", PhoneNumber: "+40 700", EmployeeID: empID})
	require.NoError(t, err)

	got, err := f.svc.GetByID(ctx, client, id)
	require.NoError(t, err)
	assert.Equal(t, profiles.DTO{
		ID:             id,
		Email:          "jane@zoo.test",
		PhoneNumber:    "+40 700",
		EmployeeID:     empID,
		EmployeeName:   "Jane Doe",
		ProfessionName: "Keeper",
		ZooAnimals:     []string{"Simba (Lion)"},
	}, got)
}

func TestProfiles_EmailAndPhoneUnique(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	e1 := f.newEmployee(t, "Jane Doe")
	e2 := f.newEmployee(t, "John Roe")

	_, err := f.svc.Add(ctx, admin, profiles.AddInput{Email: "jane@zoo.test", PhoneNumber: "111", EmployeeID: e1})
	require.NoError(t, err)

	_, err = f.svc.Add(ctx, admin, profiles.AddInput{Email: "JANE@zoo.test", PhoneNumber: "222", EmployeeID: e2})
	assert.True(t, errors.Is(err, apperr.ErrConflict))

	_, err = f.svc.Add(ctx, admin, profiles.AddInput{Email: "john@zoo.test", PhoneNumber: "111", EmployeeID: e2})
	assert.True(t, errors.Is(err, apperr.ErrConflict))

	_, err = f.svc.Add(ctx, admin, profiles.AddInput{Email: "john@zoo.test", PhoneNumber: "222", EmployeeID: e2})
	assert.NoError(t, err)
}

func TestProfiles_OnePerEmployee(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	e1 := f.newEmployee(t, "Jane Doe")

	_, err := f.svc.Add(ctx, admin, profiles.AddInput{Email: "a@zoo.test", PhoneNumber: "1", EmployeeID: e1})
	require.NoError(t, err)
	_, err = f.svc.Add(ctx, admin, profiles.AddInput{Email: "b@zoo.test", PhoneNumber: "2", EmployeeID: e1})
	assert.True(t, errors.Is(err, apperr.ErrConflict))
}

func TestProfiles_UpdateExcludesSelfAndCascade(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	e1 := f.newEmployee(t, "Jane Doe")

	id, err := f.svc.Add(ctx, admin, profiles.AddInput{Email: "a@zoo.test", PhoneNumber: "1", EmployeeID: e1})
	require.NoError(t, err)
	require.NoError(t, f.svc.Update(ctx, personnel, id, profiles.UpdateInput{Email: "A@zoo.test", PhoneNumber: "1"}))

	// Borrar el empleado borra el perfil.
	require.NoError(t, f.employees.Delete(ctx, admin, e1))
	_, err = f.svc.GetByID(ctx, admin, id)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
	assert.True(t, errors.Is(f.svc.Delete(ctx, admin, id), apperr.ErrNotFound))
}

func TestProfiles_UpdateConflictMessages(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	e1 := f.newEmployee(t, "Jane Doe")
	e2 := f.newEmployee(t, "John Roe")

	_, err := f.svc.Add(ctx, admin, profiles.AddInput{Email: "jane@zoo.test", PhoneNumber: "111", EmployeeID: e1})
	require.NoError(t, err)
	id, err := f.svc.Add(ctx, admin, profiles.AddInput{Email: "john@zoo.test", PhoneNumber: "222", EmployeeID: e2})
	require.NoError(t, err)

	cases := []struct {
		name    string
		in      profiles.UpdateInput
		wantMsg string
	}{
		{name: "email taken", in: profiles.UpdateInput{Email: "Jane@zoo.test", PhoneNumber: "222"}, wantMsg: "Another profile with this email already exists!"},
		{name: "phone taken", in: profiles.UpdateInput{Email: "john@zoo.test", PhoneNumber: "111"}, wantMsg: "Another profile with this phone number already exists!"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := f.svc.Update(ctx, admin, id, tc.in)
			require.True(t, errors.Is(err, apperr.ErrConflict))
			e, ok := apperr.As(err)
			require.True(t, ok)
			assert.Equal(t, tc.wantMsg, e.Message)
			assert.Equal(t, apperr.CodeCannotUpdate, e.Code)
		})
	}

	_, err = f.svc.Add(ctx, admin, profiles.AddInput{Email: "JOHN@zoo.test", PhoneNumber: "333", EmployeeID: f.newEmployee(t, "Ann Poe")})
	e, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, "Email already in use!", e.Message)
}

func TestProfiles_InvalidEmailIsBadRequest(t *testing.T) {
	f := setup(t)
	e1 := f.newEmployee(t, "Jane Doe")

	_, err := f.svc.Add(context.Background(), admin, profiles.AddInput{Email: "jane", PhoneNumber: "111", EmployeeID: e1})
	require.True(t, errors.Is(err, apperr.ErrBadRequest))
	e, _ := apperr.As(err)
	assert.Equal(t, "a valid email is required", e.Message)
}

func TestProfiles_RoleMatrix(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	e1 := f.newEmployee(t, "Jane Doe")
	in := profiles.AddInput{Email: "jane@zoo.test", PhoneNumber: "111", EmployeeID: e1}

	_, err := f.svc.Add(ctx, client, in)
	assert.True(t, errors.Is(err, apperr.ErrForbidden))

	id, err := f.svc.Add(ctx, personnel, in)
	require.NoError(t, err)

	upd := profiles.UpdateInput{Email: "jane.doe@zoo.test", PhoneNumber: "112"}
	assert.True(t, errors.Is(f.svc.Update(ctx, client, id, upd), apperr.ErrForbidden))
	require.NoError(t, f.svc.Update(ctx, personnel, id, upd))

	got, err := f.svc.GetByID(ctx, client, id)
	require.NoError(t, err)
	assert.Equal(t, "jane.doe@zoo.test", got.Email)
	assert.Equal(t, "112", got.PhoneNumber)

	assert.True(t, errors.Is(f.svc.Delete(ctx, client, id), apperr.ErrForbidden))
	assert.True(t, errors.Is(f.svc.Delete(ctx, personnel, id), apperr.ErrForbidden))
	require.NoError(t, f.svc.Delete(ctx, admin, id))

	err = f.svc.Delete(ctx, admin, id)
	require.True(t, errors.Is(err, apperr.ErrNotFound))
	e, _ := apperr.As(err)
	assert.Equal(t, apperr.CodeEntityNotFound, e.Code)
}

package professions_test

import (
	"context"
	"errors"
	"testing"

	"zoo-management/internal/adapters/storage/memory"
	"zoo-management/internal/domain/apperr"
	"zoo-management/internal/domain/authz"
	"zoo-management/internal/domain/employees"
	"zoo-management/internal/domain/professions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	admin     = authz.Principal{ID: "u-admin", Name: "Admin", Role: authz.RoleAdmin}
	personnel = authz.Principal{ID: "u-staff", Name: "Staff", Role: authz.RolePersonnel}
	client    = authz.Principal{ID: "u-client", Name: "Client", Role: authz.RoleClient}
)

func TestProfessions_CRUD(t *testing.T) {
	st := memory.NewStore()
	svc := professions.NewService(st.Professions())
	ctx := context.Background()

	id, err := svc.Add(ctx, personnel, professions.AddInput{Name: "Keeper"})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, client, id)
	require.NoError(t, err)
	assert.Equal(t, professions.DTO{ID: id, Name: "Keeper"}, got)

	_, err = svc.Add(ctx, admin, professions.AddInput{Name: "KEEPER"})
	assert.True(t, errors.Is(err, apperr.ErrConflict))

	_, err = svc.Add(ctx, admin, professions.AddInput{Name: " "})
	assert.True(t, errors.Is(err, apperr.ErrBadRequest))

	require.NoError(t, svc.Update(ctx, personnel, id, professions.UpdateInput{Name: "keeper"}))

	vet, err := svc.Add(ctx, admin, professions.AddInput{Name: "Vet"})
	require.NoError(t, err)
	err = svc.Update(ctx, admin, vet, professions.UpdateInput{Name: "KEEPER"})
	require.True(t, errors.Is(err, apperr.ErrConflict))
	e, _ := apperr.As(err)
	assert.Equal(t, "Another profession with this name already exists!", e.Message)
	require.NoError(t, svc.Delete(ctx, admin, vet))

	all, err := svc.GetAll(ctx, client)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "keeper", all[0].Name)
}

func TestProfessions_DeleteCascadesEmployees(t *testing.T) {
	st := memory.NewStore()
	svc := professions.NewService(st.Professions())
	emps := employees.NewService(st.Employees(), st.Professions(), nil)
	ctx := context.Background()

	pid, err := svc.Add(ctx, admin, professions.AddInput{Name: "Vet"})
	require.NoError(t, err)
	eid, err := emps.Add(ctx, admin, employees.AddInput{FullName: "Jane Doe", Age: 30, ProfessionID: pid})
	require.NoError(t, err)

	assert.True(t, errors.Is(svc.Delete(ctx, personnel, pid), apperr.ErrForbidden))
	require.NoError(t, svc.Delete(ctx, admin, pid))

	_, err = emps.GetByID(ctx, admin, eid)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	assert.True(t, errors.Is(svc.Delete(ctx, admin, pid), apperr.ErrNotFound))
}

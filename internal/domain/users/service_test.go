package users_test

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"zoo-management/internal/adapters/auth/jwt"
	"zoo-management/internal/adapters/auth/revocation"
	"zoo-management/internal/adapters/storage/memory"
	"zoo-management/internal/domain/apperr"
	"zoo-management/internal/domain/authz"
	"zoo-management/internal/domain/notifications"
	"zoo-management/internal/domain/users"
	"zoo-management/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type mailRecorder struct {
	mu  sync.Mutex
	got map[string]notifications.Template
}

func (m *mailRecorder) SendTo(to string, t notifications.Template) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.got == nil {
		m.got = map[string]notifications.Template{}
	}
	m.got[to] = t
}

type harness struct {
	svc    *users.Service
	tokens *jwt.Issuer
	mail   *mailRecorder
	admin  authz.Principal
}

func newHarness(t *testing.T) harness {
	t.Helper()
	st := memory.NewStore()
	rev := revocation.NewMemory()
	iss, err := jwt.New(jwt.Config{Secret: "test-secret"}, rev)
	require.NoError(t, err)
	mail := &mailRecorder{}

	svc := users.NewService(users.Deps{
		Repo:        st.Users(),
		Tokens:      iss,
		Revocations: rev,
		Mailer:      mail,
		BcryptCost:  bcrypt.MinCost,
	})

	ctx := context.Background()
	seeded, err := svc.SeedAdmin(ctx, users.AdminSeed{Email: "admin@zoo.test", Password: "admin-pass"})
	require.NoError(t, err)
	require.True(t, seeded)

	res, err := svc.Login(ctx, users.LoginInput{Email: "admin@zoo.test", Password: "admin-pass"})
	require.NoError(t, err)
	p, err := svc.Principal(ctx, res.User.ID)
	require.NoError(t, err)

	return harness{svc: svc, tokens: iss, mail: mail, admin: p}
}

func (h harness) addUser(t *testing.T, name, email string, role authz.Role) authz.Principal {
	t.Helper()
	ctx := context.Background()
	id, err := h.svc.Add(ctx, &h.admin, users.AddInput{Name: name, Email: email, Password: "pw-" + name, Role: string(role)})
	require.NoError(t, err)
	p, err := h.svc.Principal(ctx, id)
	require.NoError(t, err)
	return p
}

func TestUsers_SeedIsIdempotent(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	seeded, err := h.svc.SeedAdmin(ctx, users.AdminSeed{Email: "other@zoo.test", Password: "x"})
	require.NoError(t, err)
	assert.False(t, seeded)

	n, err := h.svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, authz.RoleAdmin, h.admin.Role)
	assert.Equal(t, "Admin", h.admin.Name)
}

func TestUsers_Login(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.svc.Login(ctx, users.LoginInput{Email: "admin@zoo.test", Password: "wrong"})
	assert.True(t, errors.Is(err, apperr.ErrWrongPassword))
	e, _ := apperr.As(err)
	assert.Equal(t, 400, e.Status)

	_, err = h.svc.Login(ctx, users.LoginInput{Email: "ghost@zoo.test", Password: "x"})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
	e, _ = apperr.As(err)
	assert.Equal(t, apperr.CodeUserNotFound, e.Code)

	res, err := h.svc.Login(ctx, users.LoginInput{Email: "admin@zoo.test", Password: "admin-pass"})
	require.NoError(t, err)
	claims, err := h.tokens.Verify(ctx, res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.UserID)
}

func TestUsers_LogoutRevokesToken(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	res, err := h.svc.Login(ctx, users.LoginInput{Email: "admin@zoo.test", Password: "admin-pass"})
	require.NoError(t, err)
	claims, err := h.tokens.Verify(ctx, res.Token)
	require.NoError(t, err)

	require.NoError(t, h.svc.Logout(ctx, claims))
	_, err = h.tokens.Verify(ctx, res.Token)
	assert.Error(t, err)
}

func TestUsers_AddRules(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	staff := h.addUser(t, "Staff", "staff@zoo.test", authz.RolePersonnel)

	assert.Equal(t, "Welcome!", h.mail.got["staff@zoo.test"].Subject)

	_, err := h.svc.Add(ctx, &staff, users.AddInput{Name: "X", Email: "x@zoo.test", Password: "x"})
	assert.True(t, errors.Is(err, apperr.ErrForbidden))

	_, err = h.svc.Add(ctx, &h.admin, users.AddInput{Name: "Dup", Email: "staff@zoo.test", Password: "x"})
	assert.True(t, errors.Is(err, apperr.ErrUserAlreadyExists))
	e, _ := apperr.As(err)
	assert.Equal(t, 409, e.Status)

	// Bootstrap: sin caller no hay chequeo de rol.
	id, err := h.svc.Add(ctx, nil, users.AddInput{Name: "Boot", Email: "boot@zoo.test", Password: "x"})
	require.NoError(t, err)
	p, err := h.svc.Principal(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, authz.RoleClient, p.Role)
}

func TestUsers_ReadAndPage(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	staff := h.addUser(t, "Staff", "staff@zoo.test", authz.RolePersonnel)
	c1 := h.addUser(t, "Carla", "carla@zoo.test", authz.RoleClient)
	c2 := h.addUser(t, "Dan", "dan@zoo.test", authz.RoleClient)

	_, err := h.svc.GetByID(ctx, c1, c1.ID)
	assert.NoError(t, err)
	_, err = h.svc.GetByID(ctx, c1, c2.ID)
	assert.True(t, errors.Is(err, apperr.ErrForbidden))
	_, err = h.svc.GetByID(ctx, staff, c2.ID)
	assert.NoError(t, err)

	_, err = h.svc.GetPage(ctx, c1, users.PageQuery{})
	assert.True(t, errors.Is(err, apperr.ErrForbidden))

	page, err := h.svc.GetPage(ctx, staff, users.PageQuery{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 4, page.TotalCount)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 2, page.PageSize)

	page, err = h.svc.GetPage(ctx, h.admin, users.PageQuery{Search: "CARLA"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, c1.ID, page.Items[0].ID)
	assert.Equal(t, users.DefaultPageSize, page.PageSize)
}

func TestUsers_UpdateAndDelete(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	c1 := h.addUser(t, "Carla", "carla@zoo.test", authz.RoleClient)
	c2 := h.addUser(t, "Dan", "dan@zoo.test", authz.RoleClient)

	name := "Carla B"
	pw := "new-pass"
	require.NoError(t, h.svc.Update(ctx, c1, c1.ID, users.UpdateInput{Name: &name, Password: &pw}))
	_, err := h.svc.Login(ctx, users.LoginInput{Email: "carla@zoo.test", Password: "new-pass"})
	assert.NoError(t, err)

	assert.True(t, errors.Is(h.svc.Update(ctx, c1, c2.ID, users.UpdateInput{Name: &name}), apperr.ErrForbidden))

	role := "Personnel"
	assert.True(t, errors.Is(h.svc.Update(ctx, c1, c1.ID, users.UpdateInput{Role: &role}), apperr.ErrForbidden))
	require.NoError(t, h.svc.Update(ctx, h.admin, c1.ID, users.UpdateInput{Role: &role}))
	p, err := h.svc.Principal(ctx, c1.ID)
	require.NoError(t, err)
	assert.Equal(t, authz.RolePersonnel, p.Role)

	assert.True(t, errors.Is(h.svc.Delete(ctx, c1, c2.ID), apperr.ErrForbidden))
	require.NoError(t, h.svc.Delete(ctx, c2, c2.ID))
	assert.True(t, errors.Is(h.svc.Delete(ctx, h.admin, c2.ID), apperr.ErrNotFound))

	_, err = h.svc.Principal(ctx, c2.ID)
	assert.True(t, errors.Is(err, apperr.ErrUnauthorized))
}

func TestUsers_HugePageIsEmpty(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.addUser(t, "Carla", "carla@zoo.test", authz.RoleClient)

	page, err := h.svc.GetPage(ctx, h.admin, users.PageQuery{Page: math.MaxInt, PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 2, page.TotalCount)
	assert.Equal(t, math.MaxInt32/10+1, page.Page)
}

func TestUsers_AddValidatesInput(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	cases := []struct {
		in      users.AddInput
		wantMsg string
	}{
		{in: users.AddInput{Email: "x@zoo.test", Password: "x"}, wantMsg: "name is required"},
		{in: users.AddInput{Name: "X", Email: "not-an-email", Password: "x"}, wantMsg: "a valid email is required"},
		{in: users.AddInput{Name: "X", Email: "x@zoo.test"}, wantMsg: "password is required"},
	}
	for _, tc := range cases {
		_, err := h.svc.Add(ctx, &h.admin, tc.in)
		require.True(t, errors.Is(err, apperr.ErrBadRequest), tc.wantMsg)
		e, _ := apperr.As(err)
		assert.Equal(t, tc.wantMsg, e.Message)
	}
}

// warnRecorder guarda los mensajes Warn.
type warnRecorder struct {
	mu    sync.Mutex
	warns []string
}

func (l *warnRecorder) With(map[string]any) logger.Logger { return l }
func (l *warnRecorder) Debug(string, map[string]any)      {}
func (l *warnRecorder) Info(string, map[string]any)       {}
func (l *warnRecorder) Error(string, map[string]any)      {}
func (l *warnRecorder) Warn(msg string, _ map[string]any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, msg)
}

func TestUsers_SeedWarnsOnBuiltinPassword(t *testing.T) {
	ctx := context.Background()

	for _, tc := range []struct {
		name     string
		password string
		wantWarn bool
	}{
		{name: "built-in", password: "", wantWarn: true},
		{name: "configured", password: "s3cret!", wantWarn: false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			log := &warnRecorder{}
			svc := users.NewService(users.Deps{Repo: memory.NewStore().Users(), Log: log, BcryptCost: bcrypt.MinCost})

			seeded, err := svc.SeedAdmin(ctx, users.AdminSeed{Password: tc.password})
			require.NoError(t, err)
			require.True(t, seeded)

			if tc.wantWarn {
				assert.Equal(t, []string{"admin seeded with the built-in password; set SEED_ADMIN_PASSWORD"}, log.warns)
			} else {
				assert.Empty(t, log.warns)
			}
		})
	}
}

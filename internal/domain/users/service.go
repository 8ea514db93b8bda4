package users

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"zoo-management/internal/domain/apperr"
	"zoo-management/internal/domain/authz"
	"zoo-management/internal/domain/crud"
	"zoo-management/internal/domain/notifications"
	"zoo-management/internal/domain/validation"
	"zoo-management/internal/platform/logger"
	"zoo-management/internal/ports/auth"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultTokenTTL = 7 * 24 * time.Hour
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Mailer envía a una dirección concreta (bienvenida).
type Mailer interface {
	SendTo(to string, t notifications.Template)
}

type Deps struct {
	Repo        Repository
	Tokens      auth.TokenIssuer
	Revocations auth.Revocations // opcional: sin él, logout no invalida nada
	Mailer      Mailer           // opcional
	Log         logger.Logger
	TokenTTL    time.Duration
	BcryptCost  int
}

type Service struct {
	repo        Repository
	tokens      auth.TokenIssuer
	revocations auth.Revocations
	mailer      Mailer
	log         logger.Logger
	ttl         time.Duration
	cost        int
	now         func() time.Time
}

func NewService(d Deps) *Service {
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	if d.TokenTTL <= 0 {
		d.TokenTTL = DefaultTokenTTL
	}
	if d.BcryptCost == 0 {
		d.BcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:        d.Repo,
		tokens:      d.Tokens,
		revocations: d.Revocations,
		mailer:      d.Mailer,
		log:         d.Log,
		ttl:         d.TokenTTL,
		cost:        d.BcryptCost,
		now:         time.Now,
	}
}

func userNotFound() error {
	return apperr.NotFound(apperr.CodeUserNotFound, "User not found!")
}

func (s *Service) GetByID(ctx context.Context, caller authz.Principal, id string) (DTO, error) {
	if !authz.CanPerform(authz.UserAccounts, caller.Role, authz.OpRead, caller.ID == id) {
		if caller.Role == authz.RoleClient {
			return DTO{}, apperr.Forbidden(apperr.CodeCannotRead, "Clients can only view their own information!")
		}
		return DTO{}, apperr.Forbidden(apperr.CodeCannotRead, "You are not allowed to view this user!")
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, crud.ErrNotFound) {
			return DTO{}, userNotFound()
		}
		return DTO{}, err
	}
	return ToDTO(u), nil
}

func (s *Service) GetPage(ctx context.Context, caller authz.Principal, q PageQuery) (Page[DTO], error) {
	s.log.Info("users page requested", map[string]any{
		"email": caller.Email,
		"role":  string(caller.Role),
	})

	if !authz.CanPerform(authz.UserAccounts, caller.Role, authz.OpList, false) {
		return Page[DTO]{}, apperr.Forbidden(apperr.CodeCannotRead, "Only admin and personnel can view users!")
	}

	q = normalizePage(q)
	items, total, err := s.repo.Page(ctx, q)
	if err != nil {
		return Page[DTO]{}, err
	}

	out := make([]DTO, 0, len(items))
	for _, u := range items {
		out = append(out, ToDTO(u))
	}
	return Page[DTO]{Items: out, Page: q.Page, PageSize: q.PageSize, TotalCount: total}, nil
}

func normalizePage(q PageQuery) PageQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	// (Page-1)*PageSize no puede pasar de MaxInt32.
	if maxPage := math.MaxInt32/q.PageSize + 1; q.Page > maxPage {
		q.Page = maxPage
	}
	q.Search = strings.TrimSpace(q.Search)
	return q
}

// Add crea un usuario. caller == nil es el camino de bootstrap y no pasa
// por autorización.
func (s *Service) Add(ctx context.Context, caller *authz.Principal, in AddInput) (string, error) {
	if caller != nil && !authz.CanPerform(authz.UserAccounts, caller.Role, authz.OpAdd, false) {
		return "", apperr.Forbidden(apperr.CodeCannotAdd, "Only the admin can add users!")
	}

	u, err := s.newUser(in)
	if err != nil {
		return "", err
	}

	if _, err := s.repo.GetByEmail(ctx, u.Email); err == nil {
		return "", apperr.UserAlreadyExists("The user already exists!")
	} else if !errors.Is(err, crud.ErrNotFound) {
		return "", err
	}

	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, crud.ErrDuplicate) {
			return "", apperr.UserAlreadyExists("The user already exists!")
		}
		return "", err
	}

	if s.mailer != nil {
		s.mailer.SendTo(u.Email, notifications.UserWelcome(u.Name))
	}
	return u.ID, nil
}

func (s *Service) newUser(in AddInput) (User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if err := validation.Struct(in); err != nil {
		return User{}, err
	}

	role := authz.RoleClient
	if strings.TrimSpace(in.Role) != "" {
		r, ok := authz.ParseRole(in.Role)
		if !ok {
			return User{}, apperr.BadRequest("role must be Admin, Personnel or Client")
		}
		role = r
	}

	hash, err := s.hash(in.Password)
	if err != nil {
		return User{}, err
	}
	return User{
		ID:       uuid.NewString(),
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
		Role:     role,
	}, nil
}

func (s *Service) Update(ctx context.Context, caller authz.Principal, id string, in UpdateInput) error {
	if !authz.CanPerform(authz.UserAccounts, caller.Role, authz.OpUpdate, caller.ID == id) {
		return apperr.Forbidden(apperr.CodeCannotUpdate, "Only the admin or the user themselves can update this user!")
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, crud.ErrNotFound) {
			return userNotFound()
		}
		return err
	}

	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		u.Name = strings.TrimSpace(*in.Name)
	}
	if in.Password != nil && strings.TrimSpace(*in.Password) != "" {
		hash, err := s.hash(*in.Password)
		if err != nil {
			return err
		}
		u.Password = hash
	}
	if in.Role != nil {
		if caller.Role != authz.RoleAdmin {
			return apperr.Forbidden(apperr.CodeCannotUpdate, "Only the admin can change roles!")
		}
		r, ok := authz.ParseRole(*in.Role)
		if !ok {
			return apperr.BadRequest("role must be Admin, Personnel or Client")
		}
		u.Role = r
	}

	if err := s.repo.Update(ctx, u); err != nil {
		if errors.Is(err, crud.ErrNotFound) {
			return userNotFound()
		}
		return err
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, caller authz.Principal, id string) error {
	if !authz.CanPerform(authz.UserAccounts, caller.Role, authz.OpDelete, caller.ID == id) {
		return apperr.Forbidden(apperr.CodeCannotDelete, "Only the admin or the own user can delete the user!")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, crud.ErrNotFound) {
			return userNotFound()
		}
		return err
	}
	return nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (LoginResult, error) {
	email := strings.TrimSpace(in.Email)

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, crud.ErrNotFound) {
			s.log.Warn("login: user not found", map[string]any{"email": email})
			return LoginResult{}, userNotFound()
		}
		return LoginResult{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(in.Password)) != nil {
		s.log.Warn("login: wrong password", map[string]any{"email": email})
		return LoginResult{}, apperr.WrongPassword("Wrong password!")
	}

	token, err := s.tokens.Issue(ctx, auth.Subject{
		UserID: u.ID,
		Email:  u.Email,
		Name:   u.Name,
		Role:   string(u.Role),
	}, s.now().UTC(), s.ttl)
	if err != nil {
		return LoginResult{}, err
	}

	s.log.Info("login ok", map[string]any{"email": u.Email, "user_id": u.ID})
	return LoginResult{User: ToDTO(u), Token: token}, nil
}

// Logout revoca el token actual hasta su expiración.
func (s *Service) Logout(ctx context.Context, claims auth.Claims) error {
	if s.revocations == nil || strings.TrimSpace(claims.TokenID) == "" {
		return nil
	}
	exp := claims.ExpiresAt
	if exp.IsZero() {
		exp = s.now().Add(s.ttl)
	}
	return s.revocations.Revoke(ctx, claims.TokenID, exp)
}

// Principal carga la identidad del caller a partir del id del token.
// El rol sale de la base, no del token.
func (s *Service) Principal(ctx context.Context, userID string) (authz.Principal, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, crud.ErrNotFound) {
			return authz.Principal{}, apperr.Unauthorized("unknown user")
		}
		return authz.Principal{}, err
	}
	return authz.Principal{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}, nil
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func (s *Service) hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

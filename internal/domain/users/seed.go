package users

import (
	"context"
	"strings"

	"zoo-management/internal/domain/authz"
)

// AdminSeed es la cuenta que se crea si la tabla de usuarios está vacía.
type AdminSeed struct {
	Name     string
	Email    string
	Password string
}

func (a AdminSeed) withDefaults() AdminSeed {
	if strings.TrimSpace(a.Name) == "" {
		a.Name = "Admin"
	}
	if strings.TrimSpace(a.Email) == "" {
		a.Email = "admin@example.com"
	}
	if a.Password == "" {
		a.Password = "Admin123!"
	}
	return a
}

// SeedAdmin es idempotente: solo actúa sobre una base sin usuarios.
// No manda correo de bienvenida.
func (s *Service) SeedAdmin(ctx context.Context, seed AdminSeed) (bool, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		s.log.Debug("seed skipped: users already present", map[string]any{"count": n})
		return false, nil
	}

	builtinPassword := seed.Password == ""
	seed = seed.withDefaults()
	u, err := s.newUser(AddInput{
		Name:     seed.Name,
		Email:    seed.Email,
		Password: seed.Password,
		Role:     string(authz.RoleAdmin),
	})
	if err != nil {
		return false, err
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return false, err
	}

	s.log.Info("admin account seeded", map[string]any{"email": u.Email})
	if builtinPassword {
		s.log.Warn("admin seeded with the built-in password; set SEED_ADMIN_PASSWORD", map[string]any{"email": u.Email})
	}
	return true, nil
}

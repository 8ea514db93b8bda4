package router

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"zoo-management/internal/adapters/auth/jwt"
	"zoo-management/internal/adapters/auth/revocation"
	mem "zoo-management/internal/adapters/storage/memory"
	pg "zoo-management/internal/adapters/storage/postgres"
	"zoo-management/internal/domain/animals"
	"zoo-management/internal/domain/assignments"
	"zoo-management/internal/domain/employees"
	"zoo-management/internal/domain/notifications"
	"zoo-management/internal/domain/professions"
	"zoo-management/internal/domain/profiles"
	"zoo-management/internal/domain/species"
	"zoo-management/internal/domain/users"
	"zoo-management/internal/middleware"
	"zoo-management/internal/platform/logger"
	"zoo-management/internal/ports/auth"
	"zoo-management/internal/ports/notify"

	_ "zoo-management/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	httpSwagger "github.com/swaggo/http-swagger"
	"gorm.io/gorm"
)

// Tokens emite y verifica tokens (adapters/auth/jwt).
type Tokens interface {
	auth.TokenIssuer
	auth.AuthVerifier
}

type Options struct {
	Logger logger.Logger

	// Opcional: si viene, usa Postgres (gorm). Si no, in-memory.
	DB *gorm.DB

	// Opcional: sin Tokens se crea un issuer con secreto aleatorio
	// (los tokens no sobreviven un reinicio).
	Tokens      Tokens
	Revocations auth.Revocations

	// Opcional: sin Notifier las notificaciones solo se descartan.
	Notifier notify.Notifier
	Notify   notifications.Config

	TokenTTL   time.Duration
	BcryptCost int

	// DevAuth habilita X-Debug-User-ID.
	DevAuth bool

	// Si no es nil, se crea el admin cuando no hay usuarios.
	AdminSeed *users.AdminSeed
}

// App es el handler armado más lo que cmd/api y los tests necesitan tocar.
type App struct {
	Handler       http.Handler
	Users         *users.Service
	Notifications *notifications.Dispatcher
}

// repos abstrae memory/postgres: ambos exponen los mismos accessors.
type repos struct {
	users       users.Repository
	professions professions.Repository
	employees   employees.Repository
	profiles    profiles.Repository
	species     species.Repository
	animals     animals.Repository
	counter     species.AnimalCounter
	assignments assignments.Repository
}

func memoryRepos(s *mem.Store) repos {
	a := s.Animals()
	return repos{
		users:       s.Users(),
		professions: s.Professions(),
		employees:   s.Employees(),
		profiles:    s.Profiles(),
		species:     s.Species(),
		animals:     a,
		counter:     a,
		assignments: s.Assignments(),
	}
}

func postgresRepos(s *pg.Store) repos {
	a := s.Animals()
	return repos{
		users:       s.Users(),
		professions: s.Professions(),
		employees:   s.Employees(),
		profiles:    s.Profiles(),
		species:     s.Species(),
		animals:     a,
		counter:     a,
		assignments: s.Assignments(),
	}
}

func New(ctx context.Context, opts Options) (*App, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	var rp repos
	if opts.DB != nil {
		rp = postgresRepos(pg.NewStore(opts.DB))
	} else {
		log.Warn("DB not configured: using in-memory storage", nil)
		rp = memoryRepos(mem.NewStore())
	}

	if opts.Revocations == nil {
		opts.Revocations = revocation.NewMemory()
	}
	if opts.Tokens == nil {
		iss, err := jwt.New(jwt.Config{Secret: uuid.NewString(), Issuer: "zoo-management"}, opts.Revocations)
		if err != nil {
			return nil, fmt.Errorf("router: token issuer: %w", err)
		}
		log.Warn("JWT secret not configured: using an ephemeral one", nil)
		opts.Tokens = iss
	}

	dispatcher := notifications.NewDispatcher(opts.Notifier, log, opts.Notify)

	// Services por módulo
	usersSvc := users.NewService(users.Deps{
		Repo:        rp.users,
		Tokens:      opts.Tokens,
		Revocations: opts.Revocations,
		Mailer:      dispatcher,
		Log:         log,
		TokenTTL:    opts.TokenTTL,
		BcryptCost:  opts.BcryptCost,
	})
	professionsSvc := professions.NewService(rp.professions)
	employeesSvc := employees.NewService(rp.employees, rp.professions, dispatcher)
	speciesSvc := species.NewService(rp.species, rp.counter, dispatcher)
	animalsSvc := animals.NewService(rp.animals, rp.species, dispatcher)
	assignmentsSvc := assignments.NewService(rp.assignments, assignments.Lookups{
		Employees:   rp.employees,
		Professions: rp.professions,
		Animals:     rp.animals,
		Species:     rp.species,
	})
	profilesSvc := profiles.NewService(rp.profiles, rp.employees, rp.professions, assignmentsSvc)

	if opts.AdminSeed != nil {
		if _, err := usersSvc.SeedAdmin(ctx, *opts.AdminSeed); err != nil {
			return nil, fmt.Errorf("router: seed admin: %w", err)
		}
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))

	r.Use(middleware.AuthContext(opts.Tokens, opts.DevAuth))
	r.Use(middleware.ResolvePrincipal(usersSvc))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Rutas por módulo
	users.RegisterRoutes(r, usersSvc)
	professions.RegisterRoutes(r, professionsSvc)
	employees.RegisterRoutes(r, employeesSvc)
	profiles.RegisterRoutes(r, profilesSvc)
	species.RegisterRoutes(r, speciesSvc)
	animals.RegisterRoutes(r, animalsSvc)
	assignments.RegisterRoutes(r, assignmentsSvc)

	return &App{
		Handler:       r,
		Users:         usersSvc,
		Notifications: dispatcher,
	}, nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"zoo-management/internal/adapters/auth/jwt"
	"zoo-management/internal/adapters/auth/revocation"
	"zoo-management/internal/adapters/notify/logonly"
	"zoo-management/internal/adapters/notify/relay"
	pg "zoo-management/internal/adapters/storage/postgres"
	"zoo-management/internal/config"
	"zoo-management/internal/domain/notifications"
	"zoo-management/internal/domain/users"
	"zoo-management/internal/platform/logger"
	"zoo-management/internal/ports/auth"
	"zoo-management/internal/ports/notify"
	"zoo-management/internal/router"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	log := logger.NewFromEnv()
	if zl, ok := log.(*logger.ZapLogger); ok {
		defer func() { _ = zl.Sync() }()
	}

	db, err := openDB(cfg, log)
	if err != nil {
		return err
	}
	if db != nil {
		defer func() { _ = pg.Close(db) }()
		if err := pg.Migrate(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	revocations, closeRevocations, err := openRevocations(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeRevocations()

	tokens, err := newTokens(cfg, revocations)
	if err != nil {
		return err
	}

	app, err := router.New(ctx, router.Options{
		Logger:      log,
		DB:          db,
		Tokens:      tokens,
		Revocations: revocations,
		Notifier:    newNotifier(cfg, log),
		Notify: notifications.Config{
			Recipient:   cfg.NotifyRecipient,
			SenderTitle: cfg.MailSender,
		},
		TokenTTL:  cfg.TokenTTL,
		DevAuth:   cfg.DevAuth,
		AdminSeed: adminSeed(cfg),
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      app.Handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "dev_auth": cfg.DevAuth})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", map[string]any{"error": err})
	}

	// Avisos en vuelo (cada uno ya tiene su propio timeout).
	app.Notifications.Wait()
	return nil
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	log := logger.NewFromEnv()

	db, err := requireDB(cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = pg.Close(db) }()

	if err := pg.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	log.Info("schema up to date", nil)
	return nil
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	log := logger.NewFromEnv()

	db, err := requireDB(cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = pg.Close(db) }()

	if err := pg.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	svc := users.NewService(users.Deps{
		Repo: pg.NewStore(db).Users(),
		Log:  log,
	})
	created, err := svc.SeedAdmin(cmd.Context(), *adminSeed(cfg))
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if !created {
		log.Info("seed: users already present, nothing to do", nil)
	}
	return nil
}

func openDB(cfg config.Config, log logger.Logger) (*gorm.DB, error) {
	if cfg.DatabaseDSN == "" {
		return nil, nil
	}
	db, err := pg.Open(cfg.DatabaseDSN, cfg.MaxOpenConns, log)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

func requireDB(cfg config.Config, log logger.Logger) (*gorm.DB, error) {
	if cfg.DatabaseDSN == "" {
		return nil, errors.New("DB_DSN is required")
	}
	return openDB(cfg, log)
}

// openRevocations usa Redis si hay REDIS_ADDR; si no, la lista vive en memoria.
func openRevocations(ctx context.Context, cfg config.Config, log logger.Logger) (auth.Revocations, func(), error) {
	if cfg.RedisAddr == "" {
		return revocation.NewMemory(), func() {}, nil
	}

	r := revocation.NewRedis(revocation.RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := r.Ping(pingCtx); err != nil {
		_ = r.Close()
		return nil, nil, fmt.Errorf("redis ping: %w", err)
	}
	log.Info("token revocations backed by redis", map[string]any{"addr": cfg.RedisAddr})
	return r, func() { _ = r.Close() }, nil
}

// newTokens devuelve nil sin JWT_SECRET: el router arma uno efímero.
func newTokens(cfg config.Config, revocations auth.Revocations) (router.Tokens, error) {
	if cfg.JWTSecret == "" {
		return nil, nil
	}
	iss, err := jwt.New(jwt.Config{
		Secret:   cfg.JWTSecret,
		Issuer:   cfg.JWTIssuer,
		Audience: cfg.JWTAudience,
	}, revocations)
	if err != nil {
		return nil, fmt.Errorf("jwt: %w", err)
	}
	return iss, nil
}

func newNotifier(cfg config.Config, log logger.Logger) notify.Notifier {
	if cfg.MailRelayURL == "" {
		return logonly.New(log)
	}
	c, err := relay.NewClient(relay.Config{
		BaseURL: cfg.MailRelayURL,
		APIKey:  cfg.MailRelayAPIKey,
		From:    cfg.MailFrom,
	})
	if err != nil {
		log.Warn("mail relay disabled", map[string]any{"error": err})
		return logonly.New(log)
	}
	return c
}

func adminSeed(cfg config.Config) *users.AdminSeed {
	return &users.AdminSeed{
		Name:     cfg.SeedAdminName,
		Email:    cfg.SeedAdminEmail,
		Password: cfg.SeedAdminPassword,
	}
}

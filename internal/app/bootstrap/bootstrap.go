package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	accesscontrol "formdesk/contexts/identity-access/access-control"
	accesspostgres "formdesk/contexts/identity-access/access-control/adapters/postgres"
	accessworkers "formdesk/contexts/identity-access/access-control/application/workers"
	submissionservice "formdesk/contexts/intake/submission-service"
	intakepostgres "formdesk/contexts/intake/submission-service/adapters/postgres"
	"formdesk/internal/platform/config"
	"formdesk/internal/platform/db"
	"formdesk/internal/platform/httpserver"
	"formdesk/internal/platform/identity"
	"formdesk/internal/platform/messaging"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres     *db.Postgres
	auditRelay   accessworkers.OutboxRelay
	relayEnabled bool
	pollInterval time.Duration
	logger       *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	accessRepo := accesspostgres.NewRepository(pg.DB, logger)
	accessModule := accesscontrol.NewModule(accesscontrol.Dependencies{
		Profiles:    accessRepo,
		Credentials: accessRepo,
		Audit:       accessRepo,
		Clock:       accesspostgres.SystemClock{},
		IDGen:       accesspostgres.UUIDGenerator{},
		Logger:      logger,
	})

	intakeRepo := intakepostgres.NewRepository(pg.DB, logger)
	intakeModule := submissionservice.NewModule(submissionservice.Dependencies{
		Authorizer: accessModule.SubmissionAccess,
		Repository: intakeRepo,
		Clock:      intakepostgres.SystemClock{},
		IDGen:      intakepostgres.UUIDGenerator{},
		Logger:     logger,
	})

	authenticator := identity.NewTokenAuthenticator([]byte(cfg.JWTSecret))
	server := httpserver.New(accessModule, intakeModule, authenticator, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	bus := messaging.NewBus(logger)
	accessRepo := accesspostgres.NewRepository(pg.DB, logger)
	return &WorkerApp{
		postgres: pg,
		auditRelay: accessworkers.OutboxRelay{
			Outbox:    accessRepo,
			Publisher: bus,
			Clock:     accesspostgres.SystemClock{},
			Topic:     "access.audit",
			BatchSize: 100,
			Logger:    logger,
		},
		relayEnabled: cfg.EnableAuditRelay,
		pollInterval: 2 * time.Second,
		logger:       logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", w.pollInterval.String(),
		"audit_relay", w.relayEnabled,
	)

	for {
		if w.relayEnabled {
			if err := w.auditRelay.RunOnce(ctx); err != nil {
				return err
			}
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}

package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"agentdesk/internal/agents"
	"agentdesk/internal/domain/certificate"
	"agentdesk/internal/domain/query"
	"agentdesk/internal/platform/completion"
	"agentdesk/internal/platform/config"
	"agentdesk/internal/platform/db"
	"agentdesk/internal/platform/metrics"
	certificatehandler "agentdesk/internal/transport/http/handlers/certificate"
	leavehandler "agentdesk/internal/transport/http/handlers/leave"
	queryhandler "agentdesk/internal/transport/http/handlers/query"
	systemhandler "agentdesk/internal/transport/http/handlers/system"
	"agentdesk/internal/transport/http/middleware"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	Config config.Config
	Pool   *pgxpool.Pool
	DB     *sql.DB
	Router http.Handler
	Logger *zap.Logger
}

// Deps are the collaborators the router is built from.
type Deps struct {
	Config    config.Config
	Logger    *zap.Logger
	DB        *sql.DB
	Pinger    systemhandler.Pinger
	Completer query.Completer
	Metrics   *metrics.Collector
}

// New validates cfg, connects to the database, applies migrations and wires
// the router. A missing completion credential is fatal here.
func New(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	client, err := completion.NewClient(completion.Config{
		APIKey:  cfg.MistralAPIKey,
		URL:     cfg.CompletionURL,
		Timeout: cfg.CompletionTimeout,
	})
	if err != nil {
		return nil, err
	}

	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("db connect failed: %w", err)
	}

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, db.Migrations()); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrations failed: %w", err)
		}
	}

	sqlDB := db.SQL(pool)

	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		collector = metrics.New()
	}

	router := NewRouter(Deps{
		Config:    cfg,
		Logger:    logger,
		DB:        sqlDB,
		Pinger:    pool,
		Completer: client,
		Metrics:   collector,
	})

	return &App{Config: cfg, Pool: pool, DB: sqlDB, Router: router, Logger: logger}, nil
}

func NewRouter(d Deps) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID(d.Logger))
	router.Use(middleware.Logger)
	router.Use(middleware.Metrics(d.Metrics))
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(d.Config.IsProduction()))
	router.Use(middleware.BodyLimit(d.Config.MaxBodyBytes))

	factory := agents.NewFactory(d.DB, d.Completer)

	systemhandler.NewHandler(d.Pinger, d.Metrics).RegisterRoutes(router)
	leavehandler.NewHandler(factory).RegisterRoutes(router)
	certificatehandler.NewHandler(factory, certificate.NewRenderer(d.Config.CertificateDir)).RegisterRoutes(router)
	queryhandler.NewHandler(factory).RegisterRoutes(router)

	return router
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.Config.Addr,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("agentdesk server listening", zap.String("addr", a.Config.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		a.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (a *App) Close() {
	if a.DB != nil {
		_ = a.DB.Close()
	}
	if a.Pool != nil {
		a.Pool.Close()
	}
}

package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"msa-backend/agreement/render"
	"msa-backend/internal/accounts"
	"msa-backend/internal/agreements"
	"msa-backend/internal/artifacts"
	"msa-backend/internal/convert"
	"msa-backend/internal/gateway"
	"msa-backend/internal/services/health"
	"msa-backend/internal/sessions"
	"msa-backend/internal/shared/config"
	"msa-backend/internal/shared/server"
	"msa-backend/internal/shared/storage/db"
	localstore "msa-backend/internal/shared/storage/object/local"
	"msa-backend/internal/shared/telemetry"
	"msa-backend/internal/signatures"
)

// App holds shared dependencies and the wired router.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	DB               *sql.DB
	SessionStore     sessions.Store
	Sessions         *sessions.Manager
	Registry         *artifacts.Registry
	Gateway          *gateway.Client
	Health           *health.Service
	AccountService   *accounts.Service
	AgreementService *agreements.Service
	AccountHandler   *accounts.Handler
	AgreementHandler *agreements.Handler

	closers []func() error
}

// Build prepares dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.SessionSecret) == "" {
		if !isDevLike(cfg.Env) {
			return nil, errors.New("SESSION_SECRET is required")
		}
		cfg.SessionSecret = uuid.NewString()
		telemetry.Warn("bootstrap.session_secret_generated", map[string]any{"env": cfg.Env})
	}
	ctx := context.Background()

	app := &App{Config: cfg, Health: health.NewService()}
	if err := buildSessionStore(ctx, app); err != nil {
		app.Close()
		return nil, err
	}
	app.Sessions = &sessions.Manager{
		Store:  app.SessionStore,
		Secret: cfg.SessionSecret,
		TTL:    cfg.SessionTTL,
		Secure: cfg.Env == "production",
	}

	buildServices(app)
	app.startJanitor(cfg.SweepInterval)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           app.Config,
		Sessions:         app.Sessions,
		Health:           app.Health,
		AccountHandler:   app.AccountHandler,
		AgreementHandler: app.AgreementHandler,
	})
	return app, nil
}

// Close stops the janitor and releases the database and Redis connections.
func (a *App) Close() {
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			telemetry.Warn("bootstrap.close_failed", map[string]any{"error": err})
		}
	}
	a.closers = nil
}

func buildSessionStore(ctx context.Context, app *App) error {
	cfg := app.Config
	switch cfg.SessionStore {
	case "postgres":
		sqlDB, err := buildDB(ctx, cfg)
		if err != nil {
			return err
		}
		if sqlDB != nil {
			app.DB = sqlDB
			app.closers = append(app.closers, sqlDB.Close)
			app.SessionStore = &sessions.PGStore{DB: sqlDB, TTL: cfg.SessionTTL}
			app.Health.Register("postgres", sqlDB.PingContext)
			telemetry.Info("bootstrap.session_store", map[string]any{"store": "postgres"})
			return nil
		}
	case "redis":
		store, err := buildRedis(ctx, cfg)
		if err != nil {
			return err
		}
		if store != nil {
			app.closers = append(app.closers, store.Close)
			app.SessionStore = store
			app.Health.Register("redis", store.Ping)
			telemetry.Info("bootstrap.session_store", map[string]any{"store": "redis"})
			return nil
		}
	}
	app.SessionStore = sessions.NewMemoryStore(cfg.SessionTTL)
	telemetry.Info("bootstrap.session_store", map[string]any{"store": "memory"})
	return nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.database_url_empty", map[string]any{"fallback": "memory"})
			return nil, nil
		}
		return nil, errors.New("DATABASE_URL is required for SESSION_STORE=postgres")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err == nil {
		err = db.RunMigrations(ctx, sqlDB)
		if err != nil {
			sqlDB.Close()
		}
	}
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.database_unavailable", map[string]any{"fallback": "memory", "error": err})
			return nil, nil
		}
		return nil, fmt.Errorf("postgres session store: %w", err)
	}
	return sqlDB, nil
}

func buildRedis(ctx context.Context, cfg config.Config) (*sessions.RedisStore, error) {
	if strings.TrimSpace(cfg.RedisURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.redis_url_empty", map[string]any{"fallback": "memory"})
			return nil, nil
		}
		return nil, errors.New("REDIS_URL is required for SESSION_STORE=redis")
	}
	store, err := sessions.NewRedisStore(cfg.RedisURL, cfg.SessionTTL)
	if err == nil {
		err = store.Ping(ctx)
		if err != nil {
			store.Close()
		}
	}
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.redis_unavailable", map[string]any{"fallback": "memory", "error": err})
			return nil, nil
		}
		return nil, fmt.Errorf("redis session store: %w", err)
	}
	return store, nil
}

func buildServices(app *App) {
	cfg := app.Config
	app.Registry = artifacts.NewRegistry(artifacts.Stores{
		Documents:  localstore.New(cfg.DocxDir),
		Renditions: localstore.New(cfg.OutputDir),
		Signatures: localstore.New(cfg.SignatureDir),
		History:    localstore.New(cfg.EditHistoryDir),
	})
	app.Gateway = gateway.NewClient(cfg.APIBaseURL, cfg.AllowedRole, cfg.AuthTimeout)

	converter := convert.NewSofficeConverter(cfg.SofficePath, cfg.ConvertTimeout)
	generator := convert.NewService(render.NewAssembler(), converter, app.Registry)

	app.AccountService = accounts.NewService(app.Gateway, app.Registry)
	app.AgreementService = agreements.NewService(signatures.NewStore(app.Registry), generator, app.Registry)
	app.AccountHandler = accounts.NewHandler(app.AccountService)
	app.AgreementHandler = agreements.NewHandler(app.AgreementService)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

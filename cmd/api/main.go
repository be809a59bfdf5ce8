// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RajathRavikumar/SmartAgri/internal/config"
	"github.com/RajathRavikumar/SmartAgri/internal/core"
	"github.com/RajathRavikumar/SmartAgri/internal/crop"
	"github.com/RajathRavikumar/SmartAgri/internal/diagnosis"
	"github.com/RajathRavikumar/SmartAgri/internal/feedback"
	"github.com/RajathRavikumar/SmartAgri/internal/gemini"
	"github.com/RajathRavikumar/SmartAgri/internal/health"
	"github.com/RajathRavikumar/SmartAgri/internal/middleware"
	"github.com/RajathRavikumar/SmartAgri/internal/ops"
	"github.com/RajathRavikumar/SmartAgri/internal/server"
	"github.com/RajathRavikumar/SmartAgri/internal/session"
	"github.com/RajathRavikumar/SmartAgri/internal/user"
	"github.com/RajathRavikumar/SmartAgri/internal/video"
	"github.com/RajathRavikumar/SmartAgri/internal/weather"
	"github.com/RajathRavikumar/SmartAgri/internal/web"
)

const (
	drainDelay         = 5 * time.Second
	sessionPurgePeriod = time.Hour
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	if err := core.RunMigrations(ctx, db); err != nil {
		return err
	}
	logger.Info("database migrations applied")

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	logger.Info("redis connected",
		"pool_size", cfg.Redis.PoolSize,
	)

	aiClient, err := gemini.NewClient(ctx, cfg.Google)
	if err != nil {
		return err
	}
	logger.Info("gemini client initialized", "model", cfg.Google.GeminiModel)

	weatherClient := weather.NewClient(cfg.Weather, "")
	videoClient := video.NewClient(cfg.Google.APIKey, cfg.Google.Timeout, "")

	renderer, err := web.NewRenderer()
	if err != nil {
		return err
	}

	userRepo := user.NewRepository(db.DB)
	userSvc := user.NewService(userRepo)

	sessionRepo := session.NewRepository(db.DB)
	sessionSvc := session.NewService(sessionRepo, userSvc, cfg.Session.TTL)
	sessionHandler := session.NewHandler(sessionSvc, renderer, cfg.Session)

	feedbackRepo := feedback.NewRepository(db.DB)
	feedbackHandler := feedback.NewHandler(feedbackRepo, renderer)

	diagnosisSvc := diagnosis.NewService(aiClient, videoClient)
	diagnosisHandler := diagnosis.NewHandler(diagnosisSvc, renderer, logger)

	weatherHandler := weather.NewHandler(weatherClient, renderer, logger)

	cropRepo := crop.NewRepository(db.DB)
	cropSvc := crop.NewService(cropRepo, weatherClient, aiClient)
	cropHandler := crop.NewHandler(cropSvc, renderer, logger)

	healthHandler := health.NewHandler(db, redis)

	opsHandler := ops.NewHandler(ops.HandlerConfig{
		DBStats:    db.Stats,
		RedisStats: redis.PoolStats,
		DBPing:     db.Ping,
		RedisPing:  redis.Ping,
	})

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(
		middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
			Limit: middleware.PerMinute(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
			),
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.App.Environment == "production"))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)
	router.Handle("/static/*", web.StaticHandler())

	// Pages bounce unauthenticated visitors to the login form; JSON
	// endpoints answer 401 instead.
	pageGuard := middleware.SessionGuard(
		sessionSvc,
		cfg.Session.CookieName,
		web.DenyWithRedirect(cfg.Session.CookieName),
	)
	apiGuard := middleware.SessionGuard(
		sessionSvc,
		cfg.Session.CookieName,
		middleware.DenyWithJSON,
	)

	sessionHandler.RegisterRoutes(router, pageGuard)
	feedbackHandler.RegisterRoutes(router, pageGuard)
	diagnosisHandler.RegisterRoutes(router, pageGuard)
	weatherHandler.RegisterRoutes(router, pageGuard)
	cropHandler.RegisterRoutes(router, pageGuard)
	opsHandler.RegisterRoutes(router, apiGuard)

	go purgeExpiredSessions(ctx, sessionSvc, logger)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

// purgeExpiredSessions sweeps expired rows so abandoned sessions do not
// accumulate. Validation already rejects them; this is cleanup only.
func purgeExpiredSessions(
	ctx context.Context,
	svc *session.Service,
	logger *slog.Logger,
) {
	ticker := time.NewTicker(sessionPurgePeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			purged, err := svc.PurgeExpired(ctx)
			if err != nil {
				logger.Warn("session purge failed", "error", err)
				continue
			}
			if purged > 0 {
				logger.Info("expired sessions purged", "count", purged)
			}
		}
	}
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

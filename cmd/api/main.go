package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"ringly_backend/internal/adapters/elevenlabs"
	"ringly_backend/internal/adapters/stripecheckout"
	"ringly_backend/internal/adapters/vapi"
	"ringly_backend/internal/billing"
	"ringly_backend/internal/calls"
	"ringly_backend/internal/catalog"
	"ringly_backend/internal/email"
	"ringly_backend/internal/events"
	apphttp "ringly_backend/internal/http"
	"ringly_backend/internal/http/router"
	"ringly_backend/internal/receptionist"
	recsvc "ringly_backend/internal/receptionist/service"
	"ringly_backend/internal/script"
	"ringly_backend/platform/config"
	"ringly_backend/platform/db"
	"ringly_backend/platform/logger"
	"ringly_backend/platform/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg, "migrations")
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// External Service Clients
	// ========================================================================

	// Interface-typed so an absent credential stays a nil interface.
	var (
		checkout   recsvc.CheckoutClient
		assistants recsvc.AssistantClient
		caller     calls.CallClient
		tts        calls.Synthesizer
	)

	if cfg.IsCheckoutEnabled() {
		checkout = stripecheckout.NewClient(stripecheckout.Config{
			SecretKey: cfg.GetStripeSecretKey(),
		})
		log.Info("checkout client initialized")
	} else {
		log.Warn("STRIPE_SECRET_KEY not configured; configurations are saved without checkout")
	}

	if cfg.GetVapiAPIKey() != "" {
		vapiClient := vapi.NewClient(vapi.Config{
			BaseURL: cfg.GetVapiBaseURL(),
			APIKey:  cfg.GetVapiAPIKey(),
		})
		assistants = vapiClient
		caller = vapiClient
		log.Info("telephony client initialized")
	} else {
		log.Warn("VAPI_PRIVATE_KEY not configured; demo calls and provisioning disabled")
	}

	if cfg.GetElevenLabsAPIKey() != "" {
		tts = elevenlabs.NewClient(elevenlabs.Config{
			BaseURL: cfg.GetElevenLabsBaseURL(),
			APIKey:  cfg.GetElevenLabsAPIKey(),
		})
		log.Info("voice preview client initialized")
	} else {
		log.Warn("ELEVENLABS_API_KEY not configured; voice previews disabled")
	}

	previewCache := calls.NewPreviewCache(cfg.GetRedisAddr(), cfg.GetRedisPassword())
	if previewCache != nil {
		defer previewCache.Close()
		log.Info("voice preview cache connected", "addr", cfg.GetRedisAddr())
	} else {
		log.Warn("REDIS_ADDR not configured; voice previews are synthesized on every request")
	}

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	// Email notifier subscribes to domain events (not HTTP-facing)
	email.NewNotifier(eventBus, email.NewSender(cfg), log)

	catalogModule := catalog.NewModule()

	scriptModule, err := script.NewModule(ctx, cfg, val, log)
	if err != nil {
		log.Error("failed to initialize script module", "error", err)
		panic("failed to initialize script module: " + err.Error())
	}

	receptionistModule := receptionist.NewModule(pool, checkout, assistants, eventBus, cfg, val, log)

	billingModule := billing.NewModule(receptionistModule.Provisioner(), cfg, log)

	callsModule := calls.NewModule(caller, tts, previewCache, cfg, val, log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Health: pool,
		Modules: []apphttp.Module{
			catalogModule,
			scriptModule,
			receptionistModule,
			billingModule,
			callsModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}
	return fmt.Errorf("%s: %w", name, lastErr)
}

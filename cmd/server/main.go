package main

import (
	"context"
	"flag"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.uber.org/zap"

	"github.com/wchklaus97/remind-me/internal/config"
	"github.com/wchklaus97/remind-me/internal/handlers"
	"github.com/wchklaus97/remind-me/internal/i18n"
	"github.com/wchklaus97/remind-me/internal/logger"
	"github.com/wchklaus97/remind-me/internal/middleware"
	"github.com/wchklaus97/remind-me/internal/persistence"
	"github.com/wchklaus97/remind-me/internal/router"
	"github.com/wchklaus97/remind-me/internal/storage"
	"github.com/wchklaus97/remind-me/internal/telemetry"
)

const serviceName = "remind-me-api"

var version = "dev"

func main() {
	debugFlag := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	debugMode := cfg.ServerDebugMode || *debugFlag

	zapLogger, err := logger.NewProductionLogger(debugMode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	zapLogger.Info("starting_server",
		zap.Bool("debug_mode", debugMode),
		zap.String("server_port", cfg.ServerPort),
		zap.String("storage_backend", string(cfg.StorageBackend)),
		zap.String("hosting_mode", cfg.HostingMode),
		zap.Bool("otel_enabled", cfg.OTELEnabled),
	)

	// Initialize OpenTelemetry if enabled
	if cfg.OTELEnabled {
		if cfg.OTELEndpoint == "" {
			zapLogger.Warn("otel_enabled_but_endpoint_not_configured")
		} else {
			tp, err := telemetry.InitTracer(context.Background(), serviceName, cfg.OTELEndpoint)
			if err != nil {
				zapLogger.Warn("failed_to_initialize_otel_tracer", zap.Error(err))
			} else {
				zapLogger.Info("otel_tracer_initialized", zap.String("endpoint", cfg.OTELEndpoint))
				defer func() {
					shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer cancel()
					if err := telemetry.Shutdown(shutdownCtx, tp); err != nil {
						zapLogger.Error("failed_to_shutdown_otel_tracer", zap.Error(err))
					}
				}()
			}
		}
	}

	store, err := newStore(cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed_to_initialize_storage", zap.Error(err))
	}
	if closer, ok := store.(io.Closer); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				zapLogger.Warn("failed_to_close_storage", zap.Error(err))
			}
		}()
	}
	zapLogger.Info("storage_initialized", zap.String("backend", string(cfg.StorageBackend)))

	engine := persistence.NewEngine(store, zapLogger)

	translator, err := i18n.NewTranslator()
	if err != nil {
		zapLogger.Fatal("failed_to_load_translations", zap.Error(err))
	}
	localeEngine := i18n.NewEngine(translator, store, zapLogger)

	// The configured default only applies when no preference was persisted.
	bootCtx, bootCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if _, ok := store.Get(bootCtx, storage.LocaleKey); ok {
		localeEngine.Resolve(bootCtx, "")
	} else {
		localeEngine.Resolve(bootCtx, cfg.DefaultLocale)
	}
	bootCancel()
	zapLogger.Info("locale_resolved", zap.String("locale", localeEngine.Current().String()))

	// Setup router with middleware. gorilla/mux runs middleware in
	// registration order, so outermost wrappers go first.
	r := mux.NewRouter()
	if cfg.OTELEnabled {
		r.Use(otelmux.Middleware(serviceName))
	}
	r.Use(middleware.SecurityHeaders(cfg.EnableHSTS))
	r.Use(middleware.CORS(cfg.FrontendURL))
	r.Use(middleware.RequestSize)
	r.Use(middleware.ContentType)
	r.Use(middleware.Logging(zapLogger))

	r.HandleFunc("/health", handlers.NewHealthHandler(version).Health).Methods("GET")

	api := r.PathPrefix("/api/v1").Subrouter()
	handlers.NewReminderHandler(engine, zapLogger).RegisterRoutes(api.PathPrefix("/reminders").Subrouter())
	handlers.NewTagHandler(engine, zapLogger).RegisterRoutes(api.PathPrefix("/tags").Subrouter())
	handlers.NewStatsHandler(engine).RegisterRoutes(api)
	handlers.NewLocaleHandler(localeEngine).RegisterRoutes(api)
	handlers.NewRouteHandler(store, cfg.BasePath, router.HostingMode(cfg.HostingMode)).RegisterRoutes(api)

	// Preflight requests reach this after the CORS middleware set headers.
	r.Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	srv := &http.Server{
		Addr:           ":" + cfg.ServerPort,
		Handler:        r,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		zapLogger.Info("server_starting", zap.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("server_failed_to_start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("server_shutting_down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server_forced_to_shutdown", zap.Error(err))
	}

	zapLogger.Info("server_exited")
}

// newStore builds the configured storage backend
func newStore(cfg *config.Config, zapLogger *zap.Logger) (storage.Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch cfg.StorageBackend {
	case config.BackendMemory:
		return storage.NewMemoryStore(), nil
	case config.BackendRedis:
		return storage.NewRedisStore(ctx, cfg.RedisURL, zapLogger)
	case config.BackendPostgres:
		return storage.NewPostgresStore(ctx, cfg.DatabaseURL, zapLogger)
	default:
		return storage.NewFileStore(cfg.DataDir, zapLogger), nil
	}
}

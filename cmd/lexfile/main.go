package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/lexfile/lexfile/internal/config"
	dbRedis "github.com/lexfile/lexfile/internal/db/redis"
	logpkg "github.com/lexfile/lexfile/internal/logger"
	"github.com/lexfile/lexfile/internal/metrics"
	analyticsrepo "github.com/lexfile/lexfile/internal/repository/analytics"
	"github.com/lexfile/lexfile/internal/repository/catalog"
	chiTransport "github.com/lexfile/lexfile/internal/transport/chi"
	analyticsuc "github.com/lexfile/lexfile/internal/usecase/analytics"
	healthuc "github.com/lexfile/lexfile/internal/usecase/health"
	searchuc "github.com/lexfile/lexfile/internal/usecase/search"
	suggestuc "github.com/lexfile/lexfile/internal/usecase/suggest"
	"github.com/lexfile/lexfile/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting lexfile API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
	)

	ctx := context.Background()

	// Catalog database
	poolCfg, err := pgxpool.ParseConfig(cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Invalid database DSN", zap.Error(err))
	}
	poolCfg.MaxConns = int32(cfg.Database.MaxConns)

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		logger.Fatal("Failed to create database pool", zap.Error(err))
	}
	defer pool.Close()

	pingCtx, cancelPing := context.WithTimeout(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second)
	err = pool.Ping(pingCtx)
	cancelPing()
	if err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Analytics store: Redis when configured, in-process otherwise
	var analyticsStore analyticsuc.Store
	var analyticsPinger healthuc.Pinger
	if len(cfg.Analytics.Addrs) > 0 {
		store, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Analytics.Addrs,
			Username: cfg.Analytics.Username,
			Password: cfg.Analytics.Password,
		})
		if err != nil {
			logger.Fatal("Failed to create analytics store", zap.Error(err))
		}
		defer store.Close()

		if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
			logger.Fatal("Analytics store not ready", zap.Error(err))
		}
		logger.Info("Connected to analytics store", zap.Strings("addrs", cfg.Analytics.Addrs))

		analyticsStore = analyticsrepo.NewStore(store, cfg.Analytics.KeyPrefix)
		analyticsPinger = store
	} else {
		logger.Info("Analytics store not configured, using in-process log")
		mem := analyticsrepo.NewMemoryStore()
		analyticsStore = mem
		analyticsPinger = mem
	}

	// Register search metrics explicitly (no init())
	metrics.RegisterSearchMetrics()

	// Repositories and use case services
	repo := catalog.New(pool)

	searchSvc := searchuc.New(repo, searchuc.Config{
		PerEntityLimit: cfg.Search.PerEntityLimit,
		AccessWindow:   cfg.Search.AccessWindow,
	}, logger)
	analyticsSvc := analyticsuc.New(analyticsStore, logger)
	suggestSvc := suggestuc.New(repo, analyticsSvc, logger)
	healthSvc := healthuc.New(pool, analyticsPinger)

	// Create chi server
	server := chiTransport.NewServer(
		searchSvc, suggestSvc, analyticsSvc, repo, healthSvc,
		chiTransport.Limits{
			DefaultCategory: cfg.Search.DefaultCategory,
			MaxCategory:     cfg.Search.MaxCategory,
			MaxSuggestions:  cfg.Search.MaxSuggestions,
		},
		logger,
	)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	r.Mount("/", server.Routes())

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}

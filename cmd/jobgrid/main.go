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
	"go.uber.org/zap"

	"github.com/jobgrid/jobgrid/internal/config"
	dbRedis "github.com/jobgrid/jobgrid/internal/db/redis"
	"github.com/jobgrid/jobgrid/internal/domain/catalog"
	logpkg "github.com/jobgrid/jobgrid/internal/logger"
	"github.com/jobgrid/jobgrid/internal/metrics"
	categoryrepo "github.com/jobgrid/jobgrid/internal/repository/category"
	companyrepo "github.com/jobgrid/jobgrid/internal/repository/company"
	jobrepo "github.com/jobgrid/jobgrid/internal/repository/job"
	technologyrepo "github.com/jobgrid/jobgrid/internal/repository/technology"
	chiTransport "github.com/jobgrid/jobgrid/internal/transport/chi"
	categoriesuc "github.com/jobgrid/jobgrid/internal/usecase/categories"
	companiesuc "github.com/jobgrid/jobgrid/internal/usecase/companies"
	healthuc "github.com/jobgrid/jobgrid/internal/usecase/health"
	homeuc "github.com/jobgrid/jobgrid/internal/usecase/home"
	jobsuc "github.com/jobgrid/jobgrid/internal/usecase/jobs"
	technologiesuc "github.com/jobgrid/jobgrid/internal/usecase/technologies"
	"github.com/jobgrid/jobgrid/internal/version"
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

	logger.Info("Starting jobgrid API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	// Wait for database to be ready
	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Register listing metrics explicitly (no init())
	metrics.RegisterListingMetrics()

	// Listing catalog — immutable query configuration
	cat, err := catalog.New(catalog.Params{
		VisibleStatuses:  cfg.Listing.VisibleStatuses,
		LocationPrefixes: cfg.Listing.LocationPrefixes,
		SalaryBands:      bandDefs(cfg.Listing.SalaryBands),
		SizeBuckets:      bucketDefs(cfg.Listing.SizeBuckets),
		Locations:        pointDefs(cfg.Listing.Locations),
	})
	if err != nil {
		logger.Fatal("Invalid listing configuration", zap.Error(err))
	}

	// Create repositories (domain-native, no adapters)
	jobs := jobrepo.New(store)
	companies := companyrepo.New(store)
	categories := categoryrepo.New(store)
	technologies := technologyrepo.New(store)

	// Create use case services
	jobsSvc := jobsuc.New(jobs, companies, categories, technologies, cat).
		WithPagination(cfg.Listing.DefaultPageSize, cfg.Listing.MaxPageSize)
	companiesSvc := companiesuc.New(companies, jobs, cat).
		WithSuggestTake(cfg.Listing.SuggestTake).
		WithPagination(cfg.Listing.DefaultPageSize, cfg.Listing.MaxPageSize)
	categoriesSvc := categoriesuc.New(categories, jobs, cat)
	technologiesSvc := technologiesuc.New(technologies)
	homeSvc := homeuc.New(jobs, categories, technologies, cat).
		WithTakeTechs(cfg.Listing.SectionTechs)

	// Health service — store ping plus posting keyspace probe
	healthSvc := healthuc.New(store, jobs)

	// Create chi server
	server := chiTransport.NewServer(
		jobsSvc, companiesSvc, categoriesSvc, technologiesSvc, homeSvc, healthSvc, logger,
	)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Mount(r)

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

func bandDefs(in []config.SalaryBandConfig) []catalog.BandDef {
	out := make([]catalog.BandDef, len(in))
	for i, b := range in {
		out[i] = catalog.BandDef{Key: b.Key, Label: b.Label, Min: b.Min, Max: b.Max}
	}
	return out
}

func bucketDefs(in []config.SizeBucketConfig) []catalog.BucketDef {
	out := make([]catalog.BucketDef, len(in))
	for i, b := range in {
		out[i] = catalog.BucketDef{Key: b.Key, Label: b.Label}
	}
	return out
}

func pointDefs(in []config.LocationPointConfig) []catalog.PointDef {
	out := make([]catalog.PointDef, len(in))
	for i, p := range in {
		out[i] = catalog.PointDef{Name: p.Name, Lat: p.Lat, Lon: p.Lon}
	}
	return out
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

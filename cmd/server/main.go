package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	grpcapi "surfjobs-backend/internal/api/grpc"
	httpapi "surfjobs-backend/internal/api/http"
	"surfjobs-backend/internal/config"
	"surfjobs-backend/internal/jobs"
	"surfjobs-backend/internal/logger"
	"surfjobs-backend/internal/metrics"
	"surfjobs-backend/internal/ratelimit"
	"surfjobs-backend/internal/repository/postgres"
	"surfjobs-backend/internal/scheduler"
	"surfjobs-backend/internal/security"
	"surfjobs-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	migrate := flag.Bool("migrate", true, "Apply the embedded schema on startup")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	lg := logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	lg.Info("Starting SurfJobs backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	lg.Info("Server configuration", "http_address", cfg.GetServerAddress(), "grpc_address", cfg.GetGRPCAddress())
	lg.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		lg.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Test database connection
	if err := db.PingContext(ctx); err != nil {
		lg.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	lg.Info("Database connection established")

	if *migrate {
		if err := postgres.Migrate(ctx, db); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
	}

	// Initialize Repositories
	store := postgres.NewStore(db, lg)
	collector := metrics.NewCollector()

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Issuer)

	// Initialize Services
	resolver := service.NewOrganizationResolver(store.OrganizationRepository, lg)
	lifecycle := service.NewApplicationService(
		store.ApplicationRepository,
		store.JobRepository,
		resolver,
		service.NewTransitionPolicy(cfg.Applications.StrictTransitions),
		collector,
		lg,
	)
	queries := service.NewApplicationQueryService(store.ApplicationRepository, store.JobRepository, resolver, lg)

	// Apply limiter: shared through Redis when configured, per process otherwise
	var limiter ratelimit.Limiter
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			lg.Warn("Redis unreachable, apply limiter will fail open", "addr", cfg.Redis.Addr, "error", err)
		}
		limiter = ratelimit.NewRedisLimiter(rdb, lg)
		lg.Info("Using Redis apply limiter", "addr", cfg.Redis.Addr)
	} else {
		limiter = ratelimit.NewMemoryLimiter()
		lg.Info("Using in-process apply limiter")
	}

	handler := httpapi.NewApplicationHandler(lifecycle, queries, limiter, httpapi.ApplyLimit{
		Limit:  cfg.RateLimit.ApplyLimit,
		Window: time.Duration(cfg.RateLimit.ApplyWindowSeconds) * time.Second,
	}, lg)
	router := httpapi.NewRouter(httpapi.RouterDeps{
		Applications: handler,
		Tokens:       tokenManager,
		DB:           store,
		Metrics:      collector,
		Log:          lg,
	})
	httpServer := &http.Server{
		Addr:              cfg.GetServerAddress(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Set up gRPC health server
	lis, err := net.Listen("tcp", cfg.GetGRPCAddress())
	if err != nil {
		lg.Error("Failed to listen", "error", err, "address", cfg.GetGRPCAddress())
		log.Fatalf("Failed to listen: %v", err)
	}
	grpcServer := grpcapi.NewServer(store, lg)

	// Scheduled jobs
	jobRunner := jobs.NewJobRunner(store.ApplicationRepository, collector, cfg, lg)
	cronScheduler, err := scheduler.NewScheduler(jobRunner, lg)
	if err != nil {
		log.Fatalf("Failed to set up scheduler: %v", err)
	}
	cronScheduler.Start()
	go jobRunner.ApplicationReport()

	go func() {
		lg.Info("gRPC server listening", "address", cfg.GetGRPCAddress())
		if err := grpcServer.Serve(lis); err != nil {
			lg.Error("gRPC server error", "error", err)
		}
	}()

	go func() {
		lg.Info("HTTP server listening", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error("HTTP server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	// Graceful shutdown
	lg.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		lg.Error("HTTP shutdown error", "error", err)
	}
	grpcServer.GracefulStop()
	cronScheduler.Stop()
	lg.Info("Server stopped. Goodbye!")
}

package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"surfjobs-backend/internal/config"
	"surfjobs-backend/internal/jobs"
	"surfjobs-backend/internal/logger"
	"surfjobs-backend/internal/repository/postgres"
	"surfjobs-backend/internal/scheduler"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'application-report')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	lg := logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	lg.Info("Starting SurfJobs Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	lg.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		lg.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		lg.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	lg.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db, lg)

	// Initialize Job Runner. The cron binary has no metrics endpoint, so totals are only logged.
	jobRunner := jobs.NewJobRunner(store.ApplicationRepository, nil, cfg, lg)

	// Check if running a single job
	if *runOnce != "" {
		lg.Info("Running job once", "job", *runOnce)
		if err := runJobOnce(jobRunner, *runOnce); err != nil {
			lg.Error("Unknown job name", "job", *runOnce)
			fmt.Printf("Available jobs:\n")
			fmt.Printf("  - application-report\n")
			os.Exit(1)
		}
		lg.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler, err := scheduler.NewScheduler(jobRunner, lg)
	if err != nil {
		log.Fatalf("Failed to set up scheduler: %v", err)
	}

	// Start scheduler
	cronScheduler.Start()
	lg.Info("Cronjob scheduler is running. Press Ctrl+C to stop.", "next_run", cronScheduler.NextRun())

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	lg.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	lg.Info("Cronjob scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job once
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) error {
	switch jobName {
	case "application-report":
		jobRunner.ApplicationReport()
	default:
		return fmt.Errorf("unknown job %q", jobName)
	}
	return nil
}

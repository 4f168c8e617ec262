package main

import (
	"context"
	"flag"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/garnizeh/careers/api"
	dbfs "github.com/garnizeh/careers/db"
	"github.com/garnizeh/careers/internal/careers"
	"github.com/garnizeh/careers/internal/config"
	"github.com/garnizeh/careers/internal/db"
	"github.com/garnizeh/careers/internal/repository/sqlite"
	"github.com/garnizeh/careers/internal/session"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	var configPath = flag.String("config", "", "Path to config YAML file")
	var envFile = flag.String("env", ".env", "Path to an optional .env file")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to load %s: %v", *envFile, err)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	api.SetLogger(logger)

	log.Printf("Starting careers server version %s (built at %s)", version, buildTime)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Open database connection
	conn, err := db.New(ctx, cfg.DatabasePath, logger)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}

	if cfg.MigrateOnStart {
		var seeds fs.FS = dbfs.SeedFiles
		if !cfg.SeedDemoData {
			seeds = nil
		}
		if err := db.Migrate(ctx, conn, dbfs.Migrations, seeds); err != nil {
			log.Fatalf("Failed to migrate DB: %v", err)
		}
	}

	repo := sqlite.New(conn, logger)
	svc := careers.NewService(repo, repo, repo, logger)

	if cfg.AdminPassword != "" {
		wrote, err := svc.BootstrapAdminPassword(ctx, cfg.AdminPassword)
		if err != nil {
			log.Fatalf("Failed to bootstrap admin password: %v", err)
		}
		if wrote {
			log.Println("Admin password initialized from config")
		}
	}

	sessions := session.NewManager(repo, cfg.SessionSecret, cfg.SessionTTL, logger)
	sessions.Start(ctx, cfg.SweepInterval)

	handler := api.SetupRoutes(cfg, version, buildTime, svc, sessions)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.APITimeout,
		WriteTimeout: cfg.APITimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	sessions.Stop()

	// Close database connection
	if err := conn.Close(); err != nil {
		log.Printf("Error closing DB: %v", err)
	}

	log.Println("Server exited")
}

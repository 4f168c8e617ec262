package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	dbfs "github.com/garnizeh/careers/db"
	"github.com/garnizeh/careers/internal/careers"
	"github.com/garnizeh/careers/internal/config"
	"github.com/garnizeh/careers/internal/db"
	"github.com/garnizeh/careers/internal/repository/sqlite"
)

func main() {
	configPath := flag.String("config", "", "Path to config YAML file")
	password := flag.String("admin-password", "", "Set (or replace) the admin password")
	seed := flag.Bool("seed", false, "Insert demo jobs")
	flag.Parse()

	_ = godotenv.Load()

	ctx := context.Background()
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	database, err := db.New(ctx, cfg.DatabasePath, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "DB init error: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	var seeds fs.FS = dbfs.SeedFiles
	if !*seed && !cfg.SeedDemoData {
		seeds = nil
	}
	if err := db.Migrate(ctx, database, dbfs.Migrations, seeds); err != nil {
		fmt.Fprintf(os.Stderr, "Migration runner error: %v\n", err)
		os.Exit(1)
	}

	pw := *password
	if pw == "" {
		pw = cfg.AdminPassword
	}
	if pw != "" {
		repo := sqlite.New(database, nil)
		svc := careers.NewService(repo, repo, repo, nil)
		if err := svc.SetAdminPassword(ctx, pw); err != nil {
			fmt.Fprintf(os.Stderr, "Set admin password error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Admin password set.")
	}

	fmt.Println("Database initialized successfully.")
}

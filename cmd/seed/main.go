package main

import (
	"context"
	"flag"
	"log"

	"github.com/saradorri/prospera/internal/config"
	"github.com/saradorri/prospera/internal/infrastructure/database"
	"github.com/saradorri/prospera/internal/infrastructure/logger"
	"github.com/saradorri/prospera/internal/infrastructure/repository"
	"github.com/saradorri/prospera/internal/infrastructure/seeder"
)

func main() {
	var (
		configPath = flag.String("config", "./config", "Path to config directory")
		configFile = flag.String("env", config.GetEnvironment(), "Environment")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath, *configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.NewLogger(*configFile, cfg.Log.Level)
	defer appLogger.Sync()

	db, err := database.NewDatabase(database.ConfigFrom(cfg.Database))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	contentRepo := repository.NewContentRepository(db.DB)
	newSeeder := seeder.NewSeeder(contentRepo, appLogger)

	if _, err := newSeeder.SeedContent(context.Background()); err != nil {
		log.Fatalf("Failed to seed content: %v", err)
	}
	log.Println("Database seeding completed successfully")
}

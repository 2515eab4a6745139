package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/cargoview/opsdash/internal/api"
	"github.com/cargoview/opsdash/internal/api/handlers"
	"github.com/cargoview/opsdash/internal/config"
	"github.com/cargoview/opsdash/internal/repository/postgres"
	"github.com/cargoview/opsdash/internal/service"
	"github.com/cargoview/opsdash/internal/winword"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	db, err := postgres.Open(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	repos := postgres.NewRepositories(db, logger)
	provider := winword.NewClient(cfg.Winword, logger)

	deps := &handlers.Deps{
		Repos:    repos,
		Provider: provider,
		Sessions: service.NewSessionManager(),
		Mapper:   service.NewRowMapper(),
		Logger:   logger,
	}

	router := api.NewRouter(cfg, deps, logger)

	logger.Info("Starting server", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

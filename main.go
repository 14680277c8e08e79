package main

import (
	"context"
	"log"
	"os"

	"jobSearchTracker/internal/config"
	"jobSearchTracker/internal/database"
	"jobSearchTracker/internal/logging"
	"jobSearchTracker/internal/repository"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	newLogger := logging.NewConsoleLogger
	if cfg.IsProduction() {
		newLogger = logging.NewLogger
	}
	logger := newLogger(cfg.LogLevel, os.Stdout)
	defer logger.Sync()

	ctx := context.Background()

	db, err := database.Open(ctx, cfg.StorePath(), database.Options{
		InitScriptPath: cfg.InitScriptPath,
		Logger:         logger,
	})
	if err != nil {
		logger.WithError(err).WithField("path", cfg.StorePath()).Fatal("Failed to open database")
	}
	defer db.Close()

	repos := repository.NewRepositories(logger)
	for _, counter := range repos.Counters() {
		total, err := counter.Count(ctx, db, false)
		if err != nil {
			logger.WithError(err).WithField("table", counter.Table()).Error("Failed to count rows")
			continue
		}
		visible, err := counter.Count(ctx, db, true)
		if err != nil {
			logger.WithError(err).WithField("table", counter.Table()).Error("Failed to count visible rows")
			continue
		}
		logger.WithFields(map[string]interface{}{
			"table":   counter.Table(),
			"total":   total,
			"visible": visible,
			"hidden":  total - visible,
		}).Info("Table summary")
	}
}

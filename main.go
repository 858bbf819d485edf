package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"scamgraph/internal/config"
	"scamgraph/internal/pipeline"
	"scamgraph/internal/repository"
	"scamgraph/internal/server"
	"scamgraph/internal/similarity"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err) // Should not happen in development
	}
	defer func() {
		_ = logger.Sync() // Flushes buffer, if any
	}()

	// Load configuration
	cfgPath := "configs/config.yml"
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Storage: Postgres when configured, in-memory demo store otherwise
	var submissionRepo repository.SubmissionRepository
	var graphRepo repository.GraphRepository
	if cfg.Database.URL != "" {
		db, err := repository.NewPostgresDB(cfg.Database.URL, logger)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		repository.MigrateDB(db, logger)

		submissionRepo = repository.NewSubmissionRepository(db, logger)
		graphRepo = repository.NewGraphRepository(db, logger)
	} else {
		store := repository.NewDemoStore(logger)
		submissionRepo = store
		graphRepo = store
	}

	// Classification pipeline
	engine := similarity.NewEngine(cfg.Classifier.SimilarityThreshold, cfg.Classifier.SimilarityLimit)
	p := pipeline.New(submissionRepo, engine, logger,
		cfg.Classifier.CorpusLimit,
		time.Duration(cfg.Classifier.CorpusReadTimeout)*time.Second)

	// Context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Initialize and run the server
	srv := server.NewServer(p, submissionRepo, graphRepo, cfg, logger)
	go srv.Run(cfg.Server.Port)

	<-ctx.Done()
	logger.Info("Application stopped.")
}

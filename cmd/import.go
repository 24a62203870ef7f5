package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"eurojackpot/config"
	"eurojackpot/database"
	"eurojackpot/events"
	"eurojackpot/history"
	"eurojackpot/repository"

	log "github.com/sirupsen/logrus"
)

// ImportOptions controls a history import run
type ImportOptions struct {
	// ExportPath, when set, receives every stored draw in the bundled format
	ExportPath string
}

// Import fetches missing draws into the draw store
func Import(ctx context.Context, opts ImportOptions) error {
	cfg := config.Get()
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required for import")
	}

	if err := database.RunMigrationsWithURL(cfg.GetDatabaseURL()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	db, err := database.NewConnection(ctx, cfg.GetDatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	eventBus := events.NewBus()
	eventBus.Subscribe(events.EventTypeDrawsImported, func(ctx context.Context, event events.Event) {
		if e, ok := event.(events.DrawsImportedEvent); ok {
			log.WithField("imported", e.Imported).Debug("Import batch committed")
		}
	})

	repo := repository.NewDrawRepository(db)
	importer := history.NewImporter(
		history.NewClient(cfg.HistoryBaseURL, nil),
		repo,
		repository.NewUnitOfWorkFactory(db, eventBus),
		cfg.HistoryRequestsPerSecond,
	)

	result, err := importer.Run(ctx, cfg.HistoryStartDate, time.Now().UTC())
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"imported": result.Imported,
		"skipped":  result.Skipped,
		"failed":   result.Failed,
	}).Info("Import finished")

	if opts.ExportPath == "" {
		return nil
	}

	draws, err := repo.GetAll(ctx)
	if err != nil {
		return err
	}

	f, err := os.Create(opts.ExportPath)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := history.ExportJSON(f, draws); err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"path":  opts.ExportPath,
		"draws": len(draws),
	}).Info("Exported draw history")
	return f.Close()
}

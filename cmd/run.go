package cmd

import (
	"context"
	"fmt"

	"eurojackpot/bot"
	"eurojackpot/config"
	"eurojackpot/database"
	"eurojackpot/events"
	"eurojackpot/metrics"
	"eurojackpot/repository"
	"eurojackpot/server"
	"eurojackpot/service"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Run starts the Discord bot and the HTTP server and blocks until ctx is
// cancelled
func Run(ctx context.Context) error {
	cfg := config.Get()
	log.WithField("environment", cfg.Environment).Info("Starting EuroJackpot ticket service...")

	eventBus := events.NewBus()
	collector := metrics.NewCollector()
	collector.Subscribe(eventBus)

	source, db, err := newDrawSource(ctx, cfg)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	ticketService := service.NewTicketService(source, eventBus, nil)
	log.WithField("source", source.Name()).Info("Ticket service initialized")

	if cfg.DiscordToken == "" && cfg.HTTPAddr == "" {
		return fmt.Errorf("nothing to run: set DISCORD_TOKEN or HTTP_ADDR")
	}

	if cfg.DiscordToken != "" {
		log.Info("Initializing Discord bot...")
		discordBot, err := bot.New(bot.Config{Token: cfg.DiscordToken, GuildID: cfg.GuildID}, ticketService)
		if err != nil {
			return fmt.Errorf("failed to initialize Discord bot: %w", err)
		}
		defer func() {
			if err := discordBot.Close(); err != nil {
				log.Errorf("Error closing Discord bot: %v", err)
			}
		}()
	} else {
		log.Warn("DISCORD_TOKEN not set, Discord bot disabled")
	}

	if cfg.HTTPAddr != "" {
		if cfg.Environment == "production" {
			gin.SetMode(gin.ReleaseMode)
		}
		srv := server.New(cfg.HTTPAddr, ticketService, collector)
		if err := srv.Run(ctx); err != nil {
			return err
		}
	} else {
		<-ctx.Done()
	}

	log.Info("Shutting down...")
	return nil
}

// newDrawSource picks where tickets read their history from. The returned DB
// is nil for the bundled source.
func newDrawSource(ctx context.Context, cfg *config.Config) (service.DrawSource, *database.DB, error) {
	bundled := service.NewBundledSource()
	if !cfg.UsesDatabase() {
		return bundled, nil, nil
	}

	if err := database.RunMigrationsWithURL(cfg.GetDatabaseURL()); err != nil {
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.GetDatabaseURL())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	repo := repository.NewDrawRepository(db)
	count, err := repo.Count(ctx)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	latest, err := repo.LatestDate(ctx)
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	fields := log.Fields{"draws": count}
	if latest != nil {
		fields["latest"] = latest.Format(repository.DrawDateLayout)
	}
	log.WithFields(fields).Info("Database connection established")

	return service.NewRepositorySource(repo, bundled), db, nil
}

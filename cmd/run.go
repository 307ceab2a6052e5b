package cmd

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"voicebank/bot"
	"voicebank/config"
	"voicebank/database"
	"voicebank/events"
	"voicebank/health"
	"voicebank/repository"
	"voicebank/service"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Info("Starting voicebank bot...")

	cfg := config.Get()

	// Persistence is optional: without a database the bot still tracks live
	// sessions and runs games, it just forgets everything on restart.
	var db *database.DB
	var statsRepo service.StatsRepository
	var raceRepo service.RaceRepository
	if cfg.DatabaseURL == "" {
		log.Warn("DATABASE_URL is not set, running without persistence")
		statsRepo = repository.NewDisabledStatsRepository()
		raceRepo = repository.NewDisabledRaceRepository()
	} else {
		log.Info("Running database migrations...")
		if err := database.RunMigrationsWithURL(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		log.Info("Connecting to database...")
		var err error
		db, err = database.NewConnection(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		statsRepo = repository.NewStatsRepository(db)
		raceRepo = repository.NewRaceRepository(db)
		log.Info("Database connection established")
	}

	// Initialize event bus and services
	eventBus := events.NewBus()
	tracker := service.NewSessionTracker()
	sessionService := service.NewSessionService(tracker, statsRepo, eventBus)
	balanceService := service.NewBalanceService(statsRepo, sessionService)
	wagerService := service.NewWagerService(statsRepo, balanceService, eventBus)
	leaderboardService := service.NewLeaderboardService(statsRepo, sessionService)
	raceService := service.NewRaceService(raceRepo, wagerService, eventBus)

	// Initialize Discord bot
	log.Info("Initializing Discord bot...")
	discordBot, err := bot.New(bot.Config{Token: cfg.DiscordToken}, sessionService, balanceService, wagerService, leaderboardService, raceService, eventBus)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	discordBot.StartRaceScheduler(ctx)
	log.Info("Discord bot initialized")

	healthServer := health.NewServer(cfg.HealthPort)
	healthServer.Start()

	// Wait for context cancellation
	log.Infof("Bot is running in %s mode...", cfg.Environment)
	<-ctx.Done()

	// Cleanup resources
	log.Info("Shutting down bot...")
	if err := discordBot.Close(); err != nil {
		log.Errorf("Error closing Discord bot: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	healthServer.Shutdown(shutdownCtx)

	if db != nil {
		log.Info("Closing database connection...")
		db.Close()
	}

	log.Info("Shutdown completed")
	return nil
}

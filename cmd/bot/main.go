package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/tutorgram/enquiry_bot/internal/api"
	"github.com/tutorgram/enquiry_bot/internal/app"
	"github.com/tutorgram/enquiry_bot/internal/config"
	"github.com/tutorgram/enquiry_bot/internal/controller"
	"github.com/tutorgram/enquiry_bot/internal/repository"
	"github.com/tutorgram/enquiry_bot/internal/service"
	"github.com/tutorgram/enquiry_bot/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Info("Starting enquiry bot",
		zap.String("environment", cfg.Environment),
		zap.String("api_base_url", cfg.APIBaseURL))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to create database pool", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("Failed to ping database", zap.Error(err))
	}

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	version, err := migrator.Version(ctx)
	if err != nil {
		logger.Fatal("Failed to get migrations version", zap.Error(err))
	}
	logger.Info("Migrations applied", zap.Int64("version", version))
	migrator.Close()

	client := api.NewClient(cfg.APIBaseURL, cfg.APITimeout, logger)

	sessionRepo := repository.NewSessionRepository(pool)
	userCache := store.NewUserCache()
	refresh := store.NewRefreshNotifier()

	refreshCh, cancelRefresh := refresh.Subscribe()
	defer cancelRefresh()
	go func() {
		for gen := range refreshCh {
			logger.Debug("Data refresh triggered", zap.Uint64("generation", gen))
		}
	}()

	authService := service.NewAuthService(client, sessionRepo, userCache, refresh, logger)
	enquiryService := service.NewEnquiryService(client, authService, refresh, logger)
	demoService := service.NewDemoService(client, authService, refresh, logger)

	botInstance, err := bot.New(cfg.TelegramToken)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	botController := controller.NewBotController(
		botInstance,
		authService,
		enquiryService,
		demoService,
		logger,
	)

	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Fatal("Failed to register handlers", zap.Error(err))
	}

	if err := botController.Start(ctx); err != nil {
		logger.Fatal("Bot stopped with error", zap.Error(err))
	}

	logger.Info("Bot stopped")
}

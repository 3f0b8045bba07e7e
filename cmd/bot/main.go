package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/mihppk/college_bot/internal/app"
	"github.com/mihppk/college_bot/internal/config"
	"github.com/mihppk/college_bot/internal/controller"
	"github.com/mihppk/college_bot/internal/repository"
	"github.com/mihppk/college_bot/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Info("Starting college bot",
		zap.String("environment", cfg.Environment))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Подключение к базе обязательно: без неё процесс не стартует
	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to create connection pool", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath, logger)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	// Репозитории и сервисы
	userRepo := repository.NewUserRepository(pool)
	scheduleRepo := repository.NewScheduleRepository(pool)
	materialRepo := repository.NewMaterialRepository(pool)
	announcementRepo := repository.NewAnnouncementRepository(pool)

	userService := service.NewUserService(userRepo, logger)
	scheduleService := service.NewScheduleService(scheduleRepo, logger)
	materialService := service.NewMaterialService(materialRepo, logger)
	announcementService := service.NewAnnouncementService(announcementRepo, logger)

	botInstance, err := bot.New(cfg.TelegramToken)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	botController := controller.NewBotController(
		botInstance,
		cfg,
		userService,
		scheduleService,
		materialService,
		announcementService,
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

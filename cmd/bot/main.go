package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Freeeeeet/timetable_bot/internal/app"
	"github.com/Freeeeeet/timetable_bot/internal/catalog"
	"github.com/Freeeeeet/timetable_bot/internal/config"
	"github.com/Freeeeeet/timetable_bot/internal/controller"
	"github.com/Freeeeeet/timetable_bot/internal/repository"
	"github.com/Freeeeeet/timetable_bot/internal/schedulerapi"
	"github.com/Freeeeeet/timetable_bot/internal/service"
	"github.com/go-telegram/bot"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := app.NewLogger(cfg.Environment, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("Starting timetable bot",
		zap.String("environment", cfg.Environment),
		zap.Strings("config_sources", cfg.Sources),
		zap.String("scheduler_api", cfg.SchedulerAPIURL),
		zap.Bool("database", cfg.UseDatabase()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runRepo, closeStorage, err := setupRunRepository(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to set up storage", zap.Error(err))
	}
	defer closeStorage()

	client := schedulerapi.NewClient(cfg.SchedulerAPIURL, nil, logger)
	timetableService := service.NewTimetableService(
		client,
		runRepo,
		catalog.NewCache(),
		service.NewQueueStore(),
		logger,
	)

	b, err := bot.New(cfg.TelegramToken, bot.WithErrorsHandler(func(err error) {
		logger.Error("Telegram bot error", zap.Error(err))
	}))
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	botController := controller.NewBotController(b, timetableService, logger)
	if err := botController.RegisterHandlers(ctx); err != nil {
		// Без меню команд бот всё равно работает
		logger.Warn("Failed to register bot commands menu", zap.Error(err))
	}

	refresher := app.NewCatalogRefresher(timetableService, cfg.CatalogRefreshInterval, logger)
	refresher.Start(ctx)
	defer refresher.Stop()

	if err := botController.Start(ctx); err != nil {
		logger.Error("Bot stopped with error", zap.Error(err))
	}

	logger.Info("Timetable bot stopped")
}

// setupRunRepository выбирает хранилище расписаний: Postgres, если задан DB_DSN, иначе память.
// Возвращаемая функция закрывает соединения при остановке.
func setupRunRepository(ctx context.Context, cfg *config.Config, logger *zap.Logger) (service.RunRepository, func(), error) {
	if !cfg.UseDatabase() {
		logger.Info("DB_DSN is not set, timetable runs are kept in memory")
		return repository.NewMemoryRunRepository(), func() {}, nil
	}

	pool, err := app.NewPostgresPool(ctx, cfg.DBDSN)
	if err != nil {
		return nil, nil, err
	}

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath, logger)
	if err != nil {
		pool.Close()
		return nil, nil, err
	}

	closeAll := func() {
		if err := migrator.Close(); err != nil {
			logger.Warn("Failed to close migrator", zap.Error(err))
		}
		pool.Close()
	}

	if err := migrator.Run(ctx); err != nil {
		closeAll()
		return nil, nil, err
	}

	return repository.NewTimetableRunRepository(pool), closeAll, nil
}

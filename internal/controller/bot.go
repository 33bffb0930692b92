package controller

import (
	"context"

	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks"
	"github.com/Freeeeeet/timetable_bot/internal/controller/handlers"
	"github.com/Freeeeeet/timetable_bot/internal/controller/state"
	"github.com/Freeeeeet/timetable_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

type BotController struct {
	bot             *bot.Bot
	handlers        *handlers.Handlers
	callbackHandler *callbacks.Handler
	logger          *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	timetableService *service.TimetableService,
	logger *zap.Logger,
) *BotController {
	// Создаём менеджер состояний
	stateManager := state.NewManager()

	// Создаём обработчики команд
	cmdHandlers := handlers.NewHandlers(timetableService, stateManager, logger)

	// Создаём callback handler с зависимостями
	callbackHandler := callbacks.NewHandler(timetableService, stateManager, logger)

	return &BotController{
		bot:             botInstance,
		handlers:        cmdHandlers,
		callbackHandler: callbackHandler,
		logger:          logger,
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/addsubject", bot.MatchTypeExact, c.handlers.HandleAddSubject)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/queue", bot.MatchTypeExact, c.handlers.HandleQueue)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/generate", bot.MatchTypeExact, c.handlers.HandleGenerate)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/timetable", bot.MatchTypeExact, c.handlers.HandleTimetable)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/reload", bot.MatchTypeExact, c.handlers.HandleReload)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypeExact, c.handlers.HandleCancel)

	// Обработчик текстовых сообщений (для диалогов с состояниями)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, c.handlers.HandleTextMessage)

	// Обработчик нажатий на inline кнопки
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.callbackHandler.HandleCallbackQuery)

	// Устанавливаем меню команд
	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 Начать работу с ботом"},
		{Command: "addsubject", Description: "➕ Добавить предмет в очередь"},
		{Command: "queue", Description: "📋 Очередь предметов"},
		{Command: "generate", Description: "🚀 Сгенерировать расписание"},
		{Command: "timetable", Description: "🗓 Расписание по группам"},
		{Command: "reload", Description: "🔄 Обновить справочник"},
		{Command: "cancel", Description: "❌ Отменить диалог"},
		{Command: "help", Description: "❓ Справка по командам"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Start запускает бота и блокируется до отмены ctx
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}

package controller

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/mihppk/college_bot/internal/config"
	"github.com/mihppk/college_bot/internal/controller/callbacks"
	"github.com/mihppk/college_bot/internal/controller/handlers"
	"github.com/mihppk/college_bot/internal/controller/keyboard"
	"github.com/mihppk/college_bot/internal/controller/state"
	"github.com/mihppk/college_bot/internal/service"
)

type BotController struct {
	bot             *bot.Bot
	handlers        *handlers.Handlers
	callbackHandler *callbacks.Handler
	logger          *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	cfg *config.Config,
	userService *service.UserService,
	scheduleService *service.ScheduleService,
	materialService *service.MaterialService,
	announcementService *service.AnnouncementService,
	logger *zap.Logger,
) *BotController {
	// Менеджер состояний один на процесс: в нём живут диалоги и админ-сессия
	stateManager := state.NewManager()

	cmdHandlers := handlers.NewHandlers(
		userService,
		scheduleService,
		materialService,
		announcementService,
		stateManager,
		logger,
		cfg.AdminName,
		cfg.AdminPassword,
	)

	callbackHandler := callbacks.NewHandler(
		userService,
		materialService,
		stateManager,
		logger,
	)

	return &BotController{
		bot:             botInstance,
		handlers:        cmdHandlers,
		callbackHandler: callbackHandler,
		logger:          logger,
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	// Команды
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/menu", bot.MatchTypeExact, c.handlers.HandleMenu)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/announcements", bot.MatchTypeExact, c.handlers.HandleAnnouncements)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/admin", bot.MatchTypeExact, c.handlers.HandleAdmin)

	// Кнопки главного меню
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, keyboard.BtnViewSchedule, bot.MatchTypeExact, c.handlers.HandleViewSchedule)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, keyboard.BtnViewMaterials, bot.MatchTypeExact, c.handlers.HandleViewMaterials)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, keyboard.BtnUsefulSources, bot.MatchTypeExact, c.handlers.HandleUsefulSources)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, keyboard.BtnResources, bot.MatchTypeExact, c.handlers.HandleResources)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, keyboard.BtnHelp, bot.MatchTypeExact, c.handlers.HandleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, keyboard.BtnChangeGroup, bot.MatchTypeExact, c.handlers.HandleChangeGroup)

	// Кнопки админ-панели
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, keyboard.BtnAddSchedule, bot.MatchTypeExact, c.handlers.HandleAddSchedule)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, keyboard.BtnAddMaterial, bot.MatchTypeExact, c.handlers.HandleAddMaterial)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, keyboard.BtnAddAnnounce, bot.MatchTypeExact, c.handlers.HandleAddAnnouncement)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, keyboard.BtnEditSchedule, bot.MatchTypeExact, c.handlers.HandleEditSchedule)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, keyboard.BtnStats, bot.MatchTypeExact, c.handlers.HandleStats)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, keyboard.BtnClearMaterials, bot.MatchTypeExact, c.handlers.HandleClearMaterials)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, keyboard.BtnBack, bot.MatchTypeExact, c.handlers.HandleBack)

	// Обработчик остальных сообщений (диалоги с состояниями)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, c.handlers.HandleTextMessage)

	// Обработчик нажатий на inline кнопки
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.callbackHandler.HandleCallbackQuery)

	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 Начать работу с ботом"},
		{Command: "menu", Description: "📋 Главное меню"},
		{Command: "announcements", Description: "📢 Объявления колледжа"},
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

// Start запускает бота
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}

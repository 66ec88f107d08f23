package controller

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/tutorgram/enquiry_bot/internal/controller/callbacks"
	"github.com/tutorgram/enquiry_bot/internal/controller/handlers"
	"github.com/tutorgram/enquiry_bot/internal/controller/state"
	"github.com/tutorgram/enquiry_bot/internal/service"
)

type BotController struct {
	bot      *bot.Bot
	handlers *handlers.Handlers
	router   *callbacks.Router
	logger   *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	authService *service.AuthService,
	enquiryService *service.EnquiryService,
	demoService *service.DemoService,
	logger *zap.Logger,
) *BotController {
	// Создаём менеджер состояний
	stateManager := state.NewManager()

	// Создаём обработчики команд
	cmdHandlers := handlers.NewHandlers(
		authService,
		enquiryService,
		demoService,
		stateManager,
		logger,
	)

	// Создаём роутер для inline-кнопок
	router := callbacks.NewRouter(
		cmdHandlers,
		authService,
		enquiryService,
		demoService,
		stateManager,
		logger,
	)

	return &BotController{
		bot:      botInstance,
		handlers: cmdHandlers,
		router:   router,
		logger:   logger,
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/login", bot.MatchTypeExact, c.handlers.HandleLogin)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/register", bot.MatchTypeExact, c.handlers.HandleRegister)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/book", bot.MatchTypeExact, c.handlers.HandleBook)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/enquiries", bot.MatchTypeExact, c.handlers.HandleEnquiries)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/bookings", bot.MatchTypeExact, c.handlers.HandleBookings)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/profile", bot.MatchTypeExact, c.handlers.HandleProfile)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/bookdemo", bot.MatchTypeExact, c.handlers.HandleBookDemo)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/back", bot.MatchTypeExact, c.handlers.HandleBack)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypeExact, c.handlers.HandleCancel)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/logout", bot.MatchTypeExact, c.handlers.HandleLogout)

	// Обработчик текстовых сообщений (для диалогов с состояниями)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, c.handlers.HandleText)

	// Обработчик нажатий на inline кнопки
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.router.Handle)

	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 Начать работу с ботом"},
		{Command: "login", Description: "🔑 Войти в аккаунт"},
		{Command: "register", Description: "📝 Регистрация студента или репетитора"},
		{Command: "book", Description: "📚 Оставить заявку на репетитора"},
		{Command: "enquiries", Description: "📋 Мои заявки"},
		{Command: "bookings", Description: "📅 Мои демо-записи"},
		{Command: "profile", Description: "👤 Мой профиль"},
		{Command: "bookdemo", Description: "🎯 Записаться на демо к репетитору"},
		{Command: "back", Description: "⬅️ Назад на шаг в анкете"},
		{Command: "cancel", Description: "❌ Отменить текущий диалог"},
		{Command: "logout", Description: "🚪 Выйти из аккаунта"},
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

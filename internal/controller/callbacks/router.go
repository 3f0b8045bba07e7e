package callbacks

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/mihppk/college_bot/internal/controller/keyboard"
	"github.com/mihppk/college_bot/internal/controller/state"
	"github.com/mihppk/college_bot/internal/model"
	"github.com/mihppk/college_bot/internal/service"
)

// ========================
// Callback Data Patterns
// ========================

const (
	BackToMenu          = "back_to_menu"
	ChangeGroupSuffix   = "_changeGroup"   // 11Т_changeGroup
	MaterialGroupPrefix = "dnwmppk_group_" // dnwmppk_group_11Т
	ClearGroupPrefix    = "clear_group_"   // clear_group_11Т
)

// Handler обрабатывает нажатия inline-кнопок
type Handler struct {
	userService     *service.UserService
	materialService *service.MaterialService
	stateManager    *state.Manager
	logger          *zap.Logger
}

// NewHandler создаёт обработчик callback query
func NewHandler(
	userService *service.UserService,
	materialService *service.MaterialService,
	stateManager *state.Manager,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		userService:     userService,
		materialService: materialService,
		stateManager:    stateManager,
		logger:          logger,
	}
}

// HandleCallbackQuery распределяет callback query по обработчикам
func (h *Handler) HandleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	callback := update.CallbackQuery
	if callback == nil {
		return
	}

	data := callback.Data

	h.logger.Info("Routing callback",
		zap.String("data", data),
		zap.Int64("user_id", callback.From.ID))

	// Подтверждаем callback, чтобы убрать "часики" на кнопке
	answerCallback(ctx, b, callback.ID, "")

	msg := messageFromCallback(callback)
	if msg == nil {
		return
	}
	chatID := msg.Chat.ID

	switch {
	case data == BackToMenu:
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        "Меню:",
			ReplyMarkup: keyboard.MainMenu(),
		})

	case strings.HasSuffix(data, ChangeGroupSuffix):
		h.handleChangeGroup(ctx, b, callback, chatID)

	case strings.HasPrefix(data, MaterialGroupPrefix):
		h.handleMaterialTarget(ctx, b, callback, chatID)

	case strings.HasPrefix(data, ClearGroupPrefix):
		h.handleClearGroup(ctx, b, callback, chatID)

	default:
		h.logger.Debug("Unknown callback data", zap.String("data", data))
	}
}

// handleChangeGroup привязывает пользователя к выбранной группе
func (h *Handler) handleChangeGroup(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, chatID int64) {
	group := strings.TrimSuffix(callback.Data, ChangeGroupSuffix)
	if !model.IsValidGroup(group) {
		h.logger.Warn("Change group callback with unknown group", zap.String("group", group))
		return
	}

	if err := h.userService.SetGroup(ctx, callback.From.ID, group); err != nil {
		h.logger.Error("Failed to update user group", zap.Error(err))
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "Произошла ошибка при изменении группы. Попробуйте еще раз.",
		})
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   fmt.Sprintf("Ваша группа успешно изменена на %s.", group),
	})
}

// handleMaterialTarget переводит админа в режим ожидания материала для группы
func (h *Handler) handleMaterialTarget(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, chatID int64) {
	if !h.stateManager.IsAdmin(chatID) {
		answerCallbackAlert(ctx, b, callback.ID, "У вас нет доступа к этой функции.")
		return
	}

	group := strings.TrimPrefix(callback.Data, MaterialGroupPrefix)
	if !model.IsValidGroup(group) {
		h.logger.Warn("Material target callback with unknown group", zap.String("group", group))
		return
	}

	// Последнее назначение выигрывает: повторный выбор группы заменяет предыдущий
	h.stateManager.SetState(chatID, state.StateMaterialPayload)
	h.stateManager.SetData(chatID, state.DataTargetGroup, group)

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text: fmt.Sprintf("Введите описание для материала для группы %s, "+
			"или отправьте сам материал (текст, документ, изображение, видео):", group),
	})
}

// handleClearGroup удаляет все материалы выбранной группы
func (h *Handler) handleClearGroup(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, chatID int64) {
	if !h.stateManager.IsAdmin(chatID) {
		answerCallbackAlert(ctx, b, callback.ID, "У вас нет доступа к этой функции.")
		return
	}

	group := strings.TrimPrefix(callback.Data, ClearGroupPrefix)
	if !model.IsValidGroup(group) {
		h.logger.Warn("Clear group callback with unknown group", zap.String("group", group))
		return
	}

	if _, err := h.materialService.ClearGroup(ctx, group); err != nil {
		h.logger.Error("Failed to clear materials", zap.Error(err), zap.String("group", group))
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "Произошла ошибка при удалении материалов.",
		})
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   fmt.Sprintf("Материалы для группы %s успешно удалены.", group),
	})
}

// answerCallback отвечает на callback query (без alert)
func answerCallback(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       false,
	})
}

// answerCallbackAlert отвечает на callback query всплывающим окном
func answerCallbackAlert(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       true,
	})
}

// messageFromCallback извлекает сообщение из callback query
func messageFromCallback(callback *models.CallbackQuery) *models.Message {
	if callback.Message.Message != nil {
		return callback.Message.Message
	}
	return nil
}

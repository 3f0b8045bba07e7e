package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/mihppk/college_bot/internal/controller/callbacks"
	"github.com/mihppk/college_bot/internal/controller/keyboard"
	"github.com/mihppk/college_bot/internal/controller/state"
)

const noAccessText = "У вас нет доступа к этой функции."

// HandleAdmin обрабатывает команду /admin: начинает вход в админ-панель
func (h *Handlers) HandleAdmin(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID

	h.logger.Info("Admin login started", zap.Int64("chat_id", chatID))

	h.stateManager.SetState(chatID, state.StateAdminName)
	sendText(ctx, b, chatID, "Введите ваше ФИО:")
}

// requireAdmin проверяет, что чат владеет активной админ-сессией
func (h *Handlers) requireAdmin(ctx context.Context, b *bot.Bot, chatID int64) bool {
	if !h.stateManager.IsAdmin(chatID) {
		sendText(ctx, b, chatID, noAccessText)
		return false
	}
	return true
}

// HandleAddSchedule обрабатывает кнопку "Добавить расписание"
func (h *Handlers) HandleAddSchedule(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	if !h.requireAdmin(ctx, b, chatID) {
		return
	}

	h.stateManager.SetState(chatID, state.StateAddSchedule)
	sendText(ctx, b, chatID, "Введите расписание в формате: группа, день, время, предмет, местоположение.")
}

// HandleAddMaterial обрабатывает кнопку "Добавить материал"
func (h *Handlers) HandleAddMaterial(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	if !h.requireAdmin(ctx, b, chatID) {
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        "Выберите группу для отправки материала:",
		ReplyMarkup: keyboard.GroupSelect(func(group string) string {
			return callbacks.MaterialGroupPrefix + group
		}),
	})
}

// HandleAddAnnouncement обрабатывает кнопку "Добавить объявление"
func (h *Handlers) HandleAddAnnouncement(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	if !h.requireAdmin(ctx, b, chatID) {
		return
	}

	h.stateManager.SetState(chatID, state.StateAnnouncementText)
	sendText(ctx, b, chatID, "Введите текст объявления:")
}

// HandleEditSchedule обрабатывает кнопку "Редактировать расписание"
func (h *Handlers) HandleEditSchedule(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	if !h.requireAdmin(ctx, b, chatID) {
		return
	}

	h.stateManager.SetState(chatID, state.StateEditScheduleFind)
	sendText(ctx, b, chatID, "Введите параметры для поиска расписания в формате: группа, день.")
}

// HandleStats обрабатывает кнопку "Просмотреть статистику"
func (h *Handlers) HandleStats(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	if !h.requireAdmin(ctx, b, chatID) {
		return
	}

	stats, err := h.userService.GroupStats(ctx)
	if err != nil {
		h.logger.Error("Failed to get group stats", zap.Error(err))
		sendText(ctx, b, chatID, "Произошла ошибка при получении статистики.")
		return
	}

	sendText(ctx, b, chatID, FormatGroupStats(stats))
}

// HandleClearMaterials обрабатывает кнопку "Очистить материалы"
func (h *Handlers) HandleClearMaterials(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	if !h.requireAdmin(ctx, b, chatID) {
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        "Выберите группу для удаления материалов:",
		ReplyMarkup: keyboard.GroupSelect(func(group string) string {
			return callbacks.ClearGroupPrefix + group
		}),
	})
}

// HandleBack обрабатывает кнопку "Назад": выход из админ-панели
func (h *Handlers) HandleBack(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	if !h.stateManager.IsAdmin(chatID) {
		sendText(ctx, b, chatID, noAccessText)
		return
	}

	h.stateManager.EndAdminSession()
	h.stateManager.ClearState(chatID)

	h.logger.Info("Admin logged out", zap.Int64("chat_id", chatID))

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        "Вы вышли из админ-панели.",
		ReplyMarkup: keyboard.MainMenu(),
	})
}

package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mihppk/college_bot/internal/controller/keyboard"
	"github.com/mihppk/college_bot/internal/controller/state"
	"github.com/mihppk/college_bot/internal/model"
)

// HandleTextMessage обрабатывает сообщения в зависимости от состояния чата.
// Сообщение без активного состояния молча игнорируется.
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	text := update.Message.Text

	// Команды обрабатываются собственными handlers
	if strings.HasPrefix(text, "/") {
		return
	}

	currentState := h.stateManager.GetState(chatID)
	if currentState == state.StateNone {
		return
	}

	h.logger.Info("Dialog message",
		zap.Int64("chat_id", chatID),
		zap.String("state", string(currentState)))

	// Материал может быть не только текстом, поэтому этот шаг идёт до
	// проверки на пустой текст
	if currentState == state.StateMaterialPayload {
		h.handleMaterialPayloadStep(ctx, b, update)
		return
	}

	if text == "" {
		if currentState == state.StateAnnouncementText {
			sendText(ctx, b, chatID, "Текст объявления не может быть пустым.")
		}
		return
	}

	switch currentState {
	case state.StateAdminName:
		h.handleAdminNameStep(ctx, b, update)
	case state.StateAdminPassword:
		h.handleAdminPasswordStep(ctx, b, update)
	case state.StateAddSchedule:
		h.handleAddScheduleStep(ctx, b, update)
	case state.StateEditScheduleFind:
		h.handleEditScheduleFindStep(ctx, b, update)
	case state.StateEditScheduleFields:
		h.handleEditScheduleFieldsStep(ctx, b, update)
	case state.StateAnnouncementText:
		h.handleAnnouncementTextStep(ctx, b, update)
	default:
		h.logger.Warn("Unknown state", zap.String("state", string(currentState)))
	}
}

// handleAdminNameStep запоминает ФИО дословно и спрашивает пароль
func (h *Handlers) handleAdminNameStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID

	h.stateManager.SetData(chatID, state.DataAdminName, update.Message.Text)
	h.stateManager.SetState(chatID, state.StateAdminPassword)

	sendText(ctx, b, chatID, "Введите пароль:")
}

// checkCredentials сверяет пару (ФИО, пароль) с учётными данными.
// Совпадение строгое, без хеширования и без ограничения попыток.
func (h *Handlers) checkCredentials(name, password string) bool {
	return name == h.adminName && password == h.adminPassword
}

// handleAdminPasswordStep завершает вход в админ-панель
func (h *Handlers) handleAdminPasswordStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	password := update.Message.Text

	nameValue, _ := h.stateManager.GetData(chatID, state.DataAdminName)
	name, _ := nameValue.(string)

	h.stateManager.ClearState(chatID)

	if !h.checkCredentials(name, password) {
		h.logger.Warn("Admin login failed", zap.Int64("chat_id", chatID))
		sendText(ctx, b, chatID, "Неверное имя или пароль.")
		return
	}

	if previous, active := h.stateManager.AdminChatID(); active && previous != chatID {
		h.logger.Warn("Admin session taken over",
			zap.Int64("previous_chat_id", previous),
			zap.Int64("chat_id", chatID))
	}

	h.stateManager.BeginAdminSession(chatID)

	h.logger.Info("Admin logged in", zap.Int64("chat_id", chatID))

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        "Добро пожаловать в админ-панель!",
		ReplyMarkup: keyboard.AdminMenu(),
	})
}

// handleAddScheduleStep сохраняет новую строку расписания
func (h *Handlers) handleAddScheduleStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID

	entry := ParseScheduleAdd(update.Message.Text)
	if err := h.scheduleService.Add(ctx, entry); err != nil {
		// Состояние не сбрасываем: админ может повторить ввод
		h.logger.Error("Failed to add schedule", zap.Error(err))
		sendText(ctx, b, chatID, "Произошла ошибка при добавлении расписания.")
		return
	}

	h.stateManager.ClearState(chatID)
	sendText(ctx, b, chatID, "Расписание успешно добавлено.")
}

// handleEditScheduleFindStep ищет строку расписания по группе и дню
func (h *Handlers) handleEditScheduleFindStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID

	group, day := ParseScheduleFind(update.Message.Text)

	entry, err := h.scheduleService.Find(ctx, group, day)
	if err != nil {
		h.logger.Error("Failed to find schedule", zap.Error(err))
		sendText(ctx, b, chatID, "Произошла ошибка при поиске расписания.")
		return
	}

	if entry == nil {
		h.stateManager.ClearState(chatID)
		sendText(ctx, b, chatID, "Расписание не найдено. Попробуйте снова.")
		return
	}

	h.stateManager.SetState(chatID, state.StateEditScheduleFields)
	h.stateManager.SetData(chatID, state.DataScheduleEntry, entry)

	sendText(ctx, b, chatID, fmt.Sprintf(
		"Текущее расписание: %s, %s, %s\nВведите новое расписание в формате: время, предмет, местоположение.",
		entry.Time, entry.Subject, entry.Location))
}

// handleEditScheduleFieldsStep перезаписывает найденную строку расписания
func (h *Handlers) handleEditScheduleFieldsStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID

	entryValue, ok := h.stateManager.GetData(chatID, state.DataScheduleEntry)
	entry, castOK := entryValue.(*model.ScheduleEntry)
	if !ok || !castOK {
		h.logger.Error("Missing schedule entry in dialog data", zap.Int64("chat_id", chatID))
		h.stateManager.ClearState(chatID)
		sendText(ctx, b, chatID, "Произошла ошибка. Начните редактирование заново.")
		return
	}

	timeStr, subject, location := ParseScheduleFields(update.Message.Text)
	entry.Time = timeStr
	entry.Subject = subject
	entry.Location = location

	// Запись перезаписывается как есть: проверки конкурентных изменений нет
	if err := h.scheduleService.Update(ctx, entry); err != nil {
		h.logger.Error("Failed to update schedule", zap.Error(err))
		sendText(ctx, b, chatID, "Произошла ошибка при обновлении расписания.")
		return
	}

	h.stateManager.ClearState(chatID)
	sendText(ctx, b, chatID, "Расписание успешно обновлено.")
}

// handleAnnouncementTextStep сохраняет объявление и рассылает его всем
func (h *Handlers) handleAnnouncementTextStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	text := update.Message.Text

	announcement, err := h.announcementService.Publish(ctx, text)
	if err != nil {
		h.logger.Error("Failed to publish announcement", zap.Error(err))
		sendText(ctx, b, chatID, "Произошла ошибка при отправке объявления.")
		return
	}

	users, err := h.userService.ListAll(ctx)
	if err != nil {
		// Состояние не сбрасываем: админ может повторить отправку
		h.logger.Error("Failed to list users for announcement", zap.Error(err))
		sendText(ctx, b, chatID, "Произошла ошибка при отправке объявления.")
		return
	}

	broadcastID := uuid.NewString()
	h.logger.Info("Broadcasting announcement",
		zap.String("broadcast_id", broadcastID),
		zap.Int64("announcement_id", announcement.ID),
		zap.Int("recipients", len(users)))

	// Рассылка последовательная; сбой на одном получателе не прерывает остальных
	for _, user := range users {
		_, err := b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    user.TelegramID,
			Text:      "📢 *Объявление* 📢\n\n" + text,
			ParseMode: models.ParseModeMarkdown,
		})
		if err != nil {
			h.logger.Warn("Failed to deliver announcement",
				zap.Error(err),
				zap.String("broadcast_id", broadcastID),
				zap.Int64("telegram_id", user.TelegramID))
		}
	}

	h.stateManager.ClearState(chatID)
	sendText(ctx, b, chatID, "Объявление успешно отправлено всем пользователям.")
}

// handleMaterialPayloadStep классифицирует присланный материал,
// сохраняет его и рассылает группе-адресату
func (h *Handlers) handleMaterialPayloadStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID

	// Материал принимается только от владельца админ-сессии
	if !h.stateManager.IsAdmin(chatID) {
		return
	}

	groupValue, ok := h.stateManager.GetData(chatID, state.DataTargetGroup)
	group, castOK := groupValue.(string)
	if !ok || !castOK {
		h.logger.Error("Missing target group in dialog data", zap.Int64("chat_id", chatID))
		h.stateManager.ClearState(chatID)
		sendText(ctx, b, chatID, "Произошла ошибка. Начните отправку материала заново.")
		return
	}

	material, supported := ClassifyMaterial(update.Message)
	if !supported {
		// Состояние остаётся активным: админ может сразу прислать
		// поддерживаемый тип
		sendText(ctx, b, chatID, "Тип материала не поддерживается.")
		return
	}

	material.Group = group

	if err := h.materialService.Publish(ctx, material); err != nil {
		h.logger.Error("Failed to publish material", zap.Error(err))
		sendText(ctx, b, chatID, "Произошла ошибка при отправке материала.")
		return
	}

	users, err := h.userService.ListByGroup(ctx, group)
	if err != nil {
		// Состояние не сбрасываем: админ может повторить отправку
		h.logger.Error("Failed to list group users for material", zap.Error(err), zap.String("group", group))
		sendText(ctx, b, chatID, "Произошла ошибка при отправке материала.")
		return
	}

	broadcastID := uuid.NewString()
	h.logger.Info("Broadcasting material",
		zap.String("broadcast_id", broadcastID),
		zap.Int64("material_id", material.ID),
		zap.String("group", group),
		zap.Int("recipients", len(users)))

	for _, user := range users {
		if err := h.sendMaterial(ctx, b, user.TelegramID, material); err != nil {
			h.logger.Warn("Failed to deliver material",
				zap.Error(err),
				zap.String("broadcast_id", broadcastID),
				zap.Int64("telegram_id", user.TelegramID))
		}
	}

	h.stateManager.ClearState(chatID)
	sendText(ctx, b, chatID, fmt.Sprintf("Материал успешно отправлен группе %s.", group))
}

package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/mihppk/college_bot/internal/controller/callbacks"
	"github.com/mihppk/college_bot/internal/controller/keyboard"
	"github.com/mihppk/college_bot/internal/model"
)

const welcomePhotoURL = "https://iimg.su/s/19/hkFAzjwWh08fm2FBKUxsNuOReAY9C8Rng2t4UKk7.png"

const welcomeCaption = "Добро пожаловать в бота Михайловского профессионально-педагогического " +
	"колледжа имени В.В.Арнаутова! 🎓🤖\n" +
	"Этот бот предоставляет следующие возможности:\n" +
	"1. Просмотр расписания и учебных материалов.\n" +
	"2. Полезные источники обучения на вашей специальности.\n" +
	"3. Важные объявления для учащихся колледжа."

const usefulSourcesText = `
<b>Вот несколько полезных источников для вашей учебы:</b>
1. <a href="https://htmlbook.ru/">HTMLBook — изучение HTML и CSS</a>
2. <a href="https://gitverse.ru/">Gitverse — платформа для работы с исходным кодом</a>
3. <a href="https://github.com/">GitHub — хостинг для совместной разработки</a>
4. <a href="https://habr.com/ru/articles/">Habr — статьи и обсуждения на темы IT</a>
`

const helpText = "Контакты для связи:\n\n" +
	"📞 Телефон: +7 (84463) 4-28-45\n" +
	"📧 Email: info@mihppk.ru\n" +
	"🏢 Адрес: ул. Гоголя, д. 29, Михайловка, Россия"

const setGroupFirstText = "Пожалуйста, сначала установите вашу группу с помощью команды /start."

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID

	b.SendPhoto(ctx, &bot.SendPhotoParams{
		ChatID:  chatID,
		Photo:   &models.InputFileString{Data: welcomePhotoURL},
		Caption: welcomeCaption,
	})

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        "Меню:",
		ReplyMarkup: keyboard.MainMenu(),
	})
}

// HandleMenu обрабатывает команду /menu
func (h *Handlers) HandleMenu(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        "Меню:",
		ReplyMarkup: keyboard.MainMenu(),
	})
}

// HandleViewSchedule обрабатывает кнопку "Посмотреть расписание"
func (h *Handlers) HandleViewSchedule(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	userID := update.Message.From.ID

	// Сначала привязка к группе: без неё расписание не запрашиваем
	user, err := h.userService.GetByTelegramID(ctx, userID)
	if err != nil {
		h.logger.Error("Failed to get user binding", zap.Error(err), zap.Int64("telegram_id", userID))
		sendText(ctx, b, chatID, "Произошла ошибка. Попробуйте позже.")
		return
	}

	if user == nil || user.Group == "" {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        setGroupFirstText,
			ReplyMarkup: keyboard.BackOnly(),
		})
		return
	}

	entries, err := h.scheduleService.ForGroup(ctx, user.Group)
	if err != nil {
		h.logger.Error("Failed to load schedule", zap.Error(err), zap.String("group", user.Group))
		sendText(ctx, b, chatID, "Произошла ошибка. Попробуйте позже.")
		return
	}

	if len(entries) == 0 {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        "Расписание для вашей группы не найдено.",
			ReplyMarkup: keyboard.MainMenu(),
		})
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        FormatSchedule(user.Group, entries),
		ReplyMarkup: keyboard.MainMenu(),
	})
}

// HandleViewMaterials обрабатывает кнопку "Посмотреть материалы".
// Материалы отправляются по одному, новые первыми, с учётом вида материала.
func (h *Handlers) HandleViewMaterials(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	userID := update.Message.From.ID

	user, err := h.userService.GetByTelegramID(ctx, userID)
	if err != nil {
		h.logger.Error("Failed to get user binding", zap.Error(err), zap.Int64("telegram_id", userID))
		sendText(ctx, b, chatID, "Произошла ошибка. Попробуйте позже.")
		return
	}

	if user == nil || user.Group == "" {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        setGroupFirstText,
			ReplyMarkup: keyboard.BackOnly(),
		})
		return
	}

	materials, err := h.materialService.ForGroup(ctx, user.Group)
	if err != nil {
		h.logger.Error("Failed to load materials", zap.Error(err), zap.String("group", user.Group))
		sendText(ctx, b, chatID, "Произошла ошибка. Попробуйте позже.")
		return
	}

	if len(materials) == 0 {
		sendText(ctx, b, chatID, "Для вашей группы материалов нет.")
		return
	}

	for _, material := range materials {
		if err := h.sendMaterial(ctx, b, chatID, material); err != nil {
			h.logger.Warn("Failed to send material",
				zap.Error(err),
				zap.Int64("material_id", material.ID),
				zap.Int64("chat_id", chatID))
		}
	}
}

// HandleUsefulSources обрабатывает кнопку "Полезные источники"
func (h *Handlers) HandleUsefulSources(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:             update.Message.Chat.ID,
		Text:               usefulSourcesText,
		ParseMode:          models.ParseModeHTML,
		LinkPreviewOptions: &models.LinkPreviewOptions{IsDisabled: bot.True()},
		ReplyMarkup:        keyboard.MainMenu(),
	})
}

// HandleResources обрабатывает кнопку "Наши ресурсы"
func (h *Handlers) HandleResources(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	markup := keyboard.NewBuilder().
		Row(keyboard.URLButton("Официальный сайт", "https://mihppk.ru/")).
		Row(keyboard.URLButton("Группа ВКонтакте", "https://vk.com/mih_ppk_professionalitet")).
		Row(keyboard.URLButton("Навигаторы Детства", "https://vk.com/mihppk_nd")).
		Row(keyboard.Button("Назад", callbacks.BackToMenu)).
		Build()

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        "Наши ресурсы:",
		ReplyMarkup: markup,
	})
}

// HandleHelp обрабатывает кнопку "Помощь"
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        helpText,
		ReplyMarkup: keyboard.MainMenu(),
	})
}

// HandleChangeGroup обрабатывает кнопку "Изменить группу"
func (h *Handlers) HandleChangeGroup(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        "Выберите вашу новую группу:",
		ReplyMarkup: keyboard.GroupSelect(func(group string) string {
			return group + callbacks.ChangeGroupSuffix
		}),
	})
}

// HandleAnnouncements обрабатывает команду /announcements
func (h *Handlers) HandleAnnouncements(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID

	announcements, err := h.announcementService.List(ctx)
	if err != nil {
		h.logger.Error("Failed to list announcements", zap.Error(err))
		sendText(ctx, b, chatID, "Произошла ошибка. Попробуйте позже.")
		return
	}

	if len(announcements) == 0 {
		sendText(ctx, b, chatID, "Объявлений нет.")
		return
	}

	sendText(ctx, b, chatID, FormatAnnouncements(announcements))
}

// sendMaterial отправляет материал в чат с учётом его вида
func (h *Handlers) sendMaterial(ctx context.Context, b *bot.Bot, chatID int64, material *model.Material) error {
	if material.Kind == model.MaterialKindText {
		_, err := b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   material.Title + ":\n" + material.Description,
		})
		return err
	}

	if _, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   material.Title + ":",
	}); err != nil {
		return err
	}

	switch material.Kind {
	case model.MaterialKindDocument:
		_, err := b.SendDocument(ctx, &bot.SendDocumentParams{
			ChatID:   chatID,
			Document: &models.InputFileString{Data: material.FileID},
		})
		return err
	case model.MaterialKindPhoto:
		_, err := b.SendPhoto(ctx, &bot.SendPhotoParams{
			ChatID: chatID,
			Photo:  &models.InputFileString{Data: material.FileID},
		})
		return err
	case model.MaterialKindVideo:
		_, err := b.SendVideo(ctx, &bot.SendVideoParams{
			ChatID: chatID,
			Video:  &models.InputFileString{Data: material.FileID},
		})
		return err
	}

	return nil
}

package keyboard

import (
	"github.com/go-telegram/bot/models"

	"github.com/mihppk/college_bot/internal/model"
)

// Надписи кнопок главного меню и админ-панели
const (
	BtnViewSchedule   = "Посмотреть расписание"
	BtnViewMaterials  = "Посмотреть материалы"
	BtnUsefulSources  = "Полезные источники"
	BtnChangeGroup    = "Изменить группу"
	BtnResources      = "Наши ресурсы"
	BtnHelp           = "Помощь"
	BtnBack           = "Назад"
	BtnAddSchedule    = "Добавить расписание"
	BtnAddMaterial    = "Добавить материал"
	BtnAddAnnounce    = "Добавить объявление"
	BtnEditSchedule   = "Редактировать расписание"
	BtnStats          = "Просмотреть статистику"
	BtnClearMaterials = "Очистить материалы"
)

// MainMenu — reply-клавиатура главного меню студента
func MainMenu() *models.ReplyKeyboardMarkup {
	return &models.ReplyKeyboardMarkup{
		Keyboard: [][]models.KeyboardButton{
			{{Text: BtnViewSchedule}, {Text: BtnUsefulSources}},
			{{Text: BtnViewMaterials}, {Text: BtnChangeGroup}},
			{{Text: BtnResources}, {Text: BtnHelp}},
		},
		ResizeKeyboard: true,
	}
}

// AdminMenu — reply-клавиатура админ-панели
func AdminMenu() *models.ReplyKeyboardMarkup {
	return &models.ReplyKeyboardMarkup{
		Keyboard: [][]models.KeyboardButton{
			{{Text: BtnAddSchedule}, {Text: BtnAddMaterial}},
			{{Text: BtnAddAnnounce}, {Text: BtnEditSchedule}},
			{{Text: BtnStats}, {Text: BtnClearMaterials}},
			{{Text: BtnBack}},
		},
		ResizeKeyboard: true,
	}
}

// BackOnly — reply-клавиатура с единственной кнопкой "Назад"
func BackOnly() *models.ReplyKeyboardMarkup {
	return &models.ReplyKeyboardMarkup{
		Keyboard: [][]models.KeyboardButton{
			{{Text: BtnBack}},
		},
		ResizeKeyboard: true,
	}
}

// GroupSelect — inline-клавиатура выбора группы; callback data строится
// функцией из кода группы (суффикс или префикс зависят от сценария)
func GroupSelect(callbackData func(group string) string) *models.InlineKeyboardMarkup {
	b := NewBuilder()
	for _, g := range model.Groups {
		b.Row(Button(g, callbackData(g)))
	}
	return b.Build()
}

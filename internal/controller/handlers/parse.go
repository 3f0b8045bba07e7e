package handlers

import (
	"strings"

	"github.com/go-telegram/bot/models"

	"github.com/mihppk/college_bot/internal/model"
)

// splitFields разбивает ввод админа на n полей по разделителю ", ".
// Количество полей не проверяется: недостающие остаются пустыми строками,
// лишние отбрасываются.
func splitFields(text string, n int) []string {
	parts := strings.Split(text, ", ")
	fields := make([]string, n)
	copy(fields, parts)
	return fields
}

// ParseScheduleAdd разбирает ввод "группа, день, время, предмет, местоположение"
func ParseScheduleAdd(text string) *model.ScheduleEntry {
	fields := splitFields(text, 5)
	return &model.ScheduleEntry{
		Group:    fields[0],
		Day:      fields[1],
		Time:     fields[2],
		Subject:  fields[3],
		Location: fields[4],
	}
}

// ParseScheduleFind разбирает ввод "группа, день"
func ParseScheduleFind(text string) (group, day string) {
	fields := splitFields(text, 2)
	return fields[0], fields[1]
}

// ParseScheduleFields разбирает ввод "время, предмет, местоположение"
func ParseScheduleFields(text string) (timeStr, subject, location string) {
	fields := splitFields(text, 3)
	return fields[0], fields[1], fields[2]
}

// ClassifyMaterial определяет вид материала по входящему сообщению.
// Возвращает false, если тип вложения не поддерживается.
func ClassifyMaterial(msg *models.Message) (*model.Material, bool) {
	switch {
	case msg.Text != "":
		return &model.Material{
			Kind:        model.MaterialKindText,
			Title:       "Текстовый материал",
			Description: msg.Text,
		}, true

	case msg.Document != nil:
		return &model.Material{
			Kind:   model.MaterialKindDocument,
			Title:  msg.Document.FileName,
			FileID: msg.Document.FileID,
		}, true

	case len(msg.Photo) > 0:
		// Берём последнюю (самую большую) фотографию
		return &model.Material{
			Kind:   model.MaterialKindPhoto,
			Title:  "Фотография",
			FileID: msg.Photo[len(msg.Photo)-1].FileID,
		}, true

	case msg.Video != nil:
		return &model.Material{
			Kind:   model.MaterialKindVideo,
			Title:  "Видео",
			FileID: msg.Video.FileID,
		}, true
	}

	return nil, false
}

package handlers

import (
	"testing"

	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/require"

	"github.com/mihppk/college_bot/internal/model"
)

func TestParseScheduleAdd(t *testing.T) {
	entry := ParseScheduleAdd("11Т, Monday, 09:00, Math, Room 4")

	require.Equal(t, "11Т", entry.Group)
	require.Equal(t, "Monday", entry.Day)
	require.Equal(t, "09:00", entry.Time)
	require.Equal(t, "Math", entry.Subject)
	require.Equal(t, "Room 4", entry.Location)
}

func TestParseScheduleAddMissingFields(t *testing.T) {
	// Количество полей не проверяется: недостающие остаются пустыми
	entry := ParseScheduleAdd("11Т, Monday")

	require.Equal(t, "11Т", entry.Group)
	require.Equal(t, "Monday", entry.Day)
	require.Empty(t, entry.Time)
	require.Empty(t, entry.Subject)
	require.Empty(t, entry.Location)
}

func TestParseScheduleAddExtraFieldsDropped(t *testing.T) {
	entry := ParseScheduleAdd("11Т, Monday, 09:00, Math, Room 4, extra")

	require.Equal(t, "Room 4", entry.Location)
}

func TestParseScheduleFind(t *testing.T) {
	group, day := ParseScheduleFind("21Т, Tuesday")

	require.Equal(t, "21Т", group)
	require.Equal(t, "Tuesday", day)
}

func TestParseScheduleFields(t *testing.T) {
	timeStr, subject, location := ParseScheduleFields("10:30, Physics, Room 7")

	require.Equal(t, "10:30", timeStr)
	require.Equal(t, "Physics", subject)
	require.Equal(t, "Room 7", location)
}

func TestClassifyMaterialText(t *testing.T) {
	material, ok := ClassifyMaterial(&models.Message{Text: "Конспект лекции"})

	require.True(t, ok)
	require.Equal(t, model.MaterialKindText, material.Kind)
	require.Equal(t, "Текстовый материал", material.Title)
	require.Equal(t, "Конспект лекции", material.Description)
	require.Empty(t, material.FileID)
}

func TestClassifyMaterialDocument(t *testing.T) {
	material, ok := ClassifyMaterial(&models.Message{
		Document: &models.Document{
			FileID:   "doc-file-id",
			FileName: "lecture.pdf",
		},
	})

	require.True(t, ok)
	require.Equal(t, model.MaterialKindDocument, material.Kind)
	require.Equal(t, "lecture.pdf", material.Title)
	require.Equal(t, "doc-file-id", material.FileID)
}

func TestClassifyMaterialPhotoPicksLargest(t *testing.T) {
	material, ok := ClassifyMaterial(&models.Message{
		Photo: []models.PhotoSize{
			{FileID: "small"},
			{FileID: "medium"},
			{FileID: "large"},
		},
	})

	require.True(t, ok)
	require.Equal(t, model.MaterialKindPhoto, material.Kind)
	require.Equal(t, "Фотография", material.Title)
	require.Equal(t, "large", material.FileID)
}

func TestClassifyMaterialVideo(t *testing.T) {
	material, ok := ClassifyMaterial(&models.Message{
		Video: &models.Video{FileID: "video-file-id"},
	})

	require.True(t, ok)
	require.Equal(t, model.MaterialKindVideo, material.Kind)
	require.Equal(t, "Видео", material.Title)
	require.Equal(t, "video-file-id", material.FileID)
}

func TestClassifyMaterialUnsupported(t *testing.T) {
	material, ok := ClassifyMaterial(&models.Message{})

	require.False(t, ok)
	require.Nil(t, material)
}

package model

import "time"

type MaterialKind string

const (
	MaterialKindText     MaterialKind = "text"
	MaterialKindDocument MaterialKind = "document"
	MaterialKindPhoto    MaterialKind = "photo"
	MaterialKindVideo    MaterialKind = "video"
)

// DefaultMaterialDescription подставляется, когда админ не указал описание
const DefaultMaterialDescription = "Нет описания"

// Material — учебный материал, разосланный группе.
// Для kind=text значим Description; для document/photo/video обязателен FileID.
type Material struct {
	ID          int64        `json:"id"`
	Group       string       `json:"group"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Kind        MaterialKind `json:"kind"`
	FileID      string       `json:"file_id"` // пустая строка для текстовых материалов
	CreatedAt   time.Time    `json:"created_at"`
}

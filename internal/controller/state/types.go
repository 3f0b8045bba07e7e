package state

// UserState представляет текущее состояние чата в диалоге.
// Состояние определяет, как будет истолковано следующее входящее сообщение.
type UserState string

const (
	StateNone UserState = "" // Нет активного состояния

	// Вход в админ-панель: ФИО, затем пароль
	StateAdminName     UserState = "admin_name"
	StateAdminPassword UserState = "admin_password"

	// Админские диалоги
	StateAddSchedule        UserState = "add_schedule"
	StateEditScheduleFind   UserState = "edit_schedule_find"
	StateEditScheduleFields UserState = "edit_schedule_fields"
	StateMaterialPayload    UserState = "material_payload"
	StateAnnouncementText   UserState = "announcement_text"
)

// Ключи временных данных диалогов
const (
	DataAdminName     = "admin_name"     // ФИО, введённое на первом шаге входа
	DataTargetGroup   = "target_group"   // группа-адресат материала
	DataScheduleEntry = "schedule_entry" // найденная строка расписания для редактирования
)

// UserData хранит состояние и временные данные чата во время диалога
type UserData struct {
	State UserState
	Data  map[string]interface{}
}

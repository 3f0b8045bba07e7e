package handlers

import (
	"go.uber.org/zap"

	"github.com/mihppk/college_bot/internal/controller/state"
	"github.com/mihppk/college_bot/internal/service"
)

// Handlers содержит все зависимости для обработки команд
type Handlers struct {
	userService         *service.UserService
	scheduleService     *service.ScheduleService
	materialService     *service.MaterialService
	announcementService *service.AnnouncementService
	stateManager        *state.Manager
	logger              *zap.Logger

	// Учётные данные админ-панели: точное совпадение двух строк,
	// без хеширования и без ограничения попыток
	adminName     string
	adminPassword string
}

// NewHandlers создаёт новый обработчик команд
func NewHandlers(
	userService *service.UserService,
	scheduleService *service.ScheduleService,
	materialService *service.MaterialService,
	announcementService *service.AnnouncementService,
	stateManager *state.Manager,
	logger *zap.Logger,
	adminName string,
	adminPassword string,
) *Handlers {
	return &Handlers{
		userService:         userService,
		scheduleService:     scheduleService,
		materialService:     materialService,
		announcementService: announcementService,
		stateManager:        stateManager,
		logger:              logger,
		adminName:           adminName,
		adminPassword:       adminPassword,
	}
}

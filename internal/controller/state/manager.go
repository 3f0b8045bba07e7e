package state

import (
	"sync"
)

// Manager управляет состояниями чатов и единственной админ-сессией.
//
// Состояния привязаны к chat ID: диалог, начатый в одном чате, невидим для
// остальных. Повторное назначение состояния тому же чату заменяет предыдущее
// (очереди нет). Состояния живут только в памяти процесса и не имеют таймаута.
type Manager struct {
	mu     sync.RWMutex
	states map[int64]*UserData // chatID -> UserData

	// Админ-сессия одна на весь процесс; владелец определяется по chat ID
	adminActive bool
	adminChatID int64
}

// NewManager создаёт новый менеджер состояний
func NewManager() *Manager {
	return &Manager{
		states: make(map[int64]*UserData),
	}
}

// GetState получает текущее состояние чата
func (sm *Manager) GetState(chatID int64) UserState {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if userData, exists := sm.states[chatID]; exists {
		return userData.State
	}
	return StateNone
}

// SetState устанавливает состояние чата
func (sm *Manager) SetState(chatID int64, state UserState) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if state == StateNone {
		delete(sm.states, chatID)
		return
	}

	if _, exists := sm.states[chatID]; !exists {
		sm.states[chatID] = &UserData{
			State: state,
			Data:  make(map[string]interface{}),
		}
	} else {
		sm.states[chatID].State = state
	}
}

// GetData получает временные данные чата
func (sm *Manager) GetData(chatID int64, key string) (interface{}, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if userData, exists := sm.states[chatID]; exists {
		value, ok := userData.Data[key]
		return value, ok
	}
	return nil, false
}

// SetData устанавливает временные данные чата
func (sm *Manager) SetData(chatID int64, key string, value interface{}) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.states[chatID]; !exists {
		sm.states[chatID] = &UserData{
			State: StateNone,
			Data:  make(map[string]interface{}),
		}
	}
	sm.states[chatID].Data[key] = value
}

// ClearState очищает состояние и данные чата
func (sm *Manager) ClearState(chatID int64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	delete(sm.states, chatID)
}

// BeginAdminSession выдаёт админ-сессию чату.
// Сессия одна: повторный вход из другого чата перехватывает её.
func (sm *Manager) BeginAdminSession(chatID int64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.adminActive = true
	sm.adminChatID = chatID
}

// EndAdminSession завершает админ-сессию
func (sm *Manager) EndAdminSession() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.adminActive = false
	sm.adminChatID = 0
}

// IsAdmin проверяет, владеет ли чат активной админ-сессией.
// Проверяется на каждом привилегированном действии: admin-режим сам по себе
// не даёт доступа чату, который сессию не открывал.
func (sm *Manager) IsAdmin(chatID int64) bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.adminActive && sm.adminChatID == chatID
}

// AdminChatID возвращает чат владельца сессии (0, если сессии нет)
func (sm *Manager) AdminChatID() (int64, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.adminActive {
		return 0, false
	}
	return sm.adminChatID, true
}

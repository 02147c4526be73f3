package state

import (
	"sync"
	"time"

	"github.com/Freeeeeet/booking_calendar/internal/model"
)

// Manager хранит состояние календаря по чатам
type Manager struct {
	mu          sync.RWMutex
	states      map[int64]ChatState // chatID -> ChatState
	defaultView model.CalendarView
}

// NewManager создаёт менеджер, новые чаты открываются в view
func NewManager(view model.CalendarView) *Manager {
	if !view.Valid() {
		view = model.CalendarViewWeek
	}
	return &Manager{
		states:      make(map[int64]ChatState),
		defaultView: view,
	}
}

// Get возвращает состояние чата
// Новый чат получает вид по умолчанию на дату now
func (sm *Manager) Get(chatID int64, now time.Time) ChatState {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if st, exists := sm.states[chatID]; exists {
		return st
	}
	return ChatState{View: sm.defaultView, Date: now}
}

// Update применяет fn к состоянию чата и возвращает результат
func (sm *Manager) Update(chatID int64, now time.Time, fn func(st *ChatState)) ChatState {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	st, exists := sm.states[chatID]
	if !exists {
		st = ChatState{View: sm.defaultView, Date: now}
	}
	fn(&st)
	sm.states[chatID] = st
	return st
}

// SetPending запоминает действие до подтверждения
func (sm *Manager) SetPending(chatID int64, now time.Time, p *Pending) {
	sm.Update(chatID, now, func(st *ChatState) { st.Pending = p })
}

// TakePending возвращает отложенное действие и сбрасывает его
func (sm *Manager) TakePending(chatID int64) *Pending {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	st, exists := sm.states[chatID]
	if !exists || st.Pending == nil {
		return nil
	}
	p := st.Pending
	st.Pending = nil
	sm.states[chatID] = st
	return p
}

// Clear удаляет состояние чата
func (sm *Manager) Clear(chatID int64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	delete(sm.states, chatID)
}

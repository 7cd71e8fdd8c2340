package session

import (
	"sync"
	"time"

	"dietbot/calc"
)

// State — закрытый набор состояний диалога.
type State string

const (
	StateMenu           State = "menu"
	StateHeight         State = "height"
	StateWeight         State = "weight"
	StateAge            State = "age"
	StateGender         State = "gender"
	StateActivity       State = "activity"
	StateVideo          State = "video"
	StateCurrencyFrom   State = "currency_from"
	StateCurrencyTo     State = "currency_to"
	StateCurrencyAmount State = "currency_amount"
	StateWeather        State = "weather"
	StateFeedback       State = "feedback"
	StateEnd            State = "end"
)

// Metrics — поля анкеты. Поле заполнено тогда и только тогда,
// когда соответствующий шаг анкеты успешно пройден.
type Metrics struct {
	HeightCm *float64
	WeightKg *float64
	AgeYears *float64
	Gender   *calc.Gender
	Activity *float64
}

// Complete — все поля для расчёта собраны.
func (m Metrics) Complete() bool {
	return m.HeightCm != nil && m.WeightKg != nil && m.AgeYears != nil &&
		m.Gender != nil && m.Activity != nil
}

// Currency — черновик запроса конвертации.
type Currency struct {
	From string
	To   string
}

type Session struct {
	State    State
	Metrics  Metrics
	Currency Currency
	LastSeen time.Time
}

// ResetFields очищает введённые данные, не трогая состояние.
func (s *Session) ResetFields() {
	s.Metrics = Metrics{}
	s.Currency = Currency{}
}

type Manager struct {
	sessions map[int64]*Session
	mu       sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[int64]*Session),
	}
}

// Get возвращает сессию чата, при первом обращении создаёт новую в меню.
// Отметка LastSeen обновляется под полной блокировкой, чтобы не гоняться
// с фоновой чисткой.
func (m *Manager) Get(chatID int64) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[chatID]
	if !ok {
		s = &Session{State: StateMenu}
		m.sessions[chatID] = s
	}
	s.LastSeen = time.Now()
	return s
}

func (m *Manager) Reset(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, chatID)
}

// EvictIdle удаляет сессии, к которым не обращались дольше ttl.
// Возвращает число удалённых.
func (m *Manager) EvictIdle(ttl time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	deadline := time.Now().Add(-ttl)
	n := 0
	for chatID, s := range m.sessions {
		if s.LastSeen.Before(deadline) {
			delete(m.sessions, chatID)
			n++
		}
	}
	return n
}

// StartJanitor запускает фоновую чистку простаивающих сессий.
func (m *Manager) StartJanitor(ttl, every time.Duration) {
	ticker := time.NewTicker(every)
	go func() {
		for range ticker.C {
			m.EvictIdle(ttl)
		}
	}()
}

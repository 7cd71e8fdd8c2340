package session

import (
	"sync"
	"testing"
	"time"
)

func TestGetCreatesInMenu(t *testing.T) {
	m := NewManager()
	s := m.Get(1)
	if s.State != StateMenu {
		t.Errorf("новая сессия в состоянии %v, ожидали menu", s.State)
	}
	if s.Metrics.Complete() {
		t.Error("новая сессия не должна иметь заполненных полей")
	}
}

func TestGetReturnsSameSession(t *testing.T) {
	m := NewManager()
	s1 := m.Get(42)
	s1.State = StateHeight
	s2 := m.Get(42)
	if s1 != s2 {
		t.Error("Get должен возвращать ту же сессию для того же чата")
	}
	if s2.State != StateHeight {
		t.Errorf("состояние потеряно: %v", s2.State)
	}
}

func TestReset(t *testing.T) {
	m := NewManager()
	s := m.Get(7)
	h := 180.0
	s.Metrics.HeightCm = &h
	s.State = StateWeight

	m.Reset(7)

	s2 := m.Get(7)
	if s2.State != StateMenu || s2.Metrics.HeightCm != nil {
		t.Errorf("после Reset ожидали чистую сессию, получили %+v", s2)
	}
}

func TestEvictIdle(t *testing.T) {
	m := NewManager()
	old := m.Get(1)
	old.LastSeen = time.Now().Add(-2 * time.Hour)
	m.Get(2)

	n := m.EvictIdle(time.Hour)
	if n != 1 {
		t.Errorf("EvictIdle удалил %d сессий, ожидали 1", n)
	}

	m.mu.RLock()
	_, gone := m.sessions[1]
	_, kept := m.sessions[2]
	m.mu.RUnlock()
	if gone {
		t.Error("простаивающая сессия не удалена")
	}
	if !kept {
		t.Error("активная сессия удалена зря")
	}
}

func TestConcurrentGet(t *testing.T) {
	m := NewManager()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m.Get(int64(i % 5))
		}(i)
	}
	wg.Wait()

	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.sessions) != 5 {
		t.Errorf("ожидали 5 сессий, получили %d", len(m.sessions))
	}
}

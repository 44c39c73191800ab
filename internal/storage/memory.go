package storage

import "sync"

// Memory is an in-process preference store. It is used when the database
// cannot be opened and in tests.
type Memory struct {
	mu     sync.Mutex
	values map[string]int
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]int)}
}

// Int returns the stored value for key, or def when nothing is stored.
func (m *Memory) Int(key string, def int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if v, ok := m.values[key]; ok {
		return v, nil
	}
	return def, nil
}

// SetInt stores value under key.
func (m *Memory) SetInt(key string, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

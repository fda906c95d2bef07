package repository

import (
	"context"
	"sync"

	"github.com/samandr77/microservices/dashboard/internal/entity"
)

// MemorySlots is the default slot store when no database is configured.
type MemorySlots struct {
	mu    sync.Mutex
	slots map[string]string
}

func NewMemorySlots() *MemorySlots {
	return &MemorySlots{
		slots: make(map[string]string),
	}
}

func (m *MemorySlots) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.slots[key]
	if !ok {
		return "", entity.ErrNotFound
	}

	return v, nil
}

func (m *MemorySlots) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.slots[key] = value

	return nil
}

func (m *MemorySlots) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.slots, key)

	return nil
}

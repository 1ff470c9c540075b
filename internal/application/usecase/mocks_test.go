package usecase_test

import (
	"context"
	"sync"
	"time"

	"github.com/datanautics/amortization-service/internal/domain/event"
	"github.com/datanautics/amortization-service/internal/domain/model"
)

type mockScheduleRepository struct {
	mu      sync.Mutex
	saved   []model.StoredSchedule
	saveErr error
}

func (m *mockScheduleRepository) Save(_ context.Context, stored model.StoredSchedule) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, stored)
	return nil
}

func (m *mockScheduleRepository) FindByFingerprint(_ context.Context, fingerprint string) (model.StoredSchedule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.saved {
		if s.Fingerprint == fingerprint {
			return s, nil
		}
	}
	return model.StoredSchedule{}, model.ErrInvalidConfiguration
}

type mockScheduleCache struct {
	mu      sync.Mutex
	entries map[string]string
	setErr  error
	gets    int
	hits    int
}

func newMockCache() *mockScheduleCache {
	return &mockScheduleCache{entries: make(map[string]string)}
}

func (m *mockScheduleCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	v, ok := m.entries[key]
	if ok {
		m.hits++
	}
	return v, ok
}

func (m *mockScheduleCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.entries[key] = value
	return nil
}

type mockEventPublisher struct {
	mu         sync.Mutex
	published  []event.DomainEvent
	publishErr error
}

func (m *mockEventPublisher) Publish(_ context.Context, events ...event.DomainEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.publishErr != nil {
		return m.publishErr
	}
	m.published = append(m.published, events...)
	return nil
}

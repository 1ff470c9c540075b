package port

import (
	"context"
	"time"

	"github.com/datanautics/amortization-service/internal/domain/event"
	"github.com/datanautics/amortization-service/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// ScheduleRepository persists and retrieves computed schedules.
type ScheduleRepository interface {
	Save(ctx context.Context, stored model.StoredSchedule) error
	FindByFingerprint(ctx context.Context, fingerprint string) (model.StoredSchedule, error)
}

// ScheduleCache caches serialized projection output keyed by loan
// fingerprint and projection.
type ScheduleCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}

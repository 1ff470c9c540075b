package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/datanautics/amortization-service/internal/domain/model"
)

// ErrScheduleNotFound is returned when no schedule matches the lookup.
var ErrScheduleNotFound = errors.New("schedule not found")

// ScheduleRepo implements port.ScheduleRepository. Each computed schedule
// is stored as one row with its periods in a JSONB document; the
// fingerprint deduplicates recomputations of the same loan.
type ScheduleRepo struct {
	pool *pgxpool.Pool
}

// NewScheduleRepo creates a new PostgreSQL-backed schedule repository.
func NewScheduleRepo(pool *pgxpool.Pool) *ScheduleRepo {
	return &ScheduleRepo{pool: pool}
}

// Save persists a computed schedule. Re-saving the same fingerprint
// refreshes the stored document instead of duplicating it.
func (r *ScheduleRepo) Save(ctx context.Context, stored model.StoredSchedule) error {
	spec, err := json.Marshal(stored.Schedule.Spec)
	if err != nil {
		return fmt.Errorf("marshal loan spec: %w", err)
	}
	periods, err := json.Marshal(stored.Schedule.Periods)
	if err != nil {
		return fmt.Errorf("marshal periods: %w", err)
	}

	query := `
		INSERT INTO amortization_schedules (id, fingerprint, loan_spec, periods, term_periods, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (fingerprint) DO UPDATE SET
			loan_spec  = EXCLUDED.loan_spec,
			periods    = EXCLUDED.periods,
			created_at = EXCLUDED.created_at
	`
	if _, err := r.pool.Exec(ctx, query,
		stored.ID, stored.Fingerprint, spec, periods,
		stored.Schedule.Spec.TermPeriods, stored.CreatedAt,
	); err != nil {
		return fmt.Errorf("save schedule: %w", err)
	}
	return nil
}

// FindByFingerprint retrieves a stored schedule by its loan fingerprint.
func (r *ScheduleRepo) FindByFingerprint(ctx context.Context, fingerprint string) (model.StoredSchedule, error) {
	query := `
		SELECT id, fingerprint, loan_spec, periods, created_at
		FROM amortization_schedules
		WHERE fingerprint = $1
	`

	var stored model.StoredSchedule
	var spec, periods []byte
	err := r.pool.QueryRow(ctx, query, fingerprint).Scan(
		&stored.ID, &stored.Fingerprint, &spec, &periods, &stored.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.StoredSchedule{}, ErrScheduleNotFound
	}
	if err != nil {
		return model.StoredSchedule{}, fmt.Errorf("find schedule: %w", err)
	}

	if err := json.Unmarshal(spec, &stored.Schedule.Spec); err != nil {
		return model.StoredSchedule{}, fmt.Errorf("unmarshal loan spec: %w", err)
	}
	if err := json.Unmarshal(periods, &stored.Schedule.Periods); err != nil {
		return model.StoredSchedule{}, fmt.Errorf("unmarshal periods: %w", err)
	}
	return stored, nil
}

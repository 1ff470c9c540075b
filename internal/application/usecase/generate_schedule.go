package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/datanautics/amortization-service/internal/application/dto"
	"github.com/datanautics/amortization-service/internal/domain/event"
	"github.com/datanautics/amortization-service/internal/domain/model"
	"github.com/datanautics/amortization-service/internal/domain/port"
	"github.com/datanautics/amortization-service/internal/domain/service"
)

// GenerateScheduleUseCase expands a batch of loans into projection rows.
// Cached projections are served without recomputation; fresh schedules are
// persisted and announced best-effort, so storage or broker trouble never
// fails a computation.
type GenerateScheduleUseCase struct {
	batch     *service.BatchCalculator
	repo      port.ScheduleRepository
	cache     port.ScheduleCache
	publisher port.EventPublisher
	cacheTTL  time.Duration
	logger    *slog.Logger
}

// NewGenerateScheduleUseCase wires dependencies.
func NewGenerateScheduleUseCase(
	batch *service.BatchCalculator,
	repo port.ScheduleRepository,
	cache port.ScheduleCache,
	publisher port.EventPublisher,
	cacheTTL time.Duration,
	logger *slog.Logger,
) *GenerateScheduleUseCase {
	return &GenerateScheduleUseCase{
		batch:     batch,
		repo:      repo,
		cache:     cache,
		publisher: publisher,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// loanRows buffers the output rows of one loan so the response can be
// flattened in input order regardless of computation order.
type loanRows struct {
	breakdown []dto.BreakdownRow
	values    []dto.ValueRow
}

// Execute computes the requested projection for every loan of the batch.
// Loan failures are reported per index; only a malformed request (unknown
// projection, empty batch) fails as a whole.
func (uc *GenerateScheduleUseCase) Execute(
	ctx context.Context,
	req dto.GenerateScheduleRequest,
) (dto.GenerateScheduleResponse, error) {
	switch req.Projection {
	case dto.ProjectionFullBreakdown, dto.ProjectionCumulativeInterest,
		dto.ProjectionOutstandingInterest, dto.ProjectionOutstandingPayments:
	default:
		return dto.GenerateScheduleResponse{}, fmt.Errorf("%w: unknown projection %q", model.ErrInvalidConfiguration, req.Projection)
	}
	if len(req.Loans) == 0 {
		return dto.GenerateScheduleResponse{}, fmt.Errorf("%w: empty loan batch", model.ErrInvalidConfiguration)
	}

	resp := dto.GenerateScheduleResponse{Projection: req.Projection}
	rows := make([]loanRows, len(req.Loans))

	// First pass: parse inputs and satisfy what we can from the cache.
	type job struct {
		index       int
		spec        model.LoanSpec
		fingerprint string
	}
	var jobs []job
	specs := make([]model.LoanSpec, 0, len(req.Loans))

	for i, in := range req.Loans {
		spec, err := toLoanSpec(in)
		if err != nil {
			resp.Errors = append(resp.Errors, dto.LoanError{Index: i, Message: err.Error()})
			continue
		}

		fp := Fingerprint(spec)
		if cached, ok := uc.lookupCache(ctx, fp, req.Projection); ok {
			if err := unmarshalRows(req.Projection, cached, &rows[i]); err == nil {
				continue
			}
			uc.logger.WarnContext(ctx, "discarding undecodable cache entry", "fingerprint", fp)
		}

		jobs = append(jobs, job{index: i, spec: spec, fingerprint: fp})
		specs = append(specs, spec)
	}

	results := uc.batch.Run(ctx, specs)

	for j, res := range results {
		jb := jobs[j]
		if res.Err != nil {
			resp.Errors = append(resp.Errors, dto.LoanError{Index: jb.index, Message: res.Err.Error()})
			continue
		}

		in := req.Loans[jb.index]
		rows[jb.index] = projectRows(in, res.Schedule, req.Projection)

		uc.storeCache(ctx, jb.fingerprint, req.Projection, rows[jb.index])
		uc.persistAndPublish(ctx, jb.fingerprint, req.Projection, res.Schedule)
	}

	for _, r := range rows {
		resp.Breakdown = append(resp.Breakdown, r.breakdown...)
		resp.CumulativeInterest = appendValues(resp.CumulativeInterest, req.Projection, dto.ProjectionCumulativeInterest, r.values)
		resp.OutstandingInterest = appendValues(resp.OutstandingInterest, req.Projection, dto.ProjectionOutstandingInterest, r.values)
		resp.OutstandingPayments = appendValues(resp.OutstandingPayments, req.Projection, dto.ProjectionOutstandingPayments, r.values)
	}

	return resp, nil
}

func appendValues(dst []dto.ValueRow, requested, projection string, values []dto.ValueRow) []dto.ValueRow {
	if requested != projection {
		return dst
	}
	return append(dst, values...)
}

// lookupCache returns the serialized rows for one loan, if present.
func (uc *GenerateScheduleUseCase) lookupCache(ctx context.Context, fingerprint, projection string) (string, bool) {
	return uc.cache.Get(ctx, cacheKey(fingerprint, projection))
}

func (uc *GenerateScheduleUseCase) storeCache(ctx context.Context, fingerprint, projection string, r loanRows) {
	payload, err := marshalRows(projection, r)
	if err != nil {
		uc.logger.WarnContext(ctx, "failed to serialize rows for cache", "error", err)
		return
	}
	if err := uc.cache.Set(ctx, cacheKey(fingerprint, projection), payload, uc.cacheTTL); err != nil {
		uc.logger.WarnContext(ctx, "failed to cache schedule rows", "fingerprint", fingerprint, "error", err)
	}
}

// persistAndPublish stores the full schedule and announces it. Both are
// best-effort: the computed result is already in hand.
func (uc *GenerateScheduleUseCase) persistAndPublish(ctx context.Context, fingerprint, projection string, sched model.Schedule) {
	stored := model.StoredSchedule{
		ID:          uuid.New().String(),
		Fingerprint: fingerprint,
		Schedule:    sched,
		CreatedAt:   time.Now().UTC(),
	}
	if err := uc.repo.Save(ctx, stored); err != nil {
		uc.logger.WarnContext(ctx, "failed to persist schedule", "fingerprint", fingerprint, "error", err)
	}

	last := sched.Periods[len(sched.Periods)-1]
	evt := event.NewScheduleComputed(
		stored.ID, fingerprint,
		sched.Spec.TermPeriods, projection,
		last.Payment, last.CumulativeInterest, last.CumulativePrincipal,
	)
	if err := uc.publisher.Publish(ctx, evt); err != nil {
		uc.logger.WarnContext(ctx, "failed to publish schedule event", "fingerprint", fingerprint, "error", err)
	}
}

func cacheKey(fingerprint, projection string) string {
	return fingerprint + ":" + projection
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func toLoanSpec(in dto.LoanInput) (model.LoanSpec, error) {
	freq, err := model.ParseFrequency(in.Frequency)
	if err != nil {
		return model.LoanSpec{}, err
	}
	mode, err := model.ParseRateMode(in.RateMode)
	if err != nil {
		return model.LoanSpec{}, err
	}
	timing, err := model.ParseTiming(in.Timing)
	if err != nil {
		return model.LoanSpec{}, err
	}
	return model.LoanSpec{
		AnnualRate:   in.AnnualRate,
		TermPeriods:  in.TermPeriods,
		PresentValue: in.PresentValue,
		Frequency:    freq,
		RateMode:     mode,
		Timing:       timing,
	}, nil
}

func projectRows(in dto.LoanInput, sched model.Schedule, projection string) loanRows {
	var r loanRows
	switch projection {
	case dto.ProjectionFullBreakdown:
		for _, row := range model.FullBreakdown(sched) {
			r.breakdown = append(r.breakdown, dto.BreakdownRow{
				Loan:                 in,
				Period:               row.Period,
				Payment:              decimal.NewFromFloat(row.Payment),
				Interest:             decimal.NewFromFloat(row.Interest),
				Principal:            decimal.NewFromFloat(row.Principal),
				RemainingBalance:     decimal.NewFromFloat(row.RemainingBalance),
				CumulativeInterest:   decimal.NewFromFloat(row.CumulativeInterest),
				CumulativePrincipal:  decimal.NewFromFloat(row.CumulativePrincipal),
				OutstandingInterest:  decimal.NewFromFloat(row.OutstandingInterest),
				OutstandingPrincipal: decimal.NewFromFloat(row.OutstandingPrincipal),
				OutstandingPayments:  decimal.NewFromFloat(row.OutstandingPayments),
			})
		}
	case dto.ProjectionCumulativeInterest:
		for _, row := range model.CumulativeInterestView(sched) {
			r.values = append(r.values, dto.ValueRow{Loan: in, Period: row.Period, Value: decimal.NewFromFloat(row.CumulativeInterest)})
		}
	case dto.ProjectionOutstandingInterest:
		for _, row := range model.OutstandingInterestView(sched) {
			r.values = append(r.values, dto.ValueRow{Loan: in, Period: row.Period, Value: decimal.NewFromFloat(row.OutstandingInterest)})
		}
	case dto.ProjectionOutstandingPayments:
		for _, row := range model.OutstandingPaymentsView(sched) {
			r.values = append(r.values, dto.ValueRow{Loan: in, Period: row.Period, Value: decimal.NewFromFloat(row.OutstandingPayments)})
		}
	}
	return r
}

func marshalRows(projection string, r loanRows) (string, error) {
	var payload []byte
	var err error
	if projection == dto.ProjectionFullBreakdown {
		payload, err = json.Marshal(r.breakdown)
	} else {
		payload, err = json.Marshal(r.values)
	}
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

func unmarshalRows(projection, payload string, r *loanRows) error {
	if projection == dto.ProjectionFullBreakdown {
		return json.Unmarshal([]byte(payload), &r.breakdown)
	}
	return json.Unmarshal([]byte(payload), &r.values)
}

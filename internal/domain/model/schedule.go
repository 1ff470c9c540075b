package model

import (
	"fmt"
	"math"
	"time"
)

// ---------------------------------------------------------------------------
// Schedule recurrence engine
// ---------------------------------------------------------------------------

// PeriodRecord is an immutable value object for one period of an
// amortization schedule. Payment, Interest and Principal are negative
// (borrower outflow); RemainingBalance decreases from the principal to
// zero; the cumulative and outstanding totals are carried as magnitudes,
// with cumulatives growing to the loan totals and outstandings shrinking
// to zero at maturity.
type PeriodRecord struct {
	Period               int     `json:"period"`
	Payment              float64 `json:"payment"`
	Interest             float64 `json:"interest"`
	Principal            float64 `json:"principal"`
	RemainingBalance     float64 `json:"remaining_balance"`
	CumulativeInterest   float64 `json:"cumulative_interest"`
	CumulativePrincipal  float64 `json:"cumulative_principal"`
	OutstandingInterest  float64 `json:"outstanding_interest"`
	OutstandingPrincipal float64 `json:"outstanding_principal"`
	OutstandingPayments  float64 `json:"outstanding_payments"`
}

// Schedule is the ordered sequence of period records for one loan, period
// 1 first. Records are never mutated after emission.
type Schedule struct {
	Spec    LoanSpec       `json:"spec"`
	Periods []PeriodRecord `json:"periods"`
}

// StoredSchedule wraps a computed schedule with persistence metadata.
type StoredSchedule struct {
	ID          string    `json:"id"`
	Fingerprint string    `json:"fingerprint"`
	Schedule    Schedule  `json:"schedule"`
	CreatedAt   time.Time `json:"created_at"`
}

// GenerateSchedule expands one loan into its full amortization schedule.
//
// The recurrence is strictly sequential: each period depends on the
// previous balance and cumulative state, so periods are never skipped or
// reordered. Independent loans carry no shared state and may run in
// parallel. A failed spec yields zero records, never a truncated schedule.
func GenerateSchedule(spec LoanSpec) (Schedule, error) {
	if err := spec.Validate(); err != nil {
		return Schedule{}, err
	}

	rate, err := PeriodicRate(spec.AnnualRate, spec.Frequency, spec.RateMode)
	if err != nil {
		return Schedule{}, err
	}
	pmt, err := Payment(rate, spec.TermPeriods, spec.PresentValue, spec.Timing)
	if err != nil {
		return Schedule{}, err
	}

	// Lifetime totals are anchored once on the same payment value used
	// throughout, so the outstanding columns stay consistent with the
	// per-period components.
	totalPayments := math.Abs(pmt) * float64(spec.TermPeriods)
	totalInterest := totalPayments - spec.PresentValue

	balance := spec.PresentValue
	var cumInterest, cumPrincipal float64

	periods := make([]PeriodRecord, 0, spec.TermPeriods)
	for period := 1; period <= spec.TermPeriods; period++ {
		ipmt, err := InterestPayment(rate, period, spec.TermPeriods, spec.PresentValue, spec.Timing)
		if err != nil {
			return Schedule{}, fmt.Errorf("interest at period %d: %w", period, err)
		}
		ppmt := pmt - ipmt

		cumInterest += math.Abs(ipmt)
		cumPrincipal += math.Abs(ppmt)
		balance += ppmt

		periods = append(periods, PeriodRecord{
			Period:               period,
			Payment:              pmt,
			Interest:             ipmt,
			Principal:            ppmt,
			RemainingBalance:     balance,
			CumulativeInterest:   cumInterest,
			CumulativePrincipal:  cumPrincipal,
			OutstandingInterest:  totalInterest - cumInterest,
			OutstandingPrincipal: balance,
			OutstandingPayments:  totalPayments - math.Abs(pmt)*float64(period),
		})
	}

	return Schedule{Spec: spec, Periods: periods}, nil
}

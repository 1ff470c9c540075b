package event

import (
	"github.com/shopspring/decimal"

	"github.com/datanautics/amortization-service/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// ScheduleComputed is raised after a loan's amortization schedule has been
// generated. Monetary totals are reported as positive decimal amounts.
type ScheduleComputed struct {
	events.BaseEvent
	Fingerprint    string          `json:"fingerprint"`
	TermPeriods    int             `json:"term_periods"`
	Projection     string          `json:"projection"`
	LevelPayment   decimal.Decimal `json:"level_payment"`
	TotalInterest  decimal.Decimal `json:"total_interest"`
	TotalPrincipal decimal.Decimal `json:"total_principal"`
}

// NewScheduleComputed builds the event from the lifetime figures of one
// computed schedule.
func NewScheduleComputed(
	scheduleID, fingerprint string,
	termPeriods int,
	projection string,
	levelPayment, totalInterest, totalPrincipal float64,
) ScheduleComputed {
	return ScheduleComputed{
		BaseEvent:      events.NewBaseEvent("amortization.schedule.computed", scheduleID, "Schedule"),
		Fingerprint:    fingerprint,
		TermPeriods:    termPeriods,
		Projection:     projection,
		LevelPayment:   decimal.NewFromFloat(levelPayment).Abs().Round(2),
		TotalInterest:  decimal.NewFromFloat(totalInterest).Abs().Round(2),
		TotalPrincipal: decimal.NewFromFloat(totalPrincipal).Abs().Round(2),
	}
}

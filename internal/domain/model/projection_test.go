package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datanautics/amortization-service/internal/domain/model"
)

func TestProjections(t *testing.T) {
	spec := monthlyLoan()
	sched, err := model.GenerateSchedule(spec)
	require.NoError(t, err)

	t.Run("full breakdown carries every field and the loan", func(t *testing.T) {
		rows := model.FullBreakdown(sched)
		require.Len(t, rows, spec.TermPeriods)

		for i, row := range rows {
			assert.Equal(t, spec, row.Loan, "input loan replicated on every row")
			assert.Equal(t, sched.Periods[i], row.PeriodRecord)
		}
	})

	t.Run("cumulative interest view", func(t *testing.T) {
		rows := model.CumulativeInterestView(sched)
		require.Len(t, rows, spec.TermPeriods)

		for i, row := range rows {
			assert.Equal(t, spec, row.Loan)
			assert.Equal(t, i+1, row.Period)
			assert.Positive(t, row.CumulativeInterest, "reported positive for display")
		}
		assert.InDelta(t, 66.1855, rows[len(rows)-1].CumulativeInterest, 0.0001)
	})

	t.Run("outstanding interest view", func(t *testing.T) {
		rows := model.OutstandingInterestView(sched)
		require.Len(t, rows, spec.TermPeriods)

		for i, row := range rows {
			assert.Equal(t, i+1, row.Period)
			assert.GreaterOrEqual(t, row.OutstandingInterest, -1e-6)
		}
		assert.InDelta(t, 0, rows[len(rows)-1].OutstandingInterest, 1e-6)
	})

	t.Run("outstanding payments view", func(t *testing.T) {
		rows := model.OutstandingPaymentsView(sched)
		require.Len(t, rows, spec.TermPeriods)

		// |payment| * (term - period), independent of the split.
		payment := 88.84878867834168
		for i, row := range rows {
			assert.Equal(t, i+1, row.Period)
			assert.InDelta(t, payment*float64(spec.TermPeriods-row.Period), row.OutstandingPayments, 1e-6)
		}
		assert.InDelta(t, 0, rows[len(rows)-1].OutstandingPayments, 1e-9)
	})

	t.Run("views preserve period order", func(t *testing.T) {
		rows := model.CumulativeInterestView(sched)
		for i := 1; i < len(rows); i++ {
			assert.Equal(t, rows[i-1].Period+1, rows[i].Period)
		}
	})

	t.Run("empty schedule yields empty views", func(t *testing.T) {
		empty := model.Schedule{Spec: spec}
		assert.Empty(t, model.FullBreakdown(empty))
		assert.Empty(t, model.CumulativeInterestView(empty))
		assert.Empty(t, model.OutstandingInterestView(empty))
		assert.Empty(t, model.OutstandingPaymentsView(empty))
	})
}

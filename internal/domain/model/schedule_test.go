package model_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datanautics/amortization-service/internal/domain/model"
)

func monthlyLoan() model.LoanSpec {
	return model.LoanSpec{
		AnnualRate:   0.12,
		TermPeriods:  12,
		PresentValue: 1000,
		Frequency:    model.FrequencyMonthly,
		RateMode:     model.RateSimple,
		Timing:       model.TimingEnd,
	}
}

func TestGenerateSchedule_ConcreteScenario(t *testing.T) {
	// 1000 at 12%% annual, simple monthly rate (1%% per period), 12 periods.
	sched, err := model.GenerateSchedule(monthlyLoan())
	require.NoError(t, err)
	require.Len(t, sched.Periods, 12)

	first := sched.Periods[0]
	assert.Equal(t, 1, first.Period)
	assert.InDelta(t, -88.8488, first.Payment, 0.0001)
	assert.InDelta(t, -10.00, first.Interest, 0.0001)
	assert.InDelta(t, -78.8488, first.Principal, 0.0001)
	assert.InDelta(t, 921.1512, first.RemainingBalance, 0.0001)

	last := sched.Periods[11]
	assert.Equal(t, 12, last.Period)
	assert.InDelta(t, 0, last.RemainingBalance, 1e-6)
	assert.InDelta(t, 0, last.OutstandingInterest, 1e-6)
	assert.InDelta(t, 0, last.OutstandingPayments, 1e-6)
	assert.InDelta(t, 66.1855, last.CumulativeInterest, 0.0001)
	assert.InDelta(t, 1000, last.CumulativePrincipal, 1e-6)
}

func TestGenerateSchedule_Invariants(t *testing.T) {
	specs := []model.LoanSpec{
		monthlyLoan(),
		{AnnualRate: 0.08, TermPeriods: 20, PresentValue: 250_000, Frequency: model.FrequencyQuarterly, RateMode: model.RateCompound, Timing: model.TimingEnd},
		{AnnualRate: 0.05, TermPeriods: 360, PresentValue: 100_000, Frequency: model.FrequencyMonthly, RateMode: model.RateSimple, Timing: model.TimingEnd},
		{AnnualRate: 0.12, TermPeriods: 12, PresentValue: 1000, Frequency: model.FrequencyMonthly, RateMode: model.RateSimple, Timing: model.TimingBegin},
		{AnnualRate: 0.1, TermPeriods: 5, PresentValue: 5000, Frequency: model.FrequencyAnnual, RateMode: model.RateSimple, Timing: model.TimingEnd},
	}

	for _, spec := range specs {
		t.Run(spec.Frequency.String()+"/"+string(spec.RateMode)+"/"+spec.Timing.String(), func(t *testing.T) {
			sched, err := model.GenerateSchedule(spec)
			require.NoError(t, err)
			require.Len(t, sched.Periods, spec.TermPeriods)

			tolerance := 1e-6 * spec.PresentValue

			balance := spec.PresentValue
			prevCumInterest, prevCumPrincipal := 0.0, 0.0
			prevOutInterest := math.Inf(1)
			prevOutPayments := math.Inf(1)

			for i, p := range sched.Periods {
				assert.Equal(t, i+1, p.Period, "periods are 1-based and strictly increasing")

				// Components sum to the level payment.
				assert.InDelta(t, p.Payment, p.Interest+p.Principal, tolerance, "period %d", p.Period)

				// Balance recurrence.
				assert.InDelta(t, balance+p.Principal, p.RemainingBalance, tolerance, "period %d", p.Period)
				balance = p.RemainingBalance

				// Outstanding principal is the post-payment balance.
				assert.Equal(t, p.RemainingBalance, p.OutstandingPrincipal)

				// Cumulatives never shrink, outstandings never grow.
				assert.GreaterOrEqual(t, p.CumulativeInterest, prevCumInterest)
				assert.GreaterOrEqual(t, p.CumulativePrincipal, prevCumPrincipal)
				assert.LessOrEqual(t, p.OutstandingInterest, prevOutInterest)
				assert.LessOrEqual(t, p.OutstandingPayments, prevOutPayments)
				prevCumInterest = p.CumulativeInterest
				prevCumPrincipal = p.CumulativePrincipal
				prevOutInterest = p.OutstandingInterest
				prevOutPayments = p.OutstandingPayments
			}

			last := sched.Periods[len(sched.Periods)-1]
			assert.InDelta(t, 0, last.RemainingBalance, tolerance, "loan fully amortizes")
			assert.InDelta(t, 0, last.OutstandingInterest, tolerance)
			assert.InDelta(t, 0, last.OutstandingPayments, tolerance)
			assert.InDelta(t, spec.PresentValue, last.CumulativePrincipal, tolerance)
		})
	}
}

func TestGenerateSchedule_ZeroRate(t *testing.T) {
	spec := model.LoanSpec{
		AnnualRate:   0,
		TermPeriods:  12,
		PresentValue: 1200,
		Frequency:    model.FrequencyMonthly,
		RateMode:     model.RateSimple,
		Timing:       model.TimingEnd,
	}

	sched, err := model.GenerateSchedule(spec)
	require.NoError(t, err)
	require.Len(t, sched.Periods, 12)

	for _, p := range sched.Periods {
		assert.Equal(t, 0.0, p.Interest)
		assert.Equal(t, -100.0, p.Payment)
		assert.Equal(t, -100.0, p.Principal)
		assert.Equal(t, 0.0, p.OutstandingInterest)
	}
	assert.InDelta(t, 0, sched.Periods[11].RemainingBalance, 1e-9)
}

func TestGenerateSchedule_ZeroPresentValue(t *testing.T) {
	spec := monthlyLoan()
	spec.PresentValue = 0

	sched, err := model.GenerateSchedule(spec)
	require.NoError(t, err)
	require.Len(t, sched.Periods, 12)

	for _, p := range sched.Periods {
		assert.Equal(t, 0.0, p.Payment)
		assert.Equal(t, 0.0, p.Interest)
		assert.Equal(t, 0.0, p.Principal)
		assert.Equal(t, 0.0, p.RemainingBalance)
		assert.False(t, math.IsNaN(p.CumulativeInterest))
		assert.False(t, math.IsInf(p.OutstandingInterest, 0))
	}
}

func TestGenerateSchedule_SinglePeriod(t *testing.T) {
	spec := model.LoanSpec{
		AnnualRate:   0.05,
		TermPeriods:  1,
		PresentValue: 1000,
		Frequency:    model.FrequencyAnnual,
		RateMode:     model.RateSimple,
		Timing:       model.TimingEnd,
	}

	sched, err := model.GenerateSchedule(spec)
	require.NoError(t, err)
	require.Len(t, sched.Periods, 1)

	only := sched.Periods[0]
	assert.InDelta(t, -1050, only.Payment, 1e-6)
	assert.InDelta(t, -50, only.Interest, 1e-6)
	assert.InDelta(t, -1000, only.Principal, 1e-6)
	assert.InDelta(t, 0, only.RemainingBalance, 1e-6)
	assert.InDelta(t, 0, only.OutstandingPayments, 1e-6)
}

func TestGenerateSchedule_BeginTiming(t *testing.T) {
	spec := monthlyLoan()
	spec.Timing = model.TimingBegin

	sched, err := model.GenerateSchedule(spec)
	require.NoError(t, err)

	first := sched.Periods[0]
	assert.Equal(t, 0.0, first.Interest, "payment made immediately accrues no interest")
	assert.InDelta(t, -87.9691, first.Payment, 0.0001)
	assert.InDelta(t, first.Payment, first.Principal, 1e-9)
}

func TestGenerateSchedule_InvalidSpecs(t *testing.T) {
	t.Run("zero term", func(t *testing.T) {
		spec := monthlyLoan()
		spec.TermPeriods = 0
		_, err := model.GenerateSchedule(spec)
		assert.ErrorIs(t, err, model.ErrInvalidConfiguration)
	})

	t.Run("negative present value", func(t *testing.T) {
		spec := monthlyLoan()
		spec.PresentValue = -1
		_, err := model.GenerateSchedule(spec)
		assert.ErrorIs(t, err, model.ErrInvalidConfiguration)
	})

	t.Run("unknown frequency", func(t *testing.T) {
		spec := monthlyLoan()
		spec.Frequency = model.Frequency(7)
		_, err := model.GenerateSchedule(spec)
		assert.ErrorIs(t, err, model.ErrInvalidConfiguration)
	})

	t.Run("unknown rate mode", func(t *testing.T) {
		spec := monthlyLoan()
		spec.RateMode = model.RateMode("EXOTIC")
		_, err := model.GenerateSchedule(spec)
		assert.ErrorIs(t, err, model.ErrInvalidConfiguration)
	})

	t.Run("failed spec yields no records", func(t *testing.T) {
		spec := monthlyLoan()
		spec.TermPeriods = -5
		sched, err := model.GenerateSchedule(spec)
		require.Error(t, err)
		assert.Empty(t, sched.Periods)
	})
}

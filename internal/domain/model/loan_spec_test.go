package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datanautics/amortization-service/internal/domain/model"
)

func TestLoanSpecValidate(t *testing.T) {
	t.Run("valid spec", func(t *testing.T) {
		assert.NoError(t, monthlyLoan().Validate())
	})

	t.Run("zero present value is allowed", func(t *testing.T) {
		spec := monthlyLoan()
		spec.PresentValue = 0
		assert.NoError(t, spec.Validate())
	})

	tests := []struct {
		name   string
		mutate func(*model.LoanSpec)
	}{
		{"zero term", func(s *model.LoanSpec) { s.TermPeriods = 0 }},
		{"negative term", func(s *model.LoanSpec) { s.TermPeriods = -1 }},
		{"negative present value", func(s *model.LoanSpec) { s.PresentValue = -100 }},
		{"bad frequency", func(s *model.LoanSpec) { s.Frequency = model.Frequency(3) }},
		{"bad rate mode", func(s *model.LoanSpec) { s.RateMode = "HYPERBOLIC" }},
		{"bad timing", func(s *model.LoanSpec) { s.Timing = model.PaymentTiming(2) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := monthlyLoan()
			tt.mutate(&spec)
			assert.ErrorIs(t, spec.Validate(), model.ErrInvalidConfiguration)
		})
	}
}

func TestFrequencyParsing(t *testing.T) {
	for name, want := range map[string]model.Frequency{
		"ANNUAL":    model.FrequencyAnnual,
		"QUARTERLY": model.FrequencyQuarterly,
		"MONTHLY":   model.FrequencyMonthly,
	} {
		got, err := model.ParseFrequency(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, name, got.String())
	}

	_, err := model.ParseFrequency("weekly")
	assert.ErrorIs(t, err, model.ErrInvalidConfiguration)
}

func TestRateModeAndTimingParsing(t *testing.T) {
	mode, err := model.ParseRateMode("COMPOUND")
	require.NoError(t, err)
	assert.Equal(t, model.RateCompound, mode)

	_, err = model.ParseRateMode("simple")
	assert.ErrorIs(t, err, model.ErrInvalidConfiguration)

	timing, err := model.ParseTiming("BEGIN")
	require.NoError(t, err)
	assert.Equal(t, model.TimingBegin, timing)

	timing, err = model.ParseTiming("")
	require.NoError(t, err)
	assert.Equal(t, model.TimingEnd, timing, "empty timing defaults to ordinary annuity")

	_, err = model.ParseTiming("MIDDLE")
	assert.ErrorIs(t, err, model.ErrInvalidConfiguration)
}

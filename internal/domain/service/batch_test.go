package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datanautics/amortization-service/internal/domain/model"
	"github.com/datanautics/amortization-service/internal/domain/service"
)

func validLoan(termPeriods int) model.LoanSpec {
	return model.LoanSpec{
		AnnualRate:   0.12,
		TermPeriods:  termPeriods,
		PresentValue: 1000,
		Frequency:    model.FrequencyMonthly,
		RateMode:     model.RateSimple,
		Timing:       model.TimingEnd,
	}
}

func TestBatchCalculator_PreservesInputOrder(t *testing.T) {
	calc := service.NewBatchCalculator(4)

	specs := make([]model.LoanSpec, 0, 50)
	for i := 1; i <= 50; i++ {
		specs = append(specs, validLoan(i))
	}

	results := calc.Run(context.Background(), specs)
	require.Len(t, results, 50)

	for i, res := range results {
		require.NoError(t, res.Err, "loan %d", i)
		assert.Len(t, res.Schedule.Periods, i+1, "result %d must belong to input %d", i, i)
	}
}

func TestBatchCalculator_IsolatesFailingLoans(t *testing.T) {
	calc := service.NewBatchCalculator(2)

	bad := validLoan(12)
	bad.TermPeriods = 0

	specs := []model.LoanSpec{validLoan(12), bad, validLoan(6)}
	results := calc.Run(context.Background(), specs)
	require.Len(t, results, 3)

	assert.NoError(t, results[0].Err)
	assert.Len(t, results[0].Schedule.Periods, 12)

	assert.ErrorIs(t, results[1].Err, model.ErrInvalidConfiguration)
	assert.Empty(t, results[1].Schedule.Periods, "failed loan yields zero records")

	assert.NoError(t, results[2].Err)
	assert.Len(t, results[2].Schedule.Periods, 6)
}

func TestBatchCalculator_SerialFallback(t *testing.T) {
	calc := service.NewBatchCalculator(0)

	results := calc.Run(context.Background(), []model.LoanSpec{validLoan(3)})
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)
	assert.Len(t, results[0].Schedule.Periods, 3)
}

func TestBatchCalculator_CancelledContext(t *testing.T) {
	calc := service.NewBatchCalculator(2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := calc.Run(ctx, []model.LoanSpec{validLoan(3), validLoan(4)})
	require.Len(t, results, 2)
	for _, res := range results {
		assert.ErrorIs(t, res.Err, context.Canceled)
	}
}

func TestBatchCalculator_EmptyBatch(t *testing.T) {
	calc := service.NewBatchCalculator(4)
	assert.Empty(t, calc.Run(context.Background(), nil))
}

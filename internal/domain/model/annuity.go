package model

import (
	"fmt"
	"math"
)

// ---------------------------------------------------------------------------
// Annuity formula library
//
// Pure, stateless functions over (rate, term, present value, timing).
// Sign convention follows the spreadsheet one: a positive present value is
// money received by the borrower, so payments and their components come
// back negative (cash outflow).
// ---------------------------------------------------------------------------

// PeriodicRate converts an annual rate to a per-period rate for the given
// payment frequency and rate mode.
func PeriodicRate(annualRate float64, freq Frequency, mode RateMode) (float64, error) {
	if freq.Count() <= 0 {
		return 0, fmt.Errorf("%w: frequency count must be positive, got %d", ErrInvalidConfiguration, freq.Count())
	}
	switch mode {
	case RateSimple:
		return annualRate / float64(freq.Count()), nil
	case RateCompound:
		return math.Pow(1+annualRate, 1/float64(freq.Count())) - 1, nil
	}
	return 0, fmt.Errorf("%w: unsupported rate mode %q", ErrInvalidConfiguration, string(mode))
}

// Payment returns the constant per-period payment that fully amortizes
// presentValue over termPeriods at the given periodic rate.
//
// The zero-rate case degenerates to an even split of the principal; the
// general formula divides by rate and must not see it. With BEGIN timing
// the payment is discounted one fewer period, dividing the END result
// by (1 + rate).
func Payment(rate float64, termPeriods int, presentValue float64, timing PaymentTiming) (float64, error) {
	if termPeriods <= 0 {
		return 0, fmt.Errorf("%w: term periods must be positive, got %d", ErrInvalidConfiguration, termPeriods)
	}
	if presentValue == 0 {
		return 0, nil
	}
	if rate == 0 {
		return -presentValue / float64(termPeriods), nil
	}

	factor := math.Pow(1+rate, float64(termPeriods))
	pmt := -presentValue * rate * factor / (factor - 1)
	if timing == TimingBegin {
		pmt /= 1 + rate
	}
	return pmt, nil
}

// InterestPayment returns the interest portion of the payment due at
// period, derived from the balance outstanding at the start of that
// period. With BEGIN timing the first payment is made immediately against
// the full principal, so no interest has accrued and the component is
// exactly zero.
func InterestPayment(rate float64, period, termPeriods int, presentValue float64, timing PaymentTiming) (float64, error) {
	if termPeriods <= 0 {
		return 0, fmt.Errorf("%w: term periods must be positive, got %d", ErrInvalidConfiguration, termPeriods)
	}
	if period < 1 || period > termPeriods {
		return 0, fmt.Errorf("%w: period %d not in [1, %d]", ErrOutOfRange, period, termPeriods)
	}
	if presentValue == 0 || rate == 0 {
		return 0, nil
	}
	if timing == TimingBegin && period == 1 {
		return 0, nil
	}

	pmt, err := Payment(rate, termPeriods, presentValue, timing)
	if err != nil {
		return 0, err
	}

	// Balance outstanding at the start of the period, i.e. the loan grown
	// through the first period-1 payments. Negative by the sign convention,
	// so the interest component comes out negative as well.
	ipmt := remainingBalance(rate, period-1, pmt, presentValue, timing) * rate
	if timing == TimingBegin {
		ipmt /= 1 + rate
	}
	return ipmt, nil
}

// PrincipalPayment returns the principal portion of the payment due at
// period: the level payment minus its interest component.
func PrincipalPayment(rate float64, period, termPeriods int, presentValue float64, timing PaymentTiming) (float64, error) {
	pmt, err := Payment(rate, termPeriods, presentValue, timing)
	if err != nil {
		return 0, err
	}
	ipmt, err := InterestPayment(rate, period, termPeriods, presentValue, timing)
	if err != nil {
		return 0, err
	}
	return pmt - ipmt, nil
}

// PresentValue returns the lump sum worth today of termPeriods equal
// payments discounted at the given periodic rate. It is the inverse of
// Payment: feeding a loan's payment back in recovers its principal.
func PresentValue(rate float64, termPeriods int, payment float64, timing PaymentTiming) (float64, error) {
	if termPeriods <= 0 {
		return 0, fmt.Errorf("%w: term periods must be positive, got %d", ErrInvalidConfiguration, termPeriods)
	}
	if rate == 0 {
		return -payment * float64(termPeriods), nil
	}
	factor := math.Pow(1+rate, float64(termPeriods))
	return -payment * (1 + rate*timingShift(timing)) * (factor - 1) / rate / factor, nil
}

// CumulativeInterest returns the total interest paid from startPeriod
// through endPeriod inclusive. Both bounds must lie in [1, termPeriods]
// with startPeriod <= endPeriod.
func CumulativeInterest(rate float64, termPeriods int, presentValue float64, timing PaymentTiming, startPeriod, endPeriod int) (float64, error) {
	if termPeriods <= 0 {
		return 0, fmt.Errorf("%w: term periods must be positive, got %d", ErrInvalidConfiguration, termPeriods)
	}
	if startPeriod < 1 || startPeriod > termPeriods {
		return 0, fmt.Errorf("%w: start period %d not in [1, %d]", ErrOutOfRange, startPeriod, termPeriods)
	}
	if endPeriod < startPeriod || endPeriod > termPeriods {
		return 0, fmt.Errorf("%w: end period %d not in [%d, %d]", ErrOutOfRange, endPeriod, startPeriod, termPeriods)
	}

	var total float64
	for period := startPeriod; period <= endPeriod; period++ {
		ipmt, err := InterestPayment(rate, period, termPeriods, presentValue, timing)
		if err != nil {
			return 0, err
		}
		total += ipmt
	}
	return total, nil
}

// remainingBalance is the (negated) balance after n payments: the loan
// grown at rate for n periods net of the payments made so far.
func remainingBalance(rate float64, n int, pmt, presentValue float64, timing PaymentTiming) float64 {
	if rate == 0 {
		return -(presentValue + pmt*float64(n))
	}
	factor := math.Pow(1+rate, float64(n))
	return -(presentValue*factor + pmt*(1+rate*timingShift(timing))*(factor-1)/rate)
}

func timingShift(timing PaymentTiming) float64 {
	if timing == TimingBegin {
		return 1
	}
	return 0
}

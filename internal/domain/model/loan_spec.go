package model

import "fmt"

// ---------------------------------------------------------------------------
// Loan value objects
// ---------------------------------------------------------------------------

// Frequency is the number of payments per year.
type Frequency int

const (
	FrequencyAnnual    Frequency = 1
	FrequencyQuarterly Frequency = 4
	FrequencyMonthly   Frequency = 12
)

// Count returns the number of payment periods per year.
func (f Frequency) Count() int {
	return int(f)
}

// Valid reports whether f is one of the supported frequencies.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyAnnual, FrequencyQuarterly, FrequencyMonthly:
		return true
	}
	return false
}

func (f Frequency) String() string {
	switch f {
	case FrequencyAnnual:
		return "ANNUAL"
	case FrequencyQuarterly:
		return "QUARTERLY"
	case FrequencyMonthly:
		return "MONTHLY"
	}
	return fmt.Sprintf("Frequency(%d)", int(f))
}

// ParseFrequency converts a wire-level frequency name to a Frequency.
func ParseFrequency(s string) (Frequency, error) {
	switch s {
	case "ANNUAL":
		return FrequencyAnnual, nil
	case "QUARTERLY":
		return FrequencyQuarterly, nil
	case "MONTHLY":
		return FrequencyMonthly, nil
	}
	return 0, fmt.Errorf("%w: unknown frequency %q", ErrInvalidConfiguration, s)
}

// RateMode selects how an annual rate is converted to a periodic rate.
type RateMode string

const (
	// RateSimple divides the annual rate by the payment frequency.
	RateSimple RateMode = "SIMPLE"
	// RateCompound derives the effective periodic rate:
	// (1 + annual)^(1/frequency) - 1.
	RateCompound RateMode = "COMPOUND"
)

// Valid reports whether m is a supported rate mode.
func (m RateMode) Valid() bool {
	return m == RateSimple || m == RateCompound
}

// ParseRateMode converts a wire-level rate mode name to a RateMode.
func ParseRateMode(s string) (RateMode, error) {
	m := RateMode(s)
	if !m.Valid() {
		return "", fmt.Errorf("%w: unknown rate mode %q", ErrInvalidConfiguration, s)
	}
	return m, nil
}

// PaymentTiming is the annuity timing convention: payments due at the end
// of each period (ordinary annuity) or at the beginning (annuity due).
type PaymentTiming int

const (
	TimingEnd   PaymentTiming = 0
	TimingBegin PaymentTiming = 1
)

// Valid reports whether t is a supported timing convention.
func (t PaymentTiming) Valid() bool {
	return t == TimingEnd || t == TimingBegin
}

func (t PaymentTiming) String() string {
	if t == TimingBegin {
		return "BEGIN"
	}
	return "END"
}

// ParseTiming converts a wire-level timing name to a PaymentTiming.
func ParseTiming(s string) (PaymentTiming, error) {
	switch s {
	case "", "END":
		return TimingEnd, nil
	case "BEGIN":
		return TimingBegin, nil
	}
	return 0, fmt.Errorf("%w: unknown payment timing %q", ErrInvalidConfiguration, s)
}

// ---------------------------------------------------------------------------
// LoanSpec
// ---------------------------------------------------------------------------

// LoanSpec describes one fixed-rate, fixed-term amortizing loan. It is
// immutable once constructed and owned by the caller for the duration of
// one schedule computation.
type LoanSpec struct {
	AnnualRate   float64       `json:"annual_rate"`
	TermPeriods  int           `json:"term_periods"`
	PresentValue float64       `json:"present_value"`
	Frequency    Frequency     `json:"frequency"`
	RateMode     RateMode      `json:"rate_mode"`
	Timing       PaymentTiming `json:"timing"`
}

// Validate checks the spec before any computation. A zero present value is
// allowed and degenerates to an all-zero schedule; a negative one is not.
func (s LoanSpec) Validate() error {
	if s.TermPeriods <= 0 {
		return fmt.Errorf("%w: term periods must be positive, got %d", ErrInvalidConfiguration, s.TermPeriods)
	}
	if !s.Frequency.Valid() {
		return fmt.Errorf("%w: unsupported frequency %d", ErrInvalidConfiguration, int(s.Frequency))
	}
	if !s.RateMode.Valid() {
		return fmt.Errorf("%w: unsupported rate mode %q", ErrInvalidConfiguration, string(s.RateMode))
	}
	if !s.Timing.Valid() {
		return fmt.Errorf("%w: unsupported payment timing %d", ErrInvalidConfiguration, int(s.Timing))
	}
	if s.PresentValue < 0 {
		return fmt.Errorf("%w: present value must not be negative, got %f", ErrInvalidConfiguration, s.PresentValue)
	}
	return nil
}

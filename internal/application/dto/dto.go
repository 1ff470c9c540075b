package dto

import "github.com/shopspring/decimal"

// ---------------------------------------------------------------------------
// Projections and measures
// ---------------------------------------------------------------------------

// Projection names accepted by GenerateScheduleRequest.
const (
	ProjectionFullBreakdown       = "FULL_BREAKDOWN"
	ProjectionCumulativeInterest  = "CUMULATIVE_INTEREST"
	ProjectionOutstandingInterest = "OUTSTANDING_INTEREST"
	ProjectionOutstandingPayments = "OUTSTANDING_PAYMENTS"
)

// Measure names accepted by AnnuityRequest, matching the spreadsheet
// functions they implement.
const (
	MeasurePayment            = "PMT"
	MeasureInterestPayment    = "IPMT"
	MeasurePrincipalPayment   = "PPMT"
	MeasurePresentValue       = "PV"
	MeasureCumulativeInterest = "CUMIPMT"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// LoanInput is one loan of a batch as received on the wire.
type LoanInput struct {
	AnnualRate   float64 `json:"annual_rate"`
	TermPeriods  int     `json:"term_periods"`
	PresentValue float64 `json:"present_value"`
	Frequency    string  `json:"frequency"`
	RateMode     string  `json:"rate_mode"`
	Timing       string  `json:"timing"`
}

// GenerateScheduleRequest carries a batch of loans and the projection to
// apply to each computed schedule.
type GenerateScheduleRequest struct {
	Loans      []LoanInput `json:"loans"`
	Projection string      `json:"projection"`
}

// AnnuityRequest is a single-value annuity query. Period is only
// meaningful for IPMT/PPMT, Payment for PV, and StartPeriod/EndPeriod for
// CUMIPMT.
type AnnuityRequest struct {
	Measure      string  `json:"measure"`
	Rate         float64 `json:"rate"`
	Period       int     `json:"period"`
	TermPeriods  int     `json:"term_periods"`
	PresentValue float64 `json:"present_value"`
	Payment      float64 `json:"payment"`
	Timing       string  `json:"timing"`
	StartPeriod  int     `json:"start_period"`
	EndPeriod    int     `json:"end_period"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// BreakdownRow is one full-breakdown output row. Monetary columns are
// decimal for faithful wire representation.
type BreakdownRow struct {
	Loan                 LoanInput       `json:"loan"`
	Period               int             `json:"period"`
	Payment              decimal.Decimal `json:"payment"`
	Interest             decimal.Decimal `json:"interest"`
	Principal            decimal.Decimal `json:"principal"`
	RemainingBalance     decimal.Decimal `json:"remaining_balance"`
	CumulativeInterest   decimal.Decimal `json:"cumulative_interest"`
	CumulativePrincipal  decimal.Decimal `json:"cumulative_principal"`
	OutstandingInterest  decimal.Decimal `json:"outstanding_interest"`
	OutstandingPrincipal decimal.Decimal `json:"outstanding_principal"`
	OutstandingPayments  decimal.Decimal `json:"outstanding_payments"`
}

// ValueRow is one output row of a single-column projection.
type ValueRow struct {
	Loan   LoanInput       `json:"loan"`
	Period int             `json:"period"`
	Value  decimal.Decimal `json:"value"`
}

// LoanError reports a loan that was rejected without affecting the rest
// of the batch.
type LoanError struct {
	Index   int    `json:"index"`
	Message string `json:"message"`
}

// GenerateScheduleResponse carries the projection output, loan-by-loan in
// input order and in ascending period order within each loan. Exactly one
// of the row slices is populated, matching the requested projection.
type GenerateScheduleResponse struct {
	Projection          string         `json:"projection"`
	Breakdown           []BreakdownRow `json:"breakdown,omitempty"`
	CumulativeInterest  []ValueRow     `json:"cumulative_interest,omitempty"`
	OutstandingInterest []ValueRow     `json:"outstanding_interest,omitempty"`
	OutstandingPayments []ValueRow     `json:"outstanding_payments,omitempty"`
	Errors              []LoanError    `json:"errors,omitempty"`
}

// AnnuityResponse carries a single computed annuity value.
type AnnuityResponse struct {
	Measure string  `json:"measure"`
	Value   float64 `json:"value"`
}

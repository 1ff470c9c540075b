package model

// ---------------------------------------------------------------------------
// Schedule projections
//
// Four read-only views over one schedule. Each row replicates the source
// loan so batch output stays self-describing, and period order is
// preserved. The single-column views report positive display figures;
// the full breakdown keeps the engine's sign convention.
// ---------------------------------------------------------------------------

// BreakdownRow is one period of the full-breakdown view.
type BreakdownRow struct {
	Loan LoanSpec `json:"loan"`
	PeriodRecord
}

// CumulativeInterestRow is one period of the cumulative-interest view.
type CumulativeInterestRow struct {
	Loan               LoanSpec `json:"loan"`
	Period             int      `json:"period"`
	CumulativeInterest float64  `json:"cumulative_interest"`
}

// OutstandingInterestRow is one period of the outstanding-interest view.
type OutstandingInterestRow struct {
	Loan                LoanSpec `json:"loan"`
	Period              int      `json:"period"`
	OutstandingInterest float64  `json:"outstanding_interest"`
}

// OutstandingPaymentsRow is one period of the outstanding-payments view:
// the remaining obligation |payment| * (term - period), independent of the
// interest/principal split and reaching zero at the final period.
type OutstandingPaymentsRow struct {
	Loan                LoanSpec `json:"loan"`
	Period              int      `json:"period"`
	OutstandingPayments float64  `json:"outstanding_payments"`
}

// FullBreakdown returns every engine field, one row per period.
func FullBreakdown(s Schedule) []BreakdownRow {
	rows := make([]BreakdownRow, 0, len(s.Periods))
	for _, p := range s.Periods {
		rows = append(rows, BreakdownRow{Loan: s.Spec, PeriodRecord: p})
	}
	return rows
}

// CumulativeInterestView returns the running interest total per period.
func CumulativeInterestView(s Schedule) []CumulativeInterestRow {
	rows := make([]CumulativeInterestRow, 0, len(s.Periods))
	for _, p := range s.Periods {
		rows = append(rows, CumulativeInterestRow{
			Loan:               s.Spec,
			Period:             p.Period,
			CumulativeInterest: p.CumulativeInterest,
		})
	}
	return rows
}

// OutstandingInterestView returns the interest still owed after each period.
func OutstandingInterestView(s Schedule) []OutstandingInterestRow {
	rows := make([]OutstandingInterestRow, 0, len(s.Periods))
	for _, p := range s.Periods {
		rows = append(rows, OutstandingInterestRow{
			Loan:                s.Spec,
			Period:              p.Period,
			OutstandingInterest: p.OutstandingInterest,
		})
	}
	return rows
}

// OutstandingPaymentsView returns the total payments still owed after each
// period.
func OutstandingPaymentsView(s Schedule) []OutstandingPaymentsRow {
	rows := make([]OutstandingPaymentsRow, 0, len(s.Periods))
	for _, p := range s.Periods {
		rows = append(rows, OutstandingPaymentsRow{
			Loan:                s.Spec,
			Period:              p.Period,
			OutstandingPayments: p.OutstandingPayments,
		})
	}
	return rows
}

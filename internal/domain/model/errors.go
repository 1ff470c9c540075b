package model

import "errors"

// Sentinel errors for the amortization domain. Callers classify failures
// with errors.Is and decide whether to drop the offending loan or abort
// the whole batch.
var (
	// ErrInvalidConfiguration marks a structurally invalid loan: a
	// non-positive term, an unknown frequency or rate mode, or a negative
	// principal. Detected before any computation starts.
	ErrInvalidConfiguration = errors.New("invalid loan configuration")

	// ErrOutOfRange marks a single-period query whose period index lies
	// outside [1, term]. Only reachable through the annuity functions;
	// the schedule engine stays in range by construction.
	ErrOutOfRange = errors.New("period out of range")
)

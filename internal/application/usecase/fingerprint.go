package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/datanautics/amortization-service/internal/domain/model"
)

// Fingerprint derives a stable identity for one loan spec. Equal specs
// hash equally, so cache entries and persisted schedules deduplicate
// across batches.
func Fingerprint(spec model.LoanSpec) string {
	canonical := fmt.Sprintf("%s|%d|%s|%s|%s|%s",
		strconv.FormatFloat(spec.AnnualRate, 'g', -1, 64),
		spec.TermPeriods,
		strconv.FormatFloat(spec.PresentValue, 'g', -1, 64),
		spec.Frequency,
		spec.RateMode,
		spec.Timing,
	)
	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:])
}

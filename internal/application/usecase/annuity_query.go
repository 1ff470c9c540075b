package usecase

import (
	"context"
	"fmt"

	"github.com/datanautics/amortization-service/internal/application/dto"
	"github.com/datanautics/amortization-service/internal/domain/model"
)

// AnnuityQueryUseCase answers single-value annuity queries: the level
// payment, the interest or principal component of one period, the present
// value of a payment stream, or the interest accumulated over a period
// range. Stateless; the rate is taken as already periodic, exactly like
// the spreadsheet functions these mirror.
type AnnuityQueryUseCase struct{}

// NewAnnuityQueryUseCase creates the use case.
func NewAnnuityQueryUseCase() *AnnuityQueryUseCase {
	return &AnnuityQueryUseCase{}
}

// Execute dispatches on the requested measure.
func (uc *AnnuityQueryUseCase) Execute(
	_ context.Context,
	req dto.AnnuityRequest,
) (dto.AnnuityResponse, error) {
	timing, err := model.ParseTiming(req.Timing)
	if err != nil {
		return dto.AnnuityResponse{}, err
	}

	var value float64
	switch req.Measure {
	case dto.MeasurePayment:
		value, err = model.Payment(req.Rate, req.TermPeriods, req.PresentValue, timing)
	case dto.MeasureInterestPayment:
		value, err = model.InterestPayment(req.Rate, req.Period, req.TermPeriods, req.PresentValue, timing)
	case dto.MeasurePrincipalPayment:
		value, err = model.PrincipalPayment(req.Rate, req.Period, req.TermPeriods, req.PresentValue, timing)
	case dto.MeasurePresentValue:
		value, err = model.PresentValue(req.Rate, req.TermPeriods, req.Payment, timing)
	case dto.MeasureCumulativeInterest:
		value, err = model.CumulativeInterest(req.Rate, req.TermPeriods, req.PresentValue, timing, req.StartPeriod, req.EndPeriod)
	default:
		return dto.AnnuityResponse{}, fmt.Errorf("%w: unknown measure %q", model.ErrInvalidConfiguration, req.Measure)
	}
	if err != nil {
		return dto.AnnuityResponse{}, fmt.Errorf("compute %s: %w", req.Measure, err)
	}

	return dto.AnnuityResponse{Measure: req.Measure, Value: value}, nil
}

package grpc

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/datanautics/amortization-service/internal/application/usecase"
	"github.com/datanautics/amortization-service/internal/domain/model"
)

// AmortizationHandler exposes schedule generation and annuity queries over gRPC.
type AmortizationHandler struct {
	UnimplementedAmortizationServiceServer

	generate *usecase.GenerateScheduleUseCase
	annuity  *usecase.AnnuityQueryUseCase
	logger   *slog.Logger
}

// NewAmortizationHandler creates a new handler with all use-case dependencies.
func NewAmortizationHandler(
	generate *usecase.GenerateScheduleUseCase,
	annuity *usecase.AnnuityQueryUseCase,
	logger *slog.Logger,
) *AmortizationHandler {
	return &AmortizationHandler{
		generate: generate,
		annuity:  annuity,
		logger:   logger,
	}
}

// GenerateSchedule computes amortization schedules for a batch of loans and
// returns the requested projection.
func (h *AmortizationHandler) GenerateSchedule(ctx context.Context, req *GenerateScheduleRequest) (*GenerateScheduleResponse, error) {
	resp, err := h.generate.Execute(ctx, req.GenerateScheduleRequest)
	if err != nil {
		h.logger.ErrorContext(ctx, "generate schedule failed",
			"projection", req.Projection,
			"loans", len(req.Loans),
			"error", err,
		)
		return nil, statusFromError(err)
	}
	return &GenerateScheduleResponse{GenerateScheduleResponse: resp}, nil
}

// CalculateAnnuity evaluates a single annuity measure for one loan.
func (h *AmortizationHandler) CalculateAnnuity(ctx context.Context, req *CalculateAnnuityRequest) (*CalculateAnnuityResponse, error) {
	resp, err := h.annuity.Execute(ctx, req.AnnuityRequest)
	if err != nil {
		h.logger.ErrorContext(ctx, "annuity calculation failed",
			"measure", req.Measure,
			"error", err,
		)
		return nil, statusFromError(err)
	}
	return &CalculateAnnuityResponse{AnnuityResponse: resp}, nil
}

func statusFromError(err error) error {
	switch {
	case errors.Is(err, model.ErrInvalidConfiguration):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, model.ErrOutOfRange):
		return status.Error(codes.OutOfRange, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

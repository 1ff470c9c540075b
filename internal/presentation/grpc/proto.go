package grpc

// proto.go defines the gRPC server interface derived from
// amortization/v1/amortization.proto. This file serves as a stand-in for
// buf-generated code; once `buf generate` is run, replace it with the
// generated import.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/datanautics/amortization-service/internal/application/dto"
)

// ---------------------------------------------------------------------------
// Messages (carried over the JSON codec)
// ---------------------------------------------------------------------------

// GenerateScheduleRequest mirrors amortization.v1.GenerateScheduleRequest.
type GenerateScheduleRequest struct {
	dto.GenerateScheduleRequest
}

// GenerateScheduleResponse mirrors amortization.v1.GenerateScheduleResponse.
type GenerateScheduleResponse struct {
	dto.GenerateScheduleResponse
}

// CalculateAnnuityRequest mirrors amortization.v1.CalculateAnnuityRequest.
type CalculateAnnuityRequest struct {
	dto.AnnuityRequest
}

// CalculateAnnuityResponse mirrors amortization.v1.CalculateAnnuityResponse.
type CalculateAnnuityResponse struct {
	dto.AnnuityResponse
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// AmortizationServiceServer is the server API for AmortizationService.
type AmortizationServiceServer interface {
	GenerateSchedule(context.Context, *GenerateScheduleRequest) (*GenerateScheduleResponse, error)
	CalculateAnnuity(context.Context, *CalculateAnnuityRequest) (*CalculateAnnuityResponse, error)
	mustEmbedUnimplementedAmortizationServiceServer()
}

// UnimplementedAmortizationServiceServer provides forward-compatible default
// implementations.
type UnimplementedAmortizationServiceServer struct{}

func (UnimplementedAmortizationServiceServer) GenerateSchedule(context.Context, *GenerateScheduleRequest) (*GenerateScheduleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GenerateSchedule not implemented")
}
func (UnimplementedAmortizationServiceServer) CalculateAnnuity(context.Context, *CalculateAnnuityRequest) (*CalculateAnnuityResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CalculateAnnuity not implemented")
}
func (UnimplementedAmortizationServiceServer) mustEmbedUnimplementedAmortizationServiceServer() {}

// RegisterAmortizationServiceServer registers the server with the gRPC server.
func RegisterAmortizationServiceServer(s *grpclib.Server, srv AmortizationServiceServer) {
	s.RegisterService(&_AmortizationService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _AmortizationService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "amortization.v1.AmortizationService",
	HandlerType: (*AmortizationServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "GenerateSchedule", Handler: _AmortizationService_GenerateSchedule_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "CalculateAnnuity", Handler: _AmortizationService_CalculateAnnuity_Handler}, //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _AmortizationService_GenerateSchedule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GenerateScheduleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AmortizationServiceServer).GenerateSchedule(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/amortization.v1.AmortizationService/GenerateSchedule",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AmortizationServiceServer).GenerateSchedule(ctx, req.(*GenerateScheduleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _AmortizationService_CalculateAnnuity_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CalculateAnnuityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AmortizationServiceServer).CalculateAnnuity(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/amortization.v1.AmortizationService/CalculateAnnuity",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AmortizationServiceServer).CalculateAnnuity(ctx, req.(*CalculateAnnuityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

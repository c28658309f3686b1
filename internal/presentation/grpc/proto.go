package grpc

// proto.go defines the gRPC server interface for bib/screening/v1/screening.proto.
// Messages travel with the JSON codec; the wire shapes are the application DTOs.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bibbank/screening-service/internal/application/dto"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "bib.screening.v1.ScreeningService"

type (
	ScoreRiskRequest        = dto.ScoreRiskRequest
	ScoreRiskResponse       = dto.RiskScoreResponse
	ScoreRiskBatchRequest   = dto.ScoreRiskBatchRequest
	ScoreRiskBatchResponse  = dto.ScoreRiskBatchResponse
	DetectDuplicateRequest  = dto.DetectDuplicateRequest
	DetectDuplicateResponse = dto.DuplicateVerdictResponse
	AnalyzeQueryRequest     = dto.AnalyzeQueryRequest
	AnalyzeQueryResponse    = dto.QueryAnalysisResponse
	MatchBiometricRequest   = dto.MatchBiometricRequest
	MatchBiometricResponse  = dto.MatchBiometricResponse
)

// ScreeningServiceServer is the server API for ScreeningService.
type ScreeningServiceServer interface {
	ScoreRisk(context.Context, *ScoreRiskRequest) (*ScoreRiskResponse, error)
	ScoreRiskBatch(context.Context, *ScoreRiskBatchRequest) (*ScoreRiskBatchResponse, error)
	DetectDuplicate(context.Context, *DetectDuplicateRequest) (*DetectDuplicateResponse, error)
	AnalyzeQuery(context.Context, *AnalyzeQueryRequest) (*AnalyzeQueryResponse, error)
	MatchBiometric(context.Context, *MatchBiometricRequest) (*MatchBiometricResponse, error)
	mustEmbedUnimplementedScreeningServiceServer()
}

// UnimplementedScreeningServiceServer provides forward-compatible default implementations.
type UnimplementedScreeningServiceServer struct{}

func (UnimplementedScreeningServiceServer) ScoreRisk(context.Context, *ScoreRiskRequest) (*ScoreRiskResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ScoreRisk not implemented")
}
func (UnimplementedScreeningServiceServer) ScoreRiskBatch(context.Context, *ScoreRiskBatchRequest) (*ScoreRiskBatchResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ScoreRiskBatch not implemented")
}
func (UnimplementedScreeningServiceServer) DetectDuplicate(context.Context, *DetectDuplicateRequest) (*DetectDuplicateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DetectDuplicate not implemented")
}
func (UnimplementedScreeningServiceServer) AnalyzeQuery(context.Context, *AnalyzeQueryRequest) (*AnalyzeQueryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AnalyzeQuery not implemented")
}
func (UnimplementedScreeningServiceServer) MatchBiometric(context.Context, *MatchBiometricRequest) (*MatchBiometricResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method MatchBiometric not implemented")
}
func (UnimplementedScreeningServiceServer) mustEmbedUnimplementedScreeningServiceServer() {}

// RegisterScreeningServiceServer registers the ScreeningServiceServer with the gRPC server.
func RegisterScreeningServiceServer(s grpclib.ServiceRegistrar, srv ScreeningServiceServer) {
	s.RegisterService(&_ScreeningService_serviceDesc, srv)
}

var _ScreeningService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ScreeningServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "ScoreRisk", Handler: _ScreeningService_ScoreRisk_Handler},
		{MethodName: "ScoreRiskBatch", Handler: _ScreeningService_ScoreRiskBatch_Handler},
		{MethodName: "DetectDuplicate", Handler: _ScreeningService_DetectDuplicate_Handler},
		{MethodName: "AnalyzeQuery", Handler: _ScreeningService_AnalyzeQuery_Handler},
		{MethodName: "MatchBiometric", Handler: _ScreeningService_MatchBiometric_Handler},
	},
	Streams:  []grpclib.StreamDesc{},
	Metadata: "bib/screening/v1/screening.proto",
}

func _ScreeningService_ScoreRisk_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(ScoreRiskRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScreeningServiceServer).ScoreRisk(ctx, req)
	}
	info := &grpclib.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/ScoreRisk"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScreeningServiceServer).ScoreRisk(ctx, req.(*ScoreRiskRequest))
	}
	return interceptor(ctx, req, info, handler)
}

func _ScreeningService_ScoreRiskBatch_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(ScoreRiskBatchRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScreeningServiceServer).ScoreRiskBatch(ctx, req)
	}
	info := &grpclib.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/ScoreRiskBatch"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScreeningServiceServer).ScoreRiskBatch(ctx, req.(*ScoreRiskBatchRequest))
	}
	return interceptor(ctx, req, info, handler)
}

func _ScreeningService_DetectDuplicate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(DetectDuplicateRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScreeningServiceServer).DetectDuplicate(ctx, req)
	}
	info := &grpclib.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/DetectDuplicate"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScreeningServiceServer).DetectDuplicate(ctx, req.(*DetectDuplicateRequest))
	}
	return interceptor(ctx, req, info, handler)
}

func _ScreeningService_AnalyzeQuery_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(AnalyzeQueryRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScreeningServiceServer).AnalyzeQuery(ctx, req)
	}
	info := &grpclib.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/AnalyzeQuery"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScreeningServiceServer).AnalyzeQuery(ctx, req.(*AnalyzeQueryRequest))
	}
	return interceptor(ctx, req, info, handler)
}

func _ScreeningService_MatchBiometric_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(MatchBiometricRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScreeningServiceServer).MatchBiometric(ctx, req)
	}
	info := &grpclib.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/MatchBiometric"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScreeningServiceServer).MatchBiometric(ctx, req.(*MatchBiometricRequest))
	}
	return interceptor(ctx, req, info, handler)
}

package grpc

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bibbank/screening-service/internal/application/usecase"
	"github.com/bibbank/screening-service/pkg/auth"
)

const tracerName = "github.com/bibbank/screening-service/internal/presentation/grpc"

var (
	scoringRoles  = []string{auth.RoleAdmin, auth.RoleAnalyst, auth.RoleAPIClient}
	analysisRoles = []string{auth.RoleAdmin, auth.RoleAnalyst, auth.RoleAuditor}
)

// Compile-time assertion that ScreeningServiceHandler implements ScreeningServiceServer.
var _ ScreeningServiceServer = (*ScreeningServiceHandler)(nil)

// UseCases groups the application use cases exposed over gRPC.
type UseCases struct {
	ScoreRisk       *usecase.ScoreRisk
	ScoreRiskBatch  *usecase.ScoreRiskBatch
	DetectDuplicate *usecase.DetectDuplicate
	AnalyzeQuery    *usecase.AnalyzeQuery
	MatchBiometric  *usecase.MatchBiometric
}

// ScreeningServiceHandler implements the gRPC ScreeningServiceServer interface.
type ScreeningServiceHandler struct {
	UnimplementedScreeningServiceServer
	logger       *slog.Logger
	tracer       trace.Tracer
	useCases     UseCases
	authRequired bool
}

// NewScreeningServiceHandler creates a new gRPC handler. When authRequired is
// false, role checks are skipped; this is only meant for local development.
func NewScreeningServiceHandler(useCases UseCases, logger *slog.Logger, authRequired bool) *ScreeningServiceHandler {
	return &ScreeningServiceHandler{
		useCases:     useCases,
		logger:       logger,
		tracer:       otel.Tracer(tracerName),
		authRequired: authRequired,
	}
}

// ScoreRisk scores a single risk profile.
func (h *ScreeningServiceHandler) ScoreRisk(ctx context.Context, req *ScoreRiskRequest) (*ScoreRiskResponse, error) {
	ctx, span := h.tracer.Start(ctx, "ScreeningService.ScoreRisk")
	defer span.End()

	if err := h.requireRole(ctx, scoringRoles...); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	resp, err := h.useCases.ScoreRisk.Execute(ctx, *req)
	if err != nil {
		return nil, h.toStatus(ctx, span, "score risk", err)
	}

	span.SetAttributes(
		attribute.String("screening.risk.level", resp.Level),
		attribute.Float64("screening.risk.overall", resp.Overall),
	)
	return &resp, nil
}

// ScoreRiskBatch scores many risk profiles, preserving request order.
func (h *ScreeningServiceHandler) ScoreRiskBatch(ctx context.Context, req *ScoreRiskBatchRequest) (*ScoreRiskBatchResponse, error) {
	ctx, span := h.tracer.Start(ctx, "ScreeningService.ScoreRiskBatch")
	defer span.End()

	if err := h.requireRole(ctx, scoringRoles...); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	span.SetAttributes(attribute.Int("screening.batch.size", len(req.Profiles)))

	resp, err := h.useCases.ScoreRiskBatch.Execute(ctx, *req)
	if err != nil {
		return nil, h.toStatus(ctx, span, "score risk batch", err)
	}
	return &resp, nil
}

// DetectDuplicate compares two identity records.
func (h *ScreeningServiceHandler) DetectDuplicate(ctx context.Context, req *DetectDuplicateRequest) (*DetectDuplicateResponse, error) {
	ctx, span := h.tracer.Start(ctx, "ScreeningService.DetectDuplicate")
	defer span.End()

	if err := h.requireRole(ctx, scoringRoles...); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	resp, err := h.useCases.DetectDuplicate.Execute(ctx, *req)
	if err != nil {
		return nil, h.toStatus(ctx, span, "detect duplicate", err)
	}

	span.SetAttributes(
		attribute.Bool("screening.duplicate", resp.IsDuplicate),
		attribute.Float64("screening.duplicate.confidence", resp.Confidence),
	)
	return &resp, nil
}

// AnalyzeQuery extracts entities and intent from an investigator query.
func (h *ScreeningServiceHandler) AnalyzeQuery(ctx context.Context, req *AnalyzeQueryRequest) (*AnalyzeQueryResponse, error) {
	ctx, span := h.tracer.Start(ctx, "ScreeningService.AnalyzeQuery")
	defer span.End()

	if err := h.requireRole(ctx, analysisRoles...); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	resp, err := h.useCases.AnalyzeQuery.Execute(ctx, *req)
	if err != nil {
		return nil, h.toStatus(ctx, span, "analyze query", err)
	}

	span.SetAttributes(attribute.String("screening.query.intent", resp.Intent.Intent))
	return &resp, nil
}

// MatchBiometric returns pseudo-biometric match scores for a subject.
func (h *ScreeningServiceHandler) MatchBiometric(ctx context.Context, req *MatchBiometricRequest) (*MatchBiometricResponse, error) {
	ctx, span := h.tracer.Start(ctx, "ScreeningService.MatchBiometric")
	defer span.End()

	if err := h.requireRole(ctx, scoringRoles...); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	resp, err := h.useCases.MatchBiometric.Execute(ctx, *req)
	if err != nil {
		return nil, h.toStatus(ctx, span, "match biometric", err)
	}
	return &resp, nil
}

// requireRole checks that the caller has at least one of the given roles.
func (h *ScreeningServiceHandler) requireRole(ctx context.Context, roles ...string) error {
	if !h.authRequired {
		return nil
	}
	return auth.Authorize(ctx, roles...)
}

// toStatus converts a use case error into a gRPC status. Validation errors
// keep their message; anything unexpected is logged and hidden.
func (h *ScreeningServiceHandler) toStatus(ctx context.Context, span trace.Span, op string, err error) error {
	span.RecordError(err)
	span.SetStatus(otelcodes.Error, op+" failed")

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	default:
		h.logger.ErrorContext(ctx, "failed to "+op, slog.String("error", err.Error()))
		return status.Error(codes.Internal, "internal error")
	}
}

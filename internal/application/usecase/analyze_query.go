package usecase

import (
	"context"
	"log/slog"

	"github.com/bibbank/screening-service/internal/application/dto"
	"github.com/bibbank/screening-service/internal/domain/port"
	"github.com/bibbank/screening-service/internal/domain/service"
)

// AnalyzeQuery extracts entities and intent from an investigator's query.
type AnalyzeQuery struct {
	analyzer service.Analyzer
	recorder port.Recorder
	logger   *slog.Logger
}

// NewAnalyzeQuery creates a new AnalyzeQuery use case.
func NewAnalyzeQuery(analyzer service.Analyzer, recorder port.Recorder, logger *slog.Logger) *AnalyzeQuery {
	return &AnalyzeQuery{analyzer: analyzer, recorder: recorder, logger: logger}
}

// Execute analyzes the query text.
func (uc *AnalyzeQuery) Execute(ctx context.Context, req dto.AnalyzeQueryRequest) (dto.QueryAnalysisResponse, error) {
	if err := validateRequest(req); err != nil {
		return dto.QueryAnalysisResponse{}, err
	}

	analysis := uc.analyzer.Analyze(req.Query)

	uc.recorder.QueryClassified(ctx, analysis.Intent.Intent.String())
	uc.logger.DebugContext(ctx, "query analyzed",
		"intent", analysis.Intent.Intent.String(),
		"confidence", analysis.Intent.Confidence,
		"names", len(analysis.Entities.Names),
		"locations", len(analysis.Entities.Locations),
	)

	return dto.FromQueryAnalysis(analysis), nil
}

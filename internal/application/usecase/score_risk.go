package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bibbank/screening-service/internal/application/dto"
	"github.com/bibbank/screening-service/internal/domain/event"
	"github.com/bibbank/screening-service/internal/domain/port"
	"github.com/bibbank/screening-service/internal/domain/service"
	"github.com/bibbank/screening-service/internal/domain/valueobject"
	"github.com/bibbank/screening-service/pkg/events"
)

// ScoreRisk is the use case for scoring a single risk profile.
type ScoreRisk struct {
	scorer   service.Scorer
	recorder port.Recorder
	logger   *slog.Logger
	events   dispatcher
}

// NewScoreRisk creates a new ScoreRisk use case.
func NewScoreRisk(
	scorer service.Scorer,
	publisher port.EventPublisher,
	recorder port.Recorder,
	logger *slog.Logger,
) *ScoreRisk {
	return &ScoreRisk{
		scorer:   scorer,
		recorder: recorder,
		logger:   logger,
		events:   dispatcher{publisher: publisher, recorder: recorder, logger: logger},
	}
}

// Execute validates the request, scores the profile and publishes the
// assessment events.
func (uc *ScoreRisk) Execute(ctx context.Context, req dto.ScoreRiskRequest) (dto.RiskScoreResponse, error) {
	if err := validateRequest(req); err != nil {
		return dto.RiskScoreResponse{}, err
	}
	return uc.score(ctx, req)
}

func (uc *ScoreRisk) score(ctx context.Context, req dto.ScoreRiskRequest) (dto.RiskScoreResponse, error) {
	profile, err := req.ToRiskProfile()
	if err != nil {
		return dto.RiskScoreResponse{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	result := uc.scorer.Score(profile)
	assessmentID := uuid.New()
	now := time.Now()

	uc.recorder.RiskAssessed(ctx, result.Level.String())
	uc.logger.InfoContext(ctx, "risk assessed",
		"assessment_id", assessmentID.String(),
		"subject_id", req.SubjectID,
		"overall", result.Overall,
		"level", result.Level.String(),
		"factors", len(result.Breakdown),
	)

	evts := []events.DomainEvent{event.NewRiskAssessed(assessmentID, req.SubjectID, result, now)}
	if result.Level.Equal(valueobject.RiskLevelCritical) {
		evts = append(evts, event.NewCriticalRiskDetected(assessmentID, req.SubjectID, result, now))
		uc.logger.WarnContext(ctx, "critical risk detected",
			"assessment_id", assessmentID.String(),
			"subject_id", req.SubjectID,
		)
	}
	uc.events.dispatch(ctx, evts...)

	return dto.FromRiskScore(assessmentID, req.SubjectID, result), nil
}

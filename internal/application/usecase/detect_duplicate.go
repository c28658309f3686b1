package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bibbank/screening-service/internal/application/dto"
	"github.com/bibbank/screening-service/internal/domain/event"
	"github.com/bibbank/screening-service/internal/domain/port"
	"github.com/bibbank/screening-service/internal/domain/service"
)

// DetectDuplicate is the use case for comparing two identity records.
type DetectDuplicate struct {
	detector *service.DuplicateDetector
	recorder port.Recorder
	logger   *slog.Logger
	events   dispatcher
}

// NewDetectDuplicate creates a new DetectDuplicate use case.
func NewDetectDuplicate(
	detector *service.DuplicateDetector,
	publisher port.EventPublisher,
	recorder port.Recorder,
	logger *slog.Logger,
) *DetectDuplicate {
	return &DetectDuplicate{
		detector: detector,
		recorder: recorder,
		logger:   logger,
		events:   dispatcher{publisher: publisher, recorder: recorder, logger: logger},
	}
}

// Execute compares the two records and publishes DuplicateDetected when
// they are judged to be the same person.
func (uc *DetectDuplicate) Execute(ctx context.Context, req dto.DetectDuplicateRequest) (dto.DuplicateVerdictResponse, error) {
	if err := validateRequest(req); err != nil {
		return dto.DuplicateVerdictResponse{}, err
	}

	a, b := req.RecordA.ToModel(), req.RecordB.ToModel()
	verdict := uc.detector.Detect(a, b)
	checkID := uuid.New()

	uc.recorder.DuplicateChecked(ctx, verdict.IsDuplicate)
	uc.logger.InfoContext(ctx, "duplicate check completed",
		"check_id", checkID.String(),
		"is_duplicate", verdict.IsDuplicate,
		"confidence", verdict.Confidence,
	)

	if verdict.IsDuplicate {
		uc.events.dispatch(ctx, event.NewDuplicateDetected(checkID, a, b, verdict, time.Now()))
	}

	return dto.FromDuplicateVerdict(checkID, uc.detector.Threshold(), verdict), nil
}

package event

import (
	"time"

	"github.com/google/uuid"

	"github.com/bibbank/screening-service/internal/domain/model"
	"github.com/bibbank/screening-service/pkg/events"
)

const (
	// EventTypeRiskAssessed is emitted whenever a risk profile is scored.
	EventTypeRiskAssessed = "screening.risk.assessed"

	// EventTypeCriticalRiskDetected is emitted when a score lands in the CRITICAL tier.
	EventTypeCriticalRiskDetected = "screening.risk.critical_detected"

	// EventTypeDuplicateDetected is emitted when two records are judged to be the same person.
	EventTypeDuplicateDetected = "screening.duplicate.detected"

	AggregateRiskAssessment = "RiskAssessment"
	AggregateDuplicateCheck = "DuplicateCheck"
)

// RiskAssessed is published after a risk profile has been scored.
type RiskAssessed struct {
	events.BaseEvent
	SubjectID  string   `json:"subject_id,omitempty"`
	Level      string   `json:"level"`
	Factors    []string `json:"factors"`
	Overall    float64  `json:"overall"`
	Confidence float64  `json:"confidence"`
}

// NewRiskAssessed builds a RiskAssessed event for the given assessment.
func NewRiskAssessed(assessmentID uuid.UUID, subjectID string, score model.RiskScore, at time.Time) RiskAssessed {
	return RiskAssessed{
		BaseEvent:  events.NewBaseEvent(EventTypeRiskAssessed, assessmentID, AggregateRiskAssessment, at),
		SubjectID:  subjectID,
		Level:      score.Level.String(),
		Factors:    score.Factors(),
		Overall:    score.Overall,
		Confidence: score.Confidence,
	}
}

// CriticalRiskDetected is published when an assessment reaches the CRITICAL
// tier, so downstream alert feeds can react.
type CriticalRiskDetected struct {
	events.BaseEvent
	SubjectID string   `json:"subject_id,omitempty"`
	Reasons   []string `json:"reasons"`
	Overall   float64  `json:"overall"`
}

// NewCriticalRiskDetected builds a CriticalRiskDetected event.
func NewCriticalRiskDetected(assessmentID uuid.UUID, subjectID string, score model.RiskScore, at time.Time) CriticalRiskDetected {
	reasons := make([]string, 0, len(score.Breakdown))
	for _, f := range score.Breakdown {
		reasons = append(reasons, f.Reason)
	}

	return CriticalRiskDetected{
		BaseEvent: events.NewBaseEvent(EventTypeCriticalRiskDetected, assessmentID, AggregateRiskAssessment, at),
		SubjectID: subjectID,
		Reasons:   reasons,
		Overall:   score.Overall,
	}
}

// DuplicateDetected is published when a duplicate check returns a positive verdict.
type DuplicateDetected struct {
	events.BaseEvent
	RecordA    string   `json:"record_a"`
	RecordB    string   `json:"record_b"`
	Reasons    []string `json:"reasons"`
	Confidence float64  `json:"confidence"`
}

// NewDuplicateDetected builds a DuplicateDetected event. Records are identified
// by name only; biometric samples never leave the service.
func NewDuplicateDetected(checkID uuid.UUID, a, b model.IdentityRecord, verdict model.DuplicateVerdict, at time.Time) DuplicateDetected {
	return DuplicateDetected{
		BaseEvent:  events.NewBaseEvent(EventTypeDuplicateDetected, checkID, AggregateDuplicateCheck, at),
		RecordA:    a.Name,
		RecordB:    b.Name,
		Reasons:    verdict.Reasons,
		Confidence: verdict.Confidence,
	}
}

package event_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bibbank/screening-service/internal/domain/event"
	"github.com/bibbank/screening-service/internal/domain/model"
	"github.com/bibbank/screening-service/internal/domain/valueobject"
)

func criticalScore() model.RiskScore {
	return model.RiskScore{
		Overall:    80,
		Level:      valueobject.RiskLevelCritical,
		Confidence: 76,
		Breakdown: []model.RiskFactor{
			{Factor: "Watch List", Score: 40, Weight: 40, Reason: "Subject appears on an active watch list"},
			{Factor: "Criminal History", Score: 30, Weight: 30, Reason: "2 conviction(s) on record with high severity"},
			{Factor: "Document Issues", Score: 10, Weight: 15, Reason: "other"},
		},
	}
}

func TestNewRiskAssessed(t *testing.T) {
	id := uuid.New()
	at := time.Now()

	evt := event.NewRiskAssessed(id, "SUBJ-9", criticalScore(), at)

	assert.Equal(t, event.EventTypeRiskAssessed, evt.EventType())
	assert.Equal(t, id, evt.AggregateID())
	assert.Equal(t, event.AggregateRiskAssessment, evt.AggregateType())
	assert.Equal(t, "CRITICAL", evt.Level)
	assert.Equal(t, []string{"Watch List", "Criminal History", "Document Issues"}, evt.Factors)
	assert.Equal(t, 80.0, evt.Overall)
}

func TestNewCriticalRiskDetected(t *testing.T) {
	evt := event.NewCriticalRiskDetected(uuid.New(), "SUBJ-9", criticalScore(), time.Now())

	assert.Equal(t, event.EventTypeCriticalRiskDetected, evt.EventType())
	assert.Len(t, evt.Reasons, 3)
	assert.Equal(t, "Subject appears on an active watch list", evt.Reasons[0])
}

func TestNewDuplicateDetected(t *testing.T) {
	a := model.IdentityRecord{Name: "Musu Kollie", Fingerprints: []string{"secret"}}
	b := model.IdentityRecord{Name: "Musu Kolie", Fingerprints: []string{"secret"}}
	verdict := model.DuplicateVerdict{IsDuplicate: true, Confidence: 96, Reasons: []string{"Fingerprint match: 100%"}}

	evt := event.NewDuplicateDetected(uuid.New(), a, b, verdict, time.Now())

	assert.Equal(t, event.EventTypeDuplicateDetected, evt.EventType())
	assert.Equal(t, event.AggregateDuplicateCheck, evt.AggregateType())
	assert.Equal(t, "Musu Kollie", evt.RecordA)
	assert.Equal(t, "Musu Kolie", evt.RecordB)
	assert.Equal(t, 96.0, evt.Confidence)
}

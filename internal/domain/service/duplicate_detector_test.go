package service_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/screening-service/internal/domain/model"
	"github.com/bibbank/screening-service/internal/domain/service"
)

func baseRecord() model.IdentityRecord {
	return model.IdentityRecord{
		Name:        "Musu Kollie",
		DateOfBirth: "1988-04-12",
		Nationality: "LR",
	}
}

func TestDuplicateDetector_IdenticalWithoutFingerprints(t *testing.T) {
	detector := service.NewDuplicateDetector()

	verdict := detector.Detect(baseRecord(), baseRecord())

	// 100*0.4 + 100*0.2 + 100*0.1 = 70, below the 75 threshold.
	assert.Equal(t, 70.0, verdict.Confidence)
	assert.False(t, verdict.IsDuplicate)
	assert.Equal(t, []string{"Name similarity: 100%", "Exact date of birth match"}, verdict.Reasons)
}

func TestDuplicateDetector_IdenticalWithFingerprints(t *testing.T) {
	detector := service.NewDuplicateDetector()

	a := baseRecord()
	a.Fingerprints = []string{"fp-left-thumb", "fp-right-thumb"}
	b := baseRecord()
	b.Fingerprints = []string{"fp-left-thumb", "fp-right-thumb"}

	verdict := detector.Detect(a, b)

	// 70 + 100*0.3 = 100, capped at 99.
	assert.Equal(t, 99.0, verdict.Confidence)
	assert.True(t, verdict.IsDuplicate)
	assert.Equal(t, []string{
		"Name similarity: 100%",
		"Exact date of birth match",
		"Fingerprint match: 100%",
	}, verdict.Reasons)
}

func TestDuplicateDetector_FingerprintsOnOneSideOnly(t *testing.T) {
	detector := service.NewDuplicateDetector()

	a := baseRecord()
	a.Fingerprints = []string{"fp-left-thumb"}

	verdict := detector.Detect(a, baseRecord())

	assert.Equal(t, 70.0, verdict.Confidence)
	assert.False(t, verdict.IsDuplicate)
	assert.NotContains(t, verdict.Reasons, "Fingerprint match: 100%")
}

func TestDuplicateDetector_NameVariantWithMatchingBiometrics(t *testing.T) {
	detector := service.NewDuplicateDetector()

	a := model.IdentityRecord{Name: "Jon Doe", DateOfBirth: "1990-01-15", Nationality: "LR", Fingerprints: []string{"fp-1"}}
	b := model.IdentityRecord{Name: "John Doe", DateOfBirth: "1990-01-15", Nationality: "LR", Fingerprints: []string{"fp-1"}}

	verdict := detector.Detect(a, b)

	// 87.5*0.4 + 20 + 10 + 30 = 95.
	assert.InDelta(t, 95.0, verdict.Confidence, 1e-9)
	assert.True(t, verdict.IsDuplicate)
	require.Len(t, verdict.Reasons, 3)
	assert.Equal(t, "Name similarity: 88%", verdict.Reasons[0])
}

func TestDuplicateDetector_DivergentFingerprints(t *testing.T) {
	detector := service.NewDuplicateDetector()

	a := baseRecord()
	a.Fingerprints = []string{"hello world"}
	b := baseRecord()
	b.Fingerprints = []string{"fingerprint"}

	verdict := detector.Detect(a, b)

	assert.Equal(t, 70.0, verdict.Confidence)
	assert.False(t, verdict.IsDuplicate)
	assert.Len(t, verdict.Reasons, 2)
}

func TestDuplicateDetector_UnrelatedRecords(t *testing.T) {
	detector := service.NewDuplicateDetector()

	verdict := detector.Detect(
		model.IdentityRecord{Name: "Alice Smith", DateOfBirth: "1970-02-01", Nationality: "GH"},
		model.IdentityRecord{Name: "Bob Jones", DateOfBirth: "1999-12-31", Nationality: "NG"},
	)

	assert.False(t, verdict.IsDuplicate)
	assert.Less(t, verdict.Confidence, 40.0)
	assert.GreaterOrEqual(t, verdict.Confidence, 0.0)
	assert.Empty(t, verdict.Reasons)
}

func TestDuplicateDetector_NationalityDoesNotProduceReason(t *testing.T) {
	detector := service.NewDuplicateDetector()

	verdict := detector.Detect(
		model.IdentityRecord{Name: "abc", DateOfBirth: "1970-02-01", Nationality: "LR"},
		model.IdentityRecord{Name: "xyz", DateOfBirth: "1970-02-02", Nationality: "LR"},
	)

	assert.Equal(t, 10.0, verdict.Confidence)
	assert.Empty(t, verdict.Reasons)
}

func TestDuplicateDetector_WithThreshold(t *testing.T) {
	detector := service.NewDuplicateDetector(service.WithThreshold(70))

	verdict := detector.Detect(baseRecord(), baseRecord())

	assert.Equal(t, 70.0, detector.Threshold())
	assert.True(t, verdict.IsDuplicate)
}

func TestDuplicateDetector_InvalidThresholdKeepsDefault(t *testing.T) {
	for _, threshold := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -5, 100.5} {
		assert.ErrorIs(t, service.ValidateThreshold(threshold), service.ErrInvalidThreshold)

		var detector *service.DuplicateDetector
		require.NotPanics(t, func() {
			detector = service.NewDuplicateDetector(service.WithThreshold(threshold))
		})
		assert.Equal(t, service.DefaultDuplicateThreshold, detector.Threshold())
	}

	assert.NoError(t, service.ValidateThreshold(0))
	assert.NoError(t, service.ValidateThreshold(100))
}

func TestDuplicateDetector_DefaultThreshold(t *testing.T) {
	assert.Equal(t, service.DefaultDuplicateThreshold, service.NewDuplicateDetector().Threshold())
}

package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/bibbank/screening-service/internal/domain/model"
	"github.com/bibbank/screening-service/pkg/biometric"
	"github.com/bibbank/screening-service/pkg/similarity"
)

// DefaultDuplicateThreshold is the confidence at or above which two records are
// declared duplicates. Without fingerprints on both sides the composite tops out
// at 70, so a duplicate verdict effectively requires biometric evidence.
const DefaultDuplicateThreshold = 75.0

const (
	nameReasonThreshold        = 80.0
	fingerprintReasonThreshold = 90.0
)

var (
	nameWeight        = decimal.RequireFromString("0.4")
	dateOfBirthWeight = decimal.RequireFromString("0.2")
	nationalityWeight = decimal.RequireFromString("0.1")
	biometricWeight   = decimal.RequireFromString("0.3")
	fullMatch         = decimal.NewFromInt(100)
	maxDuplicateConf  = decimal.NewFromInt(99)
)

// DuplicateDetector combines name, date of birth, nationality and fingerprint
// similarity into a weighted duplicate-identity verdict.
type DuplicateDetector struct {
	threshold decimal.Decimal
}

// DetectorOption configures a DuplicateDetector.
type DetectorOption func(*DuplicateDetector)

// ErrInvalidThreshold is returned by ValidateThreshold for values outside [0,100].
var ErrInvalidThreshold = errors.New("duplicate threshold must be a finite number within [0,100]")

// ValidateThreshold reports whether threshold can be used with WithThreshold.
func ValidateThreshold(threshold float64) error {
	if math.IsNaN(threshold) || threshold < 0 || threshold > 100 {
		return fmt.Errorf("%w: got %v", ErrInvalidThreshold, threshold)
	}
	return nil
}

// WithThreshold overrides the duplicate confidence threshold. Values rejected
// by ValidateThreshold leave the current threshold in place.
func WithThreshold(threshold float64) DetectorOption {
	return func(d *DuplicateDetector) {
		if ValidateThreshold(threshold) != nil {
			return
		}
		d.threshold = decimal.NewFromFloat(threshold)
	}
}

// NewDuplicateDetector creates a detector using DefaultDuplicateThreshold unless overridden.
func NewDuplicateDetector(opts ...DetectorOption) *DuplicateDetector {
	d := &DuplicateDetector{threshold: decimal.NewFromFloat(DefaultDuplicateThreshold)}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Threshold returns the configured duplicate threshold.
func (d *DuplicateDetector) Threshold() float64 {
	return d.threshold.InexactFloat64()
}

// Detect compares two identity records. Terms are evaluated in a fixed order
// (name, date of birth, nationality, fingerprints) and reasons follow that order.
func (d *DuplicateDetector) Detect(a, b model.IdentityRecord) model.DuplicateVerdict {
	reasons := make([]string, 0, 3)

	nameScore := similarity.NameSimilarity(a.Name, b.Name)
	composite := decimal.NewFromFloat(nameScore).Mul(nameWeight)
	if nameScore > nameReasonThreshold {
		reasons = append(reasons, fmt.Sprintf("Name similarity: %.0f%%", nameScore))
	}

	if a.DateOfBirth == b.DateOfBirth {
		composite = composite.Add(fullMatch.Mul(dateOfBirthWeight))
		reasons = append(reasons, "Exact date of birth match")
	}

	if a.Nationality == b.Nationality {
		composite = composite.Add(fullMatch.Mul(nationalityWeight))
	}

	if a.HasFingerprints() && b.HasFingerprints() {
		fingerprintScore := biometric.Similarity(a.Fingerprints, b.Fingerprints)
		composite = composite.Add(decimal.NewFromFloat(fingerprintScore).Mul(biometricWeight))
		if fingerprintScore > fingerprintReasonThreshold {
			reasons = append(reasons, fmt.Sprintf("Fingerprint match: %.0f%%", fingerprintScore))
		}
	}

	confidence := decimal.Min(composite, maxDuplicateConf)

	return model.DuplicateVerdict{
		IsDuplicate: confidence.GreaterThanOrEqual(d.threshold),
		Confidence:  confidence.InexactFloat64(),
		Reasons:     reasons,
	}
}

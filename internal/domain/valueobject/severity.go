package valueobject

import (
	"fmt"
	"strings"
)

// Severity classifies the gravity of a criminal record.
type Severity struct {
	value      string
	multiplier int
}

var (
	SeverityLow    = Severity{value: "low", multiplier: 1}
	SeverityMedium = Severity{value: "medium", multiplier: 2}
	SeverityHigh   = Severity{value: "high", multiplier: 3}
)

// SeverityFromString reconstructs a Severity from its string representation.
func SeverityFromString(s string) (Severity, error) {
	switch strings.ToLower(s) {
	case "low":
		return SeverityLow, nil
	case "medium":
		return SeverityMedium, nil
	case "high":
		return SeverityHigh, nil
	default:
		return Severity{}, fmt.Errorf("invalid severity: %s", s)
	}
}

// Multiplier is the factor applied per conviction when scoring criminal history.
// An unset Severity has multiplier 0.
func (s Severity) Multiplier() int {
	return s.multiplier
}

func (s Severity) String() string {
	return s.value
}

// IsZero returns true if the Severity has not been set.
func (s Severity) IsZero() bool {
	return s.value == ""
}

// Equal checks equality with another Severity.
func (s Severity) Equal(other Severity) bool {
	return s.value == other.value
}

package model

import "github.com/bibbank/screening-service/internal/domain/valueobject"

// CriminalRecord summarises a subject's convictions.
type CriminalRecord struct {
	Severity    valueobject.Severity
	Convictions int
}

// RiskProfile bundles the behavioural signals for a subject. Every field is
// optional: a nil pointer, zero count, false flag or unset status contributes
// no risk factor.
type RiskProfile struct {
	CriminalRecord    *CriminalRecord
	VisaStatus        valueobject.VisaStatus
	OverstayDays      int
	FinancialFlags    int
	TravelAnomalies   int
	DocumentIssues    int
	WatchList         bool
	BiometricMismatch bool
}

// RiskFactor is one triggered contributor to a risk score. Score never exceeds Weight.
type RiskFactor struct {
	Factor string
	Reason string
	Score  float64
	Weight float64
}

// RiskScore is the explainable result of scoring a RiskProfile.
// Breakdown holds only the triggered factors, in evaluation order.
type RiskScore struct {
	Level      valueobject.RiskLevel
	Breakdown  []RiskFactor
	Overall    float64
	Confidence float64
}

// Factors returns the labels of the triggered factors in evaluation order.
func (s RiskScore) Factors() []string {
	labels := make([]string, 0, len(s.Breakdown))
	for _, f := range s.Breakdown {
		labels = append(labels, f.Factor)
	}
	return labels
}

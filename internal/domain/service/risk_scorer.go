package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bibbank/screening-service/internal/domain/model"
	"github.com/bibbank/screening-service/internal/domain/valueobject"
)

// Factor labels as they appear in a RiskScore breakdown.
const (
	FactorCriminalHistory   = "Criminal History"
	FactorVisaStatus        = "Visa Status"
	FactorFinancialFlags    = "Financial Flags"
	FactorTravelAnomalies   = "Travel Anomalies"
	FactorWatchList         = "Watch List"
	FactorBiometricMismatch = "Biometric Mismatch"
	FactorDocumentIssues    = "Document Issues"
)

const (
	baseConfidence    = 60
	confidencePerHit  = 8
	maxRiskConfidence = 99
)

var maxOverall = decimal.NewFromInt(100)

// riskRule is one step of the ordered evaluation. evaluate reports whether the
// rule fired and, if so, its uncapped score and explanation.
type riskRule struct {
	evaluate func(p model.RiskProfile) (decimal.Decimal, string, bool)
	factor   string
	weight   decimal.Decimal
}

// RiskScorer is a domain service that turns a RiskProfile into a weighted,
// explainable RiskScore. Rules run in a fixed order which is also the order of
// the resulting breakdown.
type RiskScorer struct {
	rules []riskRule
}

// NewRiskScorer creates a new RiskScorer instance.
func NewRiskScorer() *RiskScorer {
	return &RiskScorer{
		rules: []riskRule{
			{factor: FactorCriminalHistory, weight: decimal.NewFromInt(30), evaluate: criminalHistory},
			{factor: FactorVisaStatus, weight: decimal.NewFromInt(25), evaluate: visaStanding},
			{factor: FactorFinancialFlags, weight: decimal.NewFromInt(20), evaluate: financialFlags},
			{factor: FactorTravelAnomalies, weight: decimal.NewFromInt(15), evaluate: travelAnomalies},
			{factor: FactorWatchList, weight: decimal.NewFromInt(40), evaluate: watchList},
			{factor: FactorBiometricMismatch, weight: decimal.NewFromInt(20), evaluate: biometricMismatch},
			{factor: FactorDocumentIssues, weight: decimal.NewFromInt(15), evaluate: documentIssues},
		},
	}
}

// Score evaluates every rule against the profile. The overall score is the sum
// of triggered factor scores capped at 100; confidence grows by 8 per triggered
// factor from a base of 60 and is capped at 99.
func (s *RiskScorer) Score(profile model.RiskProfile) model.RiskScore {
	total := decimal.Zero
	breakdown := make([]model.RiskFactor, 0, len(s.rules))

	for _, rule := range s.rules {
		score, reason, ok := rule.evaluate(profile)
		if !ok {
			continue
		}
		score = decimal.Min(score, rule.weight)
		total = total.Add(score)

		breakdown = append(breakdown, model.RiskFactor{
			Factor: rule.factor,
			Score:  score.InexactFloat64(),
			Weight: rule.weight.InexactFloat64(),
			Reason: reason,
		})
	}

	overall := decimal.Min(total, maxOverall).InexactFloat64()

	return model.RiskScore{
		Overall:    overall,
		Level:      valueobject.RiskLevelFromScore(overall),
		Breakdown:  breakdown,
		Confidence: float64(min(baseConfidence+confidencePerHit*len(breakdown), maxRiskConfidence)),
	}
}

func criminalHistory(p model.RiskProfile) (decimal.Decimal, string, bool) {
	if p.CriminalRecord == nil || p.CriminalRecord.Convictions <= 0 {
		return decimal.Zero, "", false
	}

	severity := p.CriminalRecord.Severity
	if severity.IsZero() {
		severity = valueobject.SeverityLow
	}

	n := p.CriminalRecord.Convictions
	score := countTimes(n, 5*int64(severity.Multiplier()))
	return score, fmt.Sprintf("%d conviction(s) on record with %s severity", n, severity), true
}

func visaStanding(p model.RiskProfile) (decimal.Decimal, string, bool) {
	switch {
	case p.VisaStatus.Equal(valueobject.VisaStatusOverstayed) && p.OverstayDays > 0:
		days := decimal.NewFromInt(int64(p.OverstayDays))
		return days.Div(decimal.NewFromInt(10)), fmt.Sprintf("Visa overstayed by %d days", p.OverstayDays), true
	case p.VisaStatus.Equal(valueobject.VisaStatusExpired):
		return decimal.NewFromInt(15), "Visa has expired", true
	default:
		return decimal.Zero, "", false
	}
}

func financialFlags(p model.RiskProfile) (decimal.Decimal, string, bool) {
	if p.FinancialFlags <= 0 {
		return decimal.Zero, "", false
	}
	return countTimes(p.FinancialFlags, 5), fmt.Sprintf("%d financial flag(s) raised", p.FinancialFlags), true
}

func travelAnomalies(p model.RiskProfile) (decimal.Decimal, string, bool) {
	if p.TravelAnomalies <= 0 {
		return decimal.Zero, "", false
	}
	return countTimes(p.TravelAnomalies, 3), fmt.Sprintf("%d unusual travel pattern(s) detected", p.TravelAnomalies), true
}

func watchList(p model.RiskProfile) (decimal.Decimal, string, bool) {
	if !p.WatchList {
		return decimal.Zero, "", false
	}
	return decimal.NewFromInt(40), "Subject appears on an active watch list", true
}

func biometricMismatch(p model.RiskProfile) (decimal.Decimal, string, bool) {
	if !p.BiometricMismatch {
		return decimal.Zero, "", false
	}
	return decimal.NewFromInt(20), "Biometric data does not match enrolled records", true
}

func documentIssues(p model.RiskProfile) (decimal.Decimal, string, bool) {
	if p.DocumentIssues <= 0 {
		return decimal.Zero, "", false
	}
	return countTimes(p.DocumentIssues, 7), fmt.Sprintf("%d document issue(s) found", p.DocumentIssues), true
}

// countTimes multiplies in decimal so large counts cannot wrap.
func countTimes(n int, perUnit int64) decimal.Decimal {
	return decimal.NewFromInt(int64(n)).Mul(decimal.NewFromInt(perUnit))
}

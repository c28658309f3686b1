package dto

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/bibbank/screening-service/internal/domain/model"
	"github.com/bibbank/screening-service/internal/domain/valueobject"
)

// ToRiskProfile converts a validated request into the domain profile.
func (r ScoreRiskRequest) ToRiskProfile() (model.RiskProfile, error) {
	profile := model.RiskProfile{
		OverstayDays:      r.OverstayDays,
		FinancialFlags:    r.FinancialFlags,
		TravelAnomalies:   r.TravelAnomalies,
		DocumentIssues:    r.DocumentIssues,
		WatchList:         r.WatchList,
		BiometricMismatch: r.BiometricMismatch,
	}

	if r.VisaStatus != "" {
		status, err := valueobject.VisaStatusFromString(r.VisaStatus)
		if err != nil {
			return model.RiskProfile{}, err
		}
		profile.VisaStatus = status
	}

	if r.CriminalRecord != nil {
		record := &model.CriminalRecord{Convictions: r.CriminalRecord.Convictions}
		if r.CriminalRecord.Severity != "" {
			severity, err := valueobject.SeverityFromString(r.CriminalRecord.Severity)
			if err != nil {
				return model.RiskProfile{}, fmt.Errorf("criminal record: %w", err)
			}
			record.Severity = severity
		}
		profile.CriminalRecord = record
	}

	return profile, nil
}

// ToModel converts the wire record into the domain record.
func (r IdentityRecord) ToModel() model.IdentityRecord {
	return model.IdentityRecord{
		Name:         r.Name,
		DateOfBirth:  r.DateOfBirth,
		Nationality:  r.Nationality,
		Fingerprints: r.Fingerprints,
	}
}

// FromRiskScore maps a domain score to the response DTO.
func FromRiskScore(assessmentID uuid.UUID, subjectID string, s model.RiskScore) RiskScoreResponse {
	breakdown := make([]RiskFactor, 0, len(s.Breakdown))
	for _, f := range s.Breakdown {
		breakdown = append(breakdown, RiskFactor{
			Factor: f.Factor,
			Reason: f.Reason,
			Score:  f.Score,
			Weight: f.Weight,
		})
	}

	return RiskScoreResponse{
		AssessmentID: assessmentID,
		SubjectID:    subjectID,
		Overall:      s.Overall,
		Level:        s.Level.String(),
		Breakdown:    breakdown,
		Confidence:   s.Confidence,
	}
}

// FromDuplicateVerdict maps a domain verdict to the response DTO.
func FromDuplicateVerdict(checkID uuid.UUID, threshold float64, v model.DuplicateVerdict) DuplicateVerdictResponse {
	return DuplicateVerdictResponse{
		CheckID:     checkID,
		IsDuplicate: v.IsDuplicate,
		Confidence:  v.Confidence,
		Threshold:   threshold,
		Reasons:     v.Reasons,
	}
}

// FromQueryAnalysis maps a domain analysis to the response DTO.
func FromQueryAnalysis(a model.QueryAnalysis) QueryAnalysisResponse {
	return QueryAnalysisResponse{
		Entities: Entities{
			Names:     a.Entities.Names,
			Dates:     a.Entities.Dates,
			Locations: a.Entities.Locations,
			Numbers:   a.Entities.Numbers,
		},
		Intent: Intent{
			Intent:     a.Intent.Intent.String(),
			Keywords:   a.Intent.Keywords,
			Confidence: a.Intent.Confidence,
		},
	}
}

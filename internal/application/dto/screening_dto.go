package dto

import "github.com/google/uuid"

// CriminalRecord is the wire form of a subject's conviction history.
type CriminalRecord struct {
	Severity    string `json:"severity" yaml:"severity" validate:"omitempty,oneof=low medium high"`
	Convictions int    `json:"convictions" yaml:"convictions" validate:"gte=0"`
}

// ScoreRiskRequest is the input DTO for the ScoreRisk use case.
// Absent fields contribute nothing to the score.
type ScoreRiskRequest struct {
	CriminalRecord    *CriminalRecord `json:"criminal_record,omitempty" yaml:"criminal_record"`
	SubjectID         string          `json:"subject_id,omitempty" yaml:"subject_id" validate:"max=128"`
	VisaStatus        string          `json:"visa_status,omitempty" yaml:"visa_status" validate:"omitempty,oneof=valid expired overstayed"`
	OverstayDays      int             `json:"overstay_days,omitempty" yaml:"overstay_days" validate:"gte=0"`
	FinancialFlags    int             `json:"financial_flags,omitempty" yaml:"financial_flags" validate:"gte=0"`
	TravelAnomalies   int             `json:"travel_anomalies,omitempty" yaml:"travel_anomalies" validate:"gte=0"`
	DocumentIssues    int             `json:"document_issues,omitempty" yaml:"document_issues" validate:"gte=0"`
	WatchList         bool            `json:"watch_list,omitempty" yaml:"watch_list"`
	BiometricMismatch bool            `json:"biometric_mismatch,omitempty" yaml:"biometric_mismatch"`
}

// RiskFactor is one entry of a risk breakdown.
type RiskFactor struct {
	Factor string  `json:"factor"`
	Reason string  `json:"reason"`
	Score  float64 `json:"score"`
	Weight float64 `json:"weight"`
}

// RiskScoreResponse is the output DTO returned after scoring a profile.
type RiskScoreResponse struct {
	SubjectID    string       `json:"subject_id,omitempty"`
	Level        string       `json:"level"`
	Breakdown    []RiskFactor `json:"breakdown"`
	Overall      float64      `json:"overall"`
	Confidence   float64      `json:"confidence"`
	AssessmentID uuid.UUID    `json:"assessment_id"`
}

// ScoreRiskBatchRequest scores many profiles in one call.
type ScoreRiskBatchRequest struct {
	Profiles []ScoreRiskRequest `json:"profiles" yaml:"profiles" validate:"required,min=1,max=1000,dive"`
}

// ScoreRiskBatchResponse holds one result per request profile, in request order.
type ScoreRiskBatchResponse struct {
	Results []RiskScoreResponse `json:"results"`
}

// IdentityRecord is the wire form of an identity record.
type IdentityRecord struct {
	Name         string   `json:"name" yaml:"name" validate:"required,max=256"`
	DateOfBirth  string   `json:"date_of_birth" yaml:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Nationality  string   `json:"nationality" yaml:"nationality" validate:"required,max=64"`
	Fingerprints []string `json:"fingerprints,omitempty" yaml:"fingerprints" validate:"max=10,dive,required"`
}

// DetectDuplicateRequest is the input DTO for the DetectDuplicate use case.
type DetectDuplicateRequest struct {
	RecordA IdentityRecord `json:"record_a" yaml:"record_a"`
	RecordB IdentityRecord `json:"record_b" yaml:"record_b"`
}

// DuplicateVerdictResponse is the output DTO of a duplicate check.
type DuplicateVerdictResponse struct {
	Reasons     []string  `json:"reasons"`
	Confidence  float64   `json:"confidence"`
	Threshold   float64   `json:"threshold"`
	CheckID     uuid.UUID `json:"check_id"`
	IsDuplicate bool      `json:"is_duplicate"`
}

// AnalyzeQueryRequest is the input DTO for the AnalyzeQuery use case.
type AnalyzeQueryRequest struct {
	Query string `json:"query" yaml:"query" validate:"required,max=2000"`
}

// Entities lists the tokens extracted from a query.
type Entities struct {
	Names     []string `json:"names"`
	Dates     []string `json:"dates"`
	Locations []string `json:"locations"`
	Numbers   []string `json:"numbers"`
}

// Intent is the classified intent of a query.
type Intent struct {
	Intent     string   `json:"intent"`
	Keywords   []string `json:"keywords"`
	Confidence float64  `json:"confidence"`
}

// QueryAnalysisResponse is the output DTO of the AnalyzeQuery use case.
type QueryAnalysisResponse struct {
	Entities Entities `json:"entities"`
	Intent   Intent   `json:"intent"`
}

// MatchBiometricRequest asks for pseudo-biometric match scores for one subject.
// At least one of FingerprintSample and FaceImage must be set.
type MatchBiometricRequest struct {
	SubjectID         string `json:"subject_id" yaml:"subject_id" validate:"required,max=128"`
	FingerprintSample string `json:"fingerprint_sample,omitempty" yaml:"fingerprint_sample" validate:"required_without=FaceImage"`
	FaceImage         string `json:"face_image,omitempty" yaml:"face_image" validate:"required_without=FingerprintSample"`
}

// MatchBiometricResponse carries the scores for whichever samples were supplied.
type MatchBiometricResponse struct {
	FingerprintScore *int   `json:"fingerprint_score,omitempty"`
	FaceScore        *int   `json:"face_score,omitempty"`
	SubjectID        string `json:"subject_id"`
}

package usecase

import (
	"context"

	"github.com/bibbank/screening-service/internal/application/dto"
	"github.com/bibbank/screening-service/pkg/biometric"
)

// MatchBiometric produces pseudo-biometric match scores for a subject.
// The scores are deterministic placeholders, not a real biometric match.
type MatchBiometric struct{}

// NewMatchBiometric creates a new MatchBiometric use case.
func NewMatchBiometric() *MatchBiometric {
	return &MatchBiometric{}
}

// Execute scores whichever samples the request carries.
func (uc *MatchBiometric) Execute(_ context.Context, req dto.MatchBiometricRequest) (dto.MatchBiometricResponse, error) {
	if err := validateRequest(req); err != nil {
		return dto.MatchBiometricResponse{}, err
	}

	resp := dto.MatchBiometricResponse{SubjectID: req.SubjectID}
	if req.FingerprintSample != "" {
		score := biometric.FingerprintMatchScore(req.SubjectID, req.FingerprintSample)
		resp.FingerprintScore = &score
	}
	if req.FaceImage != "" {
		score := biometric.FaceMatchScore(req.SubjectID, req.FaceImage)
		resp.FaceScore = &score
	}
	return resp, nil
}

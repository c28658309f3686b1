package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/bibbank/screening-service/internal/application/dto"
)

// DefaultBatchConcurrency bounds how many profiles of a batch are scored at once.
const DefaultBatchConcurrency = 8

// ScoreRiskBatch scores many profiles concurrently, keeping request order.
type ScoreRiskBatch struct {
	single      *ScoreRisk
	concurrency int
}

// NewScoreRiskBatch creates a new ScoreRiskBatch use case. A non-positive
// concurrency falls back to DefaultBatchConcurrency.
func NewScoreRiskBatch(single *ScoreRisk, concurrency int) *ScoreRiskBatch {
	if concurrency <= 0 {
		concurrency = DefaultBatchConcurrency
	}
	return &ScoreRiskBatch{single: single, concurrency: concurrency}
}

// Execute validates the whole batch up front, then scores every profile.
// Results[i] corresponds to Profiles[i].
func (uc *ScoreRiskBatch) Execute(ctx context.Context, req dto.ScoreRiskBatchRequest) (dto.ScoreRiskBatchResponse, error) {
	if err := validateRequest(req); err != nil {
		return dto.ScoreRiskBatchResponse{}, err
	}

	results := make([]dto.RiskScoreResponse, len(req.Profiles))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.concurrency)

	for i, profile := range req.Profiles {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			resp, err := uc.single.score(gctx, profile)
			if err != nil {
				return fmt.Errorf("profile %d: %w", i, err)
			}
			results[i] = resp
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return dto.ScoreRiskBatchResponse{}, err
	}

	return dto.ScoreRiskBatchResponse{Results: results}, nil
}

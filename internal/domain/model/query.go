package model

import "github.com/bibbank/screening-service/internal/domain/valueobject"

// Entities are the tokens extracted from a free-text query. Each slice is
// non-nil and preserves match order.
type Entities struct {
	Names     []string
	Dates     []string
	Locations []string
	Numbers   []string
}

// IntentResult is the classified intent of a query with the trigger words that matched.
type IntentResult struct {
	Intent     valueobject.Intent
	Keywords   []string
	Confidence float64
}

// QueryAnalysis combines entity extraction and intent classification for one query.
type QueryAnalysis struct {
	Entities Entities
	Intent   IntentResult
}

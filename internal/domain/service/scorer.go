package service

import "github.com/bibbank/screening-service/internal/domain/model"

// Scorer defines the interface for risk scoring strategies.
type Scorer interface {
	Score(profile model.RiskProfile) model.RiskScore
}

// Matcher decides whether two identity records describe the same person.
type Matcher interface {
	Detect(a, b model.IdentityRecord) model.DuplicateVerdict
}

// Analyzer interprets free-text operator queries.
type Analyzer interface {
	Analyze(query string) model.QueryAnalysis
}

package service

import (
	"regexp"
	"slices"
	"strings"

	"github.com/bibbank/screening-service/internal/domain/model"
	"github.com/bibbank/screening-service/internal/domain/valueobject"
)

var (
	namePattern   = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)+\b`)
	datePattern   = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b|\b\d{1,2}/\d{1,2}/\d{4}\b`)
	numberPattern = regexp.MustCompile(`\d+`)
)

// gazetteer is the closed list of place names recognised in queries.
var gazetteer = []string{
	"Monrovia", "Buchanan", "Gbarnga", "Kakata", "Harper", "Zwedru",
	"Voinjama", "Robertsport", "Sanniquellie", "Greenville",
	"Liberia", "Sierra Leone", "Guinea", "Ivory Coast", "Ghana", "Nigeria",
}

// DefaultIntentConfidence is reported when no trigger word matches.
const DefaultIntentConfidence = 60.0

type intentRule struct {
	intent     valueobject.Intent
	triggers   []string
	confidence float64
}

// intentRules are checked in order; the first group with any trigger present wins.
var intentRules = []intentRule{
	{intent: valueobject.IntentSearch, confidence: 85, triggers: []string{"find", "search", "look up", "locate", "show me", "who is"}},
	{intent: valueobject.IntentCompare, confidence: 90, triggers: []string{"compare", "match", "duplicate", "similar", "versus"}},
	{intent: valueobject.IntentAlert, confidence: 88, triggers: []string{"alert", "watchlist", "watch list", "flag", "suspicious", "warning"}},
	{intent: valueobject.IntentAnalyze, confidence: 87, triggers: []string{"analyze", "analyse", "assess", "risk", "evaluate", "investigate"}},
	{intent: valueobject.IntentReport, confidence: 83, triggers: []string{"report", "summary", "statistics", "export", "generate"}},
}

// QueryAnalyzer extracts entities and classifies intent in operator queries
// using fixed patterns. It holds no state.
type QueryAnalyzer struct{}

// NewQueryAnalyzer creates a new QueryAnalyzer.
func NewQueryAnalyzer() *QueryAnalyzer {
	return &QueryAnalyzer{}
}

// Analyze runs entity extraction and intent classification on the query.
func (q *QueryAnalyzer) Analyze(query string) model.QueryAnalysis {
	return model.QueryAnalysis{
		Entities: q.ExtractEntities(query),
		Intent:   q.ClassifyIntent(query),
	}
}

// ExtractEntities pulls names, dates, gazetteer locations and digit runs out of
// the query. Every slice is non-nil.
func (q *QueryAnalyzer) ExtractEntities(query string) model.Entities {
	return model.Entities{
		Names:     findAll(namePattern, query),
		Dates:     findAll(datePattern, query),
		Locations: findLocations(query),
		Numbers:   findAll(numberPattern, query),
	}
}

// ClassifyIntent returns the first intent group whose trigger words appear in
// the query, or search with confidence 60 when none do.
func (q *QueryAnalyzer) ClassifyIntent(query string) model.IntentResult {
	lower := strings.ToLower(query)

	for _, rule := range intentRules {
		keywords := make([]string, 0, len(rule.triggers))
		for _, trigger := range rule.triggers {
			if strings.Contains(lower, trigger) {
				keywords = append(keywords, trigger)
			}
		}
		if len(keywords) > 0 {
			return model.IntentResult{
				Intent:     rule.intent,
				Confidence: rule.confidence,
				Keywords:   keywords,
			}
		}
	}

	return model.IntentResult{
		Intent:     valueobject.IntentSearch,
		Confidence: DefaultIntentConfidence,
		Keywords:   []string{},
	}
}

func findAll(re *regexp.Regexp, s string) []string {
	matches := re.FindAllString(s, -1)
	if matches == nil {
		return []string{}
	}
	return matches
}

// findLocations returns gazetteer entries present in the query, ordered by
// where they first appear.
func findLocations(query string) []string {
	lower := strings.ToLower(query)

	type hit struct {
		place string
		at    int
	}
	hits := make([]hit, 0)
	for _, place := range gazetteer {
		if at := strings.Index(lower, strings.ToLower(place)); at >= 0 {
			hits = append(hits, hit{place: place, at: at})
		}
	}
	slices.SortStableFunc(hits, func(a, b hit) int { return a.at - b.at })

	locations := make([]string, 0, len(hits))
	for _, h := range hits {
		locations = append(locations, h.place)
	}
	return locations
}

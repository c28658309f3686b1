// Package similarity provides the string and set similarity primitives used
// for identity record linkage. All functions are pure and safe for concurrent use.
//
// Lengths are counted in runes, the same unit the edit distance is computed
// over, so a name similarity stays within [0, 100] for any UTF-8 input.
package similarity

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// EditDistance returns the case-insensitive Levenshtein distance between a and b,
// counting single-rune insertions, deletions and substitutions at unit cost.
func EditDistance(a, b string) int {
	return levenshtein.ComputeDistance(strings.ToLower(a), strings.ToLower(b))
}

// NameSimilarity returns a percentage in [0, 100] derived from the edit distance
// normalised by the longer input. Two empty names score 0.
func NameSimilarity(a, b string) float64 {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 0
	}

	score := 100 * (1 - float64(EditDistance(a, b))/float64(longest))
	return clamp(score, 0, 100)
}

// JaccardSimilarity returns 100 * |A∩B| / |A∪B| over the distinct elements of
// a and b. Two empty sets score 0.
func JaccardSimilarity(a, b []string) float64 {
	setA := toSet(a)
	setB := toSet(b)

	union := len(setA)
	intersection := 0
	for v := range setB {
		if _, ok := setA[v]; ok {
			intersection++
		} else {
			union++
		}
	}

	if union == 0 {
		return 0
	}
	return 100 * float64(intersection) / float64(union)
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func clamp(v, lo, hi float64) float64 {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}

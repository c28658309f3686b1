// Package biometric implements deterministic pseudo-biometric comparison.
//
// The functions here are a reproducible stand-in for real sensor matching: a
// sample is reduced to a 32-bit rolling hash of its text and scores are derived
// from that hash in closed form. They are not cryptographic and must not be
// "improved": golden outputs depend on the exact wraparound and modulo behaviour.
//
// Text is measured in UTF-16 code units, both for hashing and for the sample
// length bonuses, so a sample hashes the same way it is measured. This differs
// from package similarity, which counts runes; the two never compare lengths
// with each other.
package biometric

import "unicode/utf16"

const (
	// hashDifferenceScale normalises the absolute difference of two sample hashes.
	hashDifferenceScale = 1_000_000

	fingerprintFloor   = 75
	fingerprintModulus = 26
	faceFloor          = 70
	faceModulus        = 31
	maxMatchScore      = 100
)

// StableHash folds s into a non-negative integer using h = h*31 + c over the
// UTF-16 code units of s with 32-bit signed wraparound, then takes the absolute
// value. For ASCII input this is the same as walking the bytes.
func StableHash(s string) uint32 {
	var h int32
	for _, c := range codeUnits(s) {
		h = (h << 5) - h + int32(c)
	}
	if h < 0 {
		return uint32(-int64(h))
	}
	return uint32(h)
}

// Similarity compares two ordered sample lists element-wise over the shorter
// list's length and returns a percentage in [0, 100]. Either list being empty
// yields 0.
func Similarity(a, b []string) float64 {
	n := min(len(a), len(b))
	if n == 0 {
		return 0
	}

	var total float64
	for i := 0; i < n; i++ {
		diff := int64(StableHash(a[i])) - int64(StableHash(b[i]))
		if diff < 0 {
			diff = -diff
		}
		total += min(float64(diff)/hashDifferenceScale, 1.0)
	}

	score := (1 - total/float64(n)) * 100
	return max(0, min(score, 100))
}

// FingerprintMatchScore returns a stable score in [75, 100] for a fingerprint
// sample captured for subjectID. Samples longer than 50 characters receive a
// quality bonus of 5.
func FingerprintMatchScore(subjectID, sample string) int {
	score := fingerprintFloor + int(StableHash(subjectID+sample)%fingerprintModulus)
	if len(codeUnits(sample)) > 50 {
		score += 5
	}
	return min(score, maxMatchScore)
}

// FaceMatchScore returns a stable score in [70, 100] for a face image captured
// for subjectID. Longer captures receive a tiered quality bonus.
func FaceMatchScore(subjectID, image string) int {
	score := faceFloor + int(StableHash(subjectID+image)%faceModulus)
	switch length := len(codeUnits(image)); {
	case length > 100:
		score += 5
	case length > 50:
		score += 3
	}
	return min(score, maxMatchScore)
}

func codeUnits(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

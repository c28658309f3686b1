package model

// IdentityRecord is the structured identity of a subject as supplied by the caller.
// The engine never mutates it.
type IdentityRecord struct {
	Name         string
	DateOfBirth  string
	Nationality  string
	Fingerprints []string
}

// HasFingerprints reports whether the record carries at least one fingerprint sample.
func (r IdentityRecord) HasFingerprints() bool {
	return len(r.Fingerprints) > 0
}

// DuplicateVerdict is the outcome of comparing two identity records.
type DuplicateVerdict struct {
	Reasons     []string
	Confidence  float64
	IsDuplicate bool
}

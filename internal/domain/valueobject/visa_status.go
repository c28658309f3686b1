package valueobject

import (
	"fmt"
	"strings"
)

// VisaStatus is the immigration standing of a subject.
type VisaStatus struct {
	value string
}

var (
	VisaStatusValid      = VisaStatus{value: "valid"}
	VisaStatusExpired    = VisaStatus{value: "expired"}
	VisaStatusOverstayed = VisaStatus{value: "overstayed"}
)

// VisaStatusFromString reconstructs a VisaStatus from its string representation.
func VisaStatusFromString(s string) (VisaStatus, error) {
	switch strings.ToLower(s) {
	case "valid":
		return VisaStatusValid, nil
	case "expired":
		return VisaStatusExpired, nil
	case "overstayed":
		return VisaStatusOverstayed, nil
	default:
		return VisaStatus{}, fmt.Errorf("invalid visa status: %s", s)
	}
}

func (v VisaStatus) String() string {
	return v.value
}

// IsZero returns true if the VisaStatus has not been set.
func (v VisaStatus) IsZero() bool {
	return v.value == ""
}

// Equal checks equality with another VisaStatus.
func (v VisaStatus) Equal(other VisaStatus) bool {
	return v.value == other.value
}

package valueobject

import (
	"fmt"
	"strings"
)

// Intent is the action category a free-text query is classified into.
type Intent struct {
	value string
}

var (
	IntentSearch  = Intent{value: "search"}
	IntentCompare = Intent{value: "compare"}
	IntentAlert   = Intent{value: "alert"}
	IntentAnalyze = Intent{value: "analyze"}
	IntentReport  = Intent{value: "report"}
)

// IntentFromString reconstructs an Intent from its string representation.
func IntentFromString(s string) (Intent, error) {
	switch strings.ToLower(s) {
	case "search":
		return IntentSearch, nil
	case "compare":
		return IntentCompare, nil
	case "alert":
		return IntentAlert, nil
	case "analyze":
		return IntentAnalyze, nil
	case "report":
		return IntentReport, nil
	default:
		return Intent{}, fmt.Errorf("invalid intent: %s", s)
	}
}

func (i Intent) String() string {
	return i.value
}

// IsZero returns true if the Intent has not been set.
func (i Intent) IsZero() bool {
	return i.value == ""
}

// Equal checks equality with another Intent.
func (i Intent) Equal(other Intent) bool {
	return i.value == other.value
}

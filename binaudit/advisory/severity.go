package advisory

import "strings"

type Severity string

const (
	SeverityUnknown  Severity = "Unknown"
	SeverityLow      Severity = "Low"
	SeverityMedium   Severity = "Medium"
	SeverityHigh     Severity = "High"
	SeverityCritical Severity = "Critical"
)

var severityOrder = map[Severity]int{
	SeverityUnknown:  0,
	SeverityLow:      1,
	SeverityMedium:   2,
	SeverityHigh:     3,
	SeverityCritical: 4,
}

func ParseSeverity(s string) Severity {
	clean := strings.TrimSpace(strings.ToLower(s))
	switch clean {
	case "unknown", "":
		return SeverityUnknown
	case "low":
		return SeverityLow
	case "medium", "moderate":
		return SeverityMedium
	case "high":
		return SeverityHigh
	case "critical":
		return SeverityCritical
	default:
		return SeverityUnknown
	}
}

// AtLeast indicates if this severity is the same or worse than the given one.
func (s Severity) AtLeast(other Severity) bool {
	return severityOrder[s] >= severityOrder[other]
}

func (s Severity) String() string {
	return string(s)
}

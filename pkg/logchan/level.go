package logchan

import (
	"fmt"
	"strings"
)

// Severity is the urgency of a log record. Values are ordered from
// SeverityDebug (lowest) to SeverityCritical (highest); the zero value is
// SeverityDebug.
type Severity int

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityError
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "DEBUG"
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return fmt.Sprintf("SEVERITY(%d)", int(s))
	}
}

// ParseSeverity maps a severity name to its value. Matching is
// case-insensitive and ignores surrounding whitespace; "WARN" is accepted
// as an alias for "WARNING". ok is false for anything else.
func ParseSeverity(s string) (sev Severity, ok bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return SeverityDebug, true
	case "INFO":
		return SeverityInfo, true
	case "WARN", "WARNING":
		return SeverityWarning, true
	case "ERROR":
		return SeverityError, true
	case "CRITICAL":
		return SeverityCritical, true
	default:
		return SeverityDebug, false
	}
}

package lint

import (
	"fmt"

	"rolint/internal/diag"
)

// Severity is the level a rule reports at. Allow disables the rule.
type Severity uint8

const (
	SeverityAllow Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityAllow:
		return "allow"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	}
	return "unknown"
}

// ParseSeverity accepts the names used in rolint.toml.
func ParseSeverity(s string) (Severity, error) {
	switch s {
	case "allow", "off":
		return SeverityAllow, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "error", "deny":
		return SeverityError, nil
	}
	return SeverityAllow, fmt.Errorf("unknown lint severity %q", s)
}

// Diag maps the rule severity onto a diagnostic severity.
func (s Severity) Diag() diag.Severity {
	if s == SeverityError {
		return diag.SevError
	}
	return diag.SevWarning
}

// Type is the category a rule belongs to.
type Type uint8

const (
	TypeCorrectness Type = iota
	TypeStyle
	TypeComplexity
	TypePerformance
)

func (t Type) String() string {
	switch t {
	case TypeCorrectness:
		return "correctness"
	case TypeStyle:
		return "style"
	case TypeComplexity:
		return "complexity"
	case TypePerformance:
		return "performance"
	}
	return "unknown"
}

// Package severity provides severity level constants and utilities
// for diagnostics reported against a validation location.
//
// The levels follow the message classes a validation layer reports:
//   - SeverityInfo: Informational notices
//   - SeverityPerfWarning: Legal usage with a likely performance cost
//   - SeverityWarning: Legal but suspicious usage
//   - SeverityError: Valid usage violations, always carrying a VUID
//
// The severity levels are ordered from least to most severe:
// Info < PerfWarning < Warning < Error
package severity

import "fmt"

// Severity indicates the severity level of a diagnostic.
type Severity int

const (
	// SeverityInfo indicates an informational notice.
	SeverityInfo Severity = iota

	// SeverityPerfWarning indicates legal usage that is likely slow.
	SeverityPerfWarning

	// SeverityWarning indicates legal but suspicious usage.
	SeverityWarning

	// SeverityError indicates a valid usage violation.
	SeverityError
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityPerfWarning:
		return "perf-warning"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Symbol returns the single-character marker used in text output:
// "✗" for errors, "⚠" for warnings of either kind, "ℹ" for info.
func (s Severity) Symbol() string {
	switch s {
	case SeverityError:
		return "✗"
	case SeverityWarning, SeverityPerfWarning:
		return "⚠"
	case SeverityInfo:
		return "ℹ"
	default:
		return "?"
	}
}

// AtLeast reports whether s is as severe as floor or more.
func (s Severity) AtLeast(floor Severity) bool {
	return s >= floor
}

// Parse returns the severity named by s, as produced by String.
func Parse(s string) (Severity, error) {
	switch s {
	case "info":
		return SeverityInfo, nil
	case "perf-warning":
		return SeverityPerfWarning, nil
	case "warning":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	default:
		return 0, fmt.Errorf("unknown severity %q (valid: info, perf-warning, warning, error)", s)
	}
}

// MarshalText implements encoding.TextMarshaler so severities serialize by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

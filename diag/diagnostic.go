package diag

import (
	"github.com/erraggy/errloc/internal/issues"
	"github.com/erraggy/errloc/internal/severity"
	"github.com/erraggy/errloc/location"
)

// Severity indicates the severity level of a diagnostic.
type Severity = severity.Severity

const (
	// SeverityInfo indicates an informational notice
	SeverityInfo = severity.SeverityInfo
	// SeverityPerfWarning indicates legal usage that is likely slow
	SeverityPerfWarning = severity.SeverityPerfWarning
	// SeverityWarning indicates legal but suspicious usage
	SeverityWarning = severity.SeverityWarning
	// SeverityError indicates a valid usage violation
	SeverityError = severity.SeverityError
)

// ParseSeverity returns the severity named by s ("info", "perf-warning",
// "warning", or "error").
func ParseSeverity(s string) (Severity, error) {
	return severity.Parse(s)
}

// Diagnostic is a single issue reported at a validation location.
type Diagnostic = issues.Issue

// Located is anything that can say where it is and which rule applies
// there. location.VuidAdapter satisfies it.
type Located interface {
	Location() location.Location
	Vuid() string
}

// NewDiagnostic renders loc and fills in a diagnostic. vuid may be empty.
func NewDiagnostic(loc location.Location, sev Severity, vuid, msg string) Diagnostic {
	return Diagnostic{
		Location: loc.Message(),
		Message:  msg,
		Severity: sev,
		Func:     loc.FuncName(),
		RefPage:  loc.RefPageName(),
		Field:    loc.FieldName(),
		Vuid:     vuid,
	}
}

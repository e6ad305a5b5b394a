// Package issues provides the issue type shared by the diagnostics
// collector and the command-line and MCP front ends.
package issues

import (
	"fmt"

	"github.com/erraggy/errloc/internal/severity"
)

// Issue is a single diagnostic reported at a validation location.
type Issue struct {
	// Location is the rendered location, e.g.
	// "vkCmdPipelineBarrier(): pImageMemoryBarriers[2].srcAccessMask"
	Location string `json:"location" yaml:"location"`
	// Message is a human-readable description of the issue
	Message string `json:"message" yaml:"message"`
	// Severity indicates the severity level of the issue
	Severity severity.Severity `json:"severity" yaml:"severity"`
	// Func is the name of the call being validated
	Func string `json:"func" yaml:"func"`
	// RefPage is the reference page whose rule was checked (optional)
	RefPage string `json:"refpage,omitempty" yaml:"refpage,omitempty"`
	// Field is the innermost field name (optional)
	Field string `json:"field,omitempty" yaml:"field,omitempty"`
	// Vuid is the valid usage ID of the violated rule (optional)
	Vuid string `json:"vuid,omitempty" yaml:"vuid,omitempty"`
	// SpecRef is the URL of the rule in the published specification (optional)
	SpecRef string `json:"spec_ref,omitempty" yaml:"spec_ref,omitempty"`
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error severity
// - "⚠" for Warning and PerfWarning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	result := fmt.Sprintf("%s %s: %s", i.Severity.Symbol(), i.Location, i.Message)

	if i.Vuid != "" {
		result += "\n    VUID: " + i.Vuid
	}
	if i.SpecRef != "" {
		result += "\n    Spec: " + i.SpecRef
	}
	return result
}

// Header returns the VUID-first one-line form used in layer log callbacks:
// "Validation Error: [ VUID-... ] vkX(): a.b: message".
func (i Issue) Header() string {
	label := "Validation Information"
	switch i.Severity {
	case severity.SeverityError:
		label = "Validation Error"
	case severity.SeverityWarning:
		label = "Validation Warning"
	case severity.SeverityPerfWarning:
		label = "Validation Performance Warning"
	}
	if i.Vuid == "" {
		return fmt.Sprintf("%s: %s: %s", label, i.Location, i.Message)
	}
	return fmt.Sprintf("%s: [ %s ] %s: %s", label, i.Vuid, i.Location, i.Message)
}

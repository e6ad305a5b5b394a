package locerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrParse indicates a path expression could not be parsed.
	ErrParse = errors.New("parse error")

	// ErrLookup indicates an identifier name is not registered.
	ErrLookup = errors.New("lookup error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to parse a path expression.
type ParseError struct {
	// Input is the full expression being parsed
	Input string
	// Offset is the byte offset of the failure within Input (-1 if unknown)
	Offset int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Input != "" {
		msg += fmt.Sprintf(" in %q", e.Input)
	}
	if e.Offset >= 0 && e.Input != "" {
		msg += fmt.Sprintf(" at offset %d", e.Offset)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// LookupError represents an identifier name with no registered value.
type LookupError struct {
	// Kind is the identifier kind: "func", "refpage", or "field"
	Kind string
	// Name is the name that failed to resolve
	Name string
}

// Error returns a human-readable error message.
func (e *LookupError) Error() string {
	msg := "unknown"
	if e.Kind != "" {
		msg += " " + e.Kind
	} else {
		msg += " identifier"
	}
	return msg + fmt.Sprintf(" %q", e.Name)
}

// Is reports whether target matches this error type.
func (e *LookupError) Is(target error) bool {
	return target == ErrLookup
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, conflicting sources, and malformed tables.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

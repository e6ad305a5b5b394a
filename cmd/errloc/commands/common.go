// Package commands provides CLI command handlers for errloc.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/erraggy/errloc/diag"
	"github.com/erraggy/errloc/internal/cliutil"
	"github.com/erraggy/errloc/locerrors"
	"github.com/erraggy/errloc/location"
	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// maxSuggestDistance bounds how far a misspelled name may be from a
// registered one before no suggestion is offered.
const maxSuggestDistance = 3

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured writes data to w in the specified format (json or yaml).
// Returns an error if marshaling fails.
func OutputStructured(w io.Writer, data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	Writef(w, "%s\n", bytes)
	return nil
}

// Writef writes formatted output to the writer.
func Writef(w io.Writer, format string, args ...any) {
	cliutil.Writef(w, format, args...)
}

// ParseLocation builds a location from a call name, an optional reference
// page, and an optional dotted path. Unknown names carry a suggestion.
func ParseLocation(fn, ref, path string) (location.Location, error) {
	f, err := location.ParseFunc(fn)
	if err != nil {
		return location.Location{}, WithSuggestion(err)
	}
	var r location.RefPage
	if ref != "" {
		if r, err = location.ParseRefPage(ref); err != nil {
			return location.Location{}, WithSuggestion(err)
		}
	}
	loc, err := location.ParsePath(f, r, path)
	if err != nil {
		return location.Location{}, WithSuggestion(err)
	}
	return loc, nil
}

// WithSuggestion appends a "did you mean" hint to errors caused by an
// unregistered identifier. Other errors are returned unchanged.
func WithSuggestion(err error) error {
	var lookup *locerrors.LookupError
	if !errors.As(err, &lookup) {
		return err
	}
	names := location.Kinds()
	if lookup.Kind != "kind" {
		var nerr error
		if names, nerr = location.Names(lookup.Kind + "s"); nerr != nil {
			return err
		}
	}
	if s := cliutil.Suggest(lookup.Name, names, maxSuggestDistance); s != "" {
		return fmt.Errorf("%w (did you mean %q?)", err, s)
	}
	return err
}

// newLogger returns a debug-level stderr logger when verbose is set, and a
// no-op logger otherwise.
func newLogger(verbose bool) diag.Logger {
	if !verbose {
		return diag.NopLogger{}
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	return diag.NewSlogAdapter(slog.New(handler))
}

package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/erraggy/errloc/location"
)

// ListFlags contains flags for the list command
type ListFlags struct {
	Filter string
	Format string
}

// ListResult is the structured output of the list command.
type ListResult struct {
	Kind  string   `json:"kind"  yaml:"kind"`
	Total int      `json:"total" yaml:"total"`
	Names []string `json:"names" yaml:"names"`
}

// SetupListFlags creates and configures a FlagSet for the list command.
// Returns the FlagSet and a ListFlags struct with bound flag variables.
func SetupListFlags() (*flag.FlagSet, *ListFlags) {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	flags := &ListFlags{}

	fs.StringVar(&flags.Filter, "filter", "", "only show names containing this text (case-insensitive)")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: errloc list [flags] funcs|refpages|fields\n\n")
		Writef(fs.Output(), "List registered identifiers in declaration order.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  errloc list funcs\n")
		Writef(fs.Output(), "  errloc list -filter barrier refpages\n")
		Writef(fs.Output(), "  errloc list -format json fields\n")
	}

	return fs, flags
}

// HandleList executes the list command, writing results to w.
func HandleList(args []string, w io.Writer) error {
	fs, flags := SetupListFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("list command requires exactly one kind: funcs, refpages, or fields")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	kind := fs.Arg(0)
	names, err := location.Names(kind)
	if err != nil {
		return WithSuggestion(err)
	}
	if flags.Filter != "" {
		filter := strings.ToLower(flags.Filter)
		kept := names[:0]
		for _, n := range names {
			if strings.Contains(strings.ToLower(n), filter) {
				kept = append(kept, n)
			}
		}
		names = kept
	}

	if flags.Format == FormatText {
		for _, n := range names {
			Writef(w, "%s\n", n)
		}
		return nil
	}
	return OutputStructured(w, ListResult{Kind: kind, Total: len(names), Names: names}, flags.Format)
}

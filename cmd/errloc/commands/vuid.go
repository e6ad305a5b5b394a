package commands

import (
	"errors"
	"flag"
	"io"

	"github.com/erraggy/errloc/diag"
	"github.com/erraggy/errloc/location"
	"github.com/erraggy/errloc/vuid"
)

// VuidFlags contains flags for the vuid command
type VuidFlags struct {
	RefPage  string
	Table    string
	Message  string
	Report   string
	Severity string
	Format   string
	Verbose  bool
}

// VuidResult is the structured output of the vuid command.
type VuidResult struct {
	Location   string           `json:"location"             yaml:"location"`
	Vuid       string           `json:"vuid"                 yaml:"vuid"`
	Defined    bool             `json:"defined"              yaml:"defined"`
	Prefix     string           `json:"prefix"               yaml:"prefix"`
	SpecURL    string           `json:"spec_url,omitempty"   yaml:"spec_url,omitempty"`
	Diagnostic *diag.Diagnostic `json:"diagnostic,omitempty" yaml:"diagnostic,omitempty"`
}

// SetupVuidFlags creates and configures a FlagSet for the vuid command.
// Returns the FlagSet and a VuidFlags struct with bound flag variables.
func SetupVuidFlags() (*flag.FlagSet, *VuidFlags) {
	fs := flag.NewFlagSet("vuid", flag.ContinueOnError)
	flags := &VuidFlags{}

	fs.StringVar(&flags.RefPage, "ref", "", "reference page governing the rule (required)")
	fs.StringVar(&flags.Table, "table", "", "YAML VUID table (default: embedded table)")
	fs.StringVar(&flags.Message, "message", "", "resolve a rendered location instead of <func> <path>")
	fs.StringVar(&flags.Report, "report", "", "format a diagnostic with this text at the location")
	fs.StringVar(&flags.Severity, "severity", "error", "diagnostic severity for -report: error, warning, perf-warning, or info")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Verbose, "v", false, "log table loading and lookups to stderr")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: errloc vuid [flags] -ref <refpage> <func> <path>\n")
		Writef(fs.Output(), "       errloc vuid [flags] -ref <refpage> -message '<func>(): <path>'\n\n")
		Writef(fs.Output(), "Resolve the valid usage ID for a location.\n\n")
		Writef(fs.Output(), "A call-specific table entry takes precedence over a generic one for the\n")
		Writef(fs.Output(), "same reference page and field. Unmatched locations print VUID_Undefined.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  errloc vuid -ref VkImageMemoryBarrier vkCmdPipelineBarrier 'pImageMemoryBarriers[0].oldLayout'\n")
		Writef(fs.Output(), "  errloc vuid -ref VkSubmitInfo -message 'vkQueueSubmit(): pSubmits[0].pWaitDstStageMask[1]'\n")
		Writef(fs.Output(), "  errloc vuid -ref VkSubmitInfo -report 'stage not supported' vkQueueSubmit 'pSubmits[0].pWaitDstStageMask[1]'\n")
		Writef(fs.Output(), "  errloc vuid -table vuids.yaml -format json -ref VkSubmitInfo vkQueueSubmit pSubmits\n")
	}

	return fs, flags
}

// HandleVuid executes the vuid command, writing results to w.
func HandleVuid(args []string, w io.Writer) error {
	fs, flags := SetupVuidFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	if flags.RefPage == "" {
		fs.Usage()
		return errors.New("vuid command requires -ref")
	}
	sev, err := diag.ParseSeverity(flags.Severity)
	if err != nil {
		return err
	}

	loc, err := locationFromArgs(fs, flags.RefPage, flags.Message)
	if err != nil {
		return err
	}

	logger := newLogger(flags.Verbose)
	opts := []vuid.Option{vuid.WithLogger(logger)}
	if flags.Table != "" {
		opts = append(opts, vuid.WithTable(flags.Table))
	}
	reg, err := vuid.New(opts...)
	if err != nil {
		return err
	}

	result, err := resolve(reg, loc, flags.Report, sev, logger)
	if err != nil {
		return err
	}

	if flags.Format != FormatText {
		return OutputStructured(w, result, flags.Format)
	}
	if result.Diagnostic != nil {
		Writef(w, "%s\n", result.Diagnostic.Header())
		return nil
	}
	Writef(w, "%s\n", result.Location)
	Writef(w, "VUID: %s\n", result.Vuid)
	if !result.Defined {
		Writef(w, "Prefix: %s\n", result.Prefix)
	}
	if result.SpecURL != "" {
		Writef(w, "Spec: %s\n", result.SpecURL)
	}
	return nil
}

// resolve looks up loc in reg and, when report is non-empty, records it as
// a diagnostic through a collector.
func resolve(reg *vuid.Registry, loc location.Location, report string, sev diag.Severity, logger diag.Logger) (VuidResult, error) {
	adapter := location.NewVuidAdapter(loc, reg)
	id := adapter.Vuid()
	result := VuidResult{
		Location: loc.Message(),
		Vuid:     id,
		Defined:  id != vuid.Undefined,
		Prefix:   vuid.Prefix(loc),
		SpecURL:  vuid.SpecURL(id),
	}
	if report == "" {
		return result, nil
	}

	c, err := diag.NewCollector(
		diag.WithResolver(reg),
		diag.WithLogger(logger),
		diag.WithSpecRef(vuid.SpecURL),
	)
	if err != nil {
		return VuidResult{}, err
	}
	c.Report(adapter, sev, report)
	d := c.Diagnostics()[0]
	result.Diagnostic = &d
	return result, nil
}

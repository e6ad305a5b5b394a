package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/erraggy/errloc/internal/locview"
	"github.com/erraggy/errloc/location"
)

// RenderFlags contains flags for the render command
type RenderFlags struct {
	RefPage string
	Message string
	Format  string
}

// RenderResult is the structured output of the render command.
type RenderResult = locview.View

// SetupRenderFlags creates and configures a FlagSet for the render command.
// Returns the FlagSet and a RenderFlags struct with bound flag variables.
func SetupRenderFlags() (*flag.FlagSet, *RenderFlags) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	flags := &RenderFlags{}

	fs.StringVar(&flags.RefPage, "ref", "", "reference page governing the location")
	fs.StringVar(&flags.Message, "message", "", "parse and normalize a rendered location instead of <func> [path]")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: errloc render [flags] <func> [path]\n")
		Writef(fs.Output(), "       errloc render [flags] -message '<func>(): <path>'\n\n")
		Writef(fs.Output(), "Render a validation error location as message text.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  errloc render vkCmdPipelineBarrier 'pImageMemoryBarriers[2].srcAccessMask'\n")
		Writef(fs.Output(), "  errloc render -format json vkQueueSubmit 'pSubmits[0].pWaitSemaphores[1]'\n")
		Writef(fs.Output(), "  errloc render -message 'vkCmdSetEvent(): stageMask'\n")
	}

	return fs, flags
}

// HandleRender executes the render command, writing results to w.
func HandleRender(args []string, w io.Writer) error {
	fs, flags := SetupRenderFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	loc, err := locationFromArgs(fs, flags.RefPage, flags.Message)
	if err != nil {
		return err
	}

	if flags.Format == FormatText {
		Writef(w, "%s\n", loc.Message())
		return nil
	}
	return OutputStructured(w, locview.New(loc), flags.Format)
}

// locationFromArgs reads a location either from -message or from the
// positional <func> [path] arguments.
func locationFromArgs(fs *flag.FlagSet, ref, message string) (location.Location, error) {
	if message != "" {
		if fs.NArg() != 0 {
			fs.Usage()
			return location.Location{}, fmt.Errorf("%s command accepts either -message or <func> [path], not both", fs.Name())
		}
		var r location.RefPage
		if ref != "" {
			var err error
			if r, err = location.ParseRefPage(ref); err != nil {
				return location.Location{}, WithSuggestion(err)
			}
		}
		loc, err := location.ParseMessage(r, message)
		if err != nil {
			return location.Location{}, WithSuggestion(err)
		}
		return loc, nil
	}

	if fs.NArg() < 1 || fs.NArg() > 2 {
		fs.Usage()
		return location.Location{}, fmt.Errorf("%s command requires a call name and an optional path", fs.Name())
	}
	return ParseLocation(fs.Arg(0), ref, fs.Arg(1))
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/errloc"
	"github.com/erraggy/errloc/cmd/errloc/commands"
	"github.com/erraggy/errloc/internal/cliutil"
	"github.com/erraggy/errloc/internal/mcpserver"
)

// commandNames lists every top-level command, used for typo suggestions.
var commandNames = []string{"render", "vuid", "list", "mcp", "version", "help"}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run dispatches a command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return 1
	}

	command, rest := args[0], args[1:]

	var err error
	switch command {
	case "version", "-v", "--version":
		cliutil.Writef(stdout, "errloc %s\n", errloc.Version())
		cliutil.Writef(stdout, "%s\n", errloc.BuildInfo())
	case "help", "-h", "--help":
		printUsage(stdout)
	case "render":
		err = commands.HandleRender(rest, stdout)
	case "vuid":
		err = commands.HandleVuid(rest, stdout)
	case "list":
		err = commands.HandleList(rest, stdout)
	case "mcp":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		err = mcpserver.Run(ctx)
	default:
		cliutil.Writef(stderr, "Unknown command: %s\n", command)
		if s := suggestCommand(command); s != "" {
			cliutil.Writef(stderr, "Did you mean '%s'?\n", s)
		}
		cliutil.Writef(stderr, "\n")
		printUsage(stderr)
		return 1
	}

	if err != nil {
		cliutil.Writef(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// suggestCommand returns the command closest to a mistyped one, or "".
func suggestCommand(input string) string {
	return cliutil.Suggest(input, commandNames, 2)
}

func printUsage(w io.Writer) {
	usage := `errloc - Vulkan validation error locations and VUIDs

Usage:
  errloc <command> [flags] [args]

Commands:
  render    Render a location as message text
  vuid      Resolve the valid usage ID for a location
  list      List registered calls, reference pages, or fields
  mcp       Run the MCP server over stdio
  version   Show version information
  help      Show this help message

Examples:
  errloc render vkCmdPipelineBarrier 'pImageMemoryBarriers[2].srcAccessMask'
  errloc vuid -ref VkSubmitInfo vkQueueSubmit 'pSubmits[0].pWaitDstStageMask[1]'
  errloc list -filter semaphore fields

Run 'errloc <command> --help' for more information on a command.
`
	_, _ = fmt.Fprint(w, usage)
}

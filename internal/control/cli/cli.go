// Package cli provides the command-line interface for suntimes.
package cli

import (
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

type CommandLineOpts struct {
	Verbose bool `short:"v" long:"verbose" description:"Log debug information to stderr"`

	WindowCommand  WindowCommand  `command:"window" description:"print today's and tomorrow's adjusted sunrise and sunset"`
	NextCommand    NextCommand    `command:"next" description:"print the next relevant sunrise or sunset"`
	VersionCommand VersionCommand `command:"version" description:"print the program version"`
}

var Opts CommandLineOpts

// stdout receives the command output.
var stdout io.Writer = os.Stdout

// clock is the time source for 'now' unless overridden with --at.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}

// SetOutput swaps the writer command output goes to. Pass nil to reset to
// stdout.
func SetOutput(w io.Writer) {
	if w == nil {
		stdout = os.Stdout
		return
	}
	stdout = w
}

// NewParser creates the command line parser for the given options.
//
// Errors (including help requests) are not printed by the parser, the caller
// is expected to handle them.
func NewParser(opts *CommandLineOpts) *flags.Parser {
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.SubcommandsOptional = false
	parser.CommandHandler = func(command flags.Commander, args []string) error {
		if opts.Verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
		if command == nil {
			return nil
		}
		return command.Execute(args)
	}
	return parser
}

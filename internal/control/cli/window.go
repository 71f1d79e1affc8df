package cli

import (
	"fmt"
)

// WindowCommand contains flags for the `window` command line command, for
// `go-flags` to parse command line args into.
type WindowCommand struct {
	LocationFlags
}

// Execute executes the window command.
// (This gets called by `go-flags` when `window` is provided on the command
// line)
func (command *WindowCommand) Execute(args []string) error {
	r, coordinate, now, err := command.setup()
	if err != nil {
		return err
	}

	window, err := r.Window(coordinate, now)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout, window.String())
	return err
}

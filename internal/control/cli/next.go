package cli

import (
	"fmt"
)

// NextCommand contains flags for the `next` command line command, for
// `go-flags` to parse command line args into.
//
// Type is deliberately not restricted to choices: any value other than
// 'sunrise' or 'sunset' prints 0.
type NextCommand struct {
	Type string `short:"t" long:"type" description:"the event to print, 'sunrise' or 'sunset'" value-name:"<event>" required:"true"`

	LocationFlags
}

// Execute executes the next command.
// (This gets called by `go-flags` when `next` is provided on the command line)
func (command *NextCommand) Execute(args []string) error {
	r, coordinate, now, err := command.setup()
	if err != nil {
		return err
	}

	millis, err := r.Next(coordinate, command.Type, now)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout, millis)
	return err
}

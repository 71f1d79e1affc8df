package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/suntimes/internal/control/cli"
)

// MAIN
func main() {
	// set up stderr logger; only warnings and up unless --verbose is given, so
	// that the output stays usable for scripts
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	// parse the flags (and execute the selected command)
	parser := cli.NewParser(&cli.Opts)

	_, err := parser.Parse()
	if flags.WroteHelp(err) {
		fmt.Fprintln(os.Stdout, err.Error())
		os.Exit(0)
	}

	var flagsErr *flags.Error
	switch {
	case err == nil:
	case errors.As(err, &flagsErr):
		fmt.Fprintf(os.Stderr, "fatal error (flag parsing):\n > %s\n\n", err.Error())
		parser.WriteHelp(os.Stderr)
		os.Exit(2)
	default:
		log.Error().Err(err).Msg("exited with error")
		os.Exit(1)
	}
}

// Package command holds the pieces shared by the command-line tools: how a
// urfave/cli App is wired to the process streams and how errors become exit
// codes.
package command

import (
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/suvikristiin/CT30A3370-projects/errs"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// NewApp returns an App writing help to stdout and diagnostics to stderr.
// Flag parsing errors are returned to Run instead of being printed with the
// full help text.
func NewApp(name, usage, argsUsage string, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:            name,
		Usage:           usage,
		ArgsUsage:       argsUsage,
		Writer:          stdout,
		ErrWriter:       stderr,
		HideHelpCommand: true,
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %w", errs.ErrUsage, err)
		},
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

// Usage returns a usage error carrying the one-line synopsis.
func Usage(synopsis string) error {
	return fmt.Errorf("%w: %s", errs.ErrUsage, synopsis)
}

// Run runs app and maps its outcome to an exit code. Errors are printed to
// stderr prefixed with the tool name; usage errors print only the synopsis.
func Run(app *cli.App, args []string, stderr io.Writer) int {
	err := app.Run(args)
	if err == nil {
		return ExitOK
	}

	msg := err.Error()
	if errors.Is(err, errs.ErrUsage) {
		msg = "usage: " + trimUsage(msg)
	}
	_, _ = fmt.Fprintf(stderr, "%s: %s\n", app.Name, msg)

	return ExitFailure
}

func trimUsage(msg string) string {
	prefix := errs.ErrUsage.Error() + ": "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}

	return msg
}

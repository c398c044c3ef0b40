package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/specialistvlad/tallygo/internal/config"
	"github.com/specialistvlad/tallygo/internal/counter"
	"github.com/specialistvlad/tallygo/internal/ctxlog"
)

// Run executes the main application logic based on the app's config.
//
// A failed round-trip check panics: it means the codec mapping itself is
// broken, which no caller can recover from meaningfully.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	fmt.Fprintln(a.outW, verbosityBanner(a.config.Verbosity))

	if a.config.Args != nil {
		fmt.Fprintf(a.outW, "Arg vec: %s\n", formatArgs(a.config.Args))
	} else {
		fmt.Fprintln(a.outW, "No args passed")
	}

	if a.config.Flag {
		a.checkRoundTrip(ctx)
	}

	a.dispatch(ctx)
	a.logger.Debug("App.Run method finished.")
	return ctx.Err()
}

// formatArgs renders args as a bracketed, comma-separated list of quoted
// strings, e.g. ["a", "b"].
func formatArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		quoted[i] = strconv.Quote(arg)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// verbosityBanner describes how chatty the run will be.
func verbosityBanner(verbosity int) string {
	switch verbosity {
	case 0:
		return "Basic logging"
	case 1:
		return "Detailed logging"
	case 2:
		return "All logging"
	default:
		return "You can't get crazier than this"
	}
}

// checkRoundTrip prints the serialized config and panics if it does not
// decode back into an identical config.
func (a *App) checkRoundTrip(ctx context.Context) {
	name := a.codec.Name()
	fmt.Fprintf(a.outW, "%s flag enabled\n// BEGIN %s\n", name, name)

	doc, err := config.RoundTrip(ctx, a.codec, a.config)
	if doc != nil {
		fmt.Fprintf(a.outW, "%s\n// END %s\n", doc, name)
	}
	if err != nil {
		a.logger.Error("Config round trip failed.", "format", name, "error", err)
		panic(err)
	}
	a.logger.Info("Config round trip succeeded.", "format", name)
}

// dispatch runs the selected operation.
func (a *App) dispatch(ctx context.Context) {
	op := a.config.Operation
	if op == nil {
		a.logger.Debug("No operation selected.")
		fmt.Fprintln(a.outW, "NOP")
		return
	}

	a.logger.Info("Dispatching operation.", "operation", op.Kind.String(), "number", op.Number)
	// Nothing of the sequence is visible at verbosity 0, so it is not walked.
	steps := 0
	if a.config.Verbosity > 0 {
		for v := range counter.Steps(*op) {
			steps++
			fmt.Fprintf(a.outW, "%d..", v)
		}
	}
	fmt.Fprintf(a.outW, "%d done!\n", counter.Done(*op))
	ctxlog.FromContext(ctx).Debug("Operation finished.", "operation", op.Kind.String(), "printed_steps", steps)
}

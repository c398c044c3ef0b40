package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/specialistvlad/tallygo/internal/app"
	"github.com/specialistvlad/tallygo/internal/config"
)

// Run parses args and runs the application, writing program output to outW
// and logs to errW. It is the whole program minus os.Exit, so tests can drive
// it without forking a process.
//
// A panic carrying a config.ErrRoundTrip error (a failed round-trip check) is
// recovered and returned as an ExitError with ExitInternal. Any other panic
// is re-raised untouched.
func Run(ctx context.Context, args []string, outW, errW io.Writer, opts ...app.Option) (err error) {
	cfg, shouldExit, err := Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if panicErr, ok := r.(error); ok && errors.Is(panicErr, config.ErrRoundTrip) {
			err = &ExitError{
				Code:    ExitInternal,
				Message: fmt.Sprintf("internal consistency check failed: %v", panicErr),
			}
			return
		}
		panic(r)
	}()

	return app.NewApp(outW, errW, cfg, opts...).Run(ctx)
}

// ExitCode maps an error returned by Run onto a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

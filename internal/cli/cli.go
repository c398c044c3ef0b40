package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/specialistvlad/tallygo/internal/model"
	"github.com/spf13/cobra"
)

// Version is reported by --version. It is overridden at build time.
var Version = "dev"

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly (help or version
// was printed), or an ExitError.
func Parse(args []string, output io.Writer) (*model.Config, bool, error) {
	slog.Debug("CLI parser started.")
	if args == nil {
		// cobra falls back to os.Args when given nil.
		args = []string{}
	}

	cfg := model.NewConfig()
	selected := false
	root := newRootCommand(cfg, &selected)
	root.SetArgs(args)
	root.SetOut(output)
	root.SetErr(output)

	if err := root.Execute(); err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	if !selected {
		slog.Debug("Help or version printed, exiting.")
		return nil, true, nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}

// newRootCommand builds a fresh command tree that writes into cfg. selected is
// set once a runnable command (the root or a subcommand) has been reached.
func newRootCommand(cfg *model.Config, selected *bool) *cobra.Command {
	root := &cobra.Command{
		Use:           "tallygo [flags] [increment|decrement|split <number>]",
		Short:         "Count up, count down, or halve a number",
		Long:          "tallygo parses its flags, optionally checks that the parsed configuration\nsurvives an HCL round trip, and runs one counting operation.",
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			*selected = true
			return nil
		},
	}
	root.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})

	flags := root.PersistentFlags()
	flags.CountVarP(&cfg.Verbosity, "verbose", "v", "Verbosity; repeat to increase (-v, -vv, ...).")
	flags.BoolVarP(&cfg.Flag, "flag", "f", false, "Print the config as HCL and check that it parses back identically.")
	flags.Var(newListValue(&cfg.Args), "args", "A list of args as one token, e.g. \"['a','b']\".")
	flags.StringVar(&cfg.LogFormat, "log-format", model.LogFormatText, "Log output format. Options: 'text' or 'json'.")

	root.AddCommand(
		newOperationCommand(model.OpIncrement, "Counts up from 0 to the given number", cfg, selected),
		newOperationCommand(model.OpDecrement, "Counts down from the given number to 0", cfg, selected),
		newOperationCommand(model.OpSplit, "Divides the given number by 2 until it reaches 0", cfg, selected),
	)
	return root
}

// newOperationCommand builds the subcommand for one operation kind.
func newOperationCommand(kind model.OpKind, short string, cfg *model.Config, selected *bool) *cobra.Command {
	return &cobra.Command{
		Use:     kind.String() + " <number>",
		Short:   short,
		Example: fmt.Sprintf("  tallygo -v %s 10\n  tallygo %s -- -4", kind, kind),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid number %q for %s: expected a 32-bit signed integer", args[0], kind)
			}
			cfg.Operation = &model.Operation{Kind: kind, Number: int32(n)}
			*selected = true
			return nil
		},
	}
}

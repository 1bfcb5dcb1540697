package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/user/trim-cli/trim"
	"github.com/user/trim-cli/tui/styles"
)

var Version = "0.1.0"

// EncoderEnv names the environment variable consulted when --ffmpeg is not given.
const EncoderEnv = "TRIM_FFMPEG"

// options holds the flag values shared by the command tree.
type options struct {
	encoder          string
	historyDB        string
	dryRun           bool
	noHistory        bool
	skipVersionCheck bool
	interactive      bool
}

// NewRootCmd builds the trim-cli command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "trim-cli <source> <start> <end> <dest>",
		Short: "Trim a segment out of a video with ffmpeg",
		Long: `trim-cli cuts the part of a video between two timestamps into a new file.
The cutting itself is done by ffmpeg.

Timestamps may be written as HH:MM:SS, MM:SS or SS, each with an optional
fractional part (1:02:03.5, 22:45.2, 22.9). Every field may be at most 60.

Example:
  trim-cli match.mp4 1:02:00 1:04:30 try.mp4`,
		Args:          usageArgs(cobra.ExactArgs(4)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrim(cmd, opts, args)
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usage(err)
	})

	root.PersistentFlags().StringVar(&opts.encoder, "ffmpeg", defaultEncoder(), "ffmpeg binary to run (env "+EncoderEnv+")")
	root.PersistentFlags().StringVar(&opts.historyDB, "history-db", "", "Path to the trim history database (default ~/.local/share/trim-cli/history.db)")

	root.Flags().BoolVarP(&opts.dryRun, "dry-run", "n", false, "Print the ffmpeg command without running it")
	root.Flags().BoolVar(&opts.noHistory, "no-history", false, "Do not record this trim in the history database")
	root.Flags().BoolVar(&opts.skipVersionCheck, "skip-version-check", false, "Do not compare the ffmpeg version with the tested one")
	root.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Prompt for a start or end given as '-'")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newDoctorCmd(opts))
	root.AddCommand(newPreviewCmd())
	root.AddCommand(newHistoryCmd(opts))

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  usageArgs(cobra.NoArgs),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "trim-cli version %s\n", Version)
		},
	}
}

func defaultEncoder() string {
	if e := os.Getenv(EncoderEnv); e != "" {
		return e
	}
	return trim.DefaultEncoder
}

// Execute runs the root command and exits non-zero on failure.
// SIGINT and SIGTERM cancel the running encoder.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := NewRootCmd()
	cmd, err := root.ExecuteContextC(ctx)
	if err != nil {
		printError(root.ErrOrStderr(), cmd, err)
		code := exitCode(ctx, err)
		stop()
		os.Exit(code)
	}
}

// usageError marks errors caused by bad command-line input. They are printed
// together with the command usage.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usage(err error) error {
	if err == nil {
		return nil
	}
	return &usageError{err: err}
}

func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return usage(validate(cmd, args))
	}
}

func isUsageError(err error) bool {
	var u *usageError
	return errors.As(err, &u)
}

func printError(w io.Writer, cmd *cobra.Command, err error) {
	fmt.Fprintln(w, styles.Error.Render("Error: "+err.Error()))
	if isUsageError(err) && cmd != nil {
		fmt.Fprintln(w)
		fmt.Fprint(w, cmd.UsageString())
	}
}

func exitCode(ctx context.Context, err error) int {
	if ctx.Err() != nil {
		return 130
	}
	if isUsageError(err) {
		return 2
	}
	var encErr *trim.EncoderError
	if errors.As(err, &encErr) && encErr.ExitCode > 0 {
		return encErr.ExitCode
	}
	return 1
}

package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/user/trim-cli/db"
	"github.com/user/trim-cli/deps"
	"github.com/user/trim-cli/pkg/timeutil"
	"github.com/user/trim-cli/trim"
	"github.com/user/trim-cli/tui/forms"
	"github.com/user/trim-cli/tui/styles"
)

// promptMarker is the start or end value that asks for the timestamp interactively.
const promptMarker = "-"

func runTrim(cmd *cobra.Command, opts *options, args []string) error {
	req := trim.Request{
		Encoder:   opts.encoder,
		Source:    args[0],
		StartText: args[1],
		EndText:   args[2],
		Dest:      args[3],
	}

	if err := trim.CheckSource(req.Source); err != nil {
		return usage(err)
	}
	if err := trim.CheckDest(req.Dest); err != nil {
		return usage(err)
	}

	if req.StartText == promptMarker || req.EndText == promptMarker {
		if !opts.interactive {
			return usage(errors.New("start and end times are required; use --interactive to be prompted for '-'"))
		}
		if err := promptInterval(cmd, &req); err != nil {
			return err
		}
	}

	plan, err := req.Plan()
	if err != nil {
		return planError(err)
	}

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	if opts.dryRun {
		printPlan(out, req, plan)
		return nil
	}

	if !opts.skipVersionCheck {
		if err := checkVersion(cmd, opts.encoder); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "Trimming %s (%s - %s, %ss)\n",
		req.Source, timeutil.FormatTime(plan.Interval.Start), timeutil.FormatTime(plan.Interval.End),
		timeutil.FormatLength(plan.Interval.Length()))

	if err := trim.Run(cmd.Context(), plan.Args, cmd.InOrStdin(), out, errOut); err != nil {
		return err
	}

	if !opts.noHistory {
		if err := recordTrim(opts.historyDB, req, plan); err != nil {
			fmt.Fprintln(errOut, styles.Warning.Render("Warning: trim not recorded in history: "+err.Error()))
		}
	}

	fmt.Fprintln(out, styles.Success.Render("Saved: "+plan.Args[len(plan.Args)-1]))
	return nil
}

// planError marks bad timestamps and reversed intervals as usage errors.
func planError(err error) error {
	var parseErr *timeutil.DurationParseError
	var intervalErr *trim.InvalidIntervalError
	if errors.As(err, &parseErr) || errors.As(err, &intervalErr) {
		return usage(err)
	}
	return err
}

func promptInterval(cmd *cobra.Command, req *trim.Request) error {
	result := &forms.IntervalResult{}
	if req.StartText != promptMarker {
		result.Start = req.StartText
	}
	if req.EndText != promptMarker {
		result.End = req.EndText
	}

	if err := forms.PromptInterval(cmd.Context(), req.Source, result, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("prompt cancelled: %w", err)
	}

	req.StartText = strings.TrimSpace(result.Start)
	req.EndText = strings.TrimSpace(result.End)
	return nil
}

// checkVersion warns when the installed ffmpeg is older than the tested release.
// Only a missing binary stops the trim.
func checkVersion(cmd *cobra.Command, encoder string) error {
	report, err := deps.CheckFfmpegVersion(cmd.Context(), encoder)
	var depErr *deps.DependencyError
	if errors.As(err, &depErr) {
		return err
	}
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), styles.Warning.Render("Warning: "+err.Error()))
		return nil
	}
	if w := report.Warning(); w != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), styles.Warning.Render("Warning: "+w))
	}
	return nil
}

func recordTrim(path string, req trim.Request, plan *trim.Plan) error {
	database, err := db.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	_, err = db.InsertTrim(database, &db.Trim{
		SourcePath:   plan.Args[4],
		DestPath:     plan.Args[len(plan.Args)-1],
		StartText:    req.StartText,
		EndText:      req.EndText,
		StartSeconds: plan.Interval.Start,
		Length:       plan.Interval.Length(),
		Encoder:      plan.Args[0],
	})
	return err
}

func printPlan(w io.Writer, req trim.Request, plan *trim.Plan) {
	fmt.Fprintf(w, "%s %s\n", styles.Label.Render("Source:"), plan.Args[4])
	fmt.Fprintf(w, "%s %s (%s)\n", styles.Label.Render("Start: "), req.StartText, timeutil.FormatLength(plan.Interval.Start))
	fmt.Fprintf(w, "%s %s (%s)\n", styles.Label.Render("End:   "), req.EndText, timeutil.FormatLength(plan.Interval.End))
	fmt.Fprintf(w, "%s %ss\n", styles.Label.Render("Length:"), timeutil.FormatLength(plan.Interval.Length()))
	fmt.Fprintf(w, "%s %s\n", styles.Label.Render("Dest:  "), plan.Args[len(plan.Args)-1])
	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.Command.Render(shellJoin(plan.Args)))
}

// shellJoin renders args as a command line, single-quoting arguments that the
// shell would otherwise split or expand.
func shellJoin(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		if a != "" && !strings.ContainsAny(a, " \t\n'\"\\$`!*?[](){}<>|&;#~") {
			quoted[i] = a
			continue
		}
		quoted[i] = "'" + strings.ReplaceAll(a, "'", `'\''`) + "'"
	}
	return strings.Join(quoted, " ")
}

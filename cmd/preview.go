package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/user/trim-cli/mpv"
	"github.com/user/trim-cli/pkg/timeutil"
	"github.com/user/trim-cli/trim"
)

func newPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview <source> <start> <end>",
		Short: "Loop an interval in mpv before trimming it",
		Long:  `Open the source in mpv playing only the interval between start and end, looped until mpv is closed.`,
		Args:  usageArgs(cobra.ExactArgs(3)),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := args[0]
			if err := trim.CheckSource(source); err != nil {
				return usage(err)
			}

			start, err := timeutil.ParseDuration(args[1])
			if err != nil {
				return usage(fmt.Errorf("invalid start time: %w", err))
			}
			end, err := timeutil.ParseDuration(args[2])
			if err != nil {
				return usage(fmt.Errorf("invalid end time: %w", err))
			}
			interval, err := trim.Validate(start, end)
			if err != nil {
				return usage(err)
			}

			process, err := mpv.LaunchPreview(cmd.Context(), source, interval)
			if err != nil {
				return fmt.Errorf("failed to launch mpv: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Previewing %s - %s (%ss). Close mpv to finish.\n",
				timeutil.FormatTime(interval.Start), timeutil.FormatTime(interval.End),
				timeutil.FormatLength(interval.Length()))

			return process.Wait()
		},
	}
}

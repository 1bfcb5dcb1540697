package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/user/trim-cli/deps"
	"github.com/user/trim-cli/tui/styles"
)

func newDoctorCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check system dependencies",
		Long: `Check that ffmpeg is installed and at least version ` + deps.TestedFfmpegVersion + `,
and whether mpv is available for the preview command.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, styles.SecondaryText.Render("Checking dependencies..."))
			fmt.Fprintln(out)

			ffmpegOK := true
			report, err := deps.CheckFfmpegVersion(cmd.Context(), opts.encoder)
			var depErr *deps.DependencyError
			switch {
			case errors.As(err, &depErr):
				fmt.Fprintln(out, styles.Error.Render("✗ ffmpeg: NOT FOUND"))
				fmt.Fprintf(out, "  Install from: %s\n", deps.FfmpegInstallURL)
				ffmpegOK = false
			case err != nil:
				fmt.Fprintln(out, styles.Warning.Render("! ffmpeg: OK, "+err.Error()))
			case report.Older:
				fmt.Fprintln(out, styles.Warning.Render(fmt.Sprintf("! ffmpeg: %s (older than tested %s)", report.Found, report.Tested)))
			default:
				fmt.Fprintln(out, styles.Success.Render(fmt.Sprintf("✓ ffmpeg: OK (%s)", report.Found)))
			}

			if err := deps.CheckMpv(); err != nil {
				fmt.Fprintln(out, styles.Warning.Render("! mpv: NOT FOUND (only needed for preview)"))
				fmt.Fprintf(out, "  Install from: %s\n", deps.MpvInstallURL)
			} else {
				fmt.Fprintln(out, styles.Success.Render("✓ mpv: OK"))
			}

			fmt.Fprintln(out)
			if !ffmpegOK {
				return errors.New("ffmpeg is not installed")
			}
			fmt.Fprintln(out, "ffmpeg is ready.")
			return nil
		},
	}
}

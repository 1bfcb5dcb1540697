// Package mpv opens a clip interval in the mpv player for review before trimming.
package mpv

import (
	"context"
	"os/exec"

	"github.com/user/trim-cli/deps"
	"github.com/user/trim-cli/pkg/timeutil"
	"github.com/user/trim-cli/trim"
)

// PreviewArgs returns the mpv arguments that play only the given interval of
// videoPath, looping it until the player is closed.
func PreviewArgs(videoPath string, interval trim.Interval) []string {
	return []string{
		"--start=" + timeutil.FormatLength(interval.Start),
		"--end=" + timeutil.FormatLength(interval.End),
		"--loop-file=inf",
		"--",
		videoPath,
	}
}

// LaunchPreview starts mpv on the interval and returns the running process.
// It checks that mpv is installed first and returns an error with install link if not.
func LaunchPreview(ctx context.Context, videoPath string, interval trim.Interval) (*exec.Cmd, error) {
	if err := deps.CheckMpv(); err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, "mpv", PreviewArgs(videoPath, interval)...)

	// Start the process (non-blocking)
	if err := cmd.Start(); err != nil {
		return nil, err
	}

	return cmd, nil
}

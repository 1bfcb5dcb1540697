package deps

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"

	"golang.org/x/mod/semver"
)

// TestedFfmpegVersion is the newest ffmpeg release trims have been checked against.
// Older installs only produce a warning.
const TestedFfmpegVersion = "5.1.2"

// ErrFfmpegVersionUnknown is returned when `ffmpeg -version` output has no
// major.minor.patch release number, as with git snapshot builds.
var ErrFfmpegVersionUnknown = errors.New("could not determine ffmpeg version")

var versionPattern = regexp.MustCompile(`^ffmpeg version (\d+\.\d+\.\d+)`)

// VersionReport is the outcome of comparing the installed ffmpeg with TestedFfmpegVersion.
type VersionReport struct {
	Found  string
	Tested string
	Older  bool
}

// Warning returns the message shown for an older ffmpeg, or "" when none is due.
func (r *VersionReport) Warning() string {
	if r == nil || !r.Older {
		return ""
	}
	return fmt.Sprintf("Tested with FFmpeg version %s, but you have version %s", r.Tested, r.Found)
}

// ParseFfmpegVersion extracts the release number from `ffmpeg -version` output.
func ParseFfmpegVersion(output string) (string, error) {
	m := versionPattern.FindStringSubmatch(output)
	if m == nil {
		return "", ErrFfmpegVersionUnknown
	}
	return m[1], nil
}

// IsOlderThanTested reports whether version sorts before TestedFfmpegVersion.
func IsOlderThanTested(version string) bool {
	return semver.Compare("v"+version, "v"+TestedFfmpegVersion) < 0
}

// CheckFfmpegVersion runs `<name> -version` and compares the reported release
// with TestedFfmpegVersion.
func CheckFfmpegVersion(ctx context.Context, name string) (*VersionReport, error) {
	if err := CheckFfmpeg(name); err != nil {
		return nil, err
	}
	if name == "" {
		name = "ffmpeg"
	}

	out, err := exec.CommandContext(ctx, name, "-version").Output()
	if err != nil {
		return nil, fmt.Errorf("failed to run %s -version: %w", name, err)
	}

	version, err := ParseFfmpegVersion(string(out))
	if err != nil {
		return nil, err
	}

	return &VersionReport{
		Found:  version,
		Tested: TestedFfmpegVersion,
		Older:  IsOlderThanTested(version),
	}, nil
}

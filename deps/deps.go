package deps

import (
	"fmt"
	"os/exec"
)

const (
	MpvInstallURL    = "https://mpv.io/installation/"
	FfmpegInstallURL = "https://ffmpeg.org/download.html"
)

// DependencyError contains information about a missing dependency
type DependencyError struct {
	Name       string
	InstallURL string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s not found. Install from: %s", e.Name, e.InstallURL)
}

// CheckMpv checks if mpv is installed and available in PATH
func CheckMpv() error {
	if _, err := exec.LookPath("mpv"); err != nil {
		return &DependencyError{
			Name:       "mpv",
			InstallURL: MpvInstallURL,
		}
	}
	return nil
}

// CheckFfmpeg checks that the encoder binary can be found. An empty name means
// "ffmpeg" in PATH; a name containing a slash is checked as a path.
func CheckFfmpeg(name string) error {
	if name == "" {
		name = "ffmpeg"
	}
	if _, err := exec.LookPath(name); err != nil {
		return &DependencyError{
			Name:       name,
			InstallURL: FfmpegInstallURL,
		}
	}
	return nil
}

package trim

import (
	"fmt"

	"github.com/user/trim-cli/pkg/timeutil"
)

// InvalidIntervalError is returned when the start of an interval lies after its end.
type InvalidIntervalError struct {
	Start float64
	End   float64
}

func (e *InvalidIntervalError) Error() string {
	return fmt.Sprintf("end time (%s) must be after start time (%s)",
		timeutil.FormatTime(e.End), timeutil.FormatTime(e.Start))
}

// MissingSourceFileError is returned when the source video does not exist or is a directory.
type MissingSourceFileError struct {
	Path  string
	IsDir bool
}

func (e *MissingSourceFileError) Error() string {
	if e.IsDir {
		return fmt.Sprintf("source is a directory, not a video file: %s", e.Path)
	}
	return fmt.Sprintf("source file does not exist: %s", e.Path)
}

// EncoderError is returned when the encoder process exits with a non-zero status.
type EncoderError struct {
	Name     string
	ExitCode int
}

func (e *EncoderError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Name, e.ExitCode)
}

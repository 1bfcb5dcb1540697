// Package forms provides huh-based prompts for entering trim timestamps.
package forms

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/user/trim-cli/pkg/timeutil"
	"github.com/user/trim-cli/trim"
)

// IntervalResult holds the timestamps entered in an interval form.
// Fields already set when the form is built are shown as defaults.
type IntervalResult struct {
	Start string
	End   string
}

// ValidateTimestamp reports whether s is an accepted timestamp.
func ValidateTimestamp(s string) error {
	if _, err := timeutil.ParseDuration(s); err != nil {
		return fmt.Errorf("use HH:MM:SS, MM:SS or SS (optionally with .fraction)")
	}
	return nil
}

// ValidateEnd checks end is a timestamp that does not come before start.
// An unparseable start is left for the start field to report.
func ValidateEnd(start, end string) error {
	if err := ValidateTimestamp(end); err != nil {
		return err
	}
	s, err := timeutil.ParseDuration(start)
	if err != nil {
		return nil
	}
	e, _ := timeutil.ParseDuration(end)
	if _, err := trim.Validate(s, e); err != nil {
		return err
	}
	return nil
}

// NewIntervalForm creates a huh form asking for the start and end of a clip from source.
// The result pointer is bound to the form fields and will be populated on submit.
func NewIntervalForm(source string, result *IntervalResult) *huh.Form {
	header := fmt.Sprintf("Trim %s", filepath.Base(source))

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title(header).
				Description("Timestamps are HH:MM:SS, MM:SS or SS, with an optional .fraction"),

			huh.NewInput().
				Title("Start").
				Placeholder("0:00:00").
				Value(&result.Start).
				Validate(ValidateTimestamp),

			huh.NewInput().
				Title("End").
				Placeholder("0:00:30").
				Value(&result.End).
				Validate(func(s string) error {
					return ValidateEnd(result.Start, s)
				}),
		),
	).WithTheme(Theme())
}

// PromptInterval runs the interval form on in/out until it is submitted or ctx is done.
// huh.ErrUserAborted is returned if the user quits the form.
func PromptInterval(ctx context.Context, source string, result *IntervalResult, in io.Reader, out io.Writer) error {
	form := NewIntervalForm(source, result).
		WithProgramOptions(tea.WithInput(in), tea.WithOutput(out))
	return form.RunWithContext(ctx)
}

package trim

import (
	"fmt"
	"path/filepath"

	"github.com/user/trim-cli/pkg/timeutil"
)

// DefaultEncoder is the encoder binary used when none is configured.
const DefaultEncoder = "ffmpeg"

// Build returns the encoder command line that copies length seconds of sourcePath,
// starting at startText, into destPath:
//
//	ffmpeg -ss <start> -i <source> -t <length> -async 1 <dest>
//
// startText is passed through untouched so the encoder does its own seeking.
// Both paths are made absolute and length is written with four decimals.
func Build(encoder, startText, sourcePath string, length float64, destPath string) ([]string, error) {
	if encoder == "" {
		encoder = DefaultEncoder
	}

	absSource, err := filepath.Abs(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve source path: %w", err)
	}
	absDest, err := filepath.Abs(destPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve destination path: %w", err)
	}

	return []string{
		encoder,
		"-ss", startText,
		"-i", absSource,
		"-t", timeutil.FormatLength(length),
		"-async", "1",
		absDest,
	}, nil
}

// Request holds the raw values of a trim as entered on the command line.
type Request struct {
	Encoder   string
	Source    string
	StartText string
	EndText   string
	Dest      string
}

// Plan is a validated trim ready to hand to Run.
type Plan struct {
	Interval Interval
	Args     []string
}

// Plan parses both timestamps, validates the interval and builds the encoder command.
func (r Request) Plan() (*Plan, error) {
	start, err := timeutil.ParseDuration(r.StartText)
	if err != nil {
		return nil, fmt.Errorf("invalid start time: %w", err)
	}
	end, err := timeutil.ParseDuration(r.EndText)
	if err != nil {
		return nil, fmt.Errorf("invalid end time: %w", err)
	}

	interval, err := Validate(start, end)
	if err != nil {
		return nil, err
	}

	args, err := Build(r.Encoder, r.StartText, r.Source, interval.Length(), r.Dest)
	if err != nil {
		return nil, err
	}

	return &Plan{Interval: interval, Args: args}, nil
}

package trim

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// Run executes args[0] with the remaining arguments and waits for it to exit.
// Standard streams are passed through so the encoder can prompt, for example
// before overwriting an existing destination.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return errors.New("empty encoder command")
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &EncoderError{Name: args[0], ExitCode: exitErr.ExitCode()}
		}
		return fmt.Errorf("failed to run %s: %w", args[0], err)
	}
	return nil
}

package trim

import (
	"fmt"
	"os"
)

// CheckSource verifies the source video exists and is not a directory.
func CheckSource(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return &MissingSourceFileError{Path: path}
	}
	if err != nil {
		return fmt.Errorf("failed to access source file: %w", err)
	}
	if info.IsDir() {
		return &MissingSourceFileError{Path: path, IsDir: true}
	}
	return nil
}

// CheckDest verifies the destination is not an existing directory. A missing
// destination is fine; the encoder creates it.
func CheckDest(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to access destination: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("destination is a directory, not a file: %s", path)
	}
	return nil
}

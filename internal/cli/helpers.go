package cli

import (
	"fmt"
	"os"
	"strings"
)

// resolveWorkingDir returns the provided dir or falls back to the current
// working directory.
func resolveWorkingDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return wd, nil
}

// joinMessage joins command-line words into the raw commit message.
func joinMessage(args []string) string {
	return strings.Join(args, " ")
}

// shortHash abbreviates a full object hash the way git log --oneline does.
func shortHash(h string) string {
	if len(h) > 7 {
		return h[:7]
	}
	return h
}

// Package dirs provides XDG Base Directory Specification compliant paths
// for commitment.
package dirs

import (
	"os"
	"path/filepath"
)

// LocalDirName is the per-project configuration directory name.
const LocalDirName = ".commitment"

// ConfigDir returns the commitment configuration directory.
// Resolution order: COMMITMENT_CONFIG_DIR > XDG_CONFIG_HOME/commitment > ~/.config/commitment.
func ConfigDir() string {
	if dir := os.Getenv("COMMITMENT_CONFIG_DIR"); dir != "" {
		return dir
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "commitment")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "commitment")
	}
	return filepath.Join(home, ".config", "commitment")
}

// LocalDir returns the project configuration directory under root if it
// exists, or "" otherwise.
func LocalDir(root string) string {
	candidate := filepath.Join(root, LocalDirName)
	if info, err := os.Stat(candidate); err == nil && info.IsDir() {
		return candidate
	}
	return ""
}

package command

import (
	"os"
	"path/filepath"
)

// dataDir resolves the quill state directory. QUILL_HOME overrides the
// default under ~/.config.
func dataDir() (string, error) {
	if dir := os.Getenv("QUILL_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "quill"), nil
}

func defaultStorePath() (string, error) {
	dir, err := dataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "roster.db"), nil
}

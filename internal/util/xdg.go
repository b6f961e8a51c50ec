package util

import (
	"fmt"
	"os"
	"path/filepath"
)

const appDir = "streamstats"

// GetXDGDataDir returns $XDG_DATA_HOME/streamstats, falling back to
// ~/.local/share/streamstats.
func GetXDGDataDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, appDir), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".local", "share", appDir), nil
}

// ReportsDir is the default output directory of rendered chart files.
func ReportsDir() (string, error) {
	dataDir, err := GetXDGDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "reports"), nil
}

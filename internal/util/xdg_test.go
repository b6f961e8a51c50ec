package util

import (
	"path/filepath"
	"testing"
)

func TestGetXDGDataDir_RespectsEnv(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")
	dir, err := GetXDGDataDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg", "streamstats") {
		t.Errorf("expected /tmp/xdg/streamstats, got %s", dir)
	}
}

func TestGetXDGDataDir_FallsBackToHome(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("HOME", "/home/tester")
	dir, err := GetXDGDataDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := filepath.Join("/home/tester", ".local", "share", "streamstats"); dir != want {
		t.Errorf("expected %s, got %s", want, dir)
	}
}

func TestReportsDir(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")
	dir, err := ReportsDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := filepath.Join("/tmp/xdg", "streamstats", "reports"); dir != want {
		t.Errorf("expected %s, got %s", want, dir)
	}
}

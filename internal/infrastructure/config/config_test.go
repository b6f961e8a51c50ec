package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Server.PreviewRows != 5 {
		t.Errorf("expected 5 preview rows, got %d", cfg.Server.PreviewRows)
	}
	if cfg.Server.ShutdownTimeout != 5*time.Second {
		t.Errorf("expected 5s shutdown timeout, got %v", cfg.Server.ShutdownTimeout)
	}
	if cfg.Server.MaxUploadBytes() != 32<<20 {
		t.Errorf("unexpected upload limit %d", cfg.Server.MaxUploadBytes())
	}
	if cfg.Log.Level != "info" || !cfg.Log.Pretty {
		t.Errorf("unexpected log config %+v", cfg.Log)
	}
	if cfg.OTEL.Enabled {
		t.Error("expected OTEL disabled by default")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("STREAMSTATS_PORT", "9090")
	t.Setenv("STREAMSTATS_MAX_UPLOAD_MB", "4")
	t.Setenv("STREAMSTATS_PREVIEW_ROWS", "10")
	t.Setenv("STREAMSTATS_SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("STREAMSTATS_LOG_LEVEL", "debug")
	t.Setenv("STREAMSTATS_LOG_PRETTY", "false")
	t.Setenv("STREAMSTATS_OTEL_ENABLED", "true")
	t.Setenv("STREAMSTATS_OTEL_ENDPOINT", "localhost:4317")
	t.Setenv("STREAMSTATS_OTEL_INSECURE", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9090 || cfg.Server.PreviewRows != 10 {
		t.Errorf("unexpected server config %+v", cfg.Server)
	}
	if cfg.Server.MaxUploadBytes() != 4<<20 {
		t.Errorf("unexpected upload limit %d", cfg.Server.MaxUploadBytes())
	}
	if cfg.Server.ShutdownTimeout != 30*time.Second {
		t.Errorf("unexpected shutdown timeout %v", cfg.Server.ShutdownTimeout)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Pretty {
		t.Errorf("unexpected log config %+v", cfg.Log)
	}
	if !cfg.OTEL.Enabled || cfg.OTEL.Endpoint != "localhost:4317" || !cfg.OTEL.Insecure {
		t.Errorf("unexpected otel config %+v", cfg.OTEL)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"port out of range", "STREAMSTATS_PORT", "70000"},
		{"zero upload limit", "STREAMSTATS_MAX_UPLOAD_MB", "0"},
		{"negative preview", "STREAMSTATS_PREVIEW_ROWS", "-1"},
		{"not a number", "STREAMSTATS_PORT", "http"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}

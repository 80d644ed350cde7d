package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvHost, EnvPort, EnvLogFile, EnvLogLevel, EnvSeed} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := FromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want %+v", cfg, Default())
	}
	if cfg.Addr() != "localhost:8765" {
		t.Errorf("Addr = %s", cfg.Addr())
	}
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvHost, "0.0.0.0")
	t.Setenv(EnvPort, "9000")
	t.Setenv(EnvLogFile, "server.log")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvSeed, "42")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatal(err)
	}
	want := Config{Host: "0.0.0.0", Port: 9000, LogFile: "server.log", LogLevel: "warn", Seed: 42}
	if cfg != want {
		t.Errorf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestFromEnvInvalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{EnvPort, "http"},
		{EnvPort, "0"},
		{EnvPort, "70000"},
		{EnvSeed, "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			if _, err := FromEnv(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParsePort(t *testing.T) {
	if p, err := ParsePort("8765"); err != nil || p != 8765 {
		t.Errorf("ParsePort = %d, %v", p, err)
	}
	if _, err := ParsePort("-5"); !errors.Is(err, ErrInvalidPort) {
		t.Errorf("err = %v, want ErrInvalidPort", err)
	}
}

func TestLoadDotenv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	content := "SKIFREE_PORT=9100\nSKIFREE_LOG_LEVEL=info\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	// Variables set in the environment take precedence over the file.
	t.Setenv(EnvLogLevel, "error")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 9100 {
		t.Errorf("Port = %d, want 9100", cfg.Port)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel = %s, want error", cfg.LogLevel)
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("missing file should be skipped: %v", err)
	}
	if cfg.Port != DefaultPort {
		t.Errorf("Port = %d", cfg.Port)
	}
}

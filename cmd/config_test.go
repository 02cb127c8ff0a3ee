package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Provider.TimeoutSeconds != 10 {
		t.Errorf("provider timeout = %d; want 10", cfg.Provider.TimeoutSeconds)
	}
	if cfg.Push.IntervalMinutes != 30 {
		t.Errorf("push interval = %d; want 30", cfg.Push.IntervalMinutes)
	}
	if cfg.LockWaitSeconds != 5 {
		t.Errorf("lock wait = %d; want 5", cfg.LockWaitSeconds)
	}
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `provider:
  base_url: http://localhost:8080
  timeout_seconds: 3
push:
  interval_minutes: 15
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Provider.BaseURL != "http://localhost:8080" || cfg.Provider.TimeoutSeconds != 3 {
		t.Errorf("provider = %+v", cfg.Provider)
	}
	if cfg.Push.IntervalMinutes != 15 {
		t.Errorf("push interval = %d; want 15", cfg.Push.IntervalMinutes)
	}
	// unset values still default
	if cfg.LockWaitSeconds != 5 {
		t.Errorf("lock wait = %d; want the default 5", cfg.LockWaitSeconds)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("lock_wait_seconds: -1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Error("negative lock wait accepted")
	}
}

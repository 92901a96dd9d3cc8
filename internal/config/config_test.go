package config

import (
	"os"
	"path/filepath"
	"testing"

	"todo/internal/log"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.TaskFile != "todo.json" {
		t.Errorf("expected default task file todo.json, got %q", cfg.TaskFile)
	}
	if cfg.Level() != log.Warn {
		t.Errorf("expected default level warn, got %v", cfg.Level())
	}
}

func TestLoad_MissingDefaultFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvTaskFile, "")
	t.Setenv(EnvLogLevel, "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TaskFile != DefaultTaskFile {
		t.Errorf("expected %q, got %q", DefaultTaskFile, cfg.TaskFile)
	}
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestLoad_FromFile(t *testing.T) {
	t.Setenv(EnvTaskFile, "")
	t.Setenv(EnvLogLevel, "")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("file: tasks.json\nlogLevel: info\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := filepath.Join(dir, "tasks.json"); cfg.TaskFile != want {
		t.Errorf("expected %q, got %q", want, cfg.TaskFile)
	}
	if cfg.Level() != log.Info {
		t.Errorf("expected info level, got %v", cfg.Level())
	}
}

func TestLoad_AbsoluteFileKept(t *testing.T) {
	t.Setenv(EnvTaskFile, "")

	dir := t.TempDir()
	abs := filepath.Join(t.TempDir(), "elsewhere.json")
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("file: "+abs+"\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TaskFile != abs {
		t.Errorf("expected %q, got %q", abs, cfg.TaskFile)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("file: [unclosed\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid yaml")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvTaskFile, "/tmp/override.json")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TaskFile != "/tmp/override.json" {
		t.Errorf("expected env task file, got %q", cfg.TaskFile)
	}
	if cfg.Level() != log.Debug {
		t.Errorf("expected debug level, got %v", cfg.Level())
	}
}

func TestLevel_DebugFlagWins(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "error"
	cfg.Debug = true
	if cfg.Level() != log.Debug {
		t.Errorf("expected debug level, got %v", cfg.Level())
	}
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got := DefaultConfigDir(); got != filepath.Join("/xdg", "todo") {
		t.Errorf("expected /xdg/todo, got %q", got)
	}
}

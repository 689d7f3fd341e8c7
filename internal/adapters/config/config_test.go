package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.toml")
	data := []byte("" +
		"limit = 3\n" +
		"dumper = \"structure-printer\"\n" +
		"color = false\n" +
		"\n" +
		"[log]\n" +
		"level = \"debug\"\n" +
		"format = \"json\"\n" +
		"source = true\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Limit != 3 {
		t.Fatalf("expected limit 3, got %d", cfg.Limit)
	}
	if cfg.Dumper != "structure-printer" {
		t.Fatalf("expected dumper")
	}
	if cfg.ColorEnabled() {
		t.Fatalf("expected color disabled")
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" || !cfg.Log.Source {
		t.Fatalf("unexpected log config: %+v", cfg.Log)
	}
}

func TestLoadMissingDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Limit != 0 || cfg.Dumper != "" || !cfg.ColorEnabled() {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadFileErrors(t *testing.T) {
	if _, err := LoadFile(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
	tmp := t.TempDir()
	if _, err := LoadFile(filepath.Join(tmp, "missing.toml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if _, err := LoadFile(tmp); err == nil {
		t.Fatalf("expected error for directory")
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("default path: %v", err)
	}
	if path != filepath.Join("/xdg", "dumpdie", "config.toml") {
		t.Fatalf("unexpected path %s", path)
	}
}

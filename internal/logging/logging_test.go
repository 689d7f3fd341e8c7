package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		level   string
		enabled zapcore.Level
		skipped zapcore.Level
	}{
		{"debug", zapcore.DebugLevel, zapcore.DebugLevel - 1},
		{"", zapcore.InfoLevel, zapcore.DebugLevel},
		{"WARN", zapcore.WarnLevel, zapcore.InfoLevel},
		{"error", zapcore.ErrorLevel, zapcore.WarnLevel},
	}
	for _, test := range tests {
		logger := NewLogger(LogConfig{Level: test.level, Writer: &bytes.Buffer{}})
		if !logger.Core().Enabled(test.enabled) {
			t.Fatalf("level %q: expected %s enabled", test.level, test.enabled)
		}
		if logger.Core().Enabled(test.skipped) {
			t.Fatalf("level %q: expected %s disabled", test.level, test.skipped)
		}
	}
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{Level: "info", Format: "json", UTC: true, Writer: &buf})
	logger.Info("decoded")
	_ = logger.Sync()

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if entry["msg"] != "decoded" {
		t.Fatalf("unexpected msg: %v", entry["msg"])
	}
	if entry["app"] != "dd" {
		t.Fatalf("expected app field, got %v", entry["app"])
	}
	if _, ok := entry["version"]; !ok {
		t.Fatalf("expected version field")
	}
}

func TestNewLoggerAddSource(t *testing.T) {
	for _, addSource := range []bool{false, true} {
		var buf bytes.Buffer
		logger := NewLogger(LogConfig{Level: "info", Format: "json", AddSource: addSource, Writer: &buf})
		logger.Info("decoded")
		_ = logger.Sync()

		var entry map[string]any
		if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
			t.Fatalf("decode log line %q: %v", buf.String(), err)
		}
		if _, ok := entry["caller"]; ok != addSource {
			t.Fatalf("AddSource=%v: caller present=%v in %v", addSource, ok, entry)
		}
	}
}

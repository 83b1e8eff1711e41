package logger

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func readEntries(t *testing.T, path string) []map[string]any {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open log file: %v", err)
	}
	defer f.Close()

	var entries []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("log line is not JSON: %q: %v", scanner.Text(), err)
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("failed to scan log file: %v", err)
	}
	return entries
}

func TestNopBeforeInit(t *testing.T) {
	// Package helpers must be callable before Init.
	Debug("debug before init")
	Info("info before init", zap.Int("n", 1))
	Sync()
}

func TestLogLevels(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		level    string
		expected []string
	}{
		{level: "error", expected: []string{"error"}},
		{level: "warn", expected: []string{"warn", "error"}},
		{level: "info", expected: []string{"info", "warn", "error"}},
		{level: "debug", expected: []string{"debug", "info", "warn", "error"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(tempDir, tt.level+".log")

			cfg := FileConfig{
				Path:       logFile,
				MaxSizeMB:  10,
				MaxBackups: 1,
				MaxAgeDays: 1,
				Compress:   false,
			}

			if err := InitWithFileConfig(tt.level, cfg, false); err != nil {
				t.Fatalf("failed to init logger: %v", err)
			}

			Debug("debug message")
			Info("info message")
			Warn("warn message")
			Error("error message")
			Sync()

			entries := readEntries(t, logFile)
			if len(entries) != len(tt.expected) {
				t.Fatalf("expected %d entries, got %d", len(tt.expected), len(entries))
			}
			for i, want := range tt.expected {
				if got := entries[i]["level"]; got != want {
					t.Errorf("entry %d: expected level %q, got %v", i, want, got)
				}
			}
		})
	}
}

func TestFieldsAndCaller(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "fields.log")
	if err := InitWithFileConfig("debug", FileConfig{Path: logFile, MaxSizeMB: 1}, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}

	Info("frame stats", zap.Int("frames", 60), zap.String("scene", "space"))
	Named("renderer").Info("mesh uploaded")
	Sync()

	entries := readEntries(t, logFile)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	if entries[0]["frames"] != float64(60) {
		t.Errorf("expected frames 60, got %v", entries[0]["frames"])
	}
	if entries[0]["scene"] != "space" {
		t.Errorf("expected scene space, got %v", entries[0]["scene"])
	}

	// Both the helper and the named logger must report this file as caller.
	for i, e := range entries {
		caller, _ := e["caller"].(string)
		if !strings.HasPrefix(caller, "logger/logger_test.go") {
			t.Errorf("entry %d: expected caller in logger_test.go, got %q", i, caller)
		}
	}

	if entries[1]["logger"] != "renderer" {
		t.Errorf("expected logger name renderer, got %v", entries[1]["logger"])
	}
}

func TestLogRotation(t *testing.T) {
	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, "demo.log")

	cfg := FileConfig{
		Path:       logFile,
		MaxSizeMB:  1, // smallest size lumberjack allows
		MaxBackups: 2,
		MaxAgeDays: 1,
		Compress:   false,
	}
	if err := InitWithFileConfig("debug", cfg, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}

	payload := strings.Repeat("x", 200)
	for i := 0; i < 8000; i++ {
		Sugar.Infof("frame %d: %s", i, payload)
	}
	Sync()

	files, err := os.ReadDir(tempDir)
	if err != nil {
		t.Fatalf("failed to read temp dir: %v", err)
	}

	rotated := 0
	for _, f := range files {
		name := f.Name()
		if name != "demo.log" && strings.HasPrefix(name, "demo-") && strings.HasSuffix(name, ".log") {
			rotated++
		}
	}
	if rotated == 0 {
		t.Errorf("expected at least one rotated file, found %d files total", len(files))
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/robotdemo.log")

	if cfg.Path != "/tmp/robotdemo.log" {
		t.Errorf("expected path /tmp/robotdemo.log, got %s", cfg.Path)
	}
	if cfg.MaxSizeMB != 10 {
		t.Errorf("expected MaxSizeMB 10, got %d", cfg.MaxSizeMB)
	}
	if cfg.MaxBackups != 3 {
		t.Errorf("expected MaxBackups 3, got %d", cfg.MaxBackups)
	}
	if cfg.MaxAgeDays != 7 {
		t.Errorf("expected MaxAgeDays 7, got %d", cfg.MaxAgeDays)
	}
	if !cfg.Compress {
		t.Error("expected Compress to be true")
	}
}

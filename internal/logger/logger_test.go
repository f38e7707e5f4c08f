package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"go.uber.org/zap"
)

func TestLogLevels(t *testing.T) {
	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{
			level:    "error",
			expected: []string{"ERROR"},
			excluded: []string{"WARN", "INFO", "DEBUG"},
		},
		{
			level:    "warn",
			expected: []string{"ERROR", "WARN"},
			excluded: []string{"INFO", "DEBUG"},
		},
		{
			level:    "info",
			expected: []string{"ERROR", "WARN", "INFO"},
			excluded: []string{"DEBUG"},
		},
		{
			level:    "debug",
			expected: []string{"ERROR", "WARN", "INFO", "DEBUG"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			l := New(Options{Level: tt.level, Console: &buf})

			l.Debug("debug message")
			l.Info("info message")
			l.Warn("warn message")
			l.Error("error message")
			_ = l.Sync()

			out := buf.String()
			for _, exp := range tt.expected {
				if !strings.Contains(out, exp) {
					t.Errorf("expected %s in log output", exp)
				}
			}
			for _, exc := range tt.excluded {
				if strings.Contains(out, exc) {
					t.Errorf("unexpected %s in log output for level %s", exc, tt.level)
				}
			}
		})
	}
}

func TestNamedFields(t *testing.T) {
	var buf bytes.Buffer
	InitWithOptions(Options{Level: "debug", Console: &buf})
	t.Cleanup(func() { Set(zap.NewNop()) })

	Named("scene").Info("initialized", zap.Int("slices", 40))

	out := buf.String()
	if !strings.Contains(out, "scene") {
		t.Errorf("expected logger name in output: %q", out)
	}
	if !strings.Contains(out, `{"slices": 40}`) {
		t.Errorf("expected structured field in output: %q", out)
	}
}

func TestFileOutput(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "touchcone.log")

	if err := Init("info", logFile); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { Set(zap.NewNop()) })

	Info("to file")
	Debug("filtered")
	Sync()

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "to file") {
		t.Errorf("expected message in log file, got %q", content)
	}
	if strings.Contains(string(content), "filtered") {
		t.Error("debug message should be filtered at info level")
	}
}

func TestRotate(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultFileConfig(filepath.Join(dir, "test.log"))
	cfg.Compress = false

	InitWithOptions(Options{Level: "info", File: cfg})
	t.Cleanup(func() { Set(zap.NewNop()) })

	Info("before rotation")
	if err := Rotate(); err != nil {
		t.Fatalf("Rotate() error = %v", err)
	}
	Info("after rotation")
	Sync()

	files, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read dir: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected current and rotated log files, got %d", len(files))
	}

	// Rotated files are named test-<timestamp>.log
	for _, f := range files {
		if f.Name() != "test.log" && !strings.HasPrefix(f.Name(), "test-20") {
			t.Errorf("unexpected rotated file name %s", f.Name())
		}
	}
}

func TestRotateOnSignal(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultFileConfig(filepath.Join(dir, "app.log"))
	cfg.Compress = false

	InitWithOptions(Options{Level: "info", File: cfg})
	t.Cleanup(func() { Set(zap.NewNop()) })
	Info("before signal")

	c := make(chan os.Signal, 1)
	c <- syscall.SIGHUP
	close(c)
	RotateOn(c)
	Sync()

	files, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read dir: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected a rotated file after the signal, got %d files", len(files))
	}

	content, err := os.ReadFile(filepath.Join(dir, "app.log"))
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "log file rotated") {
		t.Errorf("expected rotation to be logged in the new file, got %q", content)
	}
}

func TestRotateWithoutFile(t *testing.T) {
	Set(zap.NewNop())
	if err := Rotate(); err != nil {
		t.Errorf("Rotate() without file output = %v, want nil", err)
	}
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/test.log")

	if cfg.Path != "/tmp/test.log" {
		t.Errorf("expected path /tmp/test.log, got %s", cfg.Path)
	}
	if cfg.MaxSizeMB != 10 {
		t.Errorf("expected MaxSizeMB 10, got %d", cfg.MaxSizeMB)
	}
	if cfg.MaxBackups != 3 {
		t.Errorf("expected MaxBackups 3, got %d", cfg.MaxBackups)
	}
	if !cfg.Compress {
		t.Error("expected Compress to be true")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]string{
		"debug":   "debug",
		"WARN":    "warn",
		"error":   "error",
		"":        "info",
		"verbose": "info",
	}
	for in, want := range tests {
		if got := parseLevel(in).String(); got != want {
			t.Errorf("parseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestNopWithoutSinks(t *testing.T) {
	l := New(Options{Level: "debug"})
	// No sinks configured; logging must be a silent no-op.
	l.Named("mesh").Debug("discarded")
	if l.Core().Enabled(zap.ErrorLevel) {
		t.Error("logger without sinks should be disabled")
	}
}

// Package logger wraps zap for the whole program. Output goes to the console,
// to a lumberjack-rotated file, or both.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the global logger. It discards everything until Init or Set is called,
// so packages can log unconditionally, including from tests.
var Log = zap.NewNop()

// Sugar is the sugared form of Log.
var Sugar = Log.Sugar()

// rotator is the file sink of the current global logger, if any.
var rotator *lumberjack.Logger

// FileConfig holds rotating file settings.
type FileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultFileConfig returns rotation settings for a log file at path.
func DefaultFileConfig(path string) FileConfig {
	return FileConfig{
		Path:       path,
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 7,
		Compress:   true,
	}
}

// Options describes the sinks of a logger.
type Options struct {
	// Level is a zap level name; unknown names mean info.
	Level string
	// Console receives human-readable output. Nil disables it.
	Console io.Writer
	// Color enables ANSI level colors on the console.
	Color bool
	// File enables rotating file output when Path is set.
	File FileConfig
}

// Init sets the global logger to write to stdout and, if logFile is set,
// to a rotating file.
func Init(level string, logFile string) error {
	opts := Options{
		Level:   level,
		Console: os.Stdout,
		Color:   true,
	}
	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
			return fmt.Errorf("creating log dir: %w", err)
		}
		opts.File = DefaultFileConfig(logFile)
	}
	InitWithOptions(opts)
	return nil
}

// New builds a logger from opts without touching the globals.
func New(opts Options) *zap.Logger {
	l, _ := build(opts)
	return l
}

func build(opts Options) (*zap.Logger, *lumberjack.Logger) {
	lvl := parseLevel(opts.Level)
	var cores []zapcore.Core

	if opts.Console != nil {
		levelEnc := zapcore.CapitalLevelEncoder
		if opts.Color {
			levelEnc = zapcore.CapitalColorLevelEncoder
		}
		enc := zapcore.NewConsoleEncoder(encoderConfig(zapcore.TimeEncoderOfLayout("15:04:05.000"), levelEnc))
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(opts.Console), lvl))
	}

	var file *lumberjack.Logger
	if opts.File.Path != "" {
		file = &lumberjack.Logger{
			Filename:   opts.File.Path,
			MaxSize:    opts.File.MaxSizeMB,
			MaxBackups: opts.File.MaxBackups,
			MaxAge:     opts.File.MaxAgeDays,
			Compress:   opts.File.Compress,
			LocalTime:  true,
		}
		enc := zapcore.NewConsoleEncoder(encoderConfig(zapcore.ISO8601TimeEncoder, zapcore.CapitalLevelEncoder))
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(file), lvl))
	}

	if len(cores) == 0 {
		return zap.NewNop(), nil
	}
	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), file
}

func encoderConfig(timeEnc zapcore.TimeEncoder, levelEnc zapcore.LevelEncoder) zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		NameKey:          "logger",
		MessageKey:       "msg",
		CallerKey:        "caller",
		EncodeTime:       timeEnc,
		EncodeLevel:      levelEnc,
		EncodeName:       zapcore.FullNameEncoder,
		EncodeCaller:     zapcore.ShortCallerEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	}
}

// InitWithOptions builds a logger from opts and installs it globally.
func InitWithOptions(opts Options) {
	l, file := build(opts)
	install(l, file)
}

// Set replaces the global logger.
func Set(l *zap.Logger) {
	install(l, nil)
}

func install(l *zap.Logger, file *lumberjack.Logger) {
	_ = Log.Sync()
	if rotator != nil && rotator != file {
		_ = rotator.Close()
	}
	Log = l
	Sugar = l.Sugar()
	rotator = file
}

// Rotate starts a new log file. It is a no-op without file output.
func Rotate() error {
	if rotator == nil {
		return nil
	}
	return rotator.Rotate()
}

// RotateOn rotates the log file each time a value arrives on c, typically
// SIGHUP from signal.Notify. It returns when c is closed.
func RotateOn(c <-chan os.Signal) {
	for sig := range c {
		if err := Rotate(); err != nil {
			Log.Warn("log rotation failed", zap.Stringer("signal", sig), zap.Error(err))
			continue
		}
		Log.Info("log file rotated", zap.Stringer("signal", sig))
	}
}

// parseLevel converts a string level to zapcore.Level.
// Unknown or empty levels fall back to info.
func parseLevel(level string) zapcore.Level {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil || level == "" {
		return zapcore.InfoLevel
	}
	return lvl
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = Log.Sync()
}

// Named returns a child of the current global logger.
// Packages call it when they are constructed, after Init.
func Named(name string) *zap.Logger {
	return Log.Named(name)
}

// Debug logs a debug message.
func Debug(msg string, fields ...zap.Field) { Log.Debug(msg, fields...) }

// Info logs an info message.
func Info(msg string, fields ...zap.Field) { Log.Info(msg, fields...) }

// Warn logs a warning message.
func Warn(msg string, fields ...zap.Field) { Log.Warn(msg, fields...) }

// Error logs an error message.
func Error(msg string, fields ...zap.Field) { Log.Error(msg, fields...) }

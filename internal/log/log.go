// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package log provides the diagnostic logger for study-triage. Records go
// to stderr so they never mix with a report written to stdout.
package log

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log level names accepted by SetLevel.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

var zapLevel = zap.NewAtomicLevelAt(zapcore.WarnLevel)

var encoderConfig = zapcore.EncoderConfig{
	TimeKey:        "ts",
	LevelKey:       "lvl",
	NameKey:        "name",
	MessageKey:     "message",
	StacktraceKey:  "stacktrace",
	LineEnding:     zapcore.DefaultLineEnding,
	EncodeLevel:    zapcore.CapitalLevelEncoder,
	EncodeTime:     zapcore.RFC3339TimeEncoder,
	EncodeDuration: zapcore.StringDurationEncoder,
}

// Logger is the subset of zap.SugaredLogger used across the module.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Default writes console-encoded records to stderr at the level set by
// SetLevel (warn until configured).
var Default Logger = New(os.Stderr)

// New returns a logger writing to w that shares the package level.
func New(w zapcore.WriteSyncer) *zap.SugaredLogger {
	return zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(w),
		zapLevel,
	)).Sugar()
}

// Nop returns a logger that discards everything. Tests use it.
func Nop() Logger {
	return zap.NewNop().Sugar()
}

// SetLevel changes the level of every logger created by this package.
func SetLevel(level string) error {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case LevelDebug:
		zapLevel.SetLevel(zapcore.DebugLevel)
	case LevelInfo:
		zapLevel.SetLevel(zapcore.InfoLevel)
	case LevelWarn, "":
		zapLevel.SetLevel(zapcore.WarnLevel)
	case LevelError:
		zapLevel.SetLevel(zapcore.ErrorLevel)
	default:
		return fmt.Errorf("unsupported log level %q: use debug, info, warn, or error", level)
	}
	return nil
}

// Level returns the current level name.
func Level() string {
	return zapLevel.Level().String()
}

/* pkg/logger/logger.go */

package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger

// InitFallback sets up console-only logging and installs it as the zap
// global. Aegis never logs to a file: generated secrets must not end up in
// a log on disk, and stderr keeps stdout clean for piping passwords.
func InitFallback() {
	if log != nil {
		return
	}

	cfg := DefaultConsoleEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.Lock(os.Stderr),
		ParseLogLevel(os.Getenv("LOG_LEVEL")),
	)

	log = zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	zap.ReplaceGlobals(log)
}

// L returns the global logger, initializing the fallback if needed.
func L() *zap.Logger {
	if log == nil {
		InitFallback()
	}
	return log
}

// Sync flushes any buffered log entries. Call before the application exits.
func Sync() error {
	if log == nil {
		return nil
	}
	return log.Sync()
}

func DefaultConsoleEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "T"
	cfg.LevelKey = "L"
	cfg.NameKey = "N"
	cfg.CallerKey = "C"
	cfg.MessageKey = "M"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return cfg
}

// ParseLogLevel maps a LOG_LEVEL string to a zap level, defaulting to warn
// so normal runs stay quiet on the terminal.
func ParseLogLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zap.DebugLevel
	case "info":
		return zap.InfoLevel
	case "warn", "warning", "":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.WarnLevel
	}
}

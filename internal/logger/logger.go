// Package logger configures the process-wide slog default and exposes
// thin level helpers. Every log line in this app carries the same
// structured keys (module, action, resource, result) so the journal
// can be filtered per concern; callers pass those as key/value pairs.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Init installs the default text handler at the named level, normally
// the COSMIC_LOG_LEVEL value. Unknown or empty names mean info. Called
// once from main before anything logs.
func Init(level string) {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			// Lowercase level names keep journal filters simple.
			if attr.Key == slog.LevelKey {
				attr.Value = slog.StringValue(strings.ToLower(attr.Value.String()))
			}
			return attr
		},
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, opts)))
}

func parseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func Debug(msg string, args ...any) { slog.Debug(msg, args...) }

func Info(msg string, args ...any) { slog.Info(msg, args...) }

func Warn(msg string, args ...any) { slog.Warn(msg, args...) }

func Error(msg string, args ...any) { slog.Error(msg, args...) }

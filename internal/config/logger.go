package config

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

type LoggerConfig struct {
	Level  string `koanf:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `koanf:"format" validate:"omitempty,oneof=json text"`
	// File, when set, receives a rotated copy of everything written to stdout.
	File       string `koanf:"file"`
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAgeDays int    `koanf:"max_age_days"`
}

// NewLogger builds the process logger described by the config.
func (c LoggerConfig) NewLogger() *slog.Logger {
	var out io.Writer = os.Stdout
	if c.File != "" {
		rot := &lumberjack.Logger{
			Filename:   c.File,
			MaxSize:    orDefault(c.MaxSizeMB, 50),
			MaxBackups: orDefault(c.MaxBackups, 3),
			MaxAge:     orDefault(c.MaxAgeDays, 7),
		}
		out = io.MultiWriter(os.Stdout, rot)
	}

	opts := &slog.HandlerOptions{Level: c.level()}

	var h slog.Handler
	if strings.EqualFold(c.Format, "text") {
		h = slog.NewTextHandler(out, opts)
	} else {
		h = slog.NewJSONHandler(out, opts)
	}

	return slog.New(h).With("service", "cashea-relay")
}

func (c LoggerConfig) level() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

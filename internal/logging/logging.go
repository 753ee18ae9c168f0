// Package logging configures the process-wide slog logger. Log output goes to
// stderr or a rotating file, never to stdout, which carries the protocol
// stream.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"gopkg.in/natefinch/lumberjack.v2"

	"gitmcp.dev/gitmcp/internal/config"
)

// Setup builds the logger described by cfg and installs it as the slog
// default.
func Setup(cfg config.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var writer io.Writer = os.Stderr
	if cfg.LogFile != "" {
		writer = newRotatingWriter(cfg.LogFile)
	}

	var handler slog.Handler
	if cfg.LogFile == "" && isatty.IsTerminal(os.Stderr.Fd()) {
		handler = slog.NewTextHandler(writer, opts)
	} else {
		handler = slog.NewJSONHandler(writer, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// newRotatingWriter creates a rotating file writer with rotation limits
// tunable via environment variables.
func newRotatingWriter(path string) *lumberjack.Logger {
	writer := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    1,  // megabytes
		MaxBackups: 2,  // old files kept
		MaxAge:     30, // days
	}

	if maxSizeStr := os.Getenv("GITMCP_LOG_MAX_SIZE"); maxSizeStr != "" {
		if maxSize, err := strconv.Atoi(maxSizeStr); err == nil && maxSize > 0 {
			writer.MaxSize = maxSize
		}
	}
	if maxBackupsStr := os.Getenv("GITMCP_LOG_MAX_BACKUPS"); maxBackupsStr != "" {
		if maxBackups, err := strconv.Atoi(maxBackupsStr); err == nil && maxBackups >= 0 {
			writer.MaxBackups = maxBackups
		}
	}
	if maxAgeStr := os.Getenv("GITMCP_LOG_MAX_AGE"); maxAgeStr != "" {
		if maxAge, err := strconv.Atoi(maxAgeStr); err == nil && maxAge > 0 {
			writer.MaxAge = maxAge
		}
	}

	return writer
}

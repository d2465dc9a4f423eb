// SPDX-License-Identifier: MIT

package app

import (
	"fmt"
	"io"
	"log/slog"
)

// logLevels maps the accepted -log-level values to slog levels.
var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// parseLogLevel resolves a configured level name.
func parseLogLevel(name string) (slog.Level, error) {
	level, ok := logLevels[name]
	if !ok {
		return 0, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", name)
	}

	return level, nil
}

// checkLogFormat accepts "text" and "json".
func checkLogFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", format)
	}
}

// newLogger builds the logger described by cfg, writing to outW. It does not
// set the global logger, so every App keeps its own.
func newLogger(cfg *Config, outW io.Writer) (*slog.Logger, error) {
	level, err := parseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if err = checkLogFormat(cfg.LogFormat); err != nil {
		return nil, err
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(outW, handlerOpts)), nil
	}

	return slog.New(slog.NewTextHandler(outW, handlerOpts)), nil
}

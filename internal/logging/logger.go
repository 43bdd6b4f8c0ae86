package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"danubio/internal/config"

	"github.com/rs/zerolog"
)

// New builds the process logger from the logging config section and stamps
// every event with the app identity. The returned closer is non-nil only for
// file output. Unset level/format/output fall back to info-level JSON on
// stdout; an output value that names no known sink is a config error.
func New(cfg config.LoggingConfig, app config.AppConfig) (*zerolog.Logger, io.Closer, error) {
	sink, closer, err := openSink(cfg)
	if err != nil {
		return nil, nil, err
	}
	if normalize(cfg.Format) == "console" {
		sink = zerolog.ConsoleWriter{Out: sink, TimeFormat: time.RFC3339}
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	logger := zerolog.New(sink).
		Level(levelFor(cfg.Level)).
		With().
		Timestamp().
		Str("app", app.Name).
		Str("env", app.Environment).
		Str("version", app.Version).
		Logger()

	return &logger, closer, nil
}

func openSink(cfg config.LoggingConfig) (io.Writer, io.Closer, error) {
	switch normalize(cfg.Output) {
	case "", "stdout":
		return os.Stdout, nil, nil
	case "stderr":
		return os.Stderr, nil, nil
	case "file":
		if cfg.FilePath == "" {
			return nil, nil, fmt.Errorf("logging.output=file requires logging.file_path")
		}
		file, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		return file, file, nil
	default:
		return nil, nil, fmt.Errorf("unknown logging.output %q", cfg.Output)
	}
}

// levelFor maps the configured level to zerolog's, defaulting to info rather
// than failing startup over a typo.
func levelFor(raw string) zerolog.Level {
	normalized := normalize(raw)
	if normalized == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(normalized)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

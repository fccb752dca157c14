// Package logger configures the application's structured logging.
//
// It builds zerolog loggers (console output in local, JSON elsewhere) and
// provides the adapters the database package needs to route pgx query
// tracing through zerolog.
package logger

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ncnews/api/internal/config"
)

// New builds the application's main logger.
//
// Local env gets a human-friendly console writer on stderr; every other env
// gets JSON on stdout for log shippers. The env name is attached to every
// entry as a field.
func New(cfg *config.Config) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if cfg.Primary.Env == "local" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().
			Timestamp().
			Str("env", cfg.Primary.Env).
			Logger().
			Level(zerolog.DebugLevel)
	}

	return zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("env", cfg.Primary.Env).
		Logger().
		Level(zerolog.InfoLevel)
}

// NewPgxLogger builds the logger pgx tracelog writes SQL statements to.
// It inherits the given level and tags entries with a component field so
// query logs can be filtered out.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().
		Timestamp().
		Str("component", "pgx").
		Logger().
		Level(level)
}

// GetPgxTraceLogLevel converts a zerolog level into the pgx tracelog level
// scale (tracelog: 0 none .. 6 trace).
func GetPgxTraceLogLevel(level zerolog.Level) int {
	switch level {
	case zerolog.TraceLevel:
		return 6
	case zerolog.DebugLevel:
		return 5
	case zerolog.InfoLevel:
		return 4
	case zerolog.WarnLevel:
		return 3
	case zerolog.ErrorLevel:
		return 2
	default:
		return 1
	}
}

// Fallback returns the process-global logger, for call sites that run
// before configuration is available.
func Fallback() zerolog.Logger {
	return log.Logger
}

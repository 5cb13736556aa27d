/*
Package logx provides a structured logging wrapper based on zerolog.

It is responsible for initializing the global logger, configuring the output format
(JSON or console) based on the environment, and providing unified helper functions
for logging levels like Info, Warn, Error, and Fatal.
*/
package logx

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitGlobalLogger initializes the global zerolog instance.
// Development: Debug level, ConsoleWriter on stderr.
// Production: Info level, JSON on stdout.
// All logs include a Unix timestamp and caller information.
func InitGlobalLogger(isDevelopment bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if isDevelopment {
		logger = logger.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			NoColor:    false,
			TimeFormat: time.RFC3339,
		})
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	log.Logger = logger.With().Caller().Logger()
}

// Logger returns a pointer to the global zerolog.Logger instance.
func Logger() *zerolog.Logger {
	return &log.Logger
}

// Ctx returns the request-scoped logger stored by RequestLogger, falling back
// to the global logger when the context carries none.
func Ctx(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l != nil && l.GetLevel() != zerolog.Disabled {
		return l
	}
	return Logger()
}

// emit writes ev with the key-value fields. An odd field list is dropped with a
// warning instead of letting zerolog pair keys with the wrong values.
func emit(ev *zerolog.Event, err error, msg string, fields []any) {
	if len(fields)%2 != 0 {
		Logger().Warn().
			Int("fields_count", len(fields)).
			Str("dropped_for", msg).
			Msg("Odd number of log fields, fields ignored")
		fields = nil
	}

	if err != nil {
		ev = ev.Err(err)
	}

	ev.Fields(fields).CallerSkipFrame(2).Msg(msg)
}

// Info logs msg at Info level.
func Info(msg string, fields ...any) {
	emit(Logger().Info(), nil, msg, fields)
}

// Warn logs msg at Warn level.
func Warn(msg string, fields ...any) {
	emit(Logger().Warn(), nil, msg, fields)
}

// Error logs msg and err at Error level.
func Error(err error, msg string, fields ...any) {
	emit(Logger().Error(), err, msg, fields)
}

// Fatal logs msg and err at Fatal level, then exits the process with status 1.
func Fatal(err error, msg string, fields ...any) {
	emit(Logger().Fatal(), err, msg, fields)
}

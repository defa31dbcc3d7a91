package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/sajee05/effortless-time-tracker/internal/config"
)

// Logger is the narrow logging interface the rest of the code depends on.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Close()
}

type zeroLogger struct {
	log    zerolog.Logger
	closer io.Closer // file handle when logging to a file, nil otherwise
}

// NewLogProvider builds the process logger from configuration. With an
// empty file the logger writes human-readable lines to stderr; with a file
// it appends structured JSON.
func NewLogProvider(conf *config.Config) (Logger, error) {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil {
		return nil, err
	}

	var (
		w      io.Writer
		closer io.Closer
	)
	if conf.Logger.File != "" {
		f, err := os.OpenFile(conf.Logger.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		w = f
		closer = f
	} else {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}

	log := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return &zeroLogger{log: log, closer: closer}, nil
}

// NewNopLogger returns a logger that discards everything. Interactive
// commands use it so log lines never interleave with their output.
func NewNopLogger() Logger {
	return &zeroLogger{log: zerolog.Nop()}
}

func (l *zeroLogger) Debugf(format string, args ...interface{}) {
	l.log.Debug().Msgf(format, args...)
}

func (l *zeroLogger) Infof(format string, args ...interface{}) {
	l.log.Info().Msgf(format, args...)
}

func (l *zeroLogger) Warnf(format string, args ...interface{}) {
	l.log.Warn().Msgf(format, args...)
}

func (l *zeroLogger) Errorf(format string, args ...interface{}) {
	l.log.Error().Msgf(format, args...)
}

func (l *zeroLogger) Close() {
	if l.closer != nil {
		l.closer.Close()
	}
}

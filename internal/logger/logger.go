package logger

import (
	"io"
	"time"

	"github.com/natefinch/lumberjack"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

type Options struct {
	Level zerolog.Level
	// File enables a rotating log file when non-empty.
	File string
	// Console receives human readable output. Nil disables it, which the
	// terminal UI relies on to keep the screen clean.
	Console io.Writer
}

// Configure builds the process logger and installs it as the zerolog
// global. With neither a file nor a console it returns a disabled logger.
func Configure(opts Options) zerolog.Logger {
	zerolog.TimeFieldFormat = time.DateTime
	zerolog.DurationFieldUnit = time.Millisecond
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	var writers []io.Writer
	if opts.Console != nil {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        opts.Console,
			TimeFormat: time.DateTime,
		})
	}
	if opts.File != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   true,
		})
	}

	if len(writers) == 0 {
		log.Logger = zerolog.Nop()
		return log.Logger
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().
		Timestamp().
		Caller().
		Logger().
		Level(opts.Level)

	return log.Logger
}

// ParseLevel falls back to info for unknown or empty names.
func ParseLevel(name string) zerolog.Level {
	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

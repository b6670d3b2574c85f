package utils

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogOptions controls where structured logs go
type LogOptions struct {
	Verbose bool      // debug level, human readable on Console
	File    string    // rotating JSON log file, disabled when empty
	Console io.Writer // defaults to os.Stderr
}

// NewLogger builds the application logger.
// The console only gets warnings and errors unless Verbose is set; the log
// file, when configured, always records from debug level.
func NewLogger(opts LogOptions) zerolog.Logger {
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	consoleLevel := zerolog.WarnLevel
	if opts.Verbose {
		consoleLevel = zerolog.DebugLevel
	}

	writers := []io.Writer{
		&zerolog.FilteredLevelWriter{
			Writer: zerolog.LevelWriterAdapter{Writer: zerolog.ConsoleWriter{Out: console, TimeFormat: "15:04:05"}},
			Level:  consoleLevel,
		},
	}

	if opts.File != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		})
	}

	return zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(zerolog.DebugLevel).
		With().Timestamp().Logger()
}

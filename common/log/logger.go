// Package log holds the process wide zerolog loggers.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type LoggerType uint8

const (
	ConsoleLogger LoggerType = iota
	JSONLogger
)

var (
	// Root writes to stderr so that reports on stdout stay untouched.
	Root    = zerolog.New(os.Stderr).With().Timestamp().Logger()
	Decoder = Root.With().Str("component", "decoder").Logger()
	Report  = Root.With().Str("component", "report").Logger()
)

// Options for Logger
type Options struct {
	// Default Info
	LogLevel zerolog.Level
	Type     LoggerType
	// Output defaults to os.Stderr
	Output io.Writer
}

func ParseLogLevel(loglevel string) (zerolog.Level, error) {
	if loglevel == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(loglevel)
}

func Init(opts Options) {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	switch opts.Type {
	case ConsoleLogger:
		Root = zerolog.New(newConsoleWriter(out)).Level(opts.LogLevel).
			With().Timestamp().Logger()
	default:
		Root = zerolog.New(out).Level(opts.LogLevel).
			With().Timestamp().Logger()
	}
	Decoder = Root.With().Str("component", "decoder").Logger()
	Report = Root.With().Str("component", "report").Logger()
}

func newConsoleWriter(out io.Writer) zerolog.ConsoleWriter {
	cw := zerolog.ConsoleWriter{Out: out, NoColor: true, TimeFormat: time.RFC3339}

	cw.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	cw.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s=", i)
	}
	return cw
}

package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// NewLogger writes to stdout. An unparsable level falls back to info.
func NewLogger(level, format string) *zerolog.Logger {
	return newLogger(os.Stdout, level, format)
}

func newLogger(out io.Writer, level, format string) *zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.DurationFieldInteger = true

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	w := out
	if format != FormatJSON {
		w = consoleWriter(out)
	}

	log := zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Logger()

	if err != nil {
		log.Warn().Str("level", level).Msg("unknown log level, using info")
	}
	return &log
}

func consoleWriter(out io.Writer) zerolog.ConsoleWriter {
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "2006-01-02 15:04:05 MST",
	}

	output.FormatLevel = func(i interface{}) string {
		var color string
		var level string

		if l, ok := i.(string); ok {
			level = strings.ToUpper(l)
			switch level {
			case "TRACE":
				color = "\x1b[36m"
			case "DEBUG":
				color = "\x1b[32m"
			case "INFO":
				color = "\x1b[34m"
			case "WARN":
				color = "\x1b[33m"
			case "ERROR":
				color = "\x1b[31m"
			case "FATAL":
				color = "\x1b[31;1m"
			case "PANIC":
				color = "\x1b[35m"
			default:
				color = "\x1b[0m"
			}
		}

		return fmt.Sprintf("%s| %-6s|\x1b[0m", color, level)
	}

	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("\x1b[1m%s\x1b[0m", i)
	}

	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("\x1b[36m%s:\x1b[0m", i)
	}

	output.FormatFieldValue = func(i interface{}) string {
		return fmt.Sprintf("\x1b[32m%s\x1b[0m", i)
	}

	return output
}

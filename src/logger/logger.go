package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

const timeFormat = "15:04:05"

// Init builds the process logger. Output goes to stdout and to <name>.log, which is
// truncated on start. The returned closer releases the log file.
func Init(name string, level zerolog.Level) (zerolog.Logger, io.Closer, error) {
	logFile, err := os.OpenFile(name+".log", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}

	zerolog.CallerMarshalFunc = shortCaller
	multi := zerolog.MultiLevelWriter(
		consoleWriter(os.Stdout, false),
		consoleWriter(logFile, true),
	)
	return New(multi, level).With().Str("run", name).Logger(), logFile, nil
}

// New returns a timestamped logger with caller info writing to w.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Caller().Logger()
}

func consoleWriter(out io.Writer, noColor bool) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    noColor,
		TimeFormat: timeFormat,
	}
}

// ParseLevel accepts zerolog level names in any case. Empty means info.
func ParseLevel(s string) (zerolog.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level %q: %w", s, err)
	}
	return level, nil
}

// shortCaller trims the caller to file:line.
func shortCaller(_ uintptr, file string, line int) string {
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}

package telemetry

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Level is one of the four recognized zerolog levels.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Format selects the writer: a colorized console line, or raw JSON.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// LogConfig is the logging slice of a YAML config file; see LoadLogConfig.
type LogConfig struct {
	Level  Level  `yaml:"level"`
	Format Format `yaml:"format"`
}

// Logger wraps a configured zerolog.Logger with the phase-banner
// helper the cmd/torpedosched commands call between stages.
type Logger struct {
	zl zerolog.Logger
}

// New builds a Logger writing to w (os.Stdout if nil) per cfg.
func New(cfg LogConfig, w io.Writer) *Logger {
	if w == nil {
		w = os.Stdout
	}

	var output io.Writer = w
	if cfg.Format == FormatText {
		output = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: false}
	}

	zl := zerolog.New(output).With().Timestamp().Logger()
	switch cfg.Level {
	case LevelDebug:
		zl = zl.Level(zerolog.DebugLevel)
	case LevelWarn:
		zl = zl.Level(zerolog.WarnLevel)
	case LevelError:
		zl = zl.Level(zerolog.ErrorLevel)
	default:
		zl = zl.Level(zerolog.InfoLevel)
	}
	return &Logger{zl: zl}
}

// Phase logs a phase-transition banner at info level, the structured
// equivalent of original_source/main.py's print('Finding initial
// solution...') calls.
func (l *Logger) Phase(name string) {
	l.zl.Info().Msg(name)
}

// Error logs err at error level with a message.
func (l *Logger) Error(msg string, err error) {
	l.zl.Error().Err(err).Msg(msg)
}

// Zerolog returns the underlying logger for callers that want field
// builders New doesn't expose.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}

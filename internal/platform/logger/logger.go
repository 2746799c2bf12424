package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "info", "":
		return Info
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

func (l Level) zerolog() zerolog.Level {
	switch l {
	case Debug:
		return zerolog.DebugLevel
	case Warn:
		return zerolog.WarnLevel
	case Error:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	default:
		return FormatText
	}
}

// Logger es la interfaz que usan los módulos; los campos viajan como map
// para no acoplar el dominio a zerolog.
type Logger interface {
	With(fields map[string]any) Logger

	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

type Options struct {
	Level  Level
	Format Format
	App    string

	// Writer destino; si es nil se usa stdout.
	Writer io.Writer
}

type zeroLogger struct {
	z zerolog.Logger
}

func New(opts Options) Logger {
	var w io.Writer = os.Stdout
	if opts.Writer != nil {
		w = opts.Writer
	}
	if opts.Format != FormatJSON {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		}
	}

	ctx := zerolog.New(w).Level(opts.Level.zerolog()).With().Timestamp()
	if app := strings.TrimSpace(opts.App); app != "" {
		ctx = ctx.Str("app", app)
	}

	return &zeroLogger{z: ctx.Logger()}
}

// NewFromEnv crea logger desde env:
// - LOG_LEVEL=debug|info|warn|error (default info)
// - LOG_FORMAT=text|json (default text)
// - APP_NAME=echo-journal (opcional)
func NewFromEnv() Logger {
	return New(Options{
		Level:  ParseLevel(os.Getenv("LOG_LEVEL")),
		Format: ParseFormat(os.Getenv("LOG_FORMAT")),
		App:    os.Getenv("APP_NAME"),
	})
}

// Nop descarta todo. Útil en tests.
func Nop() Logger {
	return &zeroLogger{z: zerolog.Nop()}
}

func (l *zeroLogger) With(fields map[string]any) Logger {
	clean := cleanFields(fields)
	if len(clean) == 0 {
		return l
	}
	return &zeroLogger{z: l.z.With().Fields(clean).Logger()}
}

func (l *zeroLogger) Debug(msg string, fields map[string]any) { l.log(l.z.Debug(), msg, fields) }
func (l *zeroLogger) Info(msg string, fields map[string]any)  { l.log(l.z.Info(), msg, fields) }
func (l *zeroLogger) Warn(msg string, fields map[string]any)  { l.log(l.z.Warn(), msg, fields) }
func (l *zeroLogger) Error(msg string, fields map[string]any) { l.log(l.z.Error(), msg, fields) }

func (l *zeroLogger) log(e *zerolog.Event, msg string, fields map[string]any) {
	// e es nil cuando el nivel está deshabilitado
	if e == nil {
		return
	}
	if clean := cleanFields(fields); len(clean) > 0 {
		e = e.Fields(clean)
	}
	e.Msg(msg)
}

func cleanFields(fields map[string]any) map[string]any {
	if len(fields) == 0 {
		return nil
	}
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		if strings.TrimSpace(k) == "" {
			continue
		}
		out[k] = v
	}
	return out
}

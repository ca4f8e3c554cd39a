package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/forgeui/internal/model"
)

// Options describes logger configuration supplied at creation time. Writer
// defaults to stderr so that stdout stays free for generated code.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// Logger wraps zerolog to provide a simplified API for the application.
type Logger struct {
	base zerolog.Logger
}

// New creates a configured Logger instance based on Options.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		output = console
	}

	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return &Logger{base: logger}, nil
}

// Nop returns a logger that discards every entry.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// WithFields returns a derived logger that always writes the supplied fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}

	builder := l.base.With()
	for key, value := range fields {
		builder = builder.Interface(key, value)
	}

	derived := Logger{base: builder.Logger()}
	return &derived
}

// ForExport returns a derived logger tagged with the target of one export:
// framework, output format and minify flag, plus the CSS framework when it is
// not vanilla.
func (l *Logger) ForExport(framework model.Framework, opts model.ExportOptions) *Logger {
	if l == nil {
		return nil
	}

	format := opts.Format
	if format == "" {
		format = model.FormatSingle
	}
	builder := l.base.With().
		Str("framework", string(framework)).
		Str("format", string(format)).
		Bool("minify", opts.Minify)
	if !opts.CSSFramework.IsVanilla() {
		builder = builder.Str("css", string(opts.CSSFramework))
	}
	return &Logger{base: builder.Logger()}
}

// ForFile returns a derived logger tagged with a generated file's name and
// size in bytes.
func (l *Logger) ForFile(f model.File) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: l.base.With().Str("file", f.Name).Int("bytes", len(f.Content)).Logger()}
}

// Info writes an informational log entry.
func (l *Logger) Info(msg string) {
	if l == nil {
		return
	}
	l.base.Info().Msg(msg)
}

// Debug writes a debug-level log entry if enabled.
func (l *Logger) Debug(msg string) {
	if l == nil {
		return
	}
	l.base.Debug().Msg(msg)
}

// Warn writes a warning level log entry.
func (l *Logger) Warn(msg string) {
	if l == nil {
		return
	}
	l.base.Warn().Msg(msg)
}

// Error writes an error log entry including the supplied error context.
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}

package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

const LevelCritical = slog.Level(12)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

var levelsByName = map[string]slog.Level{
	"debug":    slog.LevelDebug,
	"info":     slog.LevelInfo,
	"warn":     slog.LevelWarn,
	"warning":  slog.LevelWarn,
	"error":    slog.LevelError,
	"critical": LevelCritical,
	"fatal":    LevelCritical,
}

type Logger interface {
	Debug(message string, args ...any)
	Info(message string, args ...any)
	Warn(message string, args ...any)
	Error(message string, args ...any)
	Critical(message string, args ...any)
	BusinessError(message string, err error, args ...any)
	InternalError(message string, err error, args ...any)
	With(args ...any) Logger
	Component(name string) Logger
}

// Options configures New. Service, when set, is attached to every record.
type Options struct {
	Level     slog.Level
	Format    Format
	Service   string
	AddSource bool
}

// OptionsFromEnv reads ENV, LOG_LEVEL, LOG_FORMAT and LOG_SOURCE. Development runs
// default to debug text output, everything else to info json.
func OptionsFromEnv(getenv func(string) string) Options {
	development := normalize(getenv("ENV")) == "development"

	opts := Options{Level: slog.LevelInfo, Format: FormatJSON, Service: "onlyflans"}
	if development {
		opts.Level = slog.LevelDebug
		opts.Format = FormatText
	}
	if level, ok := levelsByName[normalize(getenv("LOG_LEVEL"))]; ok {
		opts.Level = level
	}
	switch format := Format(normalize(getenv("LOG_FORMAT"))); format {
	case FormatText, FormatJSON:
		opts.Format = format
	}
	opts.AddSource = normalize(getenv("LOG_SOURCE")) == "true"
	return opts
}

func NewFromEnv() Logger {
	return New(os.Stdout, OptionsFromEnv(os.Getenv))
}

func New(output io.Writer, opts Options) Logger {
	handlerOpts := &slog.HandlerOptions{
		Level:       opts.Level,
		AddSource:   opts.AddSource,
		ReplaceAttr: labelCritical,
	}

	var handler slog.Handler = slog.NewTextHandler(output, handlerOpts)
	if opts.Format == FormatJSON {
		handler = slog.NewJSONHandler(output, handlerOpts)
	}

	base := slog.New(handler)
	if opts.Service != "" {
		base = base.With("service", opts.Service)
	}
	return &slogLogger{base: base}
}

// Discard returns a logger that drops everything.
func Discard() Logger {
	return &slogLogger{base: slog.New(slog.DiscardHandler)}
}

type slogLogger struct {
	base *slog.Logger
}

func (l *slogLogger) Debug(message string, args ...any) {
	l.base.Debug(message, args...)
}

func (l *slogLogger) Info(message string, args ...any) {
	l.base.Info(message, args...)
}

func (l *slogLogger) Warn(message string, args ...any) {
	l.base.Warn(message, args...)
}

func (l *slogLogger) Error(message string, args ...any) {
	l.base.Error(message, args...)
}

func (l *slogLogger) Critical(message string, args ...any) {
	l.base.Log(context.Background(), LevelCritical, message, args...)
}

// BusinessError logs an expected failure (bad input, duplicates) at warn level.
func (l *slogLogger) BusinessError(message string, err error, args ...any) {
	l.logError(slog.LevelWarn, "business", message, err, args)
}

// InternalError logs a failure of our own infrastructure at error level.
func (l *slogLogger) InternalError(message string, err error, args ...any) {
	l.logError(slog.LevelError, "internal", message, err, args)
}

func (l *slogLogger) logError(level slog.Level, kind, message string, err error, args []any) {
	if err == nil {
		return
	}
	attrs := append([]any{"err", err, "error_kind", kind}, args...)
	l.base.Log(context.Background(), level, message, attrs...)
}

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{base: l.base.With(args...)}
}

func (l *slogLogger) Component(name string) Logger {
	return l.With("component", name)
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func labelCritical(_ []string, attr slog.Attr) slog.Attr {
	if attr.Key != slog.LevelKey {
		return attr
	}
	if level, ok := attr.Value.Any().(slog.Level); ok && level == LevelCritical {
		attr.Value = slog.StringValue("CRITICAL")
	}
	return attr
}

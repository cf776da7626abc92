// Package log provides logging utilities.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"
)

// Format selects the handler flavour built by [New].
type Format string

const (
	// FormatConsole is a compact human readable format.
	FormatConsole Format = "console"
	// FormatDev is a verbose multi-line developer format.
	FormatDev Format = "dev"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.PIIFormatter("password"),
	slogformatter.FormatByType(func(b []byte) slog.Value {
		return slog.StringValue(string(b))
	}),
)

// New returns a logger that writes to w using the given format and level.
// Unknown formats fall back to [FormatConsole].
func New(w io.Writer, format Format, level slog.Leveler) *slog.Logger {
	if format == FormatDev {
		return slog.New(newHandler(
			devslog.NewHandler(w, &devslog.Options{
				HandlerOptions: &slog.HandlerOptions{
					AddSource: true,
					Level:     level,
				},
				SortKeys:   true,
				TimeFormat: time.RFC3339Nano,
			}),
		))
	}
	return slog.New(newHandler(
		console.NewHandler(w, &console.HandlerOptions{
			Level:      level,
			TimeFormat: time.RFC3339Nano,
		}),
	))
}

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})

// ParseLevel maps a level name (debug, info, warn, error) to [slog.Level].
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("parse log level %q: %w", s, err)
	}
	return lvl, nil
}

type fmtValue struct {
	v        any
	goSyntax bool
}

func (v fmtValue) LogValue() slog.Value {
	if v.goSyntax {
		return slog.StringValue(fmt.Sprintf("%#v", v.v))
	}
	return slog.StringValue(fmt.Sprintf("%+v", v.v))
}

// FmtValue returns a value logger that formats values using '%+v' or '%#v' syntax.
func FmtValue(v any, goSyntax bool) slog.LogValuer { return fmtValue{v, goSyntax} }

type stringValue[T ~string | ~[]byte] struct {
	v T
}

func (v stringValue[T]) LogValue() slog.Value {
	return slog.StringValue(string(v.v))
}

// StringValue returns a value logger that formats v as string.
// The conversion happens only when the record is actually handled.
func StringValue[T ~string | ~[]byte](v T) slog.LogValuer { return stringValue[T]{v} }

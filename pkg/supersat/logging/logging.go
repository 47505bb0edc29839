// Package logging provides the session log: a slog.Handler writing
// "[ddmmYYYY HH:MM:SS][LEVEL] message key=value" lines to a log file, with
// entries at or above a threshold echoed to the console.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

// TimeLayout is the timestamp layout of every log line.
const TimeLayout = "02012006 15:04:05"

// DefaultTimeZone is used when Options.TimeZone is empty.
const DefaultTimeZone = "Europe/Paris"

var levelNames = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

// ParseLevel parses a level name. Names are case-insensitive.
func ParseLevel(s string) (slog.Level, error) {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("unknown log level %q", s)
	}
	return l, nil
}

// Options configures a Handler.
type Options struct {
	// Level is the minimum level written to the log file.
	Level slog.Level
	// Console receives entries at or above ConsoleLevel. Nil disables the
	// echo.
	Console      io.Writer
	ConsoleLevel slog.Level
	// Location of the timestamps. If nil, UTC is used.
	Location *time.Location
	// Now returns the current time. If nil, time.Now is used.
	Now func() time.Time
}

// LoadLocation resolves a time zone name, falling back to DefaultTimeZone
// when name is empty.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		name = DefaultTimeZone
	}
	return time.LoadLocation(name)
}

type sink struct {
	mu      sync.Mutex
	out     io.Writer
	console io.Writer
}

// Handler is a slog.Handler producing bracketed single-line entries.
type Handler struct {
	opts   Options
	sink   *sink
	attrs  []slog.Attr
	groups []string
}

// NewHandler returns a Handler writing to out.
func NewHandler(out io.Writer, opts Options) *Handler {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Handler{opts: opts, sink: &sink{out: out, console: opts.Console}}
}

// Enabled reports whether either destination accepts level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	if level >= h.opts.Level {
		return true
	}
	return h.sink.console != nil && level >= h.opts.ConsoleLevel
}

// Handle formats r and writes it.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	ts := r.Time
	if ts.IsZero() {
		ts = h.opts.Now()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s][%s] %s", ts.In(h.opts.Location).Format(TimeLayout), r.Level.String(), r.Message)
	prefix := strings.Join(h.groups, ".")
	for _, a := range h.attrs {
		writeAttr(&b, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, prefix, a)
		return true
	})
	b.WriteByte('\n')
	line := b.String()

	h.sink.mu.Lock()
	defer h.sink.mu.Unlock()
	if r.Level >= h.opts.Level {
		if _, err := io.WriteString(h.sink.out, line); err != nil {
			return err
		}
	}
	if h.sink.console != nil && r.Level >= h.opts.ConsoleLevel {
		if _, err := io.WriteString(h.sink.console, line); err != nil {
			return err
		}
	}
	return nil
}

func writeAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if prefix != "" {
		key = prefix + "." + key
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			writeAttr(b, key, ga)
		}
		return
	}
	v := a.Value.String()
	if strings.ContainsAny(v, " \t\"=") || v == "" {
		v = fmt.Sprintf("%q", v)
	}
	fmt.Fprintf(b, " %s=%s", key, v)
}

// WithAttrs returns a handler that appends attrs to every entry.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	h2 := *h
	prefix := strings.Join(h.groups, ".")
	h2.attrs = append(h.attrs[:len(h.attrs):len(h.attrs)], prefixed(prefix, attrs)...)
	return &h2
}

// prefixed qualifies attribute keys with the groups open when they were
// added.
func prefixed(prefix string, attrs []slog.Attr) []slog.Attr {
	if prefix == "" {
		return attrs
	}
	out := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		out[i] = slog.Attr{Key: prefix + "." + a.Key, Value: a.Value}
	}
	return out
}

// WithGroup returns a handler qualifying subsequent keys with name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.groups = append(h.groups[:len(h.groups):len(h.groups)], name)
	return &h2
}

// Logger is a session logger bound to an open log file.
type Logger struct {
	*slog.Logger
	file *os.File
}

// Open opens path for appending, creating it if needed, and returns a
// logger writing to it.
func Open(path string, opts Options) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return &Logger{Logger: slog.New(NewHandler(f, opts)), file: f}, nil
}

// Close closes the log file.
func (l *Logger) Close() error {
	return l.file.Close()
}

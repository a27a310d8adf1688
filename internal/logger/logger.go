// Package logger provides structured logging for the command-line tools.
//
// Features:
// - JSON and text output formats
// - Log level configuration
// - Automatic command attribute taken from the context
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

type contextKey string

// CommandKey is the context key for the name of the running command.
const CommandKey contextKey = "command"

// Config holds logger configuration
type Config struct {
	Level     string // debug, info, warn, error
	Format    string // json, text
	Output    io.Writer
	AddSource bool
}

// DefaultConfig returns default logger configuration
func DefaultConfig() *Config {
	return &Config{
		Level:  "warn",
		Format: "text",
		Output: os.Stderr,
	}
}

// ParseLevel converts a level name to a slog level.
// Unknown names map to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// New creates a new slog.Logger with the given configuration
func New(cfg *Config) *slog.Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	opts := &slog.HandlerOptions{
		Level:     ParseLevel(cfg.Level),
		AddSource: cfg.AddSource,
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "json" {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}

	return slog.New(&ContextHandler{handler: handler})
}

// ContextHandler wraps a slog.Handler to add the command name from context
type ContextHandler struct {
	handler slog.Handler
}

// Enabled returns whether the handler is enabled for the given level
func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle adds the command name from context to the log record
func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if cmd := GetCommand(ctx); cmd != "" {
		r.AddAttrs(slog.String(string(CommandKey), cmd))
	}
	return h.handler.Handle(ctx, r)
}

// WithAttrs returns a new handler with the given attributes
func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{handler: h.handler.WithAttrs(attrs)}
}

// WithGroup returns a new handler with the given group
func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{handler: h.handler.WithGroup(name)}
}

// WithCommand adds the command name to context
func WithCommand(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, CommandKey, name)
}

// GetCommand extracts the command name from context
func GetCommand(ctx context.Context) string {
	if name, ok := ctx.Value(CommandKey).(string); ok {
		return name
	}
	return ""
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(&ContextHandler{handler: slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1})})
}

package logging

import (
	"log/slog"
	"os"
	"strings"
)

// LogLevel represents the severity level of a log entry
type LogLevel string

const (
	LevelDebug LogLevel = "debug"
	LevelInfo  LogLevel = "info"
	LevelWarn  LogLevel = "warn"
	LevelError LogLevel = "error"
)

// StructuredLogger provides structured logging for the assistant services
type StructuredLogger struct {
	*slog.Logger
	serviceName string
	component   string
}

// Config holds configuration for the structured logger
type Config struct {
	Level       LogLevel `json:"level"`
	Format      string   `json:"format"` // "json" or "text"
	ServiceName string   `json:"service_name"`
	Component   string   `json:"component"`
	AddSource   bool     `json:"add_source"`
}

// NewStructuredLogger creates a new structured logger instance
func NewStructuredLogger(config Config) *StructuredLogger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(config.Level),
		AddSource: config.AddSource,
	}

	var handler slog.Handler
	switch strings.ToLower(config.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default:
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	if config.ServiceName != "" {
		logger = logger.With("service", config.ServiceName)
	}
	if config.Component != "" {
		logger = logger.With("component", config.Component)
	}

	return &StructuredLogger{
		Logger:      logger,
		serviceName: config.ServiceName,
		component:   config.Component,
	}
}

// WithComponent creates a logger scoped to a specific component
func (sl *StructuredLogger) WithComponent(component string) *StructuredLogger {
	return &StructuredLogger{
		Logger:      sl.Logger.With("component", component),
		serviceName: sl.serviceName,
		component:   component,
	}
}

// WithSession creates a logger scoped to a chat session
func (sl *StructuredLogger) WithSession(sessionID string) *StructuredLogger {
	return &StructuredLogger{
		Logger:      sl.Logger.With("session_id", sessionID),
		serviceName: sl.serviceName,
		component:   sl.component,
	}
}

func parseLevel(level LogLevel) slog.Level {
	switch level {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

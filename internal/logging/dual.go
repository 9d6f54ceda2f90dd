package logging

import (
	"context"
	"fmt"
	"log/slog"

	mcpserver "github.com/mark3labs/mcp-go/server"
)

// DualLogger logs to the local slog sink and forwards the same message to
// the MCP client as a logging notification. It is meant to be created per
// tool invocation from the request context; outside of an MCP session it
// degrades to plain slog logging.
type DualLogger struct {
	ctx    context.Context
	logger *slog.Logger
	srv    *mcpserver.MCPServer
}

// NewDualLogger creates a DualLogger bound to the given request context.
// The MCP server is recovered from the context when available.
func NewDualLogger(ctx context.Context, logger *slog.Logger) *DualLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &DualLogger{
		ctx:    ctx,
		logger: logger,
		srv:    mcpserver.ServerFromContext(ctx),
	}
}

// Debug logs a debug message to both sinks.
func (d *DualLogger) Debug(msg string, args ...interface{}) {
	d.logger.Debug(msg, args...)
	d.notify("debug", msg, args...)
}

// Info logs an info message to both sinks.
func (d *DualLogger) Info(msg string, args ...interface{}) {
	d.logger.Info(msg, args...)
	d.notify("info", msg, args...)
}

// Warn logs a warning message to both sinks.
func (d *DualLogger) Warn(msg string, args ...interface{}) {
	d.logger.Warn(msg, args...)
	d.notify("warning", msg, args...)
}

// Error logs an error message to both sinks.
func (d *DualLogger) Error(msg string, args ...interface{}) {
	d.logger.Error(msg, args...)
	d.notify("error", msg, args...)
}

// notify forwards the message to the MCP client. Delivery failures are
// ignored: client logging is best effort and must never fail a tool call.
func (d *DualLogger) notify(level, msg string, args ...interface{}) {
	if d.srv == nil {
		return
	}

	data := msg
	if len(args) > 0 {
		data = fmt.Sprintf("%s %v", msg, args)
	}

	_ = d.srv.SendNotificationToClient(d.ctx, "notifications/message", map[string]any{
		"level": level,
		"data":  data,
	})
}

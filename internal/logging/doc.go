// Package logging provides structured logging utilities for the gmail-mcp server.
//
// This package centralizes logging patterns to ensure consistent, structured logging
// throughout the codebase using the standard library's slog package.
//
// # Key Features
//
//   - Structured logging with slog
//   - Consistent attribute naming across the codebase
//   - Logger adapter interface for flexibility
//   - DualLogger: per-invocation fan-out to the MCP client
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithTool(slog.Default(), "search_emails")
//	logger.Info("searching emails", logging.KeyQuery, query)
//
// Inside a tool handler, log to both the local sink and the MCP client:
//
//	logger := logging.NewDualLogger(ctx, nil)
//	logger.Info("search results saved", logging.KeyPath, path)
//
// Client delivery is best effort; outside of an MCP session the DualLogger
// degrades to plain slog logging.
package logging

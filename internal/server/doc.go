// Package server provides the MCP server context and the Prometheus
// metrics server for the gmail-mcp application.
//
// ServerContext owns the process-wide state: the authenticated Gmail
// client, the artifact store for materialized files, the loaded settings,
// and the metrics recorder. Everything is initialized once at startup and
// read-only thereafter; Shutdown tears down the artifact directory and
// cancels the server context.
package server

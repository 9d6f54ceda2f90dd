// Package instrumentation provides OpenTelemetry metrics for the Gmail
// MCP server.
//
// Metrics are exported via a Prometheus reader and served by the metrics
// HTTP server. Tool invocations and Gmail API operations are recorded
// with low-cardinality labels only; per-account labels are opt-in.
package instrumentation

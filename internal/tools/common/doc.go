// Package common provides shared helpers for MCP tool handlers, most
// notably the instrumented handler wrapper that records per-tool metrics.
package common

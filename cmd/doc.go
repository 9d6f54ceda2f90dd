// Package cmd implements the command-line interface for gmail-mcp.
//
// This package provides the following commands:
//   - serve: Start the MCP server exposing Gmail tools and resources
//   - version: Display version information
//
// The serve command is the default command when no subcommand is specified.
package cmd

// Package format shapes Gmail messages into the output forms the tools
// return: validated search dates, projected field blocks, and markdown
// documents for single messages, threads, and search result sets.
//
// All rendering is deterministic. Field projection follows a canonical
// order regardless of the order fields were requested in, header fallbacks
// are fixed ("Unknown", "No Subject", "Unknown Date"), and date headers
// are reformatted to local time with raw passthrough when parsing fails.
package format

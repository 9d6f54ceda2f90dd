// Package gmail_tools implements the MCP tool façade over the Gmail
// client: drafting and sending mail, structured and raw search, batch
// message retrieval, thread download, label management, and attachment
// listing/download.
//
// Large results (full emails, threads, search result sets, attachment
// content) are materialized into the artifact store and returned as file
// paths instead of inline content, keeping tool responses compact.
package gmail_tools

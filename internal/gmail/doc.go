// Package gmail provides a client for interacting with the Gmail API.
//
// This package offers the mailbox operations backing the MCP tools:
//   - Message and thread retrieval
//   - Paginated search over Gmail query strings, built from structured
//     filters (SearchFilter) or raw queries
//   - Label listing and modification
//   - Draft creation and email sending (RFC 2822 assembly, RFC 2047
//     subject encoding)
//   - Attachment discovery and size-capped download
//   - MIME part-tree walking and plain-text body extraction
//
// Authentication is a single on-disk OAuth credential/token pair loaded at
// startup (see auth.go). There is no interactive flow in server mode;
// missing or unusable credentials fail startup with an error naming the
// file the operator has to provide. Refreshed access tokens are written
// back to the token file.
//
// Example usage:
//
//	ctx := context.Background()
//	client, err := gmail.NewClient(ctx, settings)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	filter := gmail.SearchFilter{FromEmail: "alice@example.com"}
//	query, err := filter.Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	refs, err := client.ListMessages(query, 10)
//	if err != nil {
//	    log.Fatal(err)
//	}
package gmail

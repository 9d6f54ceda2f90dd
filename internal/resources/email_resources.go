// Package resources registers the MCP resources exposed by the server.
//
// Emails and threads are addressable as templated resources so clients
// can read them directly by id without going through a tool call:
//
//	gmail://messages/{message_id}
//	gmail://threads/{thread_id}
//
// Both render the same markdown documents the download tools write to
// the artifact store.
package resources

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mailfold/gmail-mcp/internal/format"
	"github.com/mailfold/gmail-mcp/internal/gmail"
	"github.com/mailfold/gmail-mcp/internal/server"
)

const (
	messageURIPrefix = "gmail://messages/"
	threadURIPrefix  = "gmail://threads/"
)

// RegisterEmailResources registers the templated email and thread resources.
func RegisterEmailResources(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	messageTemplate := mcp.NewResourceTemplate(
		"gmail://messages/{message_id}",
		"Email Message",
		mcp.WithTemplateDescription("A single email message rendered as markdown with metadata and body"),
		mcp.WithTemplateMIMEType("text/markdown"),
	)

	s.AddResourceTemplate(messageTemplate, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return handleMessageResource(ctx, request, sc)
	})

	threadTemplate := mcp.NewResourceTemplate(
		"gmail://threads/{thread_id}",
		"Email Thread",
		mcp.WithTemplateDescription("A full email thread rendered as markdown, one section per message"),
		mcp.WithTemplateMIMEType("text/markdown"),
	)

	s.AddResourceTemplate(threadTemplate, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return handleThreadResource(ctx, request, sc)
	})

	return nil
}

// idFromURI extracts the trailing id from a resource URI with the given
// prefix. Returns an empty string when the URI does not match.
func idFromURI(uri, prefix string) string {
	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	return strings.TrimPrefix(uri, prefix)
}

func handleMessageResource(ctx context.Context, request mcp.ReadResourceRequest, sc *server.ServerContext) ([]mcp.ResourceContents, error) {
	messageID := idFromURI(request.Params.URI, messageURIPrefix)
	if messageID == "" {
		return nil, fmt.Errorf("invalid message resource URI: %s", request.Params.URI)
	}

	msg, err := sc.GmailClient().GetMessage(messageID)
	if err != nil {
		return nil, fmt.Errorf("failed to get message %s: %w", messageID, err)
	}

	markdown := format.EmailMarkdown(msg, messageID, gmail.ExtractBody(msg))

	return []mcp.ResourceContents{
		&mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "text/markdown",
			Text:     markdown,
		},
	}, nil
}

func handleThreadResource(ctx context.Context, request mcp.ReadResourceRequest, sc *server.ServerContext) ([]mcp.ResourceContents, error) {
	threadID := idFromURI(request.Params.URI, threadURIPrefix)
	if threadID == "" {
		return nil, fmt.Errorf("invalid thread resource URI: %s", request.Params.URI)
	}

	thread, err := sc.GmailClient().GetThread(threadID)
	if err != nil {
		return nil, fmt.Errorf("failed to get thread %s: %w", threadID, err)
	}

	messages := make([]format.MessageWithBody, 0, len(thread.Messages))
	for _, msg := range thread.Messages {
		messages = append(messages, format.MessageWithBody{Message: msg, Body: gmail.ExtractBody(msg)})
	}

	markdown := format.ThreadMarkdown(threadID, messages)

	return []mcp.ResourceContents{
		&mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "text/markdown",
			Text:     markdown,
		},
	}, nil
}

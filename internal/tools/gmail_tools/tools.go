package gmail_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mailfold/gmail-mcp/internal/server"
	"github.com/mailfold/gmail-mcp/internal/tools/common"
)

// RegisterGmailTools registers all Gmail tools with the MCP server. When
// readOnly is set, tools that mutate the mailbox (create_draft,
// send_email, add_label, remove_label) are not registered.
func RegisterGmailTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	if err := RegisterSearchTools(s, sc); err != nil {
		return fmt.Errorf("failed to register search tools: %w", err)
	}

	if err := RegisterAttachmentTools(s, sc); err != nil {
		return fmt.Errorf("failed to register attachment tools: %w", err)
	}

	if err := RegisterLabelTools(s, sc, readOnly); err != nil {
		return fmt.Errorf("failed to register label tools: %w", err)
	}

	if err := RegisterEmailTools(s, sc, readOnly); err != nil {
		return fmt.Errorf("failed to register email tools: %w", err)
	}

	return nil
}

// RegisterEmailTools registers the draft and send tools. Both mutate the
// mailbox and are skipped in read-only mode.
func RegisterEmailTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	if readOnly {
		return nil
	}

	createDraftTool := mcp.NewTool("create_draft",
		mcp.WithDescription("Create a new email draft"),
		mcp.WithString("to",
			mcp.Required(),
			mcp.Description("Recipient email address"),
		),
		mcp.WithString("subject",
			mcp.Required(),
			mcp.Description("Email subject line"),
		),
		mcp.WithString("body",
			mcp.Required(),
			mcp.Description("Email body content (plain text)"),
		),
		mcp.WithString("cc",
			mcp.Description("Carbon copy recipients (comma-separated if multiple)"),
		),
		mcp.WithString("bcc",
			mcp.Description("Blind carbon copy recipients (comma-separated if multiple)"),
		),
	)

	s.AddTool(createDraftTool, common.InstrumentedToolHandlerWithOperation("create_draft", "draft", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleCreateDraft(ctx, request, sc)
		}))

	sendEmailTool := mcp.NewTool("send_email",
		mcp.WithDescription("Compose and send an email"),
		mcp.WithString("to",
			mcp.Required(),
			mcp.Description("Recipient email address"),
		),
		mcp.WithString("subject",
			mcp.Required(),
			mcp.Description("Email subject line"),
		),
		mcp.WithString("body",
			mcp.Required(),
			mcp.Description("Email body content (plain text)"),
		),
		mcp.WithString("cc",
			mcp.Description("Carbon copy recipients (comma-separated if multiple)"),
		),
		mcp.WithString("bcc",
			mcp.Description("Blind carbon copy recipients (comma-separated if multiple)"),
		),
	)

	s.AddTool(sendEmailTool, common.InstrumentedToolHandlerWithOperation("send_email", "send", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleSendEmail(ctx, request, sc)
		}))

	return nil
}

// RegisterSearchTools registers the read-only retrieval tools:
// search_emails, get_emails and get_thread.
func RegisterSearchTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	searchEmailsTool := mcp.NewTool("search_emails",
		mcp.WithDescription("Search for emails and download the results to a markdown file. Use either the structured filters OR gmail_query, not both."),
		mcp.WithString("from_email",
			mcp.Description("Filter by sender email address"),
		),
		mcp.WithString("to_email",
			mcp.Description("Filter by recipient email address"),
		),
		mcp.WithString("subject",
			mcp.Description("Filter by subject text (partial match)"),
		),
		mcp.WithBoolean("has_attachment",
			mcp.Description("Filter for emails with attachments"),
		),
		mcp.WithString("read_status",
			mcp.Description("Filter by read status: 'read' or 'unread'"),
		),
		mcp.WithString("after_date",
			mcp.Description("Filter for emails after this date (format: YYYY/MM/DD)"),
		),
		mcp.WithString("before_date",
			mcp.Description("Filter for emails before this date (format: YYYY/MM/DD)"),
		),
		mcp.WithString("label",
			mcp.Description("Filter by Gmail label name or ID"),
		),
		mcp.WithBoolean("is_starred",
			mcp.Description("Filter for starred emails"),
		),
		mcp.WithBoolean("is_important",
			mcp.Description("Filter for important emails"),
		),
		mcp.WithBoolean("in_trash",
			mcp.Description("Search in the trash instead of the mailbox"),
		),
		mcp.WithString("gmail_query",
			mcp.Description("Raw Gmail search query (e.g., 'is:read from:github.com subject:PR')"),
		),
		mcp.WithNumber("max_results",
			mcp.Description("Maximum number of results to return (default: 10)"),
		),
	)

	s.AddTool(searchEmailsTool, common.InstrumentedToolHandlerWithOperation("search_emails", "list", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleSearchEmails(ctx, request, sc)
		}))

	getEmailsTool := mcp.NewTool("get_emails",
		mcp.WithDescription("Retrieve one or more emails by ID. Each email is rendered with the requested fields and saved to a markdown file."),
		mcp.WithString("message_ids",
			mcp.Required(),
			mcp.Description("Message ID (string) or array of message IDs"),
		),
		mcp.WithString("fields",
			mcp.Description("Field name (string) or array of field names to render: id, thread_id, subject, from, to, date, body_preview, body, labels, has_attachments, web_url, or 'all' (default: id, subject, from, date)"),
		),
	)

	s.AddTool(getEmailsTool, common.InstrumentedToolHandlerWithOperation("get_emails", "get", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetEmails(ctx, request, sc)
		}))

	getThreadTool := mcp.NewTool("get_thread",
		mcp.WithDescription("Download an email thread to a markdown file"),
		mcp.WithString("thread_id",
			mcp.Required(),
			mcp.Description("The Gmail thread ID"),
		),
	)

	s.AddTool(getThreadTool, common.InstrumentedToolHandlerWithOperation("get_thread", "get", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetThread(ctx, request, sc)
		}))

	return nil
}

// marshalResult renders a tool result value as indented JSON.
func marshalResult(v interface{}) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format output: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

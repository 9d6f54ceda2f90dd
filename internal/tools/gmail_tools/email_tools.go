package gmail_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mailfold/gmail-mcp/internal/format"
	"github.com/mailfold/gmail-mcp/internal/gmail"
	"github.com/mailfold/gmail-mcp/internal/logging"
	"github.com/mailfold/gmail-mcp/internal/server"
)

// parseOutgoingMessage extracts the compose parameters shared by
// create_draft and send_email.
func parseOutgoingMessage(args map[string]interface{}) (*gmail.OutgoingMessage, string) {
	to, ok := args["to"].(string)
	if !ok || to == "" {
		return nil, "to is required"
	}
	subject, ok := args["subject"].(string)
	if !ok || subject == "" {
		return nil, "subject is required"
	}
	body, ok := args["body"].(string)
	if !ok || body == "" {
		return nil, "body is required"
	}

	msg := &gmail.OutgoingMessage{
		To:      to,
		Subject: subject,
		Body:    body,
	}
	if cc, ok := args["cc"].(string); ok {
		msg.Cc = cc
	}
	if bcc, ok := args["bcc"].(string); ok {
		msg.Bcc = bcc
	}

	return msg, ""
}

func handleCreateDraft(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	logger := logging.NewDualLogger(ctx, nil)

	msg, errMsg := parseOutgoingMessage(request.GetArguments())
	if errMsg != "" {
		return mcp.NewToolResultError(errMsg), nil
	}

	logger.Info("creating draft", logging.KeyTool, "create_draft")

	draft, err := sc.GmailClient().CreateDraft(msg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create draft: %v", err)), nil
	}

	logger.Info("draft created", "draft_id", draft.Id)

	return marshalResult(DraftCreatedResult{
		DraftID:     draft.Id,
		To:          msg.To,
		Subject:     msg.Subject,
		BodyPreview: format.BodyPreview(msg.Body),
		Cc:          msg.Cc,
		Bcc:         msg.Bcc,
	})
}

func handleSendEmail(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	logger := logging.NewDualLogger(ctx, nil)

	msg, errMsg := parseOutgoingMessage(request.GetArguments())
	if errMsg != "" {
		return mcp.NewToolResultError(errMsg), nil
	}

	logger.Info("sending email", logging.KeyTool, "send_email")

	sent, err := sc.GmailClient().SendEmail(msg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to send email: %v", err)), nil
	}

	logger.Info("email sent", logging.KeyMessageID, sent.Id)

	return marshalResult(EmailSentResult{
		MessageID:   sent.Id,
		To:          msg.To,
		Subject:     msg.Subject,
		BodyPreview: format.BodyPreview(msg.Body),
		Cc:          msg.Cc,
		Bcc:         msg.Bcc,
	})
}

package gmail_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mailfold/gmail-mcp/internal/gmail"
	"github.com/mailfold/gmail-mcp/internal/logging"
	"github.com/mailfold/gmail-mcp/internal/server"
	"github.com/mailfold/gmail-mcp/internal/tools/common"
)

// RegisterLabelTools registers the label tools. list_labels is read-only;
// add_label and remove_label mutate the mailbox and are skipped in
// read-only mode.
func RegisterLabelTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	listLabelsTool := mcp.NewTool("list_labels",
		mcp.WithDescription("List all Gmail labels for the user"),
	)

	s.AddTool(listLabelsTool, common.InstrumentedToolHandlerWithOperation("list_labels", "list", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListLabels(ctx, request, sc)
		}))

	if readOnly {
		return nil
	}

	addLabelTool := mcp.NewTool("add_label",
		mcp.WithDescription("Add a label to an email message. Common operations: add 'INBOX' to unarchive, 'UNREAD' to mark unread, 'STARRED' to star, 'TRASH' to move to trash."),
		mcp.WithString("message_id",
			mcp.Required(),
			mcp.Description("The Gmail message ID"),
		),
		mcp.WithString("label_id",
			mcp.Required(),
			mcp.Description("Gmail label ID to add. Common: INBOX, UNREAD, STARRED, IMPORTANT, SPAM, TRASH"),
		),
	)

	s.AddTool(addLabelTool, common.InstrumentedToolHandlerWithOperation("add_label", "modify", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleModifyLabel(ctx, request, sc, "added")
		}))

	removeLabelTool := mcp.NewTool("remove_label",
		mcp.WithDescription("Remove a label from an email message. Common operations: remove 'INBOX' to archive, 'UNREAD' to mark read, 'STARRED' to unstar."),
		mcp.WithString("message_id",
			mcp.Required(),
			mcp.Description("The Gmail message ID"),
		),
		mcp.WithString("label_id",
			mcp.Required(),
			mcp.Description("Gmail label ID to remove. Common: INBOX, UNREAD, STARRED, SPAM, TRASH"),
		),
	)

	s.AddTool(removeLabelTool, common.InstrumentedToolHandlerWithOperation("remove_label", "modify", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleModifyLabel(ctx, request, sc, "removed")
		}))

	return nil
}

func handleListLabels(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	logger := logging.NewDualLogger(ctx, nil)
	logger.Info("listing labels", logging.KeyTool, "list_labels")

	labels, err := sc.GmailClient().ListLabels()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list labels: %v", err)), nil
	}

	results := make([]LabelInfo, 0, len(labels))
	for _, label := range labels {
		labelType := label.Type
		if labelType == "" {
			labelType = "user"
		}
		results = append(results, LabelInfo{
			ID:                    label.Id,
			Name:                  label.Name,
			Type:                  labelType,
			MessageListVisibility: label.MessageListVisibility,
			LabelListVisibility:   label.LabelListVisibility,
		})
	}

	logger.Info("labels listed", "count", len(results))

	return marshalResult(results)
}

// handleModifyLabel implements both add_label and remove_label; operation
// is "added" or "removed".
func handleModifyLabel(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext, operation string) (*mcp.CallToolResult, error) {
	logger := logging.NewDualLogger(ctx, nil)
	args := request.GetArguments()

	messageID, ok := args["message_id"].(string)
	if !ok || messageID == "" {
		return mcp.NewToolResultError("message_id is required"), nil
	}
	labelID, ok := args["label_id"].(string)
	if !ok || labelID == "" {
		return mcp.NewToolResultError("label_id is required"), nil
	}

	var addIDs, removeIDs []string
	if operation == "added" {
		addIDs = []string{labelID}
	} else {
		removeIDs = []string{labelID}
	}

	logger.Info("modifying labels", logging.KeyMessageID, messageID, "label_id", labelID, logging.KeyOperation, operation)

	if _, err := sc.GmailClient().ModifyMessageLabels(messageID, addIDs, removeIDs); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to modify labels: %v", err)), nil
	}

	// Re-fetch for the subject so the confirmation names the message
	msg, err := sc.GmailClient().GetMessage(messageID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get message %s: %v", messageID, err)), nil
	}
	subject := gmail.HeaderValue(msg, "Subject")
	if subject == "" {
		subject = "No Subject"
	}

	return marshalResult(LabelOperationResult{
		MessageID: messageID,
		Subject:   subject,
		LabelName: resolveLabelName(sc, labelID),
		LabelID:   labelID,
		Operation: operation,
	})
}

// resolveLabelName maps a label id to its display name, falling back to
// the id when the lookup fails.
func resolveLabelName(sc *server.ServerContext, labelID string) string {
	labels, err := sc.GmailClient().ListLabels()
	if err != nil {
		return labelID
	}
	for _, label := range labels {
		if label.Id == labelID {
			if label.Name != "" {
				return label.Name
			}
			break
		}
	}
	return labelID
}

package gmail_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mailfold/gmail-mcp/internal/logging"
	"github.com/mailfold/gmail-mcp/internal/server"
	"github.com/mailfold/gmail-mcp/internal/tools/common"
)

// RegisterAttachmentTools registers the attachment tools. Both only read
// the mailbox; download_attachment writes into the local artifact store.
func RegisterAttachmentTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	listAttachmentsTool := mcp.NewTool("list_attachments",
		mcp.WithDescription("List all attachments in an email message"),
		mcp.WithString("message_id",
			mcp.Required(),
			mcp.Description("The Gmail message ID"),
		),
	)

	s.AddTool(listAttachmentsTool, common.InstrumentedToolHandlerWithOperation("list_attachments", "get", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListAttachments(ctx, request, sc)
		}))

	downloadAttachmentTool := mcp.NewTool("download_attachment",
		mcp.WithDescription("Download an email attachment to temporary storage and return the file path. Use list_attachments first to get the attachment_id and original filename."),
		mcp.WithString("message_id",
			mcp.Required(),
			mcp.Description("The Gmail message ID"),
		),
		mcp.WithString("attachment_id",
			mcp.Required(),
			mcp.Description("The attachment ID from list_attachments"),
		),
		mcp.WithString("filename",
			mcp.Required(),
			mcp.Description("Filename to save as (will be sanitized)"),
		),
	)

	s.AddTool(downloadAttachmentTool, common.InstrumentedToolHandlerWithOperation("download_attachment", "attachment", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleDownloadAttachment(ctx, request, sc)
		}))

	return nil
}

func handleListAttachments(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	logger := logging.NewDualLogger(ctx, nil)
	args := request.GetArguments()

	messageID, ok := args["message_id"].(string)
	if !ok || messageID == "" {
		return mcp.NewToolResultError("message_id is required"), nil
	}

	logger.Info("listing attachments", logging.KeyMessageID, messageID)

	attachments, err := sc.GmailClient().ListAttachments(messageID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list attachments: %v", err)), nil
	}

	logger.Info("attachments listed", "count", len(attachments))

	return marshalResult(attachments)
}

func handleDownloadAttachment(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	logger := logging.NewDualLogger(ctx, nil)
	args := request.GetArguments()

	messageID, ok := args["message_id"].(string)
	if !ok || messageID == "" {
		return mcp.NewToolResultError("message_id is required"), nil
	}
	attachmentID, ok := args["attachment_id"].(string)
	if !ok || attachmentID == "" {
		return mcp.NewToolResultError("attachment_id is required"), nil
	}
	filename, ok := args["filename"].(string)
	if !ok || filename == "" {
		return mcp.NewToolResultError("filename is required"), nil
	}

	logger.Info("downloading attachment", logging.KeyMessageID, messageID, "attachment_id", attachmentID)

	data, err := sc.GmailClient().GetAttachment(messageID, attachmentID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to download attachment: %v", err)), nil
	}

	handle, err := sc.Store().WriteBytes(filename, data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to save attachment: %v", err)), nil
	}

	// Re-resolve the attachment metadata so the response carries the
	// original filename and MIME type.
	resultFilename := filename
	mimeType := "application/octet-stream"
	if attachments, err := sc.GmailClient().ListAttachments(messageID); err == nil {
		for _, att := range attachments {
			if att.AttachmentID == attachmentID {
				resultFilename = att.Filename
				mimeType = att.MimeType
				break
			}
		}
	}

	logger.Info("attachment saved", logging.KeyPath, handle.Path)

	return marshalResult(DownloadedAttachment{
		Path:         handle.Path,
		Filename:     resultFilename,
		SizeBytes:    handle.Size,
		MimeType:     mimeType,
		MessageID:    messageID,
		AttachmentID: attachmentID,
	})
}

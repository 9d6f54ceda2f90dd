package gmail

import (
	"encoding/base64"
	"fmt"

	gmail "google.golang.org/api/gmail/v1"
)

// MaxAttachmentSize defines the maximum attachment size in bytes (25MB)
const MaxAttachmentSize = 25 * 1024 * 1024

// AttachmentInfo represents an attachment's metadata.
type AttachmentInfo struct {
	Filename     string `json:"filename"`
	AttachmentID string `json:"attachment_id"`
	MimeType     string `json:"mime_type"`
	SizeBytes    int64  `json:"size_bytes"`
}

// FindAttachments discovers all attachments in a message by recursive
// traversal of its part tree. Single-part messages whose payload itself
// carries a filename are handled as well.
func FindAttachments(msg *gmail.Message) []AttachmentInfo {
	if msg == nil || msg.Payload == nil {
		return nil
	}

	var attachments []AttachmentInfo
	collect := func(part *gmail.MessagePart) {
		if part.Filename != "" && part.Body != nil && part.Body.AttachmentId != "" {
			mimeType := part.MimeType
			if mimeType == "" {
				mimeType = "application/octet-stream"
			}
			attachments = append(attachments, AttachmentInfo{
				Filename:     part.Filename,
				AttachmentID: part.Body.AttachmentId,
				MimeType:     mimeType,
				SizeBytes:    part.Body.Size,
			})
		}
	}

	if len(msg.Payload.Parts) == 0 {
		collect(msg.Payload)
		return attachments
	}

	for _, part := range msg.Payload.Parts {
		walkParts(part, collect)
	}

	return attachments
}

// ListAttachments fetches a message and extracts its attachment metadata.
func (c *Client) ListAttachments(messageID string) ([]AttachmentInfo, error) {
	msg, err := c.GetMessage(messageID)
	if err != nil {
		return nil, err
	}
	return FindAttachments(msg), nil
}

// GetAttachment downloads and decodes the content of an attachment.
func (c *Client) GetAttachment(messageID, attachmentID string) ([]byte, error) {
	if messageID == "" {
		return nil, fmt.Errorf("%w: messageID is required", ErrInvalidArgument)
	}
	if attachmentID == "" {
		return nil, fmt.Errorf("%w: attachmentID is required", ErrInvalidArgument)
	}

	attachment, err := c.svc.Messages.Attachments.Get(c.userID, messageID, attachmentID).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get attachment %s: %w", attachmentID, err)
	}

	if attachment.Size > MaxAttachmentSize {
		return nil, fmt.Errorf("attachment size %d exceeds maximum size %d", attachment.Size, MaxAttachmentSize)
	}

	// Gmail API uses RFC 4648 base64url encoding
	data, err := base64.URLEncoding.DecodeString(attachment.Data)
	if err != nil {
		data, err = base64.StdEncoding.DecodeString(attachment.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode attachment data: %w", err)
		}
	}

	return data, nil
}

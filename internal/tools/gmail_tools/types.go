package gmail_tools

import (
	"github.com/mailfold/gmail-mcp/internal/format"
)

// DraftCreatedResult is returned by the create_draft tool.
type DraftCreatedResult struct {
	DraftID     string `json:"draft_id"`
	To          string `json:"to"`
	Subject     string `json:"subject"`
	BodyPreview string `json:"body_preview"`
	Cc          string `json:"cc,omitempty"`
	Bcc         string `json:"bcc,omitempty"`
}

// EmailSentResult is returned by the send_email tool.
type EmailSentResult struct {
	MessageID   string `json:"message_id"`
	To          string `json:"to"`
	Subject     string `json:"subject"`
	BodyPreview string `json:"body_preview"`
	Cc          string `json:"cc,omitempty"`
	Bcc         string `json:"bcc,omitempty"`
}

// SearchResult is returned by the search_emails tool. The full rendering
// of every match lives in the file at Path; the metadata list is the
// compact inline summary.
type SearchResult struct {
	Path         string                 `json:"path"`
	SizeBytes    int64                  `json:"size_bytes"`
	MatchCount   int                    `json:"match_count"`
	Query        string                 `json:"query"`
	MetadataList []format.EmailMetadata `json:"metadata_list"`
}

// EmailDownloadResult describes one email materialized to a file.
type EmailDownloadResult struct {
	Path      string               `json:"path"`
	SizeBytes int64                `json:"size_bytes"`
	Metadata  format.EmailMetadata `json:"metadata"`
}

// ThreadDownloadResult is returned by the get_thread tool.
type ThreadDownloadResult struct {
	Path         string `json:"path"`
	SizeBytes    int64  `json:"size_bytes"`
	MessageCount int    `json:"message_count"`
	ThreadID     string `json:"thread_id"`
	Subject      string `json:"subject"`
	DateRange    string `json:"date_range"`
}

// LabelInfo describes a Gmail label.
type LabelInfo struct {
	ID                    string `json:"id"`
	Name                  string `json:"name"`
	Type                  string `json:"type"`
	MessageListVisibility string `json:"message_list_visibility,omitempty"`
	LabelListVisibility   string `json:"label_list_visibility,omitempty"`
}

// LabelOperationResult is returned by the add_label and remove_label tools.
type LabelOperationResult struct {
	MessageID string `json:"message_id"`
	Subject   string `json:"subject"`
	LabelName string `json:"label_name"`
	LabelID   string `json:"label_id"`
	Operation string `json:"operation"` // "added" or "removed"
}

// DownloadedAttachment is returned by the download_attachment tool.
type DownloadedAttachment struct {
	Path         string `json:"path"`
	Filename     string `json:"filename"`
	SizeBytes    int64  `json:"size_bytes"`
	MimeType     string `json:"mime_type"`
	MessageID    string `json:"message_id"`
	AttachmentID string `json:"attachment_id"`
}

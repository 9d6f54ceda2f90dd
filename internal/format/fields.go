package format

import (
	"fmt"
	"strings"

	gmail_v1 "google.golang.org/api/gmail/v1"

	"github.com/mailfold/gmail-mcp/internal/gmail"
)

// EmailPreviewLength is the number of body characters included in
// preview-style output before truncation.
const EmailPreviewLength = 200

// Field names a renderable attribute of a message.
type Field string

const (
	FieldID             Field = "id"
	FieldThreadID       Field = "thread_id"
	FieldSubject        Field = "subject"
	FieldFrom           Field = "from"
	FieldTo             Field = "to"
	FieldDate           Field = "date"
	FieldBodyPreview    Field = "body_preview"
	FieldBody           Field = "body"
	FieldLabels         Field = "labels"
	FieldHasAttachments Field = "has_attachments"
	FieldWebURL         Field = "web_url"
)

// AllFieldsSentinel expands to the full field enumeration.
const AllFieldsSentinel = "all"

// canonicalOrder is the fixed rendering order for projected fields,
// independent of the order the caller requested them in.
var canonicalOrder = []Field{
	FieldID,
	FieldThreadID,
	FieldSubject,
	FieldFrom,
	FieldTo,
	FieldDate,
	FieldBodyPreview,
	FieldBody,
	FieldLabels,
	FieldHasAttachments,
	FieldWebURL,
}

// defaultFields is used when a requested set is empty after dropping
// unknown names.
var defaultFields = []Field{FieldID, FieldSubject, FieldFrom, FieldDate}

// ParseFieldSet resolves requested field names into a set of known fields.
// Unknown names are dropped silently, the "all" sentinel expands to the
// full enumeration, and an empty result falls back to the default set
// {id, subject, from, date}.
func ParseFieldSet(names []string) map[Field]bool {
	set := make(map[Field]bool)
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == AllFieldsSentinel {
			for _, f := range canonicalOrder {
				set[f] = true
			}
			return set
		}
		for _, f := range canonicalOrder {
			if name == string(f) {
				set[f] = true
			}
		}
	}

	if len(set) == 0 {
		for _, f := range defaultFields {
			set[f] = true
		}
	}

	return set
}

// WebURL builds the Gmail web interface deep link for a message in the
// primary account.
func WebURL(messageID string) string {
	return fmt.Sprintf("https://mail.google.com/mail/u/0/#all/%s", messageID)
}

// EmailMetadata is the core renderable metadata of a message.
type EmailMetadata struct {
	ID             string   `json:"id"`
	ThreadID       string   `json:"thread_id"`
	Subject        string   `json:"subject"`
	From           string   `json:"from"`
	To             string   `json:"to"`
	Date           string   `json:"date"`
	Labels         []string `json:"labels"`
	HasAttachments bool     `json:"has_attachments"`
	WebURL         string   `json:"web_url"`
}

// BuildEmailMetadata extracts metadata from a message, applying the fixed
// header fallbacks and date reformatting.
func BuildEmailMetadata(msg *gmail_v1.Message, messageID string) EmailMetadata {
	headers := gmail.Headers(msg)

	threadID := ""
	var labels []string
	if msg != nil {
		threadID = msg.ThreadId
		labels = msg.LabelIds
	}

	return EmailMetadata{
		ID:             messageID,
		ThreadID:       threadID,
		Subject:        headerOr(headers, "Subject", "No Subject"),
		From:           headerOr(headers, "From", "Unknown"),
		To:             headerOr(headers, "To", "Unknown"),
		Date:           FormatEmailDate(headerOr(headers, "Date", "Unknown Date")),
		Labels:         labels,
		HasAttachments: gmail.HasAttachments(msg),
		WebURL:         WebURL(messageID),
	}
}

// RenderFields projects a message into a block of labeled lines, one per
// requested field, in canonical enumeration order. The body field renders
// last among the lines it follows, preceded by a blank line and a header
// line.
func RenderFields(msg *gmail_v1.Message, messageID string, fields map[Field]bool) string {
	meta := BuildEmailMetadata(msg, messageID)
	body := gmail.ExtractBody(msg)

	var b strings.Builder
	for _, f := range canonicalOrder {
		if !fields[f] {
			continue
		}
		switch f {
		case FieldID:
			fmt.Fprintf(&b, "ID: %s\n", meta.ID)
		case FieldThreadID:
			fmt.Fprintf(&b, "Thread ID: %s\n", meta.ThreadID)
		case FieldSubject:
			fmt.Fprintf(&b, "Subject: %s\n", meta.Subject)
		case FieldFrom:
			fmt.Fprintf(&b, "From: %s\n", meta.From)
		case FieldTo:
			fmt.Fprintf(&b, "To: %s\n", meta.To)
		case FieldDate:
			fmt.Fprintf(&b, "Date: %s\n", meta.Date)
		case FieldBodyPreview:
			fmt.Fprintf(&b, "Body Preview: %s\n", BodyPreview(body))
		case FieldBody:
			fmt.Fprintf(&b, "\nBody:\n%s\n", body)
		case FieldLabels:
			if len(meta.Labels) > 0 {
				fmt.Fprintf(&b, "Labels: %s\n", strings.Join(meta.Labels, ", "))
			}
		case FieldHasAttachments:
			fmt.Fprintf(&b, "Has Attachments: %t\n", meta.HasAttachments)
		case FieldWebURL:
			fmt.Fprintf(&b, "Web URL: %s\n", meta.WebURL)
		}
	}

	return b.String()
}

// BodyPreview returns the first EmailPreviewLength characters of a body
// with newlines collapsed to spaces, appending an ellipsis when truncated.
func BodyPreview(body string) string {
	collapsed := strings.TrimSpace(strings.Join(strings.Fields(body), " "))
	runes := []rune(collapsed)
	if len(runes) > EmailPreviewLength {
		return string(runes[:EmailPreviewLength]) + "..."
	}
	return collapsed
}

func headerOr(headers map[string]string, name, fallback string) string {
	if v, ok := headers[name]; ok && v != "" {
		return v
	}
	return fallback
}

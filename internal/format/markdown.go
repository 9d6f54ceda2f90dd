package format

import (
	"fmt"
	"strings"

	gmail_v1 "google.golang.org/api/gmail/v1"

	"github.com/mailfold/gmail-mcp/internal/gmail"
)

// MessageWithBody pairs a message with its extracted plain-text body so a
// renderer never re-extracts.
type MessageWithBody struct {
	Message *gmail_v1.Message
	Body    string
}

// EmailMarkdown renders a single message as a markdown document: a title
// built from the subject, the full metadata block, and the body.
func EmailMarkdown(msg *gmail_v1.Message, messageID, body string) string {
	meta := BuildEmailMetadata(msg, messageID)

	return fmt.Sprintf(`# Email: %s

**Message ID:** %s
**Thread ID:** %s
**From:** %s
**To:** %s
**Date:** %s
**Labels:** %s
**Has Attachments:** %t
**Web URL:** %s

---

## Body

%s
`,
		meta.Subject,
		meta.ID,
		meta.ThreadID,
		meta.From,
		meta.To,
		meta.Date,
		strings.Join(meta.Labels, ", "),
		meta.HasAttachments,
		meta.WebURL,
		body,
	)
}

// ThreadMarkdown renders an email thread as a markdown document, one
// subsection per message in provider-returned order. An empty thread
// renders a stub noting that no messages were found.
func ThreadMarkdown(threadID string, messages []MessageWithBody) string {
	if len(messages) == 0 {
		return fmt.Sprintf("# Email Thread\n\n**Thread ID:** %s\n\nNo messages found.\n", threadID)
	}

	firstHeaders := gmail.Headers(messages[0].Message)
	subject := headerOr(firstHeaders, "Subject", "No Subject")

	var b strings.Builder
	fmt.Fprintf(&b, "# Email Thread: %s\n\n", subject)
	fmt.Fprintf(&b, "**Thread ID:** %s\n", threadID)
	fmt.Fprintf(&b, "**Message Count:** %d\n\n", len(messages))
	b.WriteString("---\n\n")

	for i, m := range messages {
		messageID := "unknown"
		if m.Message != nil && m.Message.Id != "" {
			messageID = m.Message.Id
		}
		headers := gmail.Headers(m.Message)

		fmt.Fprintf(&b, "## Message %d\n\n", i+1)
		fmt.Fprintf(&b, "**Message ID:** %s\n", messageID)
		fmt.Fprintf(&b, "**From:** %s\n", headerOr(headers, "From", "Unknown"))
		fmt.Fprintf(&b, "**To:** %s\n", headerOr(headers, "To", "Unknown"))
		fmt.Fprintf(&b, "**Date:** %s\n", FormatEmailDate(headerOr(headers, "Date", "Unknown Date")))
		fmt.Fprintf(&b, "**Subject:** %s\n\n", headerOr(headers, "Subject", "No Subject"))
		fmt.Fprintf(&b, "%s\n\n---\n\n", m.Body)
	}

	return b.String()
}

// SearchResultsMarkdown renders a search result set as a single markdown
// document: a header naming the query and the match count, then one
// numbered full email rendering per match.
func SearchResultsMarkdown(query string, messages []MessageWithBody) string {
	var b strings.Builder
	b.WriteString("# Gmail Search Results\n\n")
	fmt.Fprintf(&b, "**Query:** %s\n", query)
	fmt.Fprintf(&b, "**Results:** %d emails\n\n", len(messages))
	b.WriteString("---\n\n")

	for i, m := range messages {
		messageID := ""
		if m.Message != nil {
			messageID = m.Message.Id
		}
		fmt.Fprintf(&b, "## Email %d\n\n", i+1)
		b.WriteString(EmailMarkdown(m.Message, messageID, m.Body))
		b.WriteString("\n\n---\n\n")
	}

	return b.String()
}

// ThreadDateRange summarizes a thread's span as "first to last", or the
// single date for one-message threads. Dates come from the raw headers of
// the first and last messages in provider order.
func ThreadDateRange(messages []*gmail_v1.Message) string {
	if len(messages) == 0 {
		return "Unknown"
	}

	first := gmail.HeaderValue(messages[0], "Date")
	if first == "" {
		first = "Unknown"
	}
	if len(messages) == 1 {
		return first
	}

	last := gmail.HeaderValue(messages[len(messages)-1], "Date")
	if last == "" {
		last = "Unknown"
	}
	return fmt.Sprintf("%s to %s", first, last)
}

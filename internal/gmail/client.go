package gmail

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"strings"

	gmail "google.golang.org/api/gmail/v1"

	"github.com/mailfold/gmail-mcp/internal/config"
)

// Client wraps the Gmail Users service for a single mailbox. All calls are
// synchronous request/response against the Gmail API.
type Client struct {
	svc    *gmail.UsersService
	userID string
}

// NewClient authenticates with the Gmail API using the on-disk credential
// and token material from settings and returns a client bound to the
// configured user.
func NewClient(ctx context.Context, settings *config.Settings) (*Client, error) {
	svc, err := newService(ctx, settings)
	if err != nil {
		return nil, err
	}

	return &Client{
		svc:    svc.Users,
		userID: settings.UserID,
	}, nil
}

// UserID returns the Gmail user this client operates on.
func (c *Client) UserID() string {
	return c.userID
}

// GetProfile returns the authenticated user's Gmail profile.
func (c *Client) GetProfile() (*gmail.Profile, error) {
	profile, err := c.svc.GetProfile(c.userID).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// GetMessage retrieves a full Gmail message.
func (c *Client) GetMessage(messageID string) (*gmail.Message, error) {
	msg, err := c.svc.Messages.Get(c.userID, messageID).Format("full").Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get message %s: %w", messageID, err)
	}
	return msg, nil
}

// GetThread retrieves a full Gmail thread with all its messages.
func (c *Client) GetThread(threadID string) (*gmail.Thread, error) {
	thread, err := c.svc.Threads.Get(c.userID, threadID).Format("full").Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get thread %s: %w", threadID, err)
	}
	return thread, nil
}

// ListMessages lists messages matching the query with pagination. It will
// fetch up to maxResults message refs, making multiple API calls if
// necessary. An empty query matches everything.
func (c *Client) ListMessages(query string, maxResults int64) ([]*gmail.Message, error) {
	var all []*gmail.Message
	pageToken := ""

	for {
		remaining := maxResults - int64(len(all))
		if remaining <= 0 {
			break
		}

		// Gmail API caps page sizes at 100
		pageSize := remaining
		if pageSize > 100 {
			pageSize = 100
		}

		req := c.svc.Messages.List(c.userID).Q(query).MaxResults(pageSize)
		if pageToken != "" {
			req = req.PageToken(pageToken)
		}

		res, err := req.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list messages: %w", err)
		}

		all = append(all, res.Messages...)

		if res.NextPageToken == "" || int64(len(all)) >= maxResults {
			break
		}
		pageToken = res.NextPageToken
	}

	if int64(len(all)) > maxResults {
		all = all[:maxResults]
	}

	return all, nil
}

// ListLabels returns all labels for the user.
func (c *Client) ListLabels() ([]*gmail.Label, error) {
	res, err := c.svc.Labels.List(c.userID).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list labels: %w", err)
	}
	return res.Labels, nil
}

// ModifyMessageLabels adds and removes label ids on a message and returns
// the updated message.
func (c *Client) ModifyMessageLabels(messageID string, addLabelIDs, removeLabelIDs []string) (*gmail.Message, error) {
	msg, err := c.svc.Messages.Modify(c.userID, messageID, &gmail.ModifyMessageRequest{
		AddLabelIds:    addLabelIDs,
		RemoveLabelIds: removeLabelIDs,
	}).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to modify labels on message %s: %w", messageID, err)
	}
	return msg, nil
}

// OutgoingMessage describes an email to be drafted or sent.
type OutgoingMessage struct {
	To      string
	Subject string
	Body    string
	Cc      string
	Bcc     string
}

func (m *OutgoingMessage) validate() error {
	if m.To == "" {
		return fmt.Errorf("%w: recipient is required", ErrInvalidArgument)
	}
	if m.Subject == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidArgument)
	}
	if m.Body == "" {
		return fmt.Errorf("%w: body is required", ErrInvalidArgument)
	}
	return nil
}

// CreateDraft creates a draft email from the authenticated user's address.
func (c *Client) CreateDraft(msg *OutgoingMessage) (*gmail.Draft, error) {
	if err := msg.validate(); err != nil {
		return nil, err
	}

	sender, err := c.senderAddress()
	if err != nil {
		return nil, err
	}

	draft, err := c.svc.Drafts.Create(c.userID, &gmail.Draft{
		Message: &gmail.Message{Raw: encodeMessage(sender, msg)},
	}).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create draft: %w", err)
	}
	return draft, nil
}

// SendEmail composes and sends an email from the authenticated user's
// address, returning the sent message.
func (c *Client) SendEmail(msg *OutgoingMessage) (*gmail.Message, error) {
	if err := msg.validate(); err != nil {
		return nil, err
	}

	sender, err := c.senderAddress()
	if err != nil {
		return nil, err
	}

	sent, err := c.svc.Messages.Send(c.userID, &gmail.Message{Raw: encodeMessage(sender, msg)}).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to send email: %w", err)
	}
	return sent, nil
}

// senderAddress resolves the From address from the user's profile.
func (c *Client) senderAddress() (string, error) {
	profile, err := c.GetProfile()
	if err != nil {
		return "", err
	}
	return profile.EmailAddress, nil
}

// encodeMessage builds an RFC 2822 message and encodes it in the base64url
// form the Gmail API expects.
func encodeMessage(sender string, msg *OutgoingMessage) string {
	var b strings.Builder

	b.WriteString("From: ")
	b.WriteString(sender)
	b.WriteString("\r\n")

	b.WriteString("To: ")
	b.WriteString(msg.To)
	b.WriteString("\r\n")

	if msg.Cc != "" {
		b.WriteString("Cc: ")
		b.WriteString(msg.Cc)
		b.WriteString("\r\n")
	}
	if msg.Bcc != "" {
		b.WriteString("Bcc: ")
		b.WriteString(msg.Bcc)
		b.WriteString("\r\n")
	}

	b.WriteString("Subject: ")
	b.WriteString(encodeRFC2047(msg.Subject))
	b.WriteString("\r\n")

	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.Body)

	return base64.URLEncoding.EncodeToString([]byte(b.String()))
}

// encodeRFC2047 encodes a header value according to RFC 2047 when it
// contains non-ASCII characters (like umlauts in subjects).
func encodeRFC2047(s string) string {
	for _, r := range s {
		if r > 127 {
			return mime.BEncoding.Encode("UTF-8", s)
		}
	}
	return s
}

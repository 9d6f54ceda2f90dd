package gmail

import (
	"encoding/base64"
	"testing"

	gmail "google.golang.org/api/gmail/v1"
)

func b64url(s string) string {
	return base64.URLEncoding.EncodeToString([]byte(s))
}

func TestExtractBody(t *testing.T) {
	tests := []struct {
		name string
		msg  *gmail.Message
		want string
	}{
		{
			name: "nil message",
			msg:  nil,
			want: "",
		},
		{
			name: "single part message",
			msg: &gmail.Message{
				Payload: &gmail.MessagePart{
					MimeType: "text/plain",
					Body:     &gmail.MessagePartBody{Data: b64url("hello world")},
				},
			},
			want: "hello world",
		},
		{
			name: "plain and html parts return only plain",
			msg: &gmail.Message{
				Payload: &gmail.MessagePart{
					MimeType: "multipart/alternative",
					Parts: []*gmail.MessagePart{
						{MimeType: "text/plain", Body: &gmail.MessagePartBody{Data: b64url("plain body")}},
						{MimeType: "text/html", Body: &gmail.MessagePartBody{Data: b64url("<p>html body</p>")}},
					},
				},
			},
			want: "plain body",
		},
		{
			name: "html only message yields empty body",
			msg: &gmail.Message{
				Payload: &gmail.MessagePart{
					MimeType: "multipart/alternative",
					Parts: []*gmail.MessagePart{
						{MimeType: "text/html", Body: &gmail.MessagePartBody{Data: b64url("<p>html</p>")}},
					},
				},
			},
			want: "",
		},
		{
			name: "nested parts concatenate depth first left to right",
			msg: &gmail.Message{
				Payload: &gmail.MessagePart{
					MimeType: "multipart/mixed",
					Parts: []*gmail.MessagePart{
						{
							MimeType: "multipart/alternative",
							Parts: []*gmail.MessagePart{
								{MimeType: "text/plain", Body: &gmail.MessagePartBody{Data: b64url("first ")}},
							},
						},
						{MimeType: "text/plain", Body: &gmail.MessagePartBody{Data: b64url("second")}},
					},
				},
			},
			want: "first second",
		},
		{
			name: "standard base64 fallback",
			msg: &gmail.Message{
				Payload: &gmail.MessagePart{
					MimeType: "text/plain",
					Body:     &gmail.MessagePartBody{Data: base64.StdEncoding.EncodeToString([]byte("std encoded"))},
				},
			},
			want: "std encoded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractBody(tt.msg); got != tt.want {
				t.Errorf("ExtractBody() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHeaders(t *testing.T) {
	msg := &gmail.Message{
		Payload: &gmail.MessagePart{
			Headers: []*gmail.MessagePartHeader{
				{Name: "From", Value: "sender@example.com"},
				{Name: "Subject", Value: "Hello"},
			},
		},
	}

	headers := Headers(msg)
	if headers["From"] != "sender@example.com" {
		t.Errorf("Headers()[From] = %q", headers["From"])
	}
	if got := HeaderValue(msg, "Subject"); got != "Hello" {
		t.Errorf("HeaderValue(Subject) = %q", got)
	}
	if got := HeaderValue(msg, "To"); got != "" {
		t.Errorf("HeaderValue(To) = %q, want empty", got)
	}
}

func TestHasAttachments(t *testing.T) {
	tests := []struct {
		name string
		msg  *gmail.Message
		want bool
	}{
		{
			name: "no parts",
			msg:  &gmail.Message{Payload: &gmail.MessagePart{}},
			want: false,
		},
		{
			name: "part with filename",
			msg: &gmail.Message{
				Payload: &gmail.MessagePart{
					Parts: []*gmail.MessagePart{
						{MimeType: "text/plain"},
						{Filename: "report.pdf", MimeType: "application/pdf"},
					},
				},
			},
			want: true,
		},
		{
			// The metadata check is shallow: nested attachments are not seen
			name: "nested attachment is not detected",
			msg: &gmail.Message{
				Payload: &gmail.MessagePart{
					Parts: []*gmail.MessagePart{
						{
							MimeType: "multipart/mixed",
							Parts: []*gmail.MessagePart{
								{Filename: "deep.pdf"},
							},
						},
					},
				},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasAttachments(tt.msg); got != tt.want {
				t.Errorf("HasAttachments() = %v, want %v", got, tt.want)
			}
		})
	}
}

package gmail

import (
	"encoding/base64"
	"strings"

	gmail "google.golang.org/api/gmail/v1"
)

// Headers extracts a message's headers into a map. Header names keep the
// case the API delivered them in.
func Headers(msg *gmail.Message) map[string]string {
	headers := make(map[string]string)
	if msg == nil || msg.Payload == nil {
		return headers
	}
	for _, h := range msg.Payload.Headers {
		headers[h.Name] = h.Value
	}
	return headers
}

// HeaderValue returns the value of a named header, or the empty string.
func HeaderValue(msg *gmail.Message, name string) string {
	return Headers(msg)[name]
}

// ExtractBody returns the plain-text body of a message. A message payload
// is a tree of parts; the decoded data of every text/plain leaf is
// concatenated depth-first, left-to-right. Other leaf types are ignored, so
// HTML-only messages yield an empty body. Single-part messages are treated
// as one implicit leaf.
func ExtractBody(msg *gmail.Message) string {
	if msg == nil || msg.Payload == nil {
		return ""
	}

	if len(msg.Payload.Parts) == 0 {
		if msg.Payload.Body != nil && msg.Payload.Body.Data != "" {
			return decodePartData(msg.Payload.Body.Data)
		}
		return ""
	}

	var b strings.Builder
	var walk func(parts []*gmail.MessagePart)
	walk = func(parts []*gmail.MessagePart) {
		for _, part := range parts {
			if part.MimeType == "text/plain" && part.Body != nil && part.Body.Data != "" {
				b.WriteString(decodePartData(part.Body.Data))
			}
			if len(part.Parts) > 0 {
				walk(part.Parts)
			}
		}
	}
	walk(msg.Payload.Parts)

	return b.String()
}

// HasAttachments reports whether any of the message's immediate parts
// carries a filename. The scan is intentionally shallow, matching the
// metadata path of the original server; Gmail does not nest attachments
// below the top level for ordinary mail. ListAttachments recurses fully.
func HasAttachments(msg *gmail.Message) bool {
	if msg == nil || msg.Payload == nil {
		return false
	}
	for _, part := range msg.Payload.Parts {
		if part.Filename != "" {
			return true
		}
	}
	return false
}

// decodePartData decodes base64url-encoded part data (RFC 4648). Some
// clients produce standard base64; fall back to that before giving up.
func decodePartData(data string) string {
	decoded, err := base64.URLEncoding.DecodeString(data)
	if err != nil {
		decoded, err = base64.StdEncoding.DecodeString(data)
		if err != nil {
			return ""
		}
	}
	return string(decoded)
}

// walkParts recursively walks a message part and its descendants in
// depth-first order.
func walkParts(part *gmail.MessagePart, fn func(*gmail.MessagePart)) {
	if part == nil {
		return
	}

	fn(part)

	for _, subpart := range part.Parts {
		walkParts(subpart, fn)
	}
}

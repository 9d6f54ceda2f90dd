package format

import (
	"net/mail"
	"regexp"
	"time"
)

// datePattern matches the strict YYYY/MM/DD form accepted by Gmail's
// after:/before: search operators.
var datePattern = regexp.MustCompile(`^\d{4}/\d{2}/\d{2}$`)

// ValidDate reports whether a date string is usable as a search bound.
// Empty input is valid (no filter). Non-empty input must match YYYY/MM/DD
// and denote a real calendar date.
func ValidDate(s string) bool {
	if s == "" {
		return true
	}
	if !datePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006/01/02", s)
	return err == nil
}

// FormatEmailDate converts an RFC 2822 email date header into a compact
// local-timezone form, e.g. "Tue, 28 Oct 2025 16:56:35 +0000" becomes
// "2025-10-28 09:56 AM PDT". Parsing failure is never fatal: the raw
// string is passed through unchanged.
func FormatEmailDate(dateStr string) string {
	if dateStr == "" || dateStr == "Unknown Date" {
		return "Unknown Date"
	}

	t, err := mail.ParseDate(dateStr)
	if err != nil {
		return dateStr
	}

	return t.Local().Format("2006-01-02 03:04 PM MST")
}

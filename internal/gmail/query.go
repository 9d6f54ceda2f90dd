package gmail

import (
	"fmt"
	"strings"
)

// ReadStatus filters messages by read state.
type ReadStatus string

// Supported read status values. The empty value applies no filter.
const (
	ReadStatusAny    ReadStatus = ""
	ReadStatusRead   ReadStatus = "read"
	ReadStatusUnread ReadStatus = "unread"
)

// SearchFilter is a structured set of optional search predicates, mutually
// exclusive with a raw Gmail query string. Date bounds use the YYYY/MM/DD
// format Gmail expects; callers validate them before building.
type SearchFilter struct {
	ReadStatus    ReadStatus
	Labels        []string
	FromEmail     string
	ToEmail       string
	Subject       string
	AfterDate     string
	BeforeDate    string
	HasAttachment bool
	IsStarred     bool
	IsImportant   bool
	InTrash       bool

	// RawQuery is a raw Gmail search query. When set, no structured
	// predicate may be set.
	RawQuery string
}

// HasStructured reports whether any structured predicate is active.
func (f *SearchFilter) HasStructured() bool {
	return f.ReadStatus != ReadStatusAny ||
		len(f.Labels) > 0 ||
		f.FromEmail != "" ||
		f.ToEmail != "" ||
		f.Subject != "" ||
		f.AfterDate != "" ||
		f.BeforeDate != "" ||
		f.HasAttachment ||
		f.IsStarred ||
		f.IsImportant ||
		f.InTrash
}

// Build emits the Gmail query string for the filter. Each active predicate
// contributes one space-separated clause in a fixed order: read-status,
// labels, from, to, subject, after, before, has:attachment, is:starred,
// is:important, in:trash. An empty filter yields an empty query, which the
// Gmail API treats as match-everything.
func (f *SearchFilter) Build() (string, error) {
	if f.RawQuery != "" {
		if f.HasStructured() {
			return "", fmt.Errorf("%w: cannot combine a raw Gmail query with structured search parameters; use one or the other", ErrInvalidArgument)
		}
		return f.RawQuery, nil
	}

	var clauses []string

	switch f.ReadStatus {
	case ReadStatusAny:
	case ReadStatusRead:
		clauses = append(clauses, "is:read")
	case ReadStatusUnread:
		clauses = append(clauses, "is:unread")
	default:
		return "", fmt.Errorf("%w: read_status must be %q or %q, got %q", ErrInvalidArgument, ReadStatusRead, ReadStatusUnread, f.ReadStatus)
	}

	for _, label := range f.Labels {
		clauses = append(clauses, "label:"+label)
	}

	if f.FromEmail != "" {
		clauses = append(clauses, "from:"+f.FromEmail)
	}
	if f.ToEmail != "" {
		clauses = append(clauses, "to:"+f.ToEmail)
	}
	if f.Subject != "" {
		clauses = append(clauses, "subject:"+f.Subject)
	}
	if f.AfterDate != "" {
		clauses = append(clauses, "after:"+f.AfterDate)
	}
	if f.BeforeDate != "" {
		clauses = append(clauses, "before:"+f.BeforeDate)
	}
	if f.HasAttachment {
		clauses = append(clauses, "has:attachment")
	}
	if f.IsStarred {
		clauses = append(clauses, "is:starred")
	}
	if f.IsImportant {
		clauses = append(clauses, "is:important")
	}
	if f.InTrash {
		clauses = append(clauses, "in:trash")
	}

	return strings.Join(clauses, " "), nil
}

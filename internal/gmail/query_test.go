package gmail

import (
	"errors"
	"testing"
)

func TestSearchFilterBuild(t *testing.T) {
	tests := []struct {
		name   string
		filter SearchFilter
		want   string
	}{
		{
			name:   "empty filter matches everything",
			filter: SearchFilter{},
			want:   "",
		},
		{
			name:   "read status unread",
			filter: SearchFilter{ReadStatus: ReadStatusUnread},
			want:   "is:unread",
		},
		{
			name:   "read status read",
			filter: SearchFilter{ReadStatus: ReadStatusRead},
			want:   "is:read",
		},
		{
			name:   "read status precedes sender",
			filter: SearchFilter{FromEmail: "a@b.com", ReadStatus: ReadStatusUnread},
			want:   "is:unread from:a@b.com",
		},
		{
			name:   "labels keep input order",
			filter: SearchFilter{Labels: []string{"work", "urgent"}},
			want:   "label:work label:urgent",
		},
		{
			name: "all predicates in fixed clause order",
			filter: SearchFilter{
				ReadStatus:    ReadStatusRead,
				Labels:        []string{"inbox"},
				FromEmail:     "from@x.com",
				ToEmail:       "to@x.com",
				Subject:       "report",
				AfterDate:     "2024/01/01",
				BeforeDate:    "2024/12/31",
				HasAttachment: true,
				IsStarred:     true,
				IsImportant:   true,
				InTrash:       true,
			},
			want: "is:read label:inbox from:from@x.com to:to@x.com subject:report after:2024/01/01 before:2024/12/31 has:attachment is:starred is:important in:trash",
		},
		{
			name:   "false booleans contribute nothing",
			filter: SearchFilter{FromEmail: "a@b.com", HasAttachment: false, IsStarred: false},
			want:   "from:a@b.com",
		},
		{
			name:   "raw query passes through",
			filter: SearchFilter{RawQuery: "is:read from:github.com subject:PR"},
			want:   "is:read from:github.com subject:PR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.filter.Build()
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Build() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSearchFilterBuildConflicts(t *testing.T) {
	tests := []struct {
		name   string
		filter SearchFilter
	}{
		{
			name:   "raw query with sender",
			filter: SearchFilter{RawQuery: "is:read", FromEmail: "a@b.com"},
		},
		{
			name:   "raw query with read status",
			filter: SearchFilter{RawQuery: "is:read", ReadStatus: ReadStatusUnread},
		},
		{
			name:   "raw query with boolean predicate",
			filter: SearchFilter{RawQuery: "is:read", HasAttachment: true},
		},
		{
			name:   "raw query with labels",
			filter: SearchFilter{RawQuery: "is:read", Labels: []string{"work"}},
		},
		{
			name:   "raw query with date bound",
			filter: SearchFilter{RawQuery: "is:read", AfterDate: "2024/01/01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.filter.Build()
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Build() error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestSearchFilterBuildInvalidReadStatus(t *testing.T) {
	f := SearchFilter{ReadStatus: ReadStatus("maybe")}
	if _, err := f.Build(); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Build() error = %v, want ErrInvalidArgument", err)
	}
}

func TestSearchFilterHasStructured(t *testing.T) {
	if (&SearchFilter{}).HasStructured() {
		t.Error("empty filter should have no structured predicates")
	}
	if !(&SearchFilter{InTrash: true}).HasStructured() {
		t.Error("boolean predicate should count as structured")
	}
	if (&SearchFilter{RawQuery: "is:read"}).HasStructured() {
		t.Error("raw query is not a structured predicate")
	}
}

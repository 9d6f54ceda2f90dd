package resources

import "testing"

func TestIDFromURI(t *testing.T) {
	tests := []struct {
		name   string
		uri    string
		prefix string
		want   string
	}{
		{
			name:   "message uri",
			uri:    "gmail://messages/18c2f4a9b3d1e5f7",
			prefix: messageURIPrefix,
			want:   "18c2f4a9b3d1e5f7",
		},
		{
			name:   "thread uri",
			uri:    "gmail://threads/18c2f4a9b3d1e5f7",
			prefix: threadURIPrefix,
			want:   "18c2f4a9b3d1e5f7",
		},
		{
			name:   "wrong prefix",
			uri:    "gmail://threads/abc",
			prefix: messageURIPrefix,
			want:   "",
		},
		{
			name:   "prefix only",
			uri:    "gmail://messages/",
			prefix: messageURIPrefix,
			want:   "",
		},
		{
			name:   "unrelated scheme",
			uri:    "file:///tmp/x",
			prefix: messageURIPrefix,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := idFromURI(tt.uri, tt.prefix); got != tt.want {
				t.Errorf("idFromURI(%q, %q) = %q, want %q", tt.uri, tt.prefix, got, tt.want)
			}
		})
	}
}

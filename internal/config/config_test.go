package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultCredentialsPath, s.CredentialsPath)
	assert.Equal(t, DefaultTokenPath, s.TokenPath)
	assert.Equal(t, DefaultUserID, s.UserID)
	assert.Equal(t, DefaultMaxResults, s.MaxResults)
	assert.Equal(t, GmailScopes, s.Scopes)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv(EnvPrefix+"CREDENTIALS_PATH", "/etc/gmail/creds.json")
	t.Setenv(EnvPrefix+"TOKEN_PATH", "/etc/gmail/token.json")
	t.Setenv(EnvPrefix+"USER_ID", "someone@example.com")
	t.Setenv(EnvPrefix+"MAX_RESULTS", "25")

	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/etc/gmail/creds.json", s.CredentialsPath)
	assert.Equal(t, "/etc/gmail/token.json", s.TokenPath)
	assert.Equal(t, "someone@example.com", s.UserID)
	assert.Equal(t, 25, s.MaxResults)
}

func TestLoadInvalidMaxResults(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "not a number", value: "lots"},
		{name: "zero", value: "0"},
		{name: "negative", value: "-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvPrefix+"MAX_RESULTS", tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadFileReplacesEnvironmentValues(t *testing.T) {
	t.Setenv(EnvPrefix+"USER_ID", "env@example.com")
	t.Setenv(EnvPrefix+"MAX_RESULTS", "5")

	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"user_id": "file@example.com", "max_results": 50}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	s, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "file@example.com", s.UserID)
	assert.Equal(t, 50, s.MaxResults)
	// Fields absent from the file keep their defaults
	assert.Equal(t, DefaultCredentialsPath, s.CredentialsPath)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestSplitScopes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "comma separated",
			input: "a,b,c",
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "space separated",
			input: "a b c",
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "mixed with extra whitespace",
			input: "a, b,  c",
			want:  []string{"a", "b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitScopes(tt.input))
		})
	}
}

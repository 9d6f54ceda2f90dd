// Package config loads the server settings from environment variables and
// optional configuration files.
//
// Settings are read from MCP_GMAIL_-prefixed environment variables, with an
// optional .env file loaded first. A JSON configuration file may be supplied
// on top; values present in the file replace the environment-derived
// defaults (they are not merged field by field beyond that).
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// EnvPrefix is the prefix for all environment variables read by the server.
const EnvPrefix = "MCP_GMAIL_"

// Default settings.
const (
	DefaultCredentialsPath = "credentials.json"
	DefaultTokenPath       = "token.json"
	DefaultUserID          = "me"
	DefaultMaxResults      = 10
)

// GmailScopes are the OAuth scopes requested by default.
var GmailScopes = []string{
	"https://www.googleapis.com/auth/gmail.readonly",
	"https://www.googleapis.com/auth/gmail.send",
	"https://www.googleapis.com/auth/gmail.compose",
	"https://www.googleapis.com/auth/gmail.labels",
}

// Settings holds the process-wide configuration. It is constructed once at
// startup and read-only afterwards.
type Settings struct {
	CredentialsPath string   `json:"credentials_path"`
	TokenPath       string   `json:"token_path"`
	Scopes          []string `json:"scopes"`
	UserID          string   `json:"user_id"`
	MaxResults      int      `json:"max_results"`
}

// Load builds Settings from the environment. A .env file in the working
// directory is loaded first if present; missing files are not an error.
func Load() (*Settings, error) {
	_ = godotenv.Load()

	s := &Settings{
		CredentialsPath: DefaultCredentialsPath,
		TokenPath:       DefaultTokenPath,
		Scopes:          GmailScopes,
		UserID:          DefaultUserID,
		MaxResults:      DefaultMaxResults,
	}

	if v := os.Getenv(EnvPrefix + "CREDENTIALS_PATH"); v != "" {
		s.CredentialsPath = v
	}
	if v := os.Getenv(EnvPrefix + "TOKEN_PATH"); v != "" {
		s.TokenPath = v
	}
	if v := os.Getenv(EnvPrefix + "SCOPES"); v != "" {
		s.Scopes = splitScopes(v)
	}
	if v := os.Getenv(EnvPrefix + "USER_ID"); v != "" {
		s.UserID = v
	}
	if v := os.Getenv(EnvPrefix + "MAX_RESULTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid %sMAX_RESULTS value %q: must be a positive integer", EnvPrefix, v)
		}
		s.MaxResults = n
	}

	return s, nil
}

// LoadFile builds Settings from a JSON configuration file. File values
// replace the environment-derived defaults; fields absent from the file keep
// their defaults.
func LoadFile(path string) (*Settings, error) {
	s, err := Load()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if s.MaxResults <= 0 {
		return nil, fmt.Errorf("invalid max_results in config file %s: must be a positive integer", path)
	}

	return s, nil
}

// splitScopes splits a comma- or space-separated scope list.
func splitScopes(v string) []string {
	fields := strings.FieldsFunc(v, func(r rune) bool {
		return r == ',' || r == ' '
	})
	scopes := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			scopes = append(scopes, f)
		}
	}
	return scopes
}

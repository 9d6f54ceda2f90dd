package gmail

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/mailfold/gmail-mcp/internal/config"
)

// newService authenticates against the Gmail API using the on-disk
// credential and token material from settings. Expired access tokens are
// refreshed transparently through the token source; a refreshed token is
// written back to the token file so the next start skips the refresh.
//
// Missing or unusable credentials are fatal: there is no interactive flow in
// server mode, so the error names the file the operator has to provide.
func newService(ctx context.Context, settings *config.Settings) (*gmail.Service, error) {
	credBytes, err := os.ReadFile(settings.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: credentials file not found at %s; download your OAuth credentials from Google Cloud Console", ErrAuthenticationRequired, settings.CredentialsPath)
	}

	conf, err := google.ConfigFromJSON(credBytes, settings.Scopes...)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid credentials file %s: %v", ErrAuthenticationRequired, settings.CredentialsPath, err)
	}

	tok, err := loadToken(settings.TokenPath)
	if err != nil {
		return nil, fmt.Errorf("%w: no usable token at %s; run the authorization flow to create one", ErrAuthenticationRequired, settings.TokenPath)
	}

	if !tok.Valid() && tok.RefreshToken == "" {
		return nil, fmt.Errorf("%w: token at %s is expired and has no refresh token; re-run the authorization flow", ErrAuthenticationRequired, settings.TokenPath)
	}

	ts := &savingTokenSource{
		src:  conf.TokenSource(ctx, tok),
		path: settings.TokenPath,
		last: tok,
	}

	svc, err := gmail.NewService(ctx, option.WithTokenSource(oauth2.ReuseTokenSource(tok, ts)))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gmail service: %w", err)
	}

	return svc, nil
}

// loadToken reads an oauth2 token from a JSON file.
func loadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	tok := &oauth2.Token{}
	if err := json.Unmarshal(data, tok); err != nil {
		return nil, fmt.Errorf("failed to parse token file %s: %w", path, err)
	}
	return tok, nil
}

// saveToken writes an oauth2 token to a JSON file.
func saveToken(path string, tok *oauth2.Token) error {
	data, err := json.Marshal(tok)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// savingTokenSource persists refreshed tokens back to the token file.
// A failed write is not fatal: the in-memory token still works for the
// lifetime of the process.
type savingTokenSource struct {
	src  oauth2.TokenSource
	path string
	last *oauth2.Token
}

func (s *savingTokenSource) Token() (*oauth2.Token, error) {
	tok, err := s.src.Token()
	if err != nil {
		return nil, err
	}
	if s.last == nil || tok.AccessToken != s.last.AccessToken {
		s.last = tok
		_ = saveToken(s.path, tok)
	}
	return tok, nil
}

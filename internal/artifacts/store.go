// Package artifacts provides an ephemeral on-disk store for generated
// files: downloaded emails, threads, search result sets, and attachments.
// The backing directory lives for the lifetime of the process; every path
// handed out becomes dangling once the store is closed.
package artifacts

import (
	"fmt"
	"os"
	"path/filepath"
)

// maxFilenameLength bounds sanitized filenames.
const maxFilenameLength = 200

// Handle describes a file written into the store.
type Handle struct {
	Path string `json:"path"`
	Size int64  `json:"size_bytes"`
}

// Store writes artifacts into a process-scoped temporary directory.
type Store struct {
	dir string
}

// NewStore creates the backing directory.
func NewStore() (*Store, error) {
	dir, err := os.MkdirTemp("", "gmail-mcp-")
	if err != nil {
		return nil, fmt.Errorf("failed to create artifact directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the backing directory path.
func (s *Store) Dir() string {
	return s.dir
}

// WriteText materializes text content under a sanitized filename. Writes
// to the same sanitized name overwrite each other; last writer wins.
func (s *Store) WriteText(filename, content string) (Handle, error) {
	return s.WriteBytes(filename, []byte(content))
}

// WriteBytes materializes binary content under a sanitized filename.
func (s *Store) WriteBytes(filename string, data []byte) (Handle, error) {
	path := filepath.Join(s.dir, SanitizeFilename(filename))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return Handle{}, fmt.Errorf("failed to write artifact %s: %w", path, err)
	}
	return Handle{Path: path, Size: int64(len(data))}, nil
}

// Close removes the backing directory and everything in it.
func (s *Store) Close() error {
	return os.RemoveAll(s.dir)
}

// SanitizeFilename makes a filename safe for the store. Characters outside
// [a-zA-Z0-9], dot, dash, underscore and space become underscores; names
// that are empty or start with a dot get a "file_" prefix; the result is
// truncated to 200 characters. Sanitizing an already-sanitized name is a
// no-op.
func SanitizeFilename(filename string) string {
	safe := make([]rune, 0, len(filename))
	for _, c := range filename {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			safe = append(safe, c)
		case c == '.' || c == '-' || c == '_' || c == ' ':
			safe = append(safe, c)
		default:
			safe = append(safe, '_')
		}
	}

	name := string(safe)
	if name == "" || name[0] == '.' {
		name = "file_" + name
	}
	if len(name) > maxFilenameLength {
		name = name[:maxFilenameLength]
	}
	return name
}

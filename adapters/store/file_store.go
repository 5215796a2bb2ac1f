package store

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/ShubhanginiSharma627/e-sign-app/core"
	"github.com/ShubhanginiSharma627/e-sign-app/ports"
)

// FileStore persists the cached token as a single JSON file of the form
// {"access_token": "...", "expiry": <epoch ms>}.
type FileStore struct {
	fs   afero.Fs
	path string
}

// NewFileStore creates a file-backed token store at the given path.
func NewFileStore(fs afero.Fs, path string) ports.TokenStore {
	return &FileStore{fs: fs, path: path}
}

// Load reads and parses the token file. A missing or unparseable file
// is an error; the token provider treats it as a cache miss.
func (s *FileStore) Load(ctx context.Context) (*core.CachedToken, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read token file: %w", err)
	}

	var token core.CachedToken
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("failed to parse token file: %w", err)
	}

	return &token, nil
}

// Save overwrites the token file with the new record. The write goes
// through a temp file and rename so a concurrent refresh can waste a
// call but never leave a corrupt record.
func (s *FileStore) Save(ctx context.Context, token *core.CachedToken) error {
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}

	if err := s.fs.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace token file: %w", err)
	}

	return nil
}

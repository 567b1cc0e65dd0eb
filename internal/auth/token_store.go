package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/oauth2"
)

// tokenStore persists one oauth2 token per account role. The token files are
// opaque blobs owned entirely by this package; nothing else parses them.
type tokenStore struct {
	pathFor func(Role) string
}

func newTokenStore(pathFor func(Role) string) *tokenStore {
	return &tokenStore{pathFor: pathFor}
}

func (s *tokenStore) Load(role Role) (*oauth2.Token, error) {
	data, err := os.ReadFile(s.pathFor(role))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoCachedToken
		}
		return nil, fmt.Errorf("failed to read token for %s: %w", role, err)
	}

	token := &oauth2.Token{}
	if err := json.Unmarshal(data, token); err != nil {
		// A corrupt cache is treated like a missing one; the interactive
		// flow will replace it.
		return nil, ErrNoCachedToken
	}

	return token, nil
}

func (s *tokenStore) Save(role Role, token *oauth2.Token) error {
	data, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal token for %s: %w", role, err)
	}

	// Token files carry credentials, keep them owner-only.
	if err := os.WriteFile(s.pathFor(role), data, 0600); err != nil {
		return fmt.Errorf("failed to save token for %s: %w", role, err)
	}

	return nil
}

func (s *tokenStore) Delete(role Role) error {
	err := os.Remove(s.pathFor(role))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete token for %s: %w", role, err)
	}
	return nil
}

// Package auth obtains and caches OAuth2 credentials for the two transfer
// roles. Each role has an independent token file, so re-authenticating the
// destination account never invalidates the source session. Tokens are reused
// silently while valid, refreshed silently when expired, and only fall back to
// the interactive browser flow when neither works.
package auth

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Scopes requested for both roles: reading the source's subscription list and
// managing the destination's.
var Scopes = []string{
	"https://www.googleapis.com/auth/youtube.readonly",
	"https://www.googleapis.com/auth/youtube",
}

// Credential is an opaque handle bound to one authenticated account role.
// Extractor and Importer consume it without ever seeing token material.
type Credential struct {
	role   Role
	source oauth2.TokenSource
}

func (c *Credential) Role() Role {
	return c.role
}

// HTTPClient returns an HTTP client that attaches and transparently refreshes
// the role's access token.
func (c *Credential) HTTPClient(ctx context.Context) *http.Client {
	return oauth2.NewClient(ctx, c.source)
}

// Authenticator exchanges and caches per-role OAuth2 credentials.
type Authenticator struct {
	credentialsFile string
	store           *tokenStore
}

func NewAuthenticator(credentialsFile string, tokenPath func(Role) string) *Authenticator {
	return &Authenticator{
		credentialsFile: credentialsFile,
		store:           newTokenStore(tokenPath),
	}
}

// Authenticate returns a credential for the role, reusing or refreshing the
// cached token when possible and running the interactive browser flow
// otherwise. A fatal failure is reported as *AuthenticationError.
func (a *Authenticator) Authenticate(ctx context.Context, role Role) (*Credential, error) {
	if !role.Valid() {
		return nil, newAuthError(role, "unknown account role", nil)
	}

	cfg, err := a.oauthConfig(role)
	if err != nil {
		return nil, err
	}

	token, err := a.store.Load(role)
	switch {
	case err == nil && token.Valid():
		log.Printf("Reusing cached token for %s account", role)

	case err == nil && token.RefreshToken != "":
		refreshed, refreshErr := cfg.TokenSource(ctx, token).Token()
		if refreshErr != nil {
			log.Printf("Token refresh for %s account failed, falling back to browser flow: %v", role, refreshErr)
			token = nil
		} else {
			log.Printf("Refreshed credentials for %s account", role)
			token = refreshed
			if saveErr := a.store.Save(role, token); saveErr != nil {
				log.Printf("Warning: failed to persist refreshed token: %v", saveErr)
			}
		}

	case err != nil && !errors.Is(err, ErrNoCachedToken):
		return nil, newAuthError(role, "failed to load cached token", err)

	default:
		token = nil
	}

	if token == nil {
		token, err = runLoopbackFlow(ctx, cfg, role)
		if err != nil {
			return nil, newAuthError(role, "interactive authorization failed", err)
		}
		if saveErr := a.store.Save(role, token); saveErr != nil {
			return nil, newAuthError(role, "failed to persist token", saveErr)
		}
		log.Printf("Completed OAuth flow for %s account", role)
	}

	source := &persistingTokenSource{
		role:  role,
		store: a.store,
		inner: oauth2.ReuseTokenSource(token, cfg.TokenSource(ctx, token)),
		last:  token.AccessToken,
	}

	log.Printf("Successfully authenticated %s account", role)
	return &Credential{role: role, source: source}, nil
}

// Invalidate deletes the role's cached token, forcing a fresh interactive
// flow on the next Authenticate call.
func (a *Authenticator) Invalidate(role Role) error {
	if !role.Valid() {
		return newAuthError(role, "unknown account role", nil)
	}
	log.Printf("Invalidating cached token for %s account", role)
	return a.store.Delete(role)
}

func (a *Authenticator) oauthConfig(role Role) (*oauth2.Config, error) {
	data, err := os.ReadFile(a.credentialsFile)
	if err != nil {
		return nil, newAuthError(role, "client credentials file "+a.credentialsFile+" is not readable", ErrCredentialsFileMissing)
	}

	cfg, err := google.ConfigFromJSON(data, Scopes...)
	if err != nil {
		return nil, newAuthError(role, "invalid client credentials file "+a.credentialsFile, err)
	}

	return cfg, nil
}

// persistingTokenSource writes the role's token file whenever the underlying
// source hands back a refreshed access token, keeping the cache usable for the
// next run.
type persistingTokenSource struct {
	role  Role
	store *tokenStore
	inner oauth2.TokenSource

	mu   sync.Mutex
	last string
}

func (s *persistingTokenSource) Token() (*oauth2.Token, error) {
	token, err := s.inner.Token()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if token.AccessToken != s.last {
		s.last = token.AccessToken
		if saveErr := s.store.Save(s.role, token); saveErr != nil {
			log.Printf("Warning: failed to persist refreshed token for %s: %v", s.role, saveErr)
		}
	}

	return token, nil
}

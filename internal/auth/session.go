package auth

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var scopes = []string{"https://www.googleapis.com/auth/youtube.readonly"}

// TokenStore persists OAuth tokens between runs. Implementations may
// back onto a file, a database, or a secret store.
type TokenStore interface {
	Load() (*oauth2.Token, error)
	Save(token *oauth2.Token) error
}

// Session carries OAuth credentials explicitly to every collaborator
// that needs them; there is no process-wide token state.
type Session struct {
	config *oauth2.Config
	store  TokenStore

	mu    sync.Mutex
	token *oauth2.Token
}

// NewSession builds a Session for the configured OAuth client. Any
// previously persisted token is loaded from the store.
func NewSession(clientID, clientSecret, redirectURL string, store TokenStore) (*Session, error) {
	s := &Session{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       scopes,
			Endpoint:     google.Endpoint,
		},
		store: store,
	}

	if store != nil {
		token, err := store.Load()
		if err != nil {
			return nil, fmt.Errorf("load persisted token: %w", err)
		}
		s.token = token
	}

	return s, nil
}

// AuthURL returns the URL the operator visits to grant access.
func (s *Session) AuthURL() string {
	return s.config.AuthCodeURL("state",
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("include_granted_scopes", "true"),
	)
}

// Exchange trades an authorization code for tokens and persists them.
func (s *Session) Exchange(ctx context.Context, code string) error {
	token, err := s.config.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("exchange authorization code: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	if s.store != nil {
		if err := s.store.Save(token); err != nil {
			return fmt.Errorf("persist token: %w", err)
		}
	}
	return nil
}

// Authorized reports whether the session holds a usable token.
func (s *Session) Authorized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != nil && s.token.AccessToken != ""
}

// Client returns an HTTP client that attaches and refreshes the
// session's token.
func (s *Session) Client(ctx context.Context) (*http.Client, error) {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()

	if token == nil {
		return nil, fmt.Errorf("session not authorized")
	}
	return s.config.Client(ctx, token), nil
}

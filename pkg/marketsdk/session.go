package marketsdk

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// ErrSessionExpired is returned once a session's token has expired. Tokens
// cannot be renewed after expiry; log in again.
var ErrSessionExpired = errors.New("marketsdk: session expired")

// refreshWindow is how long before expiry a session renews its token.
const refreshWindow = 60 * time.Second

// Session is an authenticated marketplace session.
type Session struct {
	client *SDKClient

	mu          sync.RWMutex
	accessToken string
	expiresAt   time.Time
	user        UserResponse
}

func newSession(client *SDKClient, tokens *TokenResponse) *Session {
	s := &Session{client: client}
	s.apply(tokens)
	return s
}

// NewSessionFromToken wraps an access token obtained elsewhere.
func (c *SDKClient) NewSessionFromToken(accessToken string, expiresIn int) *Session {
	return &Session{
		client:      c,
		accessToken: accessToken,
		expiresAt:   time.Now().Add(time.Duration(expiresIn) * time.Second),
	}
}

func (s *Session) apply(tokens *TokenResponse) {
	s.accessToken = tokens.AccessToken
	s.expiresAt = time.Now().Add(time.Duration(tokens.ExpiresIn) * time.Second)
	s.user = tokens.User
}

// AccessToken returns the current bearer token.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// User returns the user as of the last login or refresh.
func (s *Session) User() UserResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// getValidToken returns the access token, renewing it when it is inside the
// refresh window.
func (s *Session) getValidToken(ctx context.Context) (string, error) {
	s.mu.RLock()
	token, expiresAt := s.accessToken, s.expiresAt
	s.mu.RUnlock()

	now := time.Now()
	switch {
	case !now.Before(expiresAt):
		return "", ErrSessionExpired
	case now.Before(expiresAt.Add(-refreshWindow)):
		return token, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Double-check after acquiring write lock (another goroutine may have refreshed)
	if time.Now().Before(s.expiresAt.Add(-refreshWindow)) {
		return s.accessToken, nil
	}

	tokens, err := s.refresh(ctx, s.accessToken)
	if err != nil {
		return "", fmt.Errorf("failed to refresh token: %w", err)
	}
	s.apply(tokens)
	return s.accessToken, nil
}

func (s *Session) refresh(ctx context.Context, token string) (*TokenResponse, error) {
	resp, err := s.client.doRequest(ctx, http.MethodPost, "/v1/auth/refresh", nil, map[string]string{
		"Authorization": "Bearer " + token,
	})
	if err != nil {
		return nil, err
	}

	var tokens TokenResponse
	if err := decodeJSON(resp, &tokens, http.StatusOK); err != nil {
		return nil, err
	}
	return &tokens, nil
}

// Refresh renews the access token now.
func (s *Session) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tokens, err := s.refresh(ctx, s.accessToken)
	if err != nil {
		return err
	}
	s.apply(tokens)
	return nil
}

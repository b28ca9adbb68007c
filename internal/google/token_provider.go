package google

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
)

// TokenProvider is an interface for providing OAuth tokens for Google APIs.
// This abstraction allows different token sources (file-based, secret
// managers, etc.) to be plugged into the clients.
type TokenProvider interface {
	// GetTokenForAccount retrieves an OAuth token for the specified account
	GetTokenForAccount(ctx context.Context, account string) (*oauth2.Token, error)

	// HasTokenForAccount checks if a token exists for the specified account
	HasTokenForAccount(account string) bool
}

// FileTokenProvider provides tokens from the per-account disk cache used by
// the server_side mode.
type FileTokenProvider struct {
	cfg *Config
}

// NewFileTokenProvider creates a file-based token provider for the config.
func NewFileTokenProvider(cfg *Config) *FileTokenProvider {
	return &FileTokenProvider{cfg: cfg}
}

// GetTokenForAccount retrieves a token from disk for the specified account.
func (p *FileTokenProvider) GetTokenForAccount(ctx context.Context, account string) (*oauth2.Token, error) {
	ts, err := TokenSource(ctx, p.cfg.WithAccount(account), AllScopes...)
	if err != nil {
		return nil, err
	}

	token, err := ts.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to get token for account %s: %w", account, err)
	}

	return token, nil
}

// HasTokenForAccount checks if a token file exists for the specified account.
func (p *FileTokenProvider) HasTokenForAccount(account string) bool {
	if p.cfg.Mode == AuthModeServiceAccount {
		return p.cfg.HasToken()
	}
	return HasTokenForAccount(account)
}

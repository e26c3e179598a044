package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/desertthunder/sp/internal/shared"
	"golang.org/x/oauth2"
)

// TokenCache persists OAuth2 tokens to a JSON file so interactive
// authorization only happens once.
type TokenCache struct {
	path string
}

// NewTokenCache creates a token cache backed by the file at path.
func NewTokenCache(path string) *TokenCache {
	return &TokenCache{path: path}
}

// Path returns the cache file location.
func (c *TokenCache) Path() string {
	return c.path
}

// Load reads the cached token. Returns [shared.ErrNoToken] when no cache file exists.
func (c *TokenCache) Load() (*oauth2.Token, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w at %s", shared.ErrNoToken, c.path)
		}
		return nil, fmt.Errorf("failed to read token cache: %w", err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("failed to parse token cache: %w", err)
	}

	return &token, nil
}

// Save writes the token to the cache file with owner-only permissions.
func (c *TokenCache) Save(token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0700); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	data, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal token: %w", err)
	}

	if err := os.WriteFile(c.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write token cache: %w", err)
	}

	return nil
}

// Clear removes the cache file. Clearing a missing file is not an error.
func (c *TokenCache) Clear() error {
	if err := os.Remove(c.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove token cache: %w", err)
	}
	return nil
}

// WrapSource returns a [oauth2.TokenSource] that writes rotated tokens back
// to the cache, so refreshed access tokens survive across invocations.
func (c *TokenCache) WrapSource(src oauth2.TokenSource) oauth2.TokenSource {
	return &persistingSource{src: src, cache: c}
}

type persistingSource struct {
	src   oauth2.TokenSource
	cache *TokenCache
	mu    sync.Mutex
	last  *oauth2.Token
}

func (p *persistingSource) Token() (*oauth2.Token, error) {
	token, err := p.src.Token()
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.last == nil || p.last.AccessToken != token.AccessToken {
		if saveErr := p.cache.Save(token); saveErr != nil {
			return nil, saveErr
		}
		p.last = token
	}

	return token, nil
}

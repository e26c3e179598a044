package shared

import (
	_ "embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Environment variables that override config file values.
const (
	EnvClientID     = "SPOTIFY_CLIENT_ID"
	EnvClientSecret = "SPOTIFY_CLIENT_SECRET"
	EnvRedirectURI  = "SPOTIFY_REDIRECT_URI"
)

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Credentials CredentialsConfig `toml:"credentials"`
	Cache       CacheConfig       `toml:"cache"`
}

// CredentialsConfig contains Spotify API credentials.
type CredentialsConfig struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	RedirectURI  string `toml:"redirect_uri"`
}

// CacheConfig contains token cache settings.
type CacheConfig struct {
	TokenPath string `toml:"token_path"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyEnv overlays SPOTIFY_* environment variables onto the config.
//
// Environment variables always win over file values.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvClientID); v != "" {
		c.Credentials.ClientID = v
	}
	if v := os.Getenv(EnvClientSecret); v != "" {
		c.Credentials.ClientSecret = v
	}
	if v := os.Getenv(EnvRedirectURI); v != "" {
		c.Credentials.RedirectURI = v
	}
	c.Credentials.RedirectURI = NormalizeRedirectURI(c.Credentials.RedirectURI)
}

// Validate checks that the credentials required for any API call are present.
func (c *Config) Validate() error {
	if c.Credentials.ClientID == "" || c.Credentials.ClientSecret == "" || c.Credentials.RedirectURI == "" {
		return fmt.Errorf("%w: set %s, %s, and %s", ErrMissingCredentials, EnvClientID, EnvClientSecret, EnvRedirectURI)
	}
	return nil
}

// Map returns credentials as a string map for service construction.
func (c *CredentialsConfig) Map() map[string]string {
	return map[string]string{
		"client_id":     c.ClientID,
		"client_secret": c.ClientSecret,
		"redirect_uri":  c.RedirectURI,
	}
}

// CallbackAddr derives the local listen address for the OAuth callback server from the redirect URI.
func (c *CredentialsConfig) CallbackAddr() (string, error) {
	parsed, err := url.Parse(c.RedirectURI)
	if err != nil {
		return "", fmt.Errorf("%w: invalid redirect URI %q: %v", ErrInvalidConfig, c.RedirectURI, err)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("%w: redirect URI %q has no host", ErrInvalidConfig, c.RedirectURI)
	}

	port := parsed.Port()
	if port == "" {
		port = "80"
	}

	return fmt.Sprintf("%s:%s", parsed.Hostname(), port), nil
}

// TokenPath returns the resolved token cache path, defaulting to ~/.sp/token.json.
func (c *Config) TokenPath() string {
	if c.Cache.TokenPath != "" {
		return c.Cache.TokenPath
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".sp", "token.json")
	}
	return filepath.Join(home, ".sp", "token.json")
}

// DefaultConfigPath returns the conventional config file location (~/.sp/config.toml).
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".sp", "config.toml")
	}
	return filepath.Join(home, ".sp", "config.toml")
}

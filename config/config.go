package config

import (
	"fmt"
	"os"
)

// Config holds the full service configuration, read from the environment.
type Config struct {
	ListenAddr string
	OutputDir  string
	TokenFile  string
	TokenStore string // "file", "redis" or "memory"
	RedisURL   string
	Zoho       ZohoConfig
}

// ZohoConfig carries the provider endpoints and OAuth client identity.
// Both base URLs are configurable because Zoho operates regional hosts
// (sign.zoho.com, sign.zoho.in, ...).
type ZohoConfig struct {
	AccountsURL  string
	SignURL      string
	RedirectURI  string
	RefreshToken string
	ClientID     string
	ClientSecret string
}

const (
	defaultListenAddr  = ":3000"
	defaultOutputDir   = "output"
	defaultTokenStore  = "file"
	defaultAccountsURL = "https://accounts.zoho.in"
	defaultSignURL     = "https://sign.zoho.com"
)

// Load reads the configuration from environment variables, applying
// defaults for everything except the OAuth client secrets.
func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr: getenv("LISTEN_ADDR", defaultListenAddr),
		OutputDir:  getenv("OUTPUT_DIR", defaultOutputDir),
		TokenStore: getenv("TOKEN_STORE", defaultTokenStore),
		RedisURL:   os.Getenv("REDIS_URL"),
		Zoho: ZohoConfig{
			AccountsURL:  getenv("ZOHO_ACCOUNTS_URL", defaultAccountsURL),
			SignURL:      getenv("ZOHO_SIGN_URL", defaultSignURL),
			RefreshToken: os.Getenv("ZOHO_REFRESH_TOKEN"),
			ClientID:     os.Getenv("ZOHO_CLIENT_ID"),
			ClientSecret: os.Getenv("ZOHO_CLIENT_SECRET"),
		},
	}
	cfg.TokenFile = getenv("TOKEN_FILE", cfg.OutputDir+"/zoho-token.json")
	cfg.Zoho.RedirectURI = getenv("ZOHO_REDIRECT_URI", cfg.Zoho.SignURL)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Zoho.RefreshToken == "" {
		return fmt.Errorf("config: ZOHO_REFRESH_TOKEN is required")
	}
	if c.Zoho.ClientID == "" {
		return fmt.Errorf("config: ZOHO_CLIENT_ID is required")
	}
	if c.Zoho.ClientSecret == "" {
		return fmt.Errorf("config: ZOHO_CLIENT_SECRET is required")
	}
	switch c.TokenStore {
	case "file", "memory":
	case "redis":
		if c.RedisURL == "" {
			return fmt.Errorf("config: REDIS_URL is required when TOKEN_STORE=redis")
		}
	default:
		return fmt.Errorf("config: unknown TOKEN_STORE %q", c.TokenStore)
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

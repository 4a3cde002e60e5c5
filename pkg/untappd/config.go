package untappd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	// DefaultAPIBaseURL is the production Untappd v4 API root.
	DefaultAPIBaseURL = "https://api.untappd.com/v4"
	// DefaultAuthBaseURL hosts the OAuth authenticate and authorize endpoints.
	DefaultAuthBaseURL = "https://untappd.com"

	authenticatePath = "/oauth/authenticate/"
	authorizePath    = "/oauth/authorize/"
)

type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	// UserAgent identifies the application to Untappd. Empty means
	// DefaultUserAgent; Untappd throttles default client strings, so set
	// your own in production.
	UserAgent string
	// AccessToken may be preset for a client acting on behalf of a user.
	AccessToken string
	// APIBaseURL and AuthBaseURL default to the production endpoints.
	APIBaseURL  string
	AuthBaseURL string
}

// LoadConfig reads configuration from the environment, loading a .env file
// first if one exists.
func LoadConfig() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		ClientID:     os.Getenv("UNTAPPD_CLIENT_ID"),
		ClientSecret: os.Getenv("UNTAPPD_CLIENT_SECRET"),
		RedirectURL:  os.Getenv("UNTAPPD_REDIRECT_URL"),
		UserAgent:    os.Getenv("UNTAPPD_USER_AGENT"),
		AccessToken:  os.Getenv("UNTAPPD_ACCESS_TOKEN"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.ClientID == "" {
		return fmt.Errorf("UNTAPPD_CLIENT_ID is required")
	}
	if c.ClientSecret == "" {
		return fmt.Errorf("UNTAPPD_CLIENT_SECRET is required")
	}
	if c.RedirectURL == "" {
		return fmt.Errorf("UNTAPPD_REDIRECT_URL is required")
	}
	// UserAgent and AccessToken are optional
	return nil
}

func (c *Config) apiBaseURL() string {
	if c.APIBaseURL != "" {
		return c.APIBaseURL
	}
	return DefaultAPIBaseURL
}

func (c *Config) authBaseURL() string {
	if c.AuthBaseURL != "" {
		return c.AuthBaseURL
	}
	return DefaultAuthBaseURL
}

func (c *Config) userAgent() string {
	if c.UserAgent != "" {
		return c.UserAgent
	}
	return DefaultUserAgent
}

package nuclino

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Environment variables read by LoadConfig.
const (
	EnvAPIKey    = "NUCLINO_API_KEY"
	EnvBaseURL   = "NUCLINO_BASE_URL"
	EnvTimeout   = "NUCLINO_TIMEOUT"
	EnvUserAgent = "NUCLINO_USER_AGENT"
)

// Config holds Nuclino connection settings
type Config struct {
	// APIKey is sent verbatim in the Authorization header
	APIKey string

	// BaseURL is the API root (default https://api.nuclino.com)
	BaseURL string

	// Timeout for API requests; zero means no client-side timeout
	Timeout time.Duration

	// UserAgent identifies the client to the service
	UserAgent string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	apiKey := os.Getenv(EnvAPIKey)
	if apiKey == "" {
		return nil, ErrAPIKeyNotFound
	}

	baseURL := os.Getenv(EnvBaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := DefaultTimeout
	if t := os.Getenv(EnvTimeout); t != "" {
		d, err := time.ParseDuration(t)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvTimeout, t, err)
		}
		timeout = d
	}

	userAgent := os.Getenv(EnvUserAgent)
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	cfg := &Config{
		APIKey:    apiKey,
		BaseURL:   baseURL,
		Timeout:   timeout,
		UserAgent: userAgent,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for missing or malformed values.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.APIKey, validation.Required),
		validation.Field(&c.BaseURL, validation.Required, validation.By(absoluteHTTPURL)),
		validation.Field(&c.Timeout, validation.Min(time.Duration(0))),
	)
}

func absoluteHTTPURL(value interface{}) error {
	s, _ := value.(string)
	u, err := url.Parse(s)
	if err != nil {
		return errors.New("must be a valid URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("must use http or https")
	}
	if u.Host == "" {
		return errors.New("must include a host")
	}
	return nil
}

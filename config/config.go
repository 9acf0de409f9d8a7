package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	// EnvAPIKey is the environment variable holding the Firecrawl credential.
	EnvAPIKey = "FIRECRAWL_API_KEY"
	// EnvAPIURL optionally overrides the Firecrawl API endpoint.
	EnvAPIURL = "FIRECRAWL_API_URL"
)

// Config holds the environment-derived configuration for a run.
type Config struct {
	// APIKey is the Firecrawl credential. It is intentionally not validated
	// here: an absent or invalid key surfaces as a failure from the first
	// remote call.
	APIKey string
	// APIURL is the Firecrawl endpoint. Empty means the client default.
	APIURL string
}

// Load reads the configuration from the process environment. A .env file in
// the working directory is applied first when present; a missing file is not
// an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "failed to load .env file")
	}

	return &Config{
		APIKey: os.Getenv(EnvAPIKey),
		APIURL: os.Getenv(EnvAPIURL),
	}, nil
}

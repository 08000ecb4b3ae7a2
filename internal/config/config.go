package config

import (
	"errors"
	"os"
)

// MissingEnvMessage is the fixed response body message when the sync is
// invoked without its required variables.
const MissingEnvMessage = "Missing required environment variables"

var ErrMissingEnv = errors.New("missing required environment variables")

// Config carries the invocation-scoped variables of a sync run. The Appwrite
// client credentials are injected by the hosting platform and passed through
// as-is; only the three sync-specific variables are validated here.
type Config struct {
	AppwriteEndpoint  string
	AppwriteProjectID string
	AppwriteAPIKey    string

	WordPressURL string
	DatabaseID   string
	CollectionID string

	// DryRun routes writes to the in-memory store instead of Appwrite.
	DryRun bool
}

func Load() *Config {
	return &Config{
		AppwriteEndpoint:  os.Getenv("APPWRITE_FUNCTION_ENDPOINT"),
		AppwriteProjectID: os.Getenv("APPWRITE_FUNCTION_PROJECT_ID"),
		AppwriteAPIKey:    os.Getenv("APPWRITE_API_KEY"),
		WordPressURL:      os.Getenv("WORDPRESS_URL"),
		DatabaseID:        os.Getenv("APPWRITE_DATABASE_ID"),
		CollectionID:      os.Getenv("APPWRITE_COLLECTION_ID"),
		DryRun:            os.Getenv("DRY_RUN") == "true",
	}
}

// Validate fails when any variable the run cannot proceed without is empty.
// Nothing is fetched or written after a validation failure.
func (c *Config) Validate() error {
	if c.WordPressURL == "" || c.DatabaseID == "" || c.CollectionID == "" {
		return ErrMissingEnv
	}
	return nil
}

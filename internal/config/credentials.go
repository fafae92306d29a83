package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables holding the API credentials.
const (
	EnvClientID     = "SPOTIFY_CLIENT_ID"
	EnvClientSecret = "SPOTIFY_CLIENT_SECRET"
)

// Credentials holds the API client credentials used for the token
// exchange. They are secrets: they come from the environment, never from
// the settings file, and are never persisted.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// LoadCredentials reads API credentials from the environment, loading a
// .env file first if one is present in the working directory.
//
// A missing credential is a configuration error: the returned error names
// the variable so the operator can fix it, and callers must abort before
// any network call is made.
func LoadCredentials() (Credentials, error) {
	_ = godotenv.Load()

	creds := Credentials{
		ClientID:     strings.TrimSpace(os.Getenv(EnvClientID)),
		ClientSecret: strings.TrimSpace(os.Getenv(EnvClientSecret)),
	}
	return creds, creds.Validate()
}

// Validate returns an error naming the first missing credential, or nil
// if both are present.
func (c Credentials) Validate() error {
	if c.ClientID == "" {
		return fmt.Errorf("missing credentials: %s is not set", EnvClientID)
	}
	if c.ClientSecret == "" {
		return fmt.Errorf("missing credentials: %s is not set", EnvClientSecret)
	}
	return nil
}

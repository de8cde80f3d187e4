package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "ga"

var ErrMissingCredentials = errors.New("missing service account credentials")

// Config carries the credential source and scopes for the analytics
// services. Either KeyFile or CredentialsJSON must be set; CredentialsJSON
// wins when both are.
type Config struct {
	KeyFile         string   `envconfig:"KEY_FILE"`
	CredentialsJSON string   `envconfig:"CREDENTIALS_JSON"`
	Scopes          []string `envconfig:"SCOPES"`
}

// Load reads the configuration from GA_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}

	return &cfg, nil
}

// Credentials returns the service account key JSON.
func (c *Config) Credentials() ([]byte, error) {
	if c.CredentialsJSON != "" {
		return []byte(c.CredentialsJSON), nil
	}

	if c.KeyFile == "" {
		return nil, ErrMissingCredentials
	}

	data, err := os.ReadFile(c.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read key file %s: %w", c.KeyFile, err)
	}

	return data, nil
}

package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix of environment variables read by LoadSettings.
const EnvPrefix = "GCONTAINER"

// Settings holds CLI settings taken from the environment.
type Settings struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Output   string `envconfig:"OUTPUT" default:"text"`
}

// LoadSettings reads GCONTAINER_* environment variables.
func LoadSettings() (*Settings, error) {
	var s Settings
	if err := envconfig.Process(EnvPrefix, &s); err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	switch s.Output {
	case "text", "json", "yaml":
	default:
		return nil, fmt.Errorf("invalid %s_OUTPUT %q: must be one of text, json, yaml", EnvPrefix, s.Output)
	}

	return &s, nil
}

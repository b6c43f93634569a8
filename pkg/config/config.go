// Package config handles workspace configuration for golden-pages.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the workspace configuration (config.yaml).
// Values act as defaults for the matching CLI flags; a flag given on the
// command line always wins.
type Config struct {
	// Base URL at which the golden result images are publicly served.
	BaseURL string `yaml:"baseUrl"`

	// Base URL for the alpha-channel-ignored renders of the same images.
	NoAlphaBaseURL string `yaml:"noAlphaBaseUrl"`

	// URL of the JSON test suite descriptor registry. Empty disables
	// descriptor enrichment.
	RegistryURL string `yaml:"registryUrl"`

	// Base URL from which test suite source files can be browsed.
	SourceBaseURL string `yaml:"sourceBaseUrl"`

	// Base URL for raw image content embedded in wiki pages.
	RawBaseURL string `yaml:"rawBaseUrl"`
}

// Load loads configuration from a file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- user-provided config file
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromDir looks for config.yaml or config.yml in the directory.
func LoadFromDir(dir string) (*Config, error) {
	// Try config.yaml first
	configPath := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(configPath); err == nil {
		return Load(configPath)
	}

	// Try config.yml
	configPath = filepath.Join(dir, "config.yml")
	if _, err := os.Stat(configPath); err == nil {
		return Load(configPath)
	}

	// No config file found, return empty config
	return &Config{}, nil
}

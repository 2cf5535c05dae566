// Package config loads credentials and settings for sweepctl.
//
// The API token and account ID come from environment variables, with an
// optional .env file picked up from the working directory. Non-secret
// settings may also live in a sweepctl.yml file; environment variables
// always win over file values.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables.
const (
	EnvAPIToken   = "CLOUDFLARE_API_TOKEN"
	EnvAccountID  = "CLOUDFLARE_ACCOUNT_ID"
	EnvAPIBase    = "SWEEPCTL_API_BASE"
	EnvDelayMS    = "SWEEPCTL_DELAY_MS"
	EnvConfigPath = "SWEEPCTL_CONFIG_PATH"
)

// DefaultConfigFile is looked up in the working directory when
// SWEEPCTL_CONFIG_PATH is unset.
const DefaultConfigFile = "sweepctl.yml"

// Config holds everything the CLI needs to talk to the API.
type Config struct {
	AccountID string
	APIToken  string

	// APIBase overrides the API endpoint; empty means production.
	APIBase string

	// DelayMS is the inter-request pause in milliseconds; 0 means the
	// engine default.
	DelayMS int
}

// fileSettings are the non-secret knobs allowed in sweepctl.yml.
// Credentials deliberately have no file representation.
type fileSettings struct {
	APIBase string `yaml:"api_base"`
	DelayMS int    `yaml:"delay_ms"`
}

// Load reads configuration from the optional .env file, the optional
// settings file, and the environment, then validates it. It fails when
// the token or account ID is missing.
func Load() (*Config, error) {
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	cfg := &Config{}

	if settings, err := loadFile(); err != nil {
		return nil, err
	} else if settings != nil {
		cfg.APIBase = settings.APIBase
		cfg.DelayMS = settings.DelayMS
	}

	cfg.APIToken = os.Getenv(EnvAPIToken)
	cfg.AccountID = os.Getenv(EnvAccountID)
	if val := os.Getenv(EnvAPIBase); val != "" {
		cfg.APIBase = val
	}
	if val := os.Getenv(EnvDelayMS); val != "" {
		ms, err := strconv.Atoi(val)
		if err != nil || ms < 0 {
			return nil, fmt.Errorf("%s must be a non-negative integer, got %q", EnvDelayMS, val)
		}
		cfg.DelayMS = ms
	}

	if cfg.APIToken == "" {
		return nil, fmt.Errorf("%s environment variable is required", EnvAPIToken)
	}
	if cfg.AccountID == "" {
		return nil, fmt.Errorf("%s environment variable is required", EnvAccountID)
	}
	return cfg, nil
}

func loadFile() (*fileSettings, error) {
	path := os.Getenv(EnvConfigPath)
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if explicit {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
		// Default file is optional.
		return nil, nil
	}

	var settings fileSettings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	if settings.DelayMS < 0 {
		return nil, fmt.Errorf("config file %s: delay_ms must not be negative", path)
	}
	return &settings, nil
}

package battlenet

import "strings"

// Config holds the per-client defaults.
type Config struct {
	// APIKey is sent as the apikey query parameter unless a call overrides it
	APIKey string

	// Region selects the API host when a call does not name one. Defaults to us.
	Region Region
}

func (cfg *Config) validate() error {
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	if cfg.APIKey == "" {
		return &ConfigError{Field: "apiKey", Err: ErrMissingAPIKey}
	}
	if cfg.Region == "" {
		cfg.Region = DefaultRegion
	}
	return nil
}

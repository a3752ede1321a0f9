package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	BattleNet BattleNetConfig `mapstructure:"battlenet"`
	Output    OutputConfig    `mapstructure:"output"`
	Filter    FilterConfig    `mapstructure:"filter"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// BattleNetConfig holds API connection details
type BattleNetConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	Region  string        `mapstructure:"region"`
	Timeout time.Duration `mapstructure:"timeout"`
	// Regions is the set queried by the realms command
	Regions []string `mapstructure:"regions"`
}

// OutputConfig controls how responses are printed
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// FilterConfig contains named filter expressions
type FilterConfig struct {
	Presets map[string]FilterPreset `mapstructure:"presets"`
}

// FilterPreset is a reusable filter with the selector it applies to
type FilterPreset struct {
	Description string `mapstructure:"description"`
	Select      string `mapstructure:"select"`
	Expression  string `mapstructure:"expression"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/s0up4200/armory/battlenet"
	"github.com/s0up4200/armory/format"
)

// EnvPrefix prefixes every environment override, e.g. ARMORY_BATTLENET_API_KEY
const EnvPrefix = "ARMORY"

// Load loads the configuration from an optional file, a .env file and the environment
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		v.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".armory"))
		}

		v.AddConfigPath("/etc/armory/")
	}

	// The file is optional unless named explicitly; the API key may come from the environment
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Battle.net defaults
	v.SetDefault("battlenet.api_key", "")
	v.SetDefault("battlenet.region", string(battlenet.DefaultRegion))
	v.SetDefault("battlenet.timeout", "30s")
	v.SetDefault("battlenet.regions", []string{"us", "eu"})

	// Output defaults
	v.SetDefault("output.format", "json")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.BattleNet.APIKey == "" || cfg.BattleNet.APIKey == "your-api-key-here" {
		return fmt.Errorf("battlenet.api_key must be set to a valid API key")
	}

	if _, err := battlenet.ResolveHost(battlenet.Region(cfg.BattleNet.Region)); err != nil {
		return fmt.Errorf("invalid battlenet.region: %s", cfg.BattleNet.Region)
	}
	for _, region := range cfg.BattleNet.Regions {
		if _, err := battlenet.ResolveHost(battlenet.Region(region)); err != nil {
			return fmt.Errorf("invalid battlenet.regions entry: %s", region)
		}
	}

	if cfg.BattleNet.Timeout < 0 {
		return fmt.Errorf("battlenet.timeout must not be negative")
	}

	outFormat, err := format.ParseFormat(cfg.Output.Format)
	if err != nil {
		return fmt.Errorf("invalid output.format: %w", err)
	}
	cfg.Output.Format = string(outFormat)

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	for name, preset := range cfg.Filter.Presets {
		if strings.TrimSpace(preset.Expression) == "" {
			return fmt.Errorf("filter preset '%s' has no expression", name)
		}
	}

	return nil
}

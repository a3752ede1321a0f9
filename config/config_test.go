package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		BattleNet: BattleNetConfig{
			APIKey:  "valid-api-key",
			Region:  "us",
			Regions: []string{"us", "eu"},
		},
		Output: OutputConfig{Format: "json"},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(cfg *Config)
		wantErr     bool
		errContains string
	}{
		{
			name:   "valid config",
			mutate: func(cfg *Config) {},
		},
		{
			name:        "missing API key",
			mutate:      func(cfg *Config) { cfg.BattleNet.APIKey = "" },
			wantErr:     true,
			errContains: "battlenet.api_key",
		},
		{
			name:        "placeholder API key",
			mutate:      func(cfg *Config) { cfg.BattleNet.APIKey = "your-api-key-here" },
			wantErr:     true,
			errContains: "battlenet.api_key",
		},
		{
			name:        "retired region",
			mutate:      func(cfg *Config) { cfg.BattleNet.Region = "kr" },
			wantErr:     true,
			errContains: "invalid battlenet.region: kr",
		},
		{
			name:        "retired region in realms list",
			mutate:      func(cfg *Config) { cfg.BattleNet.Regions = []string{"us", "tw"} },
			wantErr:     true,
			errContains: "invalid battlenet.regions entry: tw",
		},
		{
			name:        "unknown output format",
			mutate:      func(cfg *Config) { cfg.Output.Format = "xml" },
			wantErr:     true,
			errContains: "output.format",
		},
		{
			name:        "invalid logging level",
			mutate:      func(cfg *Config) { cfg.Logging.Level = "trace" },
			wantErr:     true,
			errContains: "invalid logging level: trace",
		},
		{
			name:        "invalid logging format",
			mutate:      func(cfg *Config) { cfg.Logging.Format = "xml" },
			wantErr:     true,
			errContains: "invalid logging format: xml",
		},
		{
			name: "preset without expression",
			mutate: func(cfg *Config) {
				cfg.Filter.Presets = map[string]FilterPreset{"online": {Select: "realms"}}
			},
			wantErr:     true,
			errContains: "filter preset 'online'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("validate() error = %q, want it to contain %q", err.Error(), tt.errContains)
			}
		})
	}
}

func TestValidateNormalizesOutputFormat(t *testing.T) {
	for _, name := range []string{"yml", " YAML "} {
		cfg := validConfig()
		cfg.Output.Format = name
		if err := validate(cfg); err != nil {
			t.Fatalf("validate() with format %q: %v", name, err)
		}
		if cfg.Output.Format != "yaml" {
			t.Errorf("Output.Format = %q for %q, want %q", cfg.Output.Format, name, "yaml")
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `battlenet:
  api_key: file-key
  region: eu
  timeout: 10s
output:
  format: yaml
filter:
  presets:
    online:
      description: Realms that are up
      select: realms
      expression: status
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.BattleNet.APIKey != "file-key" {
		t.Errorf("APIKey = %q", cfg.BattleNet.APIKey)
	}
	if cfg.BattleNet.Region != "eu" {
		t.Errorf("Region = %q", cfg.BattleNet.Region)
	}
	if cfg.BattleNet.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v", cfg.BattleNet.Timeout)
	}
	if cfg.Output.Format != "yaml" {
		t.Errorf("Output.Format = %q", cfg.Output.Format)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "console" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
	preset, ok := cfg.Filter.Presets["online"]
	if !ok || preset.Select != "realms" || preset.Expression != "status" {
		t.Errorf("Presets = %+v", cfg.Filter.Presets)
	}
}

func TestLoadEnvironmentOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("battlenet:\n  api_key: file-key\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("ARMORY_BATTLENET_API_KEY", "env-key")
	t.Setenv("ARMORY_BATTLENET_REGION", "eu")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BattleNet.APIKey != "env-key" {
		t.Errorf("APIKey = %q, want env-key", cfg.BattleNet.APIKey)
	}
	if cfg.BattleNet.Region != "eu" {
		t.Errorf("Region = %q, want eu", cfg.BattleNet.Region)
	}
	if cfg.BattleNet.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want default 30s", cfg.BattleNet.Timeout)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Setenv("ARMORY_BATTLENET_API_KEY", "env-key")

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

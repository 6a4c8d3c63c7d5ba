package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/apex/log"
)

// Tabs are the dashboard tabs, in display order
var Tabs = []string{"map", "analytics", "report", "tasks"}

var logFormats = map[string]bool{"cli": true, "json": true, "text": true}

// Load reads config from path, applying defaults for missing values
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrCreate loads config or creates default if missing
func LoadOrCreate(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}
		return cfg, Save(path, cfg)
	}
	return Load(path)
}

// Save writes config to path
func Save(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(cfg)
}

// Validate rejects settings the dashboard cannot render with
func (c *Config) Validate() error {
	if c.Data.Dir == "" {
		return fmt.Errorf("data.dir must be set")
	}
	if c.Data.StoreFile == "" {
		return fmt.Errorf("data.store_file must be set")
	}
	if c.Dashboard.RecentCount < 0 {
		return fmt.Errorf("dashboard.recent_count must not be negative, got %d", c.Dashboard.RecentCount)
	}
	if !validTab(c.Dashboard.DefaultTab) {
		return fmt.Errorf("dashboard.default_tab: unknown tab %q", c.Dashboard.DefaultTab)
	}
	if c.Map.Width <= 0 || c.Map.Height <= 0 {
		return fmt.Errorf("map size must be positive, got %dx%d", c.Map.Width, c.Map.Height)
	}
	if !logFormats[c.Logging.Format] {
		return fmt.Errorf("logging.format: unknown format %q", c.Logging.Format)
	}
	if _, err := log.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}

// StorePath is the full path of the report store file
func (c *Config) StorePath() string {
	return filepath.Join(c.Data.Dir, c.Data.StoreFile)
}

func validTab(name string) bool {
	for _, t := range Tabs {
		if t == name {
			return true
		}
	}
	return false
}

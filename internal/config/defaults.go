package config

import (
	"os"
	"path/filepath"
)

// DefaultDir is where ecopatrol keeps its data unless configured otherwise
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "ecopatrol"
	}
	return filepath.Join(home, "ecopatrol")
}

// DefaultConfig returns configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Dir:       DefaultDir(),
			StoreFile: "reports.jsonl",
		},
		Dashboard: DashboardConfig{
			RecentCount: 3,
			DefaultTab:  "map",
		},
		Map: MapConfig{
			Width:  60,
			Height: 20,
		},
		Trend: TrendConfig{
			Seed: 0,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "cli",
		},
	}
}

package config

// Config holds the ecopatrol configuration
type Config struct {
	Data      DataConfig      `toml:"data"`
	Dashboard DashboardConfig `toml:"dashboard"`
	Map       MapConfig       `toml:"map"`
	Trend     TrendConfig     `toml:"trend"`
	Logging   LoggingConfig   `toml:"logging"`
}

type DataConfig struct {
	Dir       string `toml:"dir"`
	StoreFile string `toml:"store_file"`
}

type DashboardConfig struct {
	RecentCount int    `toml:"recent_count"`
	DefaultTab  string `toml:"default_tab"`
}

// MapConfig sizes the terminal map grid in characters
type MapConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type TrendConfig struct {
	Seed int64 `toml:"seed"` // 0 = random per run
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // cli, json or text
}

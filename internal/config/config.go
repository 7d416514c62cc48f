// Package config loads crit configuration from <workspace>/.crit/config.json.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete crit configuration
type Config struct {
	Version       int    `json:"version" mapstructure:"version"`
	WorkspaceRoot string `json:"workspaceRoot" mapstructure:"workspaceRoot"`

	Crawl    CrawlConfig    `json:"crawl" mapstructure:"crawl"`
	Analyzer AnalyzerConfig `json:"analyzer" mapstructure:"analyzer"`
	Logging  LoggingConfig  `json:"logging" mapstructure:"logging"`
}

// CrawlConfig controls the dependency crawler
type CrawlConfig struct {
	// DefaultDepth is the analysis depth used when no --depth flag is given
	// (quick, standard, or deep)
	DefaultDepth string `json:"defaultDepth" mapstructure:"defaultDepth"`

	// MaxFiles caps the total number of files a single crawl will collect
	MaxFiles int `json:"maxFiles" mapstructure:"maxFiles"`

	// ExtraIgnores are ignore patterns applied in addition to .gitignore
	ExtraIgnores []string `json:"extraIgnores" mapstructure:"extraIgnores"`
}

// AnalyzerConfig controls the built-in analyzer
type AnalyzerConfig struct {
	// Categories enables or disables each built-in pass
	Security        bool `json:"security" mapstructure:"security"`
	Performance     bool `json:"performance" mapstructure:"performance"`
	Maintainability bool `json:"maintainability" mapstructure:"maintainability"`
}

// LoggingConfig controls logging output
type LoggingConfig struct {
	Level  string `json:"level" mapstructure:"level"`
	Format string `json:"format" mapstructure:"format"`
}

// DefaultConfig returns the configuration used when no config file exists
func DefaultConfig() *Config {
	return &Config{
		Version:       1,
		WorkspaceRoot: ".",
		Crawl: CrawlConfig{
			DefaultDepth: "standard",
			MaxFiles:     50,
		},
		Analyzer: AnalyzerConfig{
			Security:        true,
			Performance:     true,
			Maintainability: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "human",
		},
	}
}

// Load loads configuration from <workspaceRoot>/.crit/config.json.
// A missing config file is not an error; defaults are returned.
func Load(workspaceRoot string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("version", 1)
	v.SetDefault("workspaceRoot", ".")
	v.SetDefault("crawl.defaultDepth", "standard")
	v.SetDefault("crawl.maxFiles", 50)
	v.SetDefault("analyzer.security", true)
	v.SetDefault("analyzer.performance", true)
	v.SetDefault("analyzer.maintainability", true)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "human")

	// Configure viper
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(workspaceRoot, ".crit"))

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// If config doesn't exist, return default config
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Crawl.DefaultDepth {
	case "quick", "standard", "deep":
	default:
		return fmt.Errorf("invalid crawl.defaultDepth: %q", c.Crawl.DefaultDepth)
	}
	if c.Crawl.MaxFiles <= 0 {
		return fmt.Errorf("crawl.maxFiles must be positive, got %d", c.Crawl.MaxFiles)
	}
	return nil
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory
const DefaultPath = "shoeinv.yml"

type Config struct {
	InventoryFile string `yaml:"inventory_file"`
	LogLevel      string `yaml:"log_level"`
	LogFile       string `yaml:"log_file"`
	Color         *bool  `yaml:"color"`
}

func LoadConfig(configPath string) (*Config, error) {
	var cfg Config
	data, err := os.ReadFile(configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// no config file, defaults only
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}
	cfg.setDefaults()

	// Resolve relative paths
	if !filepath.IsAbs(cfg.InventoryFile) {
		cfg.InventoryFile = filepath.Join(filepath.Dir(configPath), cfg.InventoryFile)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.InventoryFile == "" {
		c.InventoryFile = "inventory.txt"
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
	if c.LogFile == "" {
		c.LogFile = "stderr"
	}
	if c.Color == nil {
		on := true
		c.Color = &on
	}
}

// ColorEnabled reports whether console output should be colored
func (c *Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}

func (c *Config) Validate() error {
	if c.InventoryFile == "" {
		return fmt.Errorf("inventory_file is required")
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	if c.LogFile == "" {
		return fmt.Errorf("log_file is required")
	}
	return nil
}

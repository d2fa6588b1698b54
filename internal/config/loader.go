package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	DefaultDataDir = ".readmaster"
	ConfigFileName = "readmaster.json"
)

// LoadFromFile loads configuration from a specific file. An empty path loads
// defaults only. The data directory is created if it does not exist.
func LoadFromFile(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if err := loadConfigFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := ensureDataDir(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load loads configuration from file, environment, and defaults. Environment
// variables use the READMASTER_ prefix (READMASTER_DATA_DIR etc).
func Load() (*Config, error) {
	cfg := DefaultConfig()

	setupViper()

	configPath := viper.GetString("config")
	if configPath == "" {
		configPath = findConfigFile()
	}
	if configPath != "" {
		if err := loadConfigFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if dataDir := viper.GetString("data-dir"); dataDir != "" {
		cfg.DataDir = dataDir
	}

	if err := ensureDataDir(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setupViper() {
	viper.SetEnvPrefix("READMASTER")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// findConfigFile probes the default data directory for a config file.
// A missing file is not an error; defaults apply.
func findConfigFile() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(homeDir, DefaultDataDir, ConfigFileName)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

func ensureDataDir(cfg *Config) error {
	if cfg.DataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}
		cfg.DataDir = filepath.Join(homeDir, DefaultDataDir)
	}

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", cfg.DataDir, err)
	}

	return nil
}

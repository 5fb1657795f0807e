package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	// Simkl
	SimklClientID string
	SimklBaseURL  string // empty means the public API

	// Search cache
	SearchCacheSize int
	SearchCacheTTL  time.Duration

	// Refresh
	RefreshCron string // cron spec for the unreleased-entry refresh

	// Server
	ServerPort string

	// Paths
	DatabaseFile string // $CONFIG_DIR/list.db

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Load .env file if it exists (ignore if not found)
	_ = viper.ReadInConfig()

	viper.SetDefault("SEARCH_CACHE_SIZE", 100)
	viper.SetDefault("SEARCH_CACHE_TTL_SECONDS", 300)
	viper.SetDefault("REFRESH_CRON", "0 */12 * * *")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("LOG_LEVEL", "info")

	configDir := viper.GetString("CONFIG_DIR")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config", "movienarr")
	} else {
		absPath, err := filepath.Abs(configDir)
		if err != nil {
			return nil, fmt.Errorf("failed to get absolute path for CONFIG_DIR: %w", err)
		}
		configDir = absPath
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	config := &Config{
		SimklClientID:   viper.GetString("SIMKL_CLIENT_ID"),
		SimklBaseURL:    viper.GetString("SIMKL_BASE_URL"),
		SearchCacheSize: viper.GetInt("SEARCH_CACHE_SIZE"),
		SearchCacheTTL:  time.Duration(viper.GetInt("SEARCH_CACHE_TTL_SECONDS")) * time.Second,
		RefreshCron:     viper.GetString("REFRESH_CRON"),
		ServerPort:      viper.GetString("SERVER_PORT"),
		DatabaseFile:    filepath.Join(configDir, "list.db"),
		LogLevel:        viper.GetString("LOG_LEVEL"),
	}

	if config.SimklClientID == "" {
		return nil, fmt.Errorf("SIMKL_CLIENT_ID is required")
	}
	if config.SearchCacheSize <= 0 {
		return nil, fmt.Errorf("SEARCH_CACHE_SIZE must be positive")
	}

	return config, nil
}

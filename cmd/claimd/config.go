package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config holds the claim engine daemon configuration
type Config struct {
	// Core server settings
	ListenAddr string `json:"listen_addr" env:"CLAIMD_LISTEN_ADDR"`
	Port       int    `json:"port" env:"CLAIMD_PORT"`

	// Game content
	CatalogPath string `json:"catalog_path" env:"CLAIMD_CATALOG_PATH"`

	// Player store; empty keeps records in memory only
	DatabasePath string `json:"database_path" env:"CLAIMD_DATABASE_PATH"`

	// Claim tuning
	CooldownSeconds      int `json:"cooldown_seconds" env:"CLAIMD_COOLDOWN_SECONDS"`
	SettleTimeoutSeconds int `json:"settle_timeout_seconds" env:"CLAIMD_SETTLE_TIMEOUT_SECONDS"`

	// Chain settlement
	ChainURL      string `json:"chain_url" env:"CLAIMD_CHAIN_URL"`
	SimulateChain bool   `json:"simulate_chain" env:"CLAIMD_SIMULATE_CHAIN"`

	// Logging settings
	OpsLogPath string `json:"ops_log_path,omitempty" env:"CLAIMD_OPS_LOG_PATH"`
	AppLogPath string `json:"app_log_path,omitempty" env:"CLAIMD_APP_LOG_PATH"`
	LogLevel   string `json:"log_level,omitempty" env:"CLAIMD_LOG_LEVEL"`

	// Status file monitoring; empty disables it
	StatusDir             string `json:"status_dir,omitempty" env:"CLAIMD_STATUS_DIR"`
	StatusIntervalSeconds int    `json:"status_interval_seconds,omitempty" env:"CLAIMD_STATUS_INTERVAL_SECONDS"`
}

// LoadConfig loads configuration from a JSON file, then applies environment
// variable overrides.
func LoadConfig(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := json.Unmarshal(data, config); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	if err := env.Parse(config); err != nil {
		return fmt.Errorf("applying env overrides: %w", err)
	}

	// Convert relative paths to absolute paths based on config file location
	configDir := filepath.Dir(path)
	if config.CatalogPath != "" && !filepath.IsAbs(config.CatalogPath) {
		config.CatalogPath = filepath.Join(configDir, config.CatalogPath)
	}
	if config.DatabasePath != "" && !filepath.IsAbs(config.DatabasePath) {
		config.DatabasePath = filepath.Join(configDir, config.DatabasePath)
	}
	if config.OpsLogPath != "" && !filepath.IsAbs(config.OpsLogPath) {
		config.OpsLogPath = filepath.Join(configDir, config.OpsLogPath)
	}
	if config.AppLogPath != "" && !filepath.IsAbs(config.AppLogPath) {
		config.AppLogPath = filepath.Join(configDir, config.AppLogPath)
	}
	if config.StatusDir != "" && !filepath.IsAbs(config.StatusDir) {
		config.StatusDir = filepath.Join(configDir, config.StatusDir)
	}

	// Set defaults for optional settings
	if config.ListenAddr == "" {
		config.ListenAddr = "0.0.0.0"
	}
	if config.Port == 0 {
		config.Port = 8080
	}
	if config.CatalogPath == "" {
		return fmt.Errorf("catalog_path is required")
	}
	if config.CooldownSeconds == 0 {
		config.CooldownSeconds = 300 // 5 minutes
	}
	if config.SettleTimeoutSeconds == 0 {
		config.SettleTimeoutSeconds = 5
	}
	if config.ChainURL == "" && !config.SimulateChain {
		return fmt.Errorf("chain_url is required unless simulate_chain is set")
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.StatusIntervalSeconds == 0 {
		config.StatusIntervalSeconds = 60
	}

	return nil
}

// Package config handles the configuration for the memview tool
package config

import (
	"encoding/json"
	"os"
	"strconv"
)

// Config represents the tool configuration
type Config struct {
	// Segmentation settings
	SegmentBytes int `json:"segment_bytes"`
	ReadBytes    int `json:"read_bytes"`

	// Logging settings
	LogLevel  string `json:"log_level"`
	LogFormat string `json:"log_format"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		SegmentBytes: 64 * 1024,
		ReadBytes:    4 * 1024,
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// LoadFromFile loads configuration from a JSON file
func LoadFromFile(filepath string) (*Config, error) {
	config := DefaultConfig()

	file, err := os.ReadFile(filepath)
	if err != nil {
		return config, err
	}

	err = json.Unmarshal(file, config)
	if err != nil {
		return config, err
	}

	return config, nil
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() *Config {
	config := DefaultConfig()

	if val := os.Getenv("MEMVIEW_SEGMENT_BYTES"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			config.SegmentBytes = parsed
		}
	}

	if val := os.Getenv("MEMVIEW_READ_BYTES"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			config.ReadBytes = parsed
		}
	}

	if val := os.Getenv("MEMVIEW_LOG_LEVEL"); val != "" {
		config.LogLevel = val
	}

	if val := os.Getenv("MEMVIEW_LOG_FORMAT"); val != "" {
		config.LogFormat = val
	}

	return config
}

// SaveToFile saves configuration to a JSON file
func (c *Config) SaveToFile(filepath string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath, data, 0644)
}

package config

import (
	"os"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Data   DataConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// DataConfig holds the facility dataset source settings
type DataConfig struct {
	// FacilityFile is the path of the bundled ODHF delimited file.
	// Overridable mainly as a test seam; .csv and .xlsx are accepted.
	FacilityFile string
}

// Load reads configuration from environment variables, applying
// defaults for missing values. Every field has a safe default so the
// binary runs without any env setup.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Data: DataConfig{
			FacilityFile: getEnvOrDefault("ODHF_FILE", "data/odhf_facilities.csv"),
		},
	}
}

// getEnvOrDefault returns the value of the environment variable key, or
// defaultValue if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

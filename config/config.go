// Package config loads service settings from an optional YAML file with
// environment-variable overrides. Precedence: defaults < file < env.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTPPort    int
	DatabaseURL string
	LogLevel    string
}

type configFile struct {
	Server struct {
		HTTPPort int    `yaml:"http_port"`
		LogLevel string `yaml:"log_level"`
	} `yaml:"server"`
	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`
}

func Load(path string) (Config, error) {
	cfg := Config{
		HTTPPort: 5000,
		LogLevel: "info",
	}

	raw, err := os.ReadFile(path)
	if err == nil {
		var f configFile
		if unmarshalErr := yaml.Unmarshal(raw, &f); unmarshalErr != nil {
			return Config{}, fmt.Errorf("parse config file: %w", unmarshalErr)
		}
		if f.Server.HTTPPort > 0 {
			cfg.HTTPPort = f.Server.HTTPPort
		}
		if f.Server.LogLevel != "" {
			cfg.LogLevel = f.Server.LogLevel
		}
		if f.Database.URL != "" {
			cfg.DatabaseURL = f.Database.URL
		}
	}

	cfg.HTTPPort = envInt("PORT", cfg.HTTPPort)
	cfg.DatabaseURL = envOrDefault("DATABASE_URL", cfg.DatabaseURL)
	cfg.LogLevel = envOrDefault("LOG_LEVEL", cfg.LogLevel)

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("database url is not configured")
	}
	return cfg, nil
}

func envOrDefault(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

package app

import "fmt"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	WorkspacePath   string
	ManifestPath    string
	HealthcheckPort int
	LogFormat       string
	LogLevel        string
	WorkerCount     int
	NoColor         bool
}

// NewConfig validates a Config and applies defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.WorkspacePath == "" {
		return nil, fmt.Errorf("workspace path must not be empty")
	}
	if cfg.ManifestPath == "" {
		cfg.ManifestPath = "toolchain_manifest.json"
	}
	if cfg.WorkerCount < 1 {
		return nil, fmt.Errorf("worker count must be at least 1, got %d", cfg.WorkerCount)
	}
	if cfg.HealthcheckPort < 0 {
		return nil, fmt.Errorf("healthcheck port must not be negative, got %d", cfg.HealthcheckPort)
	}
	return &cfg, nil
}

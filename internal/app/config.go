package app

import "fmt"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	LogFormat string // "text" or "json"
	LogLevel  string // "debug", "info", "warn" or "error"

	PlanPath string // vehicles: optional HCL plan, empty means the built-in plan
	Region   string // vehicles: optional region key restricting the run
}

// NewConfig validates cfg and returns a copy with defaults applied.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	return &cfg, nil
}

package app

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration from env.
type Config struct {
	// Addr is the HTTP listen address of the API server.
	Addr string `envconfig:"ADDR" default:":8080"`
	// DataDir is the scan root holding per-symbol parquet files.
	DataDir string `envconfig:"DATA_DIR" default:"/data"`
	// LogLevel is debug | info | warn | error.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	// Workers bounds parallel source reads; 1 keeps scans sequential.
	Workers int `envconfig:"SCAN_WORKERS" default:"1"`
}

// LoadConfig reads config from environment.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &cfg, nil
}

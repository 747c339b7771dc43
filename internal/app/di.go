package app

import (
	"log/slog"

	"divscan/internal/scan"
	"divscan/internal/slogx"
)

// ProvideConfig loads config from environment (for Wire).
func ProvideConfig() (*Config, error) {
	return LoadConfig()
}

// ProvideLogger creates the application logger from config (for Wire).
func ProvideLogger(cfg *Config) *slog.Logger {
	return slogx.NewDefault(cfg.LogLevel)
}

// ProvideScanner creates the scan orchestrator from config (for Wire).
func ProvideScanner(cfg *Config, log *slog.Logger) *scan.Scanner {
	return scan.NewScanner(log, cfg.Workers)
}

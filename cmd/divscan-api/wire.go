//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"divscan/internal/app"
	"divscan/internal/server"
)

// InitializeApp builds App (Config + Logger + Server) via Wire.
func InitializeApp() (*App, error) {
	wire.Build(
		app.ProvideConfig,
		app.ProvideLogger,
		app.ProvideScanner,
		server.New,
		wire.Struct(new(App), "Config", "Logger", "Server"),
	)
	return nil, nil
}

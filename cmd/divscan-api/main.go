package main

import (
	"log/slog"
	"os"

	"divscan/internal/app"
	"divscan/internal/server"
	"divscan/internal/slogx"
)

// App holds application dependencies built by Wire.
type App struct {
	Config *app.Config
	Logger *slog.Logger
	Server *server.Server
}

func init() {
	slog.SetDefault(slogx.NewDefault("info"))
}

func main() {
	a, err := InitializeApp()
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(a.Logger)

	slog.Info("starting scan api",
		"addr", a.Config.Addr,
		"data_dir", a.Config.DataDir,
		"workers", a.Config.Workers)

	if err := app.Run(a.Server.HTTPServer(), a.Logger); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

// Command divscan scans per-symbol OHLCV parquet files for dividend and
// stock-split events from the command line.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/google/subcommands"

	"divscan/internal/slogx"
)

var logLevel = flag.String("log-level", "info", "log level (debug|info|warn|error)")

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&dividendsCmd{}, "scan")
	subcommands.Register(&splitsCmd{}, "scan")
	subcommands.Register(&listCmd{}, "scan")

	flag.Parse()
	slog.SetDefault(slogx.NewDefault(*logLevel))

	os.Exit(int(subcommands.Execute(context.Background())))
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"

	"github.com/google/subcommands"

	"divscan/internal/scan"
	"divscan/internal/source"
)

type dividendsCmd struct {
	ticker string
	name   string
}

func (*dividendsCmd) Name() string     { return "dividends" }
func (*dividendsCmd) Synopsis() string { return "scan a directory of OHLCV parquet files for dividends" }
func (*dividendsCmd) Usage() string {
	return `dividends [-ticker T] [-name SUBSTR] <data-dir>:
  Scan every parquet file in <data-dir> for non-zero dividend rows.
`
}

func (c *dividendsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "ticker", "", "filter by a specific stock ticker (case-insensitive)")
	f.StringVar(&c.name, "name", "", "only scan files whose name contains this substring")
}

func (c *dividendsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Println(c.Usage())
		return subcommands.ExitUsageError
	}
	return runDirScan(ctx, scan.ModeDividends, f.Arg(0), c.ticker, c.name)
}

type splitsCmd struct {
	ticker string
	name   string
}

func (*splitsCmd) Name() string     { return "splits" }
func (*splitsCmd) Synopsis() string { return "scan a directory of OHLCV parquet files for stock splits" }
func (*splitsCmd) Usage() string {
	return `splits [-ticker T] [-name SUBSTR] <data-dir>:
  Scan every parquet file in <data-dir> for non-zero stock-split rows.
`
}

func (c *splitsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "ticker", "", "filter by a specific stock ticker (case-insensitive)")
	f.StringVar(&c.name, "name", "", "only scan files whose name contains this substring")
}

func (c *splitsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Println(c.Usage())
		return subcommands.ExitUsageError
	}
	return runDirScan(ctx, scan.ModeSplits, f.Arg(0), c.ticker, c.name)
}

func runDirScan(ctx context.Context, mode scan.Mode, dataDir, ticker, name string) subcommands.ExitStatus {
	sources, err := source.FromDir(dataDir, name)
	if err != nil {
		fmt.Printf("Directory not usable: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(sources) == 0 {
		fmt.Println("No parquet files found.")
		return subcommands.ExitSuccess
	}

	fmt.Printf("Scanning %d files in %q for %s...\n", len(sources), dataDir, mode)

	scanner := scan.NewScanner(slog.Default(), 1)
	res, err := scanner.Scan(ctx, sources, scan.Options{Mode: mode, Symbol: ticker, NameContains: name})
	if err != nil {
		fmt.Printf("Scan failed: %v\n", err)
		return subcommands.ExitFailure
	}

	printSummary(res)
	printPreview(res.Events, mode.EventColumn(), false)
	return subcommands.ExitSuccess
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"

	"github.com/google/subcommands"

	"divscan/internal/export"
	"divscan/internal/scan"
	"divscan/internal/source"
)

type listCmd struct {
	ticker        string
	event         string
	output        string
	outputParquet string
	showAll       bool
}

func (*listCmd) Name() string { return "list" }
func (*listCmd) Synopsis() string {
	return "scan an explicit list of parquet files (shell globs welcome)"
}
func (*listCmd) Usage() string {
	return `list [-ticker T] [-event dividends|splits] [-output out.csv] [-output-parquet out.parquet] [-show-all] <file>...:
  Scan the given parquet files for event rows. Shell expansion like data/2025* is supported.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "ticker", "", "filter by a specific stock ticker (case-insensitive)")
	f.StringVar(&c.event, "event", "splits", "event to scan for: dividends or splits")
	f.StringVar(&c.output, "output", "", "CSV file to save matching records")
	f.StringVar(&c.outputParquet, "output-parquet", "", "parquet file to save matching records")
	f.BoolVar(&c.showAll, "show-all", false, "show all records instead of limiting the preview to 20 rows")
}

func (c *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	files := f.Args()
	if len(files) == 0 {
		fmt.Println("No files provided. Please make sure your pattern matched files.")
		return subcommands.ExitUsageError
	}

	var mode scan.Mode
	switch c.event {
	case "dividends":
		mode = scan.ModeDividends
	case "splits":
		mode = scan.ModeSplits
	default:
		fmt.Printf("Unknown event %q (use: dividends, splits).\n", c.event)
		return subcommands.ExitUsageError
	}

	fmt.Printf("Received %d file(s). First 5:\n", len(files))
	for i, p := range files {
		if i == 5 {
			fmt.Printf("  ...and %d more.\n", len(files)-5)
			break
		}
		fmt.Printf("  %d. %s\n", i+1, p)
	}
	fmt.Printf("\nScanning %d files for %s...\n", len(files), mode)

	scanner := scan.NewScanner(slog.Default(), 1)
	res, err := scanner.Scan(ctx, source.FromList(files), scan.Options{Mode: mode, Symbol: c.ticker})
	if err != nil {
		fmt.Printf("Scan failed: %v\n", err)
		return subcommands.ExitFailure
	}

	printSummary(res)
	if len(res.Events) == 0 {
		fmt.Printf("No %s records found.\n", mode)
		return subcommands.ExitSuccess
	}
	printPreview(res.Events, mode.EventColumn(), c.showAll)

	if c.output != "" {
		if err := export.NewSaver("csv", mode.EventColumn()).Save(res.Events, c.output); err != nil {
			fmt.Printf("Failed to write CSV: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("\nResults written to CSV: %s\n", c.output)
	}
	if c.outputParquet != "" {
		if err := export.NewSaver("parquet", mode.EventColumn()).Save(res.Events, c.outputParquet); err != nil {
			fmt.Printf("Failed to write parquet: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("\nResults written to parquet: %s\n", c.outputParquet)
	}
	return subcommands.ExitSuccess
}

package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"divscan/internal/model"
	"divscan/internal/scan"
)

// previewCap bounds the console preview unless -show-all is set.
const previewCap = 20

func printSummary(res *scan.Result) {
	fmt.Println("\nScan complete.")
	fmt.Printf("  Files scanned: %d\n", res.FilesScanned)
	fmt.Printf("  Files with data: %d\n", res.FilesWithData)
	fmt.Printf("  Files with errors: %d\n", res.FilesWithErrors)
	fmt.Printf("  Total records found: %d\n", res.TotalEvents)
	fmt.Printf("  Elapsed: %.2fs\n", res.Elapsed.Seconds())
}

func printPreview(events []model.EventRecord, eventCol string, showAll bool) {
	if len(events) == 0 {
		return
	}
	shown := events
	if !showAll && len(shown) > previewCap {
		shown = shown[:previewCap]
	}

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", model.ColTimestamp, model.ColSymbol, eventCol, "file")
	for _, rec := range shown {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			rec.Timestamp,
			rec.Symbol,
			strconv.FormatFloat(rec.Event(), 'f', -1, 64),
			rec.File)
	}
	w.Flush()
	if len(shown) < len(events) {
		fmt.Printf("... (showing %d of %d rows)\n", len(shown), len(events))
	}
}

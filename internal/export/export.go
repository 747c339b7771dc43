// Package export persists scan records to files, mirroring the in-memory
// record schema (timestamp, symbol, event column, file).
package export

import (
	"strings"

	"divscan/internal/model"
)

// Saver is the abstraction for writing one batch of event records.
// Callers inject the implementation; the CLI only depends on the interface.
type Saver interface {
	Save(recs []model.EventRecord, path string) error
	Extension() string
}

// NewSaver creates an implementation by format (csv, parquet, json).
// eventColumn names the event field in column-oriented outputs.
// Returns nil if the format is not supported.
func NewSaver(format, eventColumn string) Saver {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return CSVSaver{EventColumn: eventColumn}
	case "parquet":
		return ParquetSaver{}
	case "json":
		return JSONSaver{}
	default:
		return nil
	}
}

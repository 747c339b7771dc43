// Package scan implements the scan-filter-aggregate-indicator pipeline:
// schema validation, row filtering, moving-average computation and the
// per-source orchestration that folds everything into one result.
package scan

import (
	"fmt"

	"divscan/internal/model"
)

// Mode selects what a scan extracts from the sources.
type Mode int

const (
	// ModeDividends keeps rows with a non-zero dividends column.
	ModeDividends Mode = iota
	// ModeSplits keeps rows with a non-zero stock_splits column.
	ModeSplits
	// ModePrices keeps full price history and adds SMA/EMA columns.
	ModePrices
)

func (m Mode) String() string {
	switch m {
	case ModeDividends:
		return "dividends"
	case ModeSplits:
		return "splits"
	case ModePrices:
		return "prices"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// RequiredColumns returns the columns a source must declare to be admitted
// in this mode.
func (m Mode) RequiredColumns() []string {
	switch m {
	case ModeDividends:
		return []string{model.ColTimestamp, model.ColSymbol, model.ColDividends}
	case ModeSplits:
		return []string{model.ColTimestamp, model.ColSymbol, model.ColStockSplits}
	case ModePrices:
		return []string{model.ColTimestamp, model.ColSymbol, model.ColClose}
	default:
		return nil
	}
}

// EventColumn returns the column whose non-zero values gate row admission,
// or "" when the mode admits all rows.
func (m Mode) EventColumn() string {
	switch m {
	case ModeDividends:
		return model.ColDividends
	case ModeSplits:
		return model.ColStockSplits
	default:
		return ""
	}
}

// Options configures one scan invocation. Immutable once the scan starts.
type Options struct {
	Mode Mode
	// Symbol filters rows to a case-insensitive exact ticker match.
	Symbol string
	// NameContains narrows directory listings by file-name substring.
	NameContains string
}

func (o Options) validate() error {
	switch o.Mode {
	case ModeDividends, ModeSplits, ModePrices:
		return nil
	default:
		return fmt.Errorf("invalid scan mode %d", int(o.Mode))
	}
}

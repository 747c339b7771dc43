package scan

import (
	"strings"

	"divscan/internal/model"
	"divscan/internal/source"
)

// filterRows applies the symbol and event filters to a decoded table and
// returns the surviving rows in their original order.
//
// When the mode's event column is not among the table's declared columns the
// event filter is a no-op and all rows pass. This mirrors the permissive
// schema-on-read behavior callers depend on; do not tighten it here.
func filterRows(t source.Table, opts Options) []model.Bar {
	rows := t.Bars
	if opts.Symbol != "" {
		kept := rows[:0:0]
		for _, b := range rows {
			if strings.EqualFold(b.Symbol, opts.Symbol) {
				kept = append(kept, b)
			}
		}
		rows = kept
	}

	eventCol := opts.Mode.EventColumn()
	if eventCol == "" || !t.HasColumn(eventCol) {
		return rows
	}

	kept := rows[:0:0]
	for _, b := range rows {
		if eventValue(b, eventCol) != 0 {
			kept = append(kept, b)
		}
	}
	return kept
}

func eventValue(b model.Bar, col string) float64 {
	switch col {
	case model.ColDividends:
		return b.Dividends
	case model.ColStockSplits:
		return b.StockSplits
	default:
		return 0
	}
}

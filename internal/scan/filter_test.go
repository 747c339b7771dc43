package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"divscan/internal/model"
	"divscan/internal/source"
)

func eventTable(bars ...model.Bar) source.Table {
	return source.Table{
		Columns: map[string]struct{}{
			model.ColTimestamp: {},
			model.ColSymbol:    {},
			model.ColDividends: {},
		},
		Bars: bars,
	}
}

func TestFilterRows_NonZeroEvents(t *testing.T) {
	table := eventTable(
		model.Bar{Timestamp: 1, Symbol: "AAPL", Dividends: 0.22},
		model.Bar{Timestamp: 2, Symbol: "AAPL", Dividends: 0},
		model.Bar{Timestamp: 3, Symbol: "AAPL", Dividends: 0.24},
	)

	rows := filterRows(table, Options{Mode: ModeDividends})
	assert.Len(t, rows, 2)
	for _, b := range rows {
		assert.NotZero(t, b.Dividends)
	}
}

func TestFilterRows_SymbolCaseInsensitiveExact(t *testing.T) {
	table := eventTable(
		model.Bar{Timestamp: 1, Symbol: "AAPL", Dividends: 0.22},
		model.Bar{Timestamp: 2, Symbol: "MSFT", Dividends: 0.68},
	)

	rows := filterRows(table, Options{Mode: ModeDividends, Symbol: "aapl"})
	assert.Len(t, rows, 1)
	assert.Equal(t, "AAPL", rows[0].Symbol)

	// No partial matching.
	rows = filterRows(table, Options{Mode: ModeDividends, Symbol: "AAP"})
	assert.Empty(t, rows)
}

func TestFilterRows_MissingEventColumn(t *testing.T) {
	// The event filter silently no-ops when the event column is not among
	// the declared columns; all rows pass. Permissive by contract.
	table := source.Table{
		Columns: map[string]struct{}{
			model.ColTimestamp: {},
			model.ColSymbol:    {},
		},
		Bars: []model.Bar{
			{Timestamp: 1, Symbol: "AAPL"},
			{Timestamp: 2, Symbol: "AAPL"},
		},
	}

	rows := filterRows(table, Options{Mode: ModeDividends})
	assert.Len(t, rows, 2)
}

func TestFilterRows_PricesModeKeepsAll(t *testing.T) {
	table := eventTable(
		model.Bar{Timestamp: 1, Symbol: "AAPL", Close: 100},
		model.Bar{Timestamp: 2, Symbol: "AAPL", Close: 101, Dividends: 0.22},
	)

	rows := filterRows(table, Options{Mode: ModePrices})
	assert.Len(t, rows, 2)
}

func TestFilterRows_Empty(t *testing.T) {
	rows := filterRows(eventTable(), Options{Mode: ModeSplits, Symbol: "AAPL"})
	assert.Empty(t, rows)
}

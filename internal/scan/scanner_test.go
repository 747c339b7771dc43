package scan

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"divscan/internal/slogx"
	"divscan/internal/source"
)

type dividendFixture struct {
	Timestamp int64   `parquet:"timestamp"`
	Symbol    string  `parquet:"symbol"`
	Dividends float64 `parquet:"dividends"`
}

type priceFixture struct {
	Timestamp int64   `parquet:"timestamp"`
	Symbol    string  `parquet:"symbol"`
	Close     float64 `parquet:"close"`
}

func writeFixture[T any](t *testing.T, dir, name string, rows []T) {
	t.Helper()
	require.NoError(t, parquet.WriteFile(filepath.Join(dir, name), rows))
}

func writeCorrupt(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("not a parquet file"), 0644))
}

func testScanner(workers int) *Scanner {
	return NewScanner(slogx.NewDefault("error"), workers)
}

func dividendDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFixture(t, dir, "aapl.parquet", []dividendFixture{
		{Timestamp: 1, Symbol: "AAPL", Dividends: 0.22},
		{Timestamp: 2, Symbol: "AAPL", Dividends: 0},
		{Timestamp: 3, Symbol: "AAPL", Dividends: 0.24},
	})
	writeFixture(t, dir, "msft.parquet", []dividendFixture{
		{Timestamp: 1, Symbol: "MSFT", Dividends: 0},
		{Timestamp: 2, Symbol: "MSFT", Dividends: 0},
	})
	writeCorrupt(t, dir, "bad.parquet")
	return dir
}

func TestScan_DividendScenario(t *testing.T) {
	sources, err := source.FromDir(dividendDir(t), "")
	require.NoError(t, err)
	require.Len(t, sources, 3)

	res, err := testScanner(1).Scan(context.Background(), sources, Options{Mode: ModeDividends})
	require.NoError(t, err)

	assert.Equal(t, 3, res.FilesScanned)
	assert.Equal(t, 1, res.FilesWithData)
	assert.Equal(t, 1, res.FilesWithErrors)
	assert.Equal(t, 2, res.TotalEvents)
	require.Len(t, res.Events, 2)
	for _, rec := range res.Events {
		assert.Equal(t, "aapl.parquet", rec.File)
		assert.Equal(t, "AAPL", rec.Symbol)
		require.NotNil(t, rec.Dividends)
		assert.NotZero(t, *rec.Dividends)
		assert.Nil(t, rec.StockSplits)
	}
}

func TestScan_TickerFilterCaseInsensitive(t *testing.T) {
	sources, err := source.FromDir(dividendDir(t), "")
	require.NoError(t, err)

	res, err := testScanner(1).Scan(context.Background(), sources, Options{Mode: ModeDividends, Symbol: "aapl"})
	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalEvents)

	res, err = testScanner(1).Scan(context.Background(), sources, Options{Mode: ModeDividends, Symbol: "msft"})
	require.NoError(t, err)
	assert.Zero(t, res.TotalEvents)
	assert.Equal(t, "no matching rows", res.Note)
}

func TestScan_SchemaRejectionIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	// Declares close instead of dividends: rejected in dividends mode.
	writeFixture(t, dir, "prices.parquet", []priceFixture{
		{Timestamp: 1, Symbol: "AAPL", Close: 100},
	})

	sources, err := source.FromDir(dir, "")
	require.NoError(t, err)

	res, err := testScanner(1).Scan(context.Background(), sources, Options{Mode: ModeDividends})
	require.NoError(t, err)
	assert.Equal(t, 1, res.FilesScanned)
	assert.Zero(t, res.FilesWithData)
	assert.Zero(t, res.FilesWithErrors)
	assert.Empty(t, res.Events)
}

func TestScan_PricesModeIndicators(t *testing.T) {
	dir := t.TempDir()
	rows := make([]priceFixture, 250)
	for i := range rows {
		rows[i] = priceFixture{Timestamp: int64(i + 1), Symbol: "AAPL", Close: 100 + float64(i)}
	}
	writeFixture(t, dir, "aapl.parquet", rows)

	sources, err := source.FromDir(dir, "")
	require.NoError(t, err)

	res, err := testScanner(1).Scan(context.Background(), sources, Options{Mode: ModePrices})
	require.NoError(t, err)

	require.Len(t, res.Prices, 250)
	assert.Equal(t, 1, res.FilesWithData)
	assert.Equal(t, 250, res.TotalEvents)
	assert.Empty(t, res.Events)

	for i := 0; i < 4; i++ {
		assert.Nil(t, res.Prices[i].SMA5)
	}
	require.NotNil(t, res.Prices[4].SMA5)
	assert.InDelta(t, 102, *res.Prices[4].SMA5, 1e-9)
	assert.Equal(t, 100.0, res.Prices[0].EMA50)
	assert.Equal(t, "aapl.parquet", res.Prices[0].File)
}

func TestScan_Idempotent(t *testing.T) {
	sources, err := source.FromDir(dividendDir(t), "")
	require.NoError(t, err)

	first, err := testScanner(1).Scan(context.Background(), sources, Options{Mode: ModeDividends})
	require.NoError(t, err)
	second, err := testScanner(1).Scan(context.Background(), sources, Options{Mode: ModeDividends})
	require.NoError(t, err)

	assert.Equal(t, first.Events, second.Events)
	assert.Equal(t, first.FilesWithErrors, second.FilesWithErrors)
}

func TestScan_ParallelPreservesOrder(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.parquet", "b.parquet", "c.parquet", "d.parquet"} {
		sym := name[:1]
		writeFixture(t, dir, name, []dividendFixture{
			{Timestamp: 1, Symbol: sym, Dividends: 1},
		})
	}

	sources, err := source.FromDir(dir, "")
	require.NoError(t, err)

	seq, err := testScanner(1).Scan(context.Background(), sources, Options{Mode: ModeDividends})
	require.NoError(t, err)
	par, err := testScanner(4).Scan(context.Background(), sources, Options{Mode: ModeDividends})
	require.NoError(t, err)

	assert.Equal(t, seq.Events, par.Events)
	assert.Equal(t, seq.FilesWithData, par.FilesWithData)
}

func TestScan_EmptySourceSet(t *testing.T) {
	res, err := testScanner(1).Scan(context.Background(), nil, Options{Mode: ModeSplits})
	require.NoError(t, err)
	assert.Zero(t, res.FilesScanned)
	assert.Equal(t, "no parquet files found", res.Note)
	assert.NotNil(t, res.Events)
}

func TestScan_InvalidMode(t *testing.T) {
	_, err := testScanner(1).Scan(context.Background(), nil, Options{Mode: Mode(99)})
	assert.Error(t, err)
}

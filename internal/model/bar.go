package model

// Canonical column names of a per-symbol OHLCV parquet file.
const (
	ColTimestamp   = "timestamp"
	ColSymbol      = "symbol"
	ColOpen        = "open"
	ColHigh        = "high"
	ColLow         = "low"
	ColClose       = "close"
	ColVolume      = "volume"
	ColDividends   = "dividends"
	ColStockSplits = "stock_splits"
)

// Bar represents one row of an OHLCV file. Dividends and StockSplits are
// event columns: zero means no event occurred on that bar, not "unknown".
// Parquet nulls decode to zero values; which columns a file actually
// declares is tracked on the table, not on the row.
type Bar struct {
	Timestamp   int64
	Symbol      string
	Open        float64
	High        float64
	Low         float64
	Close       float64
	Volume      float64
	Dividends   float64
	StockSplits float64
}

// Indicators holds the moving averages computed for one bar in time order.
// SMA values are nil during the warm-up period (fewer than w bars seen);
// EMA values are defined from the first bar.
type Indicators struct {
	SMA5   *float64
	SMA20  *float64
	SMA50  *float64
	SMA100 *float64
	SMA200 *float64
	EMA50  float64
	EMA100 float64
	EMA200 float64
}

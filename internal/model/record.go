package model

// EventRecord is one dividend or stock-split row tagged with its source
// file. Exactly one of Dividends/StockSplits is set, depending on the scan
// mode. Shared by the API response, console preview and file export.
type EventRecord struct {
	Timestamp   int64    `json:"timestamp" parquet:"timestamp"`
	Symbol      string   `json:"symbol" parquet:"symbol"`
	Dividends   *float64 `json:"dividends,omitempty" parquet:"dividends,optional"`
	StockSplits *float64 `json:"stock_splits,omitempty" parquet:"stock_splits,optional"`
	File        string   `json:"file" parquet:"file"`
}

// Event returns whichever event value is set on the record.
func (r EventRecord) Event() float64 {
	if r.Dividends != nil {
		return *r.Dividends
	}
	if r.StockSplits != nil {
		return *r.StockSplits
	}
	return 0
}

// PriceRecord is one full-history row with indicator columns, tagged with
// its source file. SMA columns are null during the warm-up period.
type PriceRecord struct {
	Timestamp   int64    `json:"timestamp" parquet:"timestamp"`
	Symbol      string   `json:"symbol" parquet:"symbol"`
	Open        float64  `json:"open" parquet:"open"`
	High        float64  `json:"high" parquet:"high"`
	Low         float64  `json:"low" parquet:"low"`
	Close       float64  `json:"close" parquet:"close"`
	Volume      float64  `json:"volume" parquet:"volume"`
	Dividends   float64  `json:"dividends" parquet:"dividends"`
	StockSplits float64  `json:"stock_splits" parquet:"stock_splits"`
	SMA5        *float64 `json:"sma_5" parquet:"sma_5,optional"`
	SMA20       *float64 `json:"sma_20" parquet:"sma_20,optional"`
	SMA50       *float64 `json:"sma_50" parquet:"sma_50,optional"`
	SMA100      *float64 `json:"sma_100" parquet:"sma_100,optional"`
	SMA200      *float64 `json:"sma_200" parquet:"sma_200,optional"`
	EMA50       float64  `json:"ema_50" parquet:"ema_50"`
	EMA100      float64  `json:"ema_100" parquet:"ema_100"`
	EMA200      float64  `json:"ema_200" parquet:"ema_200"`
	File        string   `json:"file" parquet:"file"`
}

package scan

import (
	"sort"

	"divscan/internal/model"
)

// WithIndicators stable-sorts bars ascending by timestamp and computes
// SMA windows 5/20/50/100/200 and EMA windows 50/100/200 over the sorted
// closes; the window set is a fixed constant of the pipeline. All window math is
// sequence-position-dependent, so the pre-sort is mandatory here rather than
// assumed of the caller. Returns the sorted bars and one Indicators value
// per bar. SMA values are nil during the warm-up period; EMA values are
// defined from the first bar (ema[0] == close[0]).
func WithIndicators(bars []model.Bar) ([]model.Bar, []model.Indicators) {
	sorted := make([]model.Bar, len(bars))
	copy(sorted, bars)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp < sorted[j].Timestamp
	})

	n := len(sorted)
	out := make([]model.Indicators, n)
	if n == 0 {
		return sorted, out
	}

	// Prefix sums make every SMA window O(1) per row.
	prefix := make([]float64, n+1)
	for i, b := range sorted {
		prefix[i+1] = prefix[i] + b.Close
	}
	smaAt := func(i, w int) *float64 {
		if i+1 < w {
			return nil
		}
		v := (prefix[i+1] - prefix[i+1-w]) / float64(w)
		return &v
	}

	ema50 := emaSeries(sorted, 50)
	ema100 := emaSeries(sorted, 100)
	ema200 := emaSeries(sorted, 200)

	for i := range sorted {
		out[i] = model.Indicators{
			SMA5:   smaAt(i, 5),
			SMA20:  smaAt(i, 20),
			SMA50:  smaAt(i, 50),
			SMA100: smaAt(i, 100),
			SMA200: smaAt(i, 200),
			EMA50:  ema50[i],
			EMA100: ema100[i],
			EMA200: ema200[i],
		}
	}
	return sorted, out
}

// emaSeries computes the recursive (non-adjusted) exponential moving
// average with alpha = 2/(w+1).
func emaSeries(bars []model.Bar, w int) []float64 {
	out := make([]float64, len(bars))
	if len(bars) == 0 {
		return out
	}
	alpha := 2.0 / float64(w+1)
	out[0] = bars[0].Close
	for i := 1; i < len(bars); i++ {
		out[i] = alpha*bars[i].Close + (1-alpha)*out[i-1]
	}
	return out
}

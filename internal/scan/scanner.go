package scan

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"divscan/internal/model"
	"divscan/internal/source"
)

// Result is the aggregate of one scan invocation. Rows are concatenated in
// source order and keep their within-source order; they are never sorted or
// deduplicated across sources. Exactly one of Events/Prices is populated,
// depending on the mode.
type Result struct {
	Mode            Mode
	FilesScanned    int
	FilesWithData   int
	FilesWithErrors int
	// TotalEvents counts matched event rows (dividends or splits per mode);
	// in prices mode it counts output rows.
	TotalEvents int
	Elapsed     time.Duration
	Events      []model.EventRecord
	Prices      []model.PriceRecord
	// Note explains an empty result; empty results are not errors.
	Note string
}

// Scanner drives the per-source pipeline: open, validate schema, decode,
// filter, optionally compute indicators, and fold everything into a Result.
// A Scanner is stateless across scans and safe for concurrent use; each
// invocation owns its own accumulators.
type Scanner struct {
	log     *slog.Logger
	workers int
}

// NewScanner returns a Scanner logging through log. workers bounds how many
// sources are read in parallel; values below 2 keep the scan sequential.
func NewScanner(log *slog.Logger, workers int) *Scanner {
	if log == nil {
		log = slog.Default()
	}
	if workers < 1 {
		workers = 1
	}
	return &Scanner{log: log, workers: workers}
}

// outcome is the tagged result of one source: admitted rows, a schema
// rejection, or a failure. Folded by Scan into counters.
type outcome struct {
	events   []model.EventRecord
	prices   []model.PriceRecord
	rejected bool
	err      error
}

// Scan runs the pipeline over sources. Per-source failures are absorbed
// into FilesWithErrors and never abort the scan; only malformed Options
// produce an error (missing directories fail earlier, at resolution).
func (s *Scanner) Scan(ctx context.Context, sources []source.Source, opts Options) (*Result, error) {
	start := time.Now()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	res := &Result{
		Mode:         opts.Mode,
		FilesScanned: len(sources),
		Events:       []model.EventRecord{},
		Prices:       []model.PriceRecord{},
	}

	outcomes := make([]outcome, len(sources))
	if s.workers > 1 {
		// Bounded parallel reads. Outcomes land in an indexed slice and are
		// folded below in source order, so output ordering is identical to
		// the sequential path.
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.workers)
		for i, src := range sources {
			i, src := i, src
			g.Go(func() error {
				outcomes[i] = s.scanOne(gctx, src, opts)
				return nil
			})
		}
		_ = g.Wait() // workers absorb their own failures into outcomes
	} else {
		for i, src := range sources {
			outcomes[i] = s.scanOne(ctx, src, opts)
		}
	}

	for i, o := range outcomes {
		name := sources[i].Name()
		switch {
		case o.err != nil:
			res.FilesWithErrors++
			s.log.Warn("source failed, skipping", "file", name, "error", o.err)
		case o.rejected:
			s.log.Debug("source missing required columns, skipping", "file", name)
		case len(o.events) > 0:
			res.FilesWithData++
			res.TotalEvents += len(o.events)
			res.Events = append(res.Events, o.events...)
		case len(o.prices) > 0:
			res.FilesWithData++
			res.TotalEvents += len(o.prices)
			res.Prices = append(res.Prices, o.prices...)
		}
	}

	if res.FilesScanned == 0 {
		res.Note = "no parquet files found"
	} else if res.FilesWithData == 0 {
		res.Note = "no matching rows"
	}
	res.Elapsed = time.Since(start)
	s.log.Info("scan complete",
		"mode", opts.Mode.String(),
		"files_scanned", res.FilesScanned,
		"files_with_data", res.FilesWithData,
		"files_with_errors", res.FilesWithErrors,
		"rows", res.TotalEvents,
		"elapsed", res.Elapsed)
	return res, nil
}

// scanOne processes a single source in isolation. The decoded table is
// discarded when this returns; only the tagged rows survive.
func (s *Scanner) scanOne(_ context.Context, src source.Source, opts Options) outcome {
	pf, closer, err := src.OpenParquet()
	if err != nil {
		return outcome{err: err}
	}
	if closer != nil {
		defer closer.Close()
	}

	if !HasRequiredColumns(source.Columns(pf), opts.Mode.RequiredColumns()) {
		return outcome{rejected: true}
	}

	table, err := source.ReadTable(pf)
	if err != nil {
		return outcome{err: err}
	}

	rows := filterRows(table, opts)
	if len(rows) == 0 {
		return outcome{}
	}

	if opts.Mode == ModePrices {
		sorted, ind := WithIndicators(rows)
		prices := make([]model.PriceRecord, len(sorted))
		for i, b := range sorted {
			prices[i] = priceRecord(b, ind[i], src.Name())
		}
		return outcome{prices: prices}
	}

	events := make([]model.EventRecord, len(rows))
	for i, b := range rows {
		events[i] = eventRecord(b, opts.Mode, src.Name())
	}
	return outcome{events: events}
}

func eventRecord(b model.Bar, mode Mode, file string) model.EventRecord {
	rec := model.EventRecord{
		Timestamp: b.Timestamp,
		Symbol:    b.Symbol,
		File:      file,
	}
	switch mode {
	case ModeDividends:
		v := b.Dividends
		rec.Dividends = &v
	case ModeSplits:
		v := b.StockSplits
		rec.StockSplits = &v
	}
	return rec
}

func priceRecord(b model.Bar, ind model.Indicators, file string) model.PriceRecord {
	return model.PriceRecord{
		Timestamp:   b.Timestamp,
		Symbol:      b.Symbol,
		Open:        b.Open,
		High:        b.High,
		Low:         b.Low,
		Close:       b.Close,
		Volume:      b.Volume,
		Dividends:   b.Dividends,
		StockSplits: b.StockSplits,
		SMA5:        ind.SMA5,
		SMA20:       ind.SMA20,
		SMA50:       ind.SMA50,
		SMA100:      ind.SMA100,
		SMA200:      ind.SMA200,
		EMA50:       ind.EMA50,
		EMA100:      ind.EMA100,
		EMA200:      ind.EMA200,
		File:        file,
	}
}

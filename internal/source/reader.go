package source

import (
	"errors"
	"fmt"
	"io"

	"github.com/parquet-go/parquet-go"

	"divscan/internal/model"
)

// Table is the decoded content of one source: the rows plus the column set
// the file actually declared. Rows keep the file's original order.
type Table struct {
	Columns map[string]struct{}
	Bars    []model.Bar
}

// HasColumn reports whether the source file declared the named column.
func (t Table) HasColumn(name string) bool {
	_, ok := t.Columns[name]
	return ok
}

// Columns extracts the declared column names from the parquet footer.
// Cheap: no row data is read.
func Columns(pf *parquet.File) map[string]struct{} {
	fields := pf.Schema().Fields()
	cols := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		cols[f.Name()] = struct{}{}
	}
	return cols
}

// ReadTable decodes every row group of the file into bars. Unknown columns
// are ignored; known columns absent from the file stay at their zero value.
func ReadTable(pf *parquet.File) (Table, error) {
	t := Table{Columns: Columns(pf)}

	// Leaf order matches field order for the flat schemas OHLCV files use.
	fields := pf.Schema().Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name()
	}

	for _, rg := range pf.RowGroups() {
		if err := readRowGroup(rg, names, &t); err != nil {
			return Table{}, err
		}
	}
	return t, nil
}

func readRowGroup(rg parquet.RowGroup, names []string, t *Table) error {
	rows := rg.Rows()
	defer rows.Close()

	buf := make([]parquet.Row, 128)
	for {
		n, err := rows.ReadRows(buf)
		for _, row := range buf[:n] {
			var b model.Bar
			for _, v := range row {
				col := v.Column()
				if col < 0 || col >= len(names) {
					continue
				}
				assign(&b, names[col], v)
			}
			t.Bars = append(t.Bars, b)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read rows: %w", err)
		}
		if n == 0 {
			return nil
		}
	}
}

func assign(b *model.Bar, name string, v parquet.Value) {
	if v.IsNull() {
		return
	}
	switch name {
	case model.ColTimestamp:
		b.Timestamp = asInt64(v)
	case model.ColSymbol:
		b.Symbol = string(v.ByteArray())
	case model.ColOpen:
		b.Open = asFloat64(v)
	case model.ColHigh:
		b.High = asFloat64(v)
	case model.ColLow:
		b.Low = asFloat64(v)
	case model.ColClose:
		b.Close = asFloat64(v)
	case model.ColVolume:
		b.Volume = asFloat64(v)
	case model.ColDividends:
		b.Dividends = asFloat64(v)
	case model.ColStockSplits:
		b.StockSplits = asFloat64(v)
	}
}

func asInt64(v parquet.Value) int64 {
	switch v.Kind() {
	case parquet.Int32:
		return int64(v.Int32())
	case parquet.Int64:
		return v.Int64()
	case parquet.Double:
		return int64(v.Double())
	case parquet.Float:
		return int64(v.Float())
	default:
		return 0
	}
}

func asFloat64(v parquet.Value) float64 {
	switch v.Kind() {
	case parquet.Double:
		return v.Double()
	case parquet.Float:
		return float64(v.Float())
	case parquet.Int64:
		return float64(v.Int64())
	case parquet.Int32:
		return float64(v.Int32())
	default:
		return 0
	}
}

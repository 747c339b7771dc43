package export

import (
	"encoding/csv"
	"os"
	"strconv"

	"divscan/internal/model"
)

// CSVSaver writes records as CSV with header
// timestamp,symbol,<event column>,file.
type CSVSaver struct {
	EventColumn string
}

func (CSVSaver) Extension() string { return "csv" }

func (s CSVSaver) Save(recs []model.EventRecord, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{model.ColTimestamp, model.ColSymbol, s.EventColumn, "file"}); err != nil {
		return err
	}
	for _, rec := range recs {
		if err := w.Write([]string{
			strconv.FormatInt(rec.Timestamp, 10),
			rec.Symbol,
			floatStr(rec.Event()),
			rec.File,
		}); err != nil {
			return err
		}
	}
	return w.Error()
}

func floatStr(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

package export

import (
	"github.com/parquet-go/parquet-go"

	"divscan/internal/model"
)

// ParquetSaver writes records as parquet; the unused event column stays null.
type ParquetSaver struct{}

func (ParquetSaver) Extension() string { return "parquet" }

func (ParquetSaver) Save(recs []model.EventRecord, path string) error {
	return parquet.WriteFile(path, recs)
}

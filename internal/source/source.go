// Package source resolves scan inputs (directory listings, explicit file
// lists, in-memory uploads) into lazily-opened parquet sources and decodes
// them into row tables.
package source

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
)

// Source is one readable parquet input identified by a short name
// (the file base name for on-disk sources, the upload name otherwise).
type Source interface {
	Name() string
	// OpenParquet opens the underlying bytes and parses the parquet footer.
	// The returned closer may be nil for in-memory sources.
	OpenParquet() (*parquet.File, io.Closer, error)
}

type fileSource struct {
	path string
}

func (s fileSource) Name() string { return filepath.Base(s.path) }

func (s fileSource) OpenParquet() (*parquet.File, io.Closer, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, nil, err
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	pf, err := parquet.OpenFile(f, st.Size())
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("open parquet %s: %w", s.path, err)
	}
	return pf, f, nil
}

// Upload is an in-memory parquet payload received over the API.
type Upload struct {
	Name string
	Data []byte
}

type uploadSource struct {
	upload Upload
}

func (s uploadSource) Name() string { return s.upload.Name }

func (s uploadSource) OpenParquet() (*parquet.File, io.Closer, error) {
	pf, err := parquet.OpenFile(bytes.NewReader(s.upload.Data), int64(len(s.upload.Data)))
	if err != nil {
		return nil, nil, fmt.Errorf("open parquet upload %s: %w", s.upload.Name, err)
	}
	return pf, nil, nil
}

package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrDirNotFound is the single fatal resolution error: the scan root does
// not exist. Everything else is absorbed per source during the scan.
var ErrDirNotFound = errors.New("data directory not found")

const parquetExt = ".parquet"

// FromDir lists all parquet files in dir, sorted by name, optionally
// narrowed by a case-insensitive substring match on the file name. An empty
// result is not an error; a missing directory is.
func FromDir(dir, nameContains string) ([]Source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDirNotFound, dir)
		}
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	needle := strings.ToLower(nameContains)
	var sources []Source
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(strings.ToLower(name), parquetExt) {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(name), needle) {
			continue
		}
		sources = append(sources, fileSource{path: filepath.Join(dir, name)})
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i].Name() < sources[j].Name() })
	return sources, nil
}

// FromList wraps an explicit list of paths in argument order. Missing files
// are kept and surface as per-source read failures during the scan.
func FromList(paths []string) []Source {
	sources := make([]Source, 0, len(paths))
	for _, p := range paths {
		sources = append(sources, fileSource{path: p})
	}
	return sources
}

// FromUploads wraps in-memory payloads in upload order.
func FromUploads(uploads []Upload) []Source {
	sources := make([]Source, 0, len(uploads))
	for _, u := range uploads {
		sources = append(sources, uploadSource{upload: u})
	}
	return sources
}

package scan

// HasRequiredColumns reports whether every required column is declared by
// the source. Checked from the parquet footer before any row is decoded; a
// failed check skips the source, it never aborts the scan.
func HasRequiredColumns(declared map[string]struct{}, required []string) bool {
	for _, col := range required {
		if _, ok := declared[col]; !ok {
			return false
		}
	}
	return true
}

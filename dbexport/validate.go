package dbexport

import (
	"os"
	"strings"
)

// Validate re-reads path and reports whether every row is present as a data line.
// The header line is skipped, and so is the empty piece after the final newline,
// which would otherwise match any row that serializes to "". The scan is
// O(len(rows) * lines); it runs once per batch before anything is destroyed.
func Validate(rows []Row, path string) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, &IOError{Op: "read", Path: path, Err: err}
	}
	lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
	for _, row := range rows {
		want := formatValues(row)
		found := false
		for _, line := range lines[1:] {
			if line == want {
				found = true
				break
			}
		}
		if !found {
			return false, nil
		}
	}
	return true, nil
}

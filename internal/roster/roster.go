package roster

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Required header columns, exact spelling. No normalization is applied: a
// roster exported with different casing or spacing is rejected by name.
const (
	colFirstName = "First name"
	colLastName  = "Last name"
)

// Entry is one person from the roster, in file order. Duplicates are allowed
// and produce output files that overwrite each other.
type Entry struct {
	FirstName string
	LastName  string
}

// FullName is the text drawn on the certificate and, in full mode, the base
// name of the output files.
func (e Entry) FullName() string {
	return e.FirstName + " " + e.LastName
}

// Load parses the roster CSV into entries plus their count. The header row
// must contain the required columns; a missing column is reported by name.
func Load(path string) ([]Entry, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, 0, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, 0, fmt.Errorf("roster %s has no header row", path)
	}

	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[h] = i
	}
	first, ok := cols[colFirstName]
	if !ok {
		return nil, 0, fmt.Errorf("roster %s is missing required column %q", path, colFirstName)
	}
	last, ok := cols[colLastName]
	if !ok {
		return nil, 0, fmt.Errorf("roster %s is missing required column %q", path, colLastName)
	}

	entries := make([]Entry, 0, len(rows)-1)
	for _, row := range rows[1:] {
		var e Entry
		if first < len(row) {
			e.FirstName = row[first]
		}
		if last < len(row) {
			e.LastName = row[last]
		}
		entries = append(entries, e)
	}
	return entries, len(entries), nil
}

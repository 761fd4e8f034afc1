// Package dataset loads the bundled ODHF facility file into memory once
// per process and hands out the cached result.
package dataset

import (
	"log"
	"strings"
	"sync"

	"github.com/Jessenahat/odhf-lode-mcp-server/domain/facility"
)

// Loader lazily reads the facility file on first use and caches the
// result for the process lifetime. A failed load leaves the dataset
// absent; callers turn absence into a client-facing error instead of
// crashing.
type Loader struct {
	path string
	once sync.Once
	ds   *facility.Dataset
}

// NewLoader creates a loader for the given file path. Nothing is read
// until Dataset is first called.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Path returns the source file path, for error messages.
func (l *Loader) Path() string {
	return l.path
}

// Dataset returns the cached dataset, loading it on the first call.
// Returns nil when the file is unreadable or holds no data rows.
func (l *Loader) Dataset() *facility.Dataset {
	l.once.Do(l.load)
	return l.ds
}

func (l *Loader) load() {
	rows, err := NewFileReader(l.path).ReadRows()
	if err != nil {
		log.Printf("[DatasetLoader] load failed: %v", err)
		return
	}

	rows = dropEmptyRows(rows)
	if len(rows) < 2 {
		log.Printf("[DatasetLoader] %s has no data rows", l.path)
		return
	}

	columns := make([]string, len(rows[0]))
	copy(columns, rows[0])
	// Tolerate a UTF-8 byte-order mark on the first header cell.
	columns[0] = strings.TrimPrefix(columns[0], "\uFEFF")

	records := make([]facility.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(facility.Record, len(columns))
		for i, col := range columns {
			if i < len(row) {
				rec[col] = row[i]
			}
		}
		records = append(records, rec)
	}

	l.ds = &facility.Dataset{Columns: columns, Records: records}
	log.Printf("[DatasetLoader] loaded %d facilities (%d columns) from %s",
		len(records), len(columns), l.path)
}

// dropEmptyRows removes rows where every cell is blank, which ODHF
// exports occasionally contain.
func dropEmptyRows(rows [][]string) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		if !rowEmpty(row) {
			out = append(out, row)
		}
	}
	return out
}

func rowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

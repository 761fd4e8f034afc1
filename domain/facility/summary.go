package facility

import (
	"math"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"
)

// ColumnSummary holds descriptive statistics for one numeric column.
type ColumnSummary struct {
	Column string  `json:"column"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Summarize computes descriptive statistics for every column whose
// populated cells all parse as numbers, in header order. Empty and
// sentinel cells are ignored; a single non-numeric cell disqualifies
// the column. For the ODHF file this typically yields the index,
// latitude, and longitude columns.
func Summarize(ds *Dataset) []ColumnSummary {
	var out []ColumnSummary
	for _, col := range ds.Columns {
		var values stats.Float64Data
		numeric := true
		for _, rec := range ds.Records {
			cell := normalizeCell(rec, col)
			if cell == nil {
				continue
			}
			f, err := strconv.ParseFloat(strings.TrimSpace(*cell), 64)
			if err != nil {
				numeric = false
				break
			}
			// ParseFloat accepts "Nan"/"Inf" spellings; those cannot be
			// aggregated (or encoded as JSON), so treat them as missing.
			if math.IsNaN(f) || math.IsInf(f, 0) {
				continue
			}
			values = append(values, f)
		}
		if !numeric || len(values) == 0 {
			continue
		}

		mean, _ := values.Mean()
		minVal, _ := values.Min()
		maxVal, _ := values.Max()
		out = append(out, ColumnSummary{
			Column: col,
			Count:  len(values),
			Mean:   mean,
			Min:    minVal,
			Max:    maxVal,
		})
	}
	return out
}

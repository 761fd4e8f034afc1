package facility

import "strings"

// SearchLimit caps how many matching rows a search returns.
const SearchLimit = 25

// Search filters the dataset by optional province and facility-type
// substrings and projects the matches down to the preferred output
// columns. Filters are trimmed, matched case-insensitively, and ANDed;
// an empty filter imposes no constraint. Row order follows the dataset
// and at most SearchLimit rows are returned. A *SchemaError is returned
// when either logical column cannot be resolved.
func Search(ds *Dataset, province, facilityType string) ([]*Row, error) {
	provCol, provOK := ResolveColumn(ds.Columns, ProvinceAliases)
	typeCol, typeOK := ResolveColumn(ds.Columns, FacilityTypeAliases)
	if !provOK || !typeOK {
		return nil, &SchemaError{
			Have: ds.Columns,
			NeedAnyOf: map[string][]string{
				"province":      ProvinceAliases,
				"facility_type": FacilityTypeAliases,
			},
		}
	}

	province = strings.TrimSpace(province)
	facilityType = strings.TrimSpace(facilityType)

	var matches []Record
	for _, rec := range ds.Records {
		if province != "" && !containsFold(rec[provCol], province) {
			continue
		}
		if facilityType != "" && !containsFold(rec[typeCol], facilityType) {
			continue
		}
		matches = append(matches, rec)
		if len(matches) == SearchLimit {
			break
		}
	}

	projected := projectColumns(ds.Columns, provCol, typeCol)
	rows := make([]*Row, 0, len(matches))
	for _, rec := range matches {
		row := NewRow()
		for _, col := range projected {
			row.Set(col, normalizeCell(rec, col))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// projectColumns returns the preferred output columns that exist in the
// dataset, keeping their fixed relative order. The resolved province
// and facility-type columns slot in after City. When none of the
// preferred columns exist, every column is emitted.
func projectColumns(columns []string, provCol, typeCol string) []string {
	preferred := []string{"Facility Name", "City", provCol, typeCol, "Postal Code", "Latitude", "Longitude"}

	have := make(map[string]bool, len(columns))
	for _, col := range columns {
		have[col] = true
	}

	var out []string
	seen := make(map[string]bool, len(preferred))
	for _, col := range preferred {
		if have[col] && !seen[col] {
			out = append(out, col)
			seen[col] = true
		}
	}
	if len(out) == 0 {
		return columns
	}
	return out
}

// normalizeCell renders empty cells and the source file's NaN sentinels
// as nil so they serialize to JSON null. Only the exact spellings "NaN"
// and "nan" are sentinels; other casings such as "Nan" are real values
// and pass through unchanged.
func normalizeCell(rec Record, col string) *string {
	v, ok := rec[col]
	if !ok || v == "" || v == "NaN" || v == "nan" {
		return nil
	}
	return &v
}

package facility

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeDataset(columns []string, rows ...[]string) *Dataset {
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		rec := make(Record, len(columns))
		for i, col := range columns {
			if i < len(row) {
				rec[col] = row[i]
			}
		}
		records = append(records, rec)
	}
	return &Dataset{Columns: columns, Records: records}
}

func cellString(t *testing.T, row *Row, key string) string {
	t.Helper()
	v, ok := row.Get(key)
	require.True(t, ok, "key %q missing from row", key)
	require.NotNil(t, v, "key %q is null", key)
	return *v
}

func TestSearchFilterConjunction(t *testing.T) {
	ds := makeDataset(
		[]string{"facility_name", "province", "odhf_facility_type"},
		[]string{"A", "Quebec", "Hospital"},
		[]string{"B", "Quebec", "Clinic"},
	)

	rows, err := Search(ds, "quebec", "hosp")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Hospital", cellString(t, rows[0], "odhf_facility_type"))
}

func TestSearchCaseInsensitiveSubstring(t *testing.T) {
	ds := makeDataset(
		[]string{"province", "odhf_facility_type"},
		[]string{"Qc-Montreal", "Hospital"},
		[]string{"Ontario", "Hospital"},
	)

	rows, err := Search(ds, "QC", "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Qc-Montreal", cellString(t, rows[0], "province"))
}

func TestSearchEmptyFiltersReturnEverything(t *testing.T) {
	ds := makeDataset(
		[]string{"province", "odhf_facility_type"},
		[]string{"Ontario", "Hospital"},
		[]string{"Quebec", "Clinic"},
		[]string{"Alberta", "Hospital"},
	)

	rows, err := Search(ds, "", "")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestSearchWhitespaceFilterIsNoFilter(t *testing.T) {
	ds := makeDataset(
		[]string{"province", "odhf_facility_type"},
		[]string{"Ontario", "Hospital"},
		[]string{"Quebec", "Clinic"},
	)

	rows, err := Search(ds, "   ", "\t")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestSearchResultCap(t *testing.T) {
	columns := []string{"Facility Name", "province", "odhf_facility_type"}
	rows := make([][]string, 0, 40)
	for i := 0; i < 40; i++ {
		rows = append(rows, []string{fmt.Sprintf("facility-%02d", i), "Ontario", "Hospital"})
	}
	ds := makeDataset(columns, rows...)

	got, err := Search(ds, "ontario", "")
	require.NoError(t, err)
	require.Len(t, got, SearchLimit)

	// First 25 in original dataset order, no re-sorting.
	for i, row := range got {
		assert.Equal(t, fmt.Sprintf("facility-%02d", i), cellString(t, row, "Facility Name"))
	}
}

func TestSearchZeroMatches(t *testing.T) {
	ds := makeDataset(
		[]string{"province", "odhf_facility_type"},
		[]string{"Ontario", "Hospital"},
	)

	rows, err := Search(ds, "narnia", "")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSearchSchemaError(t *testing.T) {
	ds := makeDataset(
		[]string{"name", "address"},
		[]string{"A", "1 Main St"},
	)

	rows, err := Search(ds, "ontario", "")
	assert.Nil(t, rows)

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, []string{"name", "address"}, schemaErr.Have)
	assert.Equal(t, ProvinceAliases, schemaErr.NeedAnyOf["province"])
	assert.Equal(t, FacilityTypeAliases, schemaErr.NeedAnyOf["facility_type"])
}

func TestSearchProjectionOrder(t *testing.T) {
	ds := makeDataset(
		[]string{"index", "Facility Name", "City", "province", "odhf_facility_type", "Postal Code", "Latitude", "Longitude", "extra"},
		[]string{"1", "Toronto General", "Toronto", "Ontario", "Hospital", "M5G 2C4", "43.65", "-79.38", "x"},
	)

	rows, err := Search(ds, "", "")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	want := []string{"Facility Name", "City", "province", "odhf_facility_type", "Postal Code", "Latitude", "Longitude"}
	assert.Equal(t, want, rows[0].Keys())
}

func TestSearchProjectionOnlyResolvedColumns(t *testing.T) {
	// None of the capitalized display columns exist, so only the two
	// resolved columns survive the projection.
	ds := makeDataset(
		[]string{"facility_name", "province", "odhf_facility_type"},
		[]string{"A", "Ontario", "Hospital"},
	)

	rows, err := Search(ds, "", "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"province", "odhf_facility_type"}, rows[0].Keys())
}

func TestSearchNullNormalization(t *testing.T) {
	ds := makeDataset(
		[]string{"Facility Name", "City", "province", "odhf_facility_type", "Postal Code", "Latitude", "Longitude"},
		[]string{"A", "", "Ontario", "Hospital", "NaN", "nan", "Nan"},
	)

	rows, err := Search(ds, "", "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	row := rows[0]

	for _, key := range []string{"City", "Postal Code", "Latitude"} {
		v, ok := row.Get(key)
		require.True(t, ok, key)
		assert.Nil(t, v, "expected %q to normalize to null", key)
	}

	// Mixed-case "Nan" is not a sentinel and passes through.
	assert.Equal(t, "Nan", cellString(t, row, "Longitude"))
}

func TestSearchMissingCellIsNull(t *testing.T) {
	// Ragged source row: the trailing facility-type cell is absent.
	ds := makeDataset(
		[]string{"Facility Name", "province", "odhf_facility_type"},
		[]string{"A", "Ontario"},
	)

	rows, err := Search(ds, "", "")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	v, ok := rows[0].Get("odhf_facility_type")
	require.True(t, ok)
	assert.Nil(t, v)
}

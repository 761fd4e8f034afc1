package facility

import (
	"fmt"
	"strings"
)

// Header aliases accepted for the two logical columns. The ODHF release
// has renamed these headers across revisions; resolution scans aliases
// in order, preferring an exact header match over a case-insensitive
// one.
var (
	ProvinceAliases     = []string{"province", "Province", "Province or Territory", "prov_terr"}
	FacilityTypeAliases = []string{"odhf_facility_type", "ODHF Facility Type", "Facility Type", "facility_type"}
)

// ResolveColumn maps a logical field to the actual column name carrying
// it. It returns the first column exactly matching an alias, then the
// first column matching an alias case-insensitively, then "" and false.
func ResolveColumn(columns []string, aliases []string) (string, bool) {
	for _, alias := range aliases {
		for _, col := range columns {
			if col == alias {
				return col, true
			}
		}
	}
	for _, alias := range aliases {
		for _, col := range columns {
			if strings.EqualFold(col, alias) {
				return col, true
			}
		}
	}
	return "", false
}

// SchemaError reports that a logical column could not be resolved
// against the dataset header. Have lists the actual columns so a caller
// can diagnose the mismatch; NeedAnyOf lists the accepted aliases per
// logical field.
type SchemaError struct {
	Have      []string
	NeedAnyOf map[string][]string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("could not resolve province/facility type columns; dataset has %v", e.Have)
}

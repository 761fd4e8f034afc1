// Package mcp exposes the static tool manifest advertised to agent
// frameworks over the discovery endpoints.
package mcp

// Tool describes one callable operation: its name, a human-readable
// description, and a JSON-schema-shaped input declaration. Parameter
// presence and type only; no validation logic lives here.
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// manifest is constant for the process lifetime and independent of the
// dataset.
var manifest = []Tool{
	{
		Name:        "list_fields",
		Description: "List the column names of the ODHF facility dataset in their original order.",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
		},
	},
	{
		Name:        "search_facilities",
		Description: "Search Canadian healthcare facilities by province and/or facility type. Both filters are optional case-insensitive substrings and combine with AND.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"province": map[string]interface{}{
					"type":        "string",
					"description": "Province or territory to filter by (substring match).",
				},
				"facility_type": map[string]interface{}{
					"type":        "string",
					"description": "ODHF facility type to filter by (substring match).",
				},
			},
			"required": []string{},
		},
	},
}

// Manifest returns the static two-tool manifest.
func Manifest() []Tool {
	return manifest
}

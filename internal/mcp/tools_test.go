package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifestShape(t *testing.T) {
	tools := Manifest()
	require.Len(t, tools, 2)

	assert.Equal(t, "list_fields", tools[0].Name)
	assert.NotEmpty(t, tools[0].Description)
	assert.Equal(t, "object", tools[0].InputSchema["type"])

	assert.Equal(t, "search_facilities", tools[1].Name)
	props, ok := tools[1].InputSchema["properties"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, props, "province")
	assert.Contains(t, props, "facility_type")
}

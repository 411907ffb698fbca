package parsing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeOrderedObject_PreservesSourceOrder(t *testing.T) {
	raw := json.RawMessage(`{"zeta": 1, "alpha": "two", "mid": {"nested": true}, "omega": [1,2]}`)

	fields, err := DecodeOrderedObject(raw)
	require.NoError(t, err)
	require.Len(t, fields, 4)

	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.Key
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid", "omega"}, keys)
}

func TestDecodeOrderedObject_NotAnObject(t *testing.T) {
	_, err := DecodeOrderedObject(json.RawMessage(`[1, 2, 3]`))
	assert.Error(t, err)
}

func TestDecodeOrderedObject_DuplicateKeysKept(t *testing.T) {
	raw := json.RawMessage(`{"a": 1, "a": 2}`)

	fields, err := DecodeOrderedObject(raw)
	require.NoError(t, err)
	require.Len(t, fields, 2)
	assert.Equal(t, "a", fields[0].Key)
	assert.Equal(t, "a", fields[1].Key)
}

func TestIsNumericKey(t *testing.T) {
	assert.True(t, isNumericKey("0"))
	assert.True(t, isNumericKey("42"))
	assert.False(t, isNumericKey(""))
	assert.False(t, isNumericKey("1a"))
	assert.False(t, isNumericKey("company"))
}

func TestCanonicalKey(t *testing.T) {
	tests := []struct {
		key       string
		canonical string
		known     bool
	}{
		{"company", FieldPrimary, true},
		{"Institution", FieldPrimary, true},
		{"title", FieldSecondary, true},
		{"Degree", FieldSecondary, true},
		{"dates", FieldMeta, true},
		{"GPA", FieldMeta, true},
		{"website", "website", false},
		{"  Custom Key ", "custom key", false},
	}
	for _, tt := range tests {
		key, known := canonicalKey(tt.key)
		assert.Equal(t, tt.canonical, key, "key %q", tt.key)
		assert.Equal(t, tt.known, known, "key %q", tt.key)
	}
}

func TestScalarString(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"string", `"hello"`, "hello"},
		{"integer", `3`, "3"},
		{"float", `3.50`, "3.5"},
		{"bool", `true`, "true"},
		{"null", `null`, ""},
		{"object falls back to raw", `{"a":1}`, `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, scalarString(json.RawMessage(tt.raw)))
		})
	}
}

func TestComposeMeta_FixedOrder(t *testing.T) {
	parts := map[string]string{
		"location": "Remote",
		"dates":    "2020 - 2021",
		"gpa":      "3.9",
	}
	assert.Equal(t, "2020 - 2021 | Remote | 3.9", composeMeta(parts))
}

func TestComposeMeta_Empty(t *testing.T) {
	assert.Equal(t, "", composeMeta(map[string]string{}))
}

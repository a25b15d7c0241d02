package scrapegraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSteps(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    []string
		wantErr bool
	}{
		{"nil", nil, nil, false},
		{"string slice", []string{"a", "b"}, []string{"a", "b"}, false},
		{"any slice", []any{"a", "b"}, []string{"a", "b"}, false},
		{"json encoded array", `["a","b"]`, []string{"a", "b"}, false},
		{"plain string", "go to page", []string{"go to page"}, false},
		{"string that only looks like json", "[not json", []string{"[not json"}, false},
		{"empty string", "", nil, false},
		{"any slice with non-string", []any{"a", 1}, nil, true},
		{"number", 42, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeSteps(tt.value)
			if tt.wantErr {
				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeOutputSchema(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    map[string]any
		wantErr bool
	}{
		{"nil", nil, nil, false},
		{"object", map[string]any{"a": 1}, map[string]any{"a": 1}, false},
		{"json encoded object", `{"a":1}`, map[string]any{"a": float64(1)}, false},
		{"empty string", "", nil, false},
		{"invalid json string", "not json", nil, true},
		{"json array string", `[1,2]`, nil, true},
		{"number", 3, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeOutputSchema(tt.value)
			if tt.wantErr {
				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

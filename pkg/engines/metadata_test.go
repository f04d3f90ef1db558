package engines_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/r6915ee/dropfunk/internal/utils/ptr"
	"codeberg.org/r6915ee/dropfunk/pkg/engines"
	"codeberg.org/r6915ee/dropfunk/pkg/errors"
)

func TestDefaultMetadata(t *testing.T) {
	meta := engines.DefaultMetadata()
	assert.Equal(t, "Template", meta.DisplayName)
	assert.Nil(t, meta.SourceCode)
	assert.Nil(t, meta.Website)
	assert.Nil(t, meta.Authors)
}

func TestMetadataEncode(t *testing.T) {
	data, err := engines.DefaultMetadata().Encode()
	require.NoError(t, err)
	assert.Equal(t, `{"display_name":"Template","source_code":null,"website":null,"authors":null}`, string(data))
}

func TestMetadataRoundTrip(t *testing.T) {
	data, err := engines.DefaultMetadata().Encode()
	require.NoError(t, err)

	got, err := engines.DecodeMetadata("meta.json", data)
	require.NoError(t, err)
	assert.Equal(t, engines.DefaultMetadata(), got)
}

func TestDecodeMetadata(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      engines.Metadata
		wantParse bool
		wantValid bool
	}{
		{
			name:  "display name and authors",
			input: `{"display_name":"Beta","authors":"Team B"}`,
			want:  engines.Metadata{DisplayName: "Beta", Authors: ptr.String("Team B")},
		},
		{
			name:  "all fields",
			input: `{"display_name":"Godot","source_code":"https://github.com/godotengine/godot","website":"https://godotengine.org","authors":"Godot contributors"}`,
			want: engines.Metadata{
				DisplayName: "Godot",
				SourceCode:  ptr.String("https://github.com/godotengine/godot"),
				Website:     ptr.String("https://godotengine.org"),
				Authors:     ptr.String("Godot contributors"),
			},
		},
		{
			name:  "explicit nulls",
			input: `{"display_name":"X","source_code":null,"website":null,"authors":null}`,
			want:  engines.Metadata{DisplayName: "X"},
		},
		{
			name:  "unknown keys ignored",
			input: `{"display_name":"Y","license":"MIT","tags":["2d"]}`,
			want:  engines.Metadata{DisplayName: "Y"},
		},
		{
			name:  "empty display name is allowed",
			input: `{"display_name":""}`,
			want:  engines.Metadata{},
		},
		{
			name:      "invalid json",
			input:     `{"display_name":`,
			wantParse: true,
		},
		{
			name:      "not an object",
			input:     `["Beta"]`,
			wantParse: true,
		},
		{
			name:      "wrong type",
			input:     `{"display_name":42}`,
			wantParse: true,
		},
		{
			name:      "missing display name",
			input:     `{"authors":"Team B"}`,
			wantParse: true,
			wantValid: true,
		},
		{
			name:      "null display name",
			input:     `{"display_name":null}`,
			wantParse: true,
			wantValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engines.DecodeMetadata("C/meta.json", []byte(tt.input))
			if tt.wantParse {
				require.Error(t, err)
				assert.True(t, errors.IsParseError(err))
				assert.Equal(t, tt.wantValid, errors.IsValidationError(err))
				assert.Contains(t, err.Error(), "C/meta.json")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMetadataUnmarshalInsideDocument(t *testing.T) {
	var doc struct {
		Engines []engines.Metadata `json:"engines"`
	}
	err := json.Unmarshal([]byte(`{"engines":[{"display_name":"A"},{"display_name":"B","website":"https://b.example"}]}`), &doc)
	require.NoError(t, err)
	require.Len(t, doc.Engines, 2)
	assert.Equal(t, "https://b.example", *doc.Engines[1].Website)
}

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package codec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected Format
		wantErr  bool
	}{
		{name: "JSON file", path: "config.json", expected: FormatJSON},
		{name: "YAML file with .yaml extension", path: "config.yaml", expected: FormatYAML},
		{name: "YAML file with .yml extension", path: "config.yml", expected: FormatYAML},
		{name: "Uppercase YAML extension", path: "CONFIG.YAML", expected: FormatYAML},
		{name: "Path with directories", path: "/etc/jsonrpcbase/methods.yml", expected: FormatYAML},
		{name: "Unknown extension", path: "config.toml", wantErr: true},
		{name: "No extension", path: "config", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFormat(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestUnmarshal(t *testing.T) {
	type doc struct {
		Name  string `json:"name" yaml:"name"`
		Count int    `json:"count" yaml:"count"`
	}

	tests := []struct {
		name     string
		data     string
		format   Format
		expected doc
		wantErr  bool
	}{
		{name: "JSON", data: `{"name":"a","count":2}`, format: FormatJSON, expected: doc{Name: "a", Count: 2}},
		{name: "YAML", data: "name: a\ncount: 2\n", format: FormatYAML, expected: doc{Name: "a", Count: 2}},
		{name: "Invalid JSON", data: `{"name":`, format: FormatJSON, wantErr: true},
		{name: "Invalid YAML", data: "name: [a\n", format: FormatYAML, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got doc
			err := Unmarshal([]byte(tt.data), &got, tt.format)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "doc.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("title: demo\ntags: [a, b]\n"), 0o600))

	var got any
	require.NoError(t, ReadFile(yamlPath, &got))
	assert.Equal(t, map[string]any{"title": "demo", "tags": []any{"a", "b"}}, Normalize(got))

	err := ReadFile(filepath.Join(dir, "missing.json"), &got)
	assert.Error(t, err)

	err = ReadFile(filepath.Join(dir, "doc.txt"), &got)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestNormalize(t *testing.T) {
	input := map[any]any{
		"a": []any{map[any]any{1: "one"}},
		2:   "two",
	}
	expected := map[string]any{
		"a": []any{map[string]any{"1": "one"}},
		"2": "two",
	}
	assert.Equal(t, expected, Normalize(input))
	assert.Equal(t, "scalar", Normalize("scalar"))
}

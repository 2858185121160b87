// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format represents a supported document format.
type Format int

const (
	// FormatJSON represents JSON documents (.json)
	FormatJSON Format = iota
	// FormatYAML represents YAML documents (.yaml, .yml)
	FormatYAML
)

// ErrUnsupportedFormat is returned for files whose extension is not
// .json, .yaml or .yml.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// String implements [fmt.Stringer].
func (f Format) String() string {
	if f == FormatYAML {
		return "YAML"
	}
	return "JSON"
}

// DetectFormat determines the document format based on file extension.
// Matching is case-insensitive.
//
// Parameters:
//   - path: Path to the document
//
// Returns:
//   - Format: The detected format
//   - error: [ErrUnsupportedFormat] for any other extension
func DetectFormat(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return FormatJSON, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Unmarshal decodes data in the given format into v.
func Unmarshal(data []byte, v any, format Format) error {
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse JSON: %w", err)
		}
	}
	return nil
}

// ReadFile reads path and decodes it into v using the format implied by
// its extension.
func ReadFile(path string, v any) error {
	format, err := DetectFormat(path)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := Unmarshal(data, v, format); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Normalize converts the generic values produced by the YAML decoder into
// the shapes encoding/json produces: map[any]any becomes map[string]any and
// nested values are converted recursively.
func Normalize(v any) any {
	switch v := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[k] = Normalize(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[fmt.Sprint(k)] = Normalize(val)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, val := range v {
			out[i] = Normalize(val)
		}
		return out
	default:
		return v
	}
}

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package schema

import (
	"fmt"
	"strings"

	"github.com/H0llyW00dzZ/jsonrpcbase/src/internal/helper/codec"
	"github.com/H0llyW00dzZ/jsonrpcbase/src/service"
)

// LoadDocument reads a JSON (.json) or YAML (.yaml, .yml) document and
// returns it as generic values in the shapes encoding/json produces.
func LoadDocument(path string) (any, error) {
	var doc any
	if err := codec.ReadFile(path, &doc); err != nil {
		return nil, err
	}
	return codec.Normalize(doc), nil
}

// MethodSchemas extracts the params schema of every method declared in a
// service schema document under definitions.methods.<name>.params.
//
// Each schema is compiled against the whole document, so "$ref" pointers
// into other definitions resolve. Methods without a params entry are
// omitted. The reserved [service.DiscoverMethod] name may not be declared.
func MethodSchemas(doc any) (map[string]*Schema, error) {
	root, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: service schema must be an object, got %T", ErrInvalidSchema, doc)
	}

	out := make(map[string]*Schema)

	definitions, ok := root["definitions"].(map[string]any)
	if !ok {
		return out, nil
	}
	rawMethods, ok := definitions["methods"]
	if !ok {
		return out, nil
	}
	methods, ok := rawMethods.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: definitions.methods must be an object", ErrInvalidSchema)
	}

	if _, ok := methods[service.DiscoverMethod]; ok {
		return nil, fmt.Errorf("%w: %s is reserved and cannot be redefined", ErrInvalidSchema, service.DiscoverMethod)
	}

	for name, raw := range methods {
		method, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: definitions.methods.%s must be an object", ErrInvalidSchema, name)
		}
		if _, ok := method["params"]; !ok {
			continue
		}

		compiled, err := Compile(map[string]any{
			"allOf": []any{
				map[string]any{"$ref": "#/definitions/methods/" + escapePointer(name) + "/params"},
			},
			"definitions": definitions,
		})
		if err != nil {
			return nil, fmt.Errorf("method %s: %w", name, err)
		}
		out[name] = compiled
	}
	return out, nil
}

// escapePointer escapes a JSON Pointer reference token (RFC 6901).
func escapePointer(token string) string {
	return strings.NewReplacer("~", "~0", "/", "~1").Replace(token)
}

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package schema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/H0llyW00dzZ/jsonrpcbase/src/internal/helper/codec"
	"github.com/H0llyW00dzZ/jsonrpcbase/src/service"
	"github.com/xeipuuv/gojsonschema"
)

// ErrInvalidSchema is returned when a schema or service schema document
// cannot be used. It is [service.ErrInvalidSchema], so a raw schema that
// fails to compile during a call is answered as an internal error.
var ErrInvalidSchema = service.ErrInvalidSchema

// contextSep separates path segments when flattening a gojsonschema
// context; it cannot appear in a JSON object key read from JSON text.
const contextSep = "\x00"

// Schema is a compiled JSON Schema.
type Schema struct {
	schema *gojsonschema.Schema
}

// Compile compiles a JSON Schema given as generic Go values
// (typically map[string]any decoded from JSON or YAML).
func Compile(doc any) (*Schema, error) {
	s, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(codec.Normalize(doc)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}
	return &Schema{schema: s}, nil
}

// MustCompile is like [Compile] but panics on error. It is meant for
// schemas written as literals in the program.
func MustCompile(doc any) *Schema {
	s, err := Compile(doc)
	if err != nil {
		panic(err)
	}
	return s
}

// Validate checks params against the schema. The first violation is
// returned as a [*ValidationError].
func (s *Schema) Validate(params any) error {
	result, err := s.schema.Validate(gojsonschema.NewGoLoader(params))
	if err != nil {
		return fmt.Errorf("failed to load params: %w", err)
	}
	if result.Valid() {
		return nil
	}

	first := result.Errors()[0]
	return &ValidationError{
		Message:  first.Description(),
		Location: locate(params, first.Context()),
	}
}

// ValidationError describes a params violation. It implements
// [service.PathError].
type ValidationError struct {
	Message string
	// Location holds object keys (string) and array indexes (int) leading
	// to the offending value; it is empty for the params root.
	Location []any
}

// Error implements the error interface.
func (e *ValidationError) Error() string { return e.Message }

// Path returns the location of the violation.
func (e *ValidationError) Path() []any { return e.Location }

var _ service.PathError = (*ValidationError)(nil)

// locate converts a gojsonschema context such as "(root).items.0" into a
// path, using params to tell array indexes apart from numeric object keys.
func locate(params any, ctx *gojsonschema.JsonContext) []any {
	path := []any{}
	if ctx == nil {
		return path
	}

	segments := strings.Split(ctx.String(contextSep), contextSep)
	if len(segments) > 0 && segments[0] == gojsonschema.STRING_CONTEXT_ROOT {
		segments = segments[1:]
	}

	current := params
	for _, seg := range segments {
		switch node := current.(type) {
		case []any:
			if i, err := strconv.Atoi(seg); err == nil && i >= 0 && i < len(node) {
				path = append(path, i)
				current = node[i]
				continue
			}
			path = append(path, seg)
			current = nil
		case map[string]any:
			path = append(path, seg)
			current = node[seg]
		default:
			path = append(path, seg)
			current = nil
		}
	}
	return path
}

// Validator is a [service.Validator] backed by gojsonschema.
//
// Method schemas may be given either as a compiled [*Schema] or as a raw
// schema document, which is compiled on every call.
type Validator struct{}

// NewValidator returns a JSON Schema validator.
func NewValidator() *Validator { return &Validator{} }

// Validate implements [service.Validator].
func (v *Validator) Validate(schema, params any) error {
	compiled, ok := schema.(*Schema)
	if !ok {
		var err error
		if compiled, err = Compile(schema); err != nil {
			return err
		}
	}
	return compiled.Validate(params)
}

var _ service.Validator = (*Validator)(nil)

// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package service

import "errors"

// ErrInvalidSchema is wrapped by validators when the method schema itself
// cannot be used. Such failures are answered with InternalError instead of
// InvalidParams.
var ErrInvalidSchema = errors.New("invalid schema")

// Validator checks call params against a method schema.
//
// The schema is whatever was passed to [Service.Register]; its format is
// up to the implementation. A non-nil error is reported to the caller as
// an InvalidParams error whose details are the error message.
type Validator interface {
	Validate(schema, params any) error
}

// ValidatorFunc adapts a function to [Validator].
type ValidatorFunc func(schema, params any) error

// Validate calls f(schema, params).
func (f ValidatorFunc) Validate(schema, params any) error { return f(schema, params) }

// PathError is implemented by validation errors that know where in the
// params the violation happened. Path holds object keys (string) and
// array indexes (int); it is empty for a violation at the root.
type PathError interface {
	error
	Path() []any
}

// NoParams is a schema for methods that take no params. It is checked by
// the service itself, so it works without a configured [Validator].
var NoParams any = noParams{}

type noParams struct{}

func (noParams) check(params any) *Error {
	if params == nil {
		return nil
	}
	return NewError(InvalidParams, map[string]any{
		"details": "Method takes no params",
		"path":    []any{},
	})
}

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package schema provides JSON Schema params validation for package service,
// backed by [gojsonschema].
//
// The service core only knows the narrow [service.Validator] interface;
// this package is the default implementation and is wired in explicitly:
//
//	svc := service.New(service.WithValidator(schema.NewValidator()))
//	svc.Register("subtract", subtract, schema.MustCompile(map[string]any{
//		"type":     "array",
//		"items":    map[string]any{"type": "number"},
//		"minItems": 2,
//		"maxItems": 2,
//	}))
//
// A whole service can also be described by one schema document whose
// definitions.methods.<name>.params entries hold the per-method schemas
// (see [MethodSchemas]); the same document is what rpc.discover returns.
//
// Violations are reported as [*ValidationError], which carries the location
// of the offending value so the service can include it in the error data.
//
// [gojsonschema]: https://pkg.go.dev/github.com/xeipuuv/gojsonschema
package schema

// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"

	"github.com/H0llyW00dzZ/jsonrpcbase/src/internal/helper/jsonrpc"
	"github.com/H0llyW00dzZ/jsonrpcbase/src/schema"
	"github.com/H0llyW00dzZ/jsonrpcbase/src/service"
)

// errDemoFailure is what the fail method returns.
var errDemoFailure = errors.New("requested failure")

// subtractParams is the named form of subtract's params.
type subtractParams struct {
	Minuend    float64 `json:"minuend"`
	Subtrahend float64 `json:"subtrahend"`
}

// demoMethod is a method the evaluator registers, with its built-in params
// schema (nil for none). A schema from the service schema document takes
// precedence.
type demoMethod struct {
	name    string
	handler service.Handler
	schema  any
}

var numberArray = map[string]any{
	"type":  "array",
	"items": map[string]any{"type": "number"},
}

func demoMethods() []demoMethod {
	return []demoMethod{
		{
			name: "echo",
			handler: func(_ context.Context, params, _ any) (any, error) {
				return params, nil
			},
		},
		{
			name:    "subtract",
			handler: subtract,
			schema: schema.MustCompile(map[string]any{
				"oneOf": []any{
					map[string]any{
						"type":     "array",
						"items":    map[string]any{"type": "number"},
						"minItems": 2,
						"maxItems": 2,
					},
					map[string]any{
						"type": "object",
						"properties": map[string]any{
							"minuend":    map[string]any{"type": "number"},
							"subtrahend": map[string]any{"type": "number"},
						},
						"required": []any{"minuend", "subtrahend"},
					},
				},
			}),
		},
		{
			name:    "sum",
			handler: sum,
			schema:  schema.MustCompile(numberArray),
		},
		{
			name: "fail",
			handler: func(context.Context, any, any) (any, error) {
				return nil, errDemoFailure
			},
		},
	}
}

func subtract(_ context.Context, params, _ any) (any, error) {
	var p subtractParams
	switch params.(type) {
	case []any:
		var pair []float64
		if err := jsonrpc.UnmarshalFromMap(params, &pair); err != nil {
			return nil, err
		}
		if len(pair) != 2 {
			return nil, errors.New("subtract takes exactly two numbers")
		}
		p.Minuend, p.Subtrahend = pair[0], pair[1]
	default:
		if err := jsonrpc.UnmarshalFromMap(params, &p); err != nil {
			return nil, err
		}
	}
	return p.Minuend - p.Subtrahend, nil
}

func sum(_ context.Context, params, _ any) (any, error) {
	var nums []float64
	if params != nil {
		if err := jsonrpc.UnmarshalFromMap(params, &nums); err != nil {
			return nil, err
		}
	}

	var total float64
	for _, n := range nums {
		total += n
	}
	return total, nil
}

// registerDemo registers the demo methods on svc. Schemas found in
// overrides replace the built-in ones.
func registerDemo(svc *service.Service, overrides map[string]*schema.Schema) {
	for _, m := range demoMethods() {
		s := m.schema
		if override, ok := overrides[m.name]; ok {
			s = override
		}
		svc.Register(m.name, m.handler, s)
	}
}

// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package service_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/H0llyW00dzZ/jsonrpcbase/src/logger"
	"github.com/H0llyW00dzZ/jsonrpcbase/src/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type locatedError struct {
	msg  string
	path []any
}

func (e *locatedError) Error() string { return e.msg }
func (e *locatedError) Path() []any   { return e.path }

// requireKeys is a toy validator: the schema is the list of keys that must
// be present in named params.
var requireKeys = service.ValidatorFunc(func(schema, params any) error {
	keys := schema.([]string)
	named, ok := params.(map[string]any)
	if !ok {
		return &locatedError{msg: "params must be an object"}
	}
	for _, k := range keys {
		if _, ok := named[k]; !ok {
			return &locatedError{msg: "'" + k + "' is a required property", path: []any{k}}
		}
	}
	if v, ok := named["plain"]; ok && v == "error" {
		return errors.New("plain failure")
	}
	return nil
})

func TestValidation(t *testing.T) {
	var called int
	svc := service.New(service.WithValidator(requireKeys))
	svc.Register("greet", func(_ context.Context, params, _ any) (any, error) {
		called++
		return "hello " + params.(map[string]any)["name"].(string), nil
	}, []string{"name"})
	svc.Register("free", func(context.Context, any, any) (any, error) { return "free", nil }, nil)

	tests := []struct {
		name     string
		payload  string
		expected string
	}{
		{
			name:     "valid params",
			payload:  `{"jsonrpc":"2.0","method":"greet","params":{"name":"bob"},"id":1}`,
			expected: `{"jsonrpc":"2.0","result":"hello bob","id":1}`,
		},
		{
			name:     "missing property reports its path",
			payload:  `{"jsonrpc":"2.0","method":"greet","params":{},"id":2}`,
			expected: `{"jsonrpc":"2.0","error":{"code":-32602,"message":"Invalid params","data":{"details":"'name' is a required property","path":["name"]}},"id":2}`,
		},
		{
			name:     "root failure reports an empty path",
			payload:  `{"version":"1.1","method":"greet","params":[1],"id":3}`,
			expected: `{"version":"1.1","error":{"code":-32602,"message":"Invalid params","data":{"details":"params must be an object","path":[]}},"id":3}`,
		},
		{
			name:     "error without location has no path",
			payload:  `{"jsonrpc":"2.0","method":"greet","params":{"name":"x","plain":"error"},"id":4}`,
			expected: `{"jsonrpc":"2.0","error":{"code":-32602,"message":"Invalid params","data":{"details":"plain failure"}},"id":4}`,
		},
		{
			name:     "schema-less method is not validated",
			payload:  `{"jsonrpc":"2.0","method":"free","params":"x","id":5}`,
			expected: `{"jsonrpc":"2.0","error":{"code":-32600,"message":"Invalid Request","data":{"details":"Invalid type for the params field"}},"id":5}`,
		},
		{
			name:     "schema-less method accepts any container",
			payload:  `{"jsonrpc":"2.0","method":"free","params":[1,2],"id":6}`,
			expected: `{"jsonrpc":"2.0","result":"free","id":6}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := svc.Call(context.Background(), []byte(tt.payload), nil)
			assert.JSONEq(t, tt.expected, string(out))
		})
	}

	assert.Equal(t, 1, called, "handler must only run for valid params")
}

func TestValidation_NotificationDropsInvalidParams(t *testing.T) {
	svc := service.New(service.WithValidator(requireKeys))
	svc.Register("greet", func(context.Context, any, any) (any, error) { return nil, nil }, []string{"name"})

	assert.Nil(t, svc.Call(context.Background(), []byte(`{"jsonrpc":"2.0","method":"greet","params":{}}`), nil))
}

func TestValidation_UnusableSchema(t *testing.T) {
	var buf bytes.Buffer
	broken := service.ValidatorFunc(func(schema, params any) error {
		return fmt.Errorf("%w: cannot compile %v", service.ErrInvalidSchema, schema)
	})
	svc := service.New(
		service.WithValidator(broken),
		service.WithLogger(logger.NewJSONLogger(&buf, false)),
	)
	svc.Register("greet", func(context.Context, any, any) (any, error) { return "ran", nil }, "bogus")

	out := svc.Call(context.Background(), []byte(`{"jsonrpc":"2.0","method":"greet","params":{},"id":1}`), nil)
	assert.JSONEq(t, `{"jsonrpc":"2.0","error":{"code":-32603,"message":"Internal error","data":{"details":"invalid schema: cannot compile bogus"}},"id":1}`, string(out))
	assert.Contains(t, buf.String(), "Method greet has an unusable schema")
}

func TestValidation_NoValidatorSkipsSchema(t *testing.T) {
	svc := service.New()
	svc.Register("greet", func(context.Context, any, any) (any, error) { return "ran", nil }, []string{"name"})

	out := svc.Call(context.Background(), []byte(`{"jsonrpc":"2.0","method":"greet","params":{},"id":1}`), nil)
	assert.JSONEq(t, `{"jsonrpc":"2.0","result":"ran","id":1}`, string(out))
}

func TestNoParams(t *testing.T) {
	svc := service.New()
	svc.Register("ping", func(context.Context, any, any) (any, error) { return "pong", nil }, service.NoParams)

	tests := []struct {
		name    string
		payload string
		code    float64
	}{
		{"absent", `{"jsonrpc":"2.0","method":"ping","id":1}`, 0},
		{"null", `{"jsonrpc":"2.0","method":"ping","params":null,"id":1}`, 0},
		{"empty array", `{"jsonrpc":"2.0","method":"ping","params":[],"id":1}`, -32602},
		{"object", `{"jsonrpc":"2.0","method":"ping","params":{"a":1},"id":1}`, -32602},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var reply map[string]any
			require.NoError(t, json.Unmarshal(svc.Call(context.Background(), []byte(tt.payload), nil), &reply))
			if tt.code == 0 {
				assert.Equal(t, "pong", reply["result"])
				return
			}
			assert.Equal(t, tt.code, reply["error"].(map[string]any)["code"])
		})
	}
}

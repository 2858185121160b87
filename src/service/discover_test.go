// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package service_test

import (
	"context"
	"testing"

	"github.com/H0llyW00dzZ/jsonrpcbase/src/service"
	"github.com/stretchr/testify/assert"
)

func TestDiscovery(t *testing.T) {
	schema := map[string]any{"definitions": map[string]any{"methods": map[string]any{}}}
	info := map[string]any{"title": "demo", "version": "0.1.0"}

	svc := service.New(service.WithDiscovery(schema, info))
	svc.Register("echo", func(_ context.Context, params, _ any) (any, error) { return params, nil }, nil)

	tests := []struct {
		name     string
		payload  string
		expected string
	}{
		{
			name:    "document",
			payload: `{"jsonrpc":"2.0","method":"rpc.discover","id":1}`,
			expected: `{"jsonrpc":"2.0","result":{
				"schema":{"definitions":{"methods":{}}},
				"service_info":{"title":"demo","version":"0.1.0"},
				"methods":["echo","rpc.discover"]
			},"id":1}`,
		},
		{
			name:     "params rejected",
			payload:  `{"jsonrpc":"2.0","method":"rpc.discover","params":[],"id":2}`,
			expected: `{"jsonrpc":"2.0","error":{"code":-32602,"message":"Invalid params","data":{"details":"Method takes no params","path":[]}},"id":2}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := svc.Call(context.Background(), []byte(tt.payload), nil)
			assert.JSONEq(t, tt.expected, string(out))
		})
	}
}

func TestDiscovery_Disabled(t *testing.T) {
	svc := service.New()
	assert.Empty(t, svc.Registry().Names())
}

func TestDiscovery_Overwritten(t *testing.T) {
	svc := service.New(service.WithDiscovery(nil, nil))
	svc.Register(service.DiscoverMethod, func(context.Context, any, any) (any, error) { return "custom", nil }, nil)

	out := svc.Call(context.Background(), []byte(`{"jsonrpc":"2.0","method":"rpc.discover","id":1}`), nil)
	assert.JSONEq(t, `{"jsonrpc":"2.0","result":"custom","id":1}`, string(out))
}

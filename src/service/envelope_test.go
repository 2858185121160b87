// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/H0llyW00dzZ/jsonrpcbase/src/service"
	"github.com/modelcontextprotocol/go-sdk/jsonrpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseMarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		resp     *service.Response
		expected string
	}{
		{
			name:     "success 2.0",
			resp:     &service.Response{Version: service.V2_0, ID: int64(1), Result: 19},
			expected: `{"jsonrpc":"2.0","result":19,"id":1}`,
		},
		{
			name:     "success 1.1",
			resp:     &service.Response{Version: service.V1_1, ID: "a", Result: []any{"x"}},
			expected: `{"version":"1.1","result":["x"],"id":"a"}`,
		},
		{
			name:     "null result keeps the key",
			resp:     &service.Response{Version: service.V2_0, ID: "a"},
			expected: `{"jsonrpc":"2.0","result":null,"id":"a"}`,
		},
		{
			name:     "error without data",
			resp:     &service.Response{Version: service.V2_0, Error: service.NewError(service.InternalError, nil)},
			expected: `{"jsonrpc":"2.0","error":{"code":-32603,"message":"Internal error"},"id":null}`,
		},
		{
			name:     "error wins over result",
			resp:     &service.Response{Version: service.V1_1, ID: int64(2), Result: "ignored", Error: service.NewError(service.ServerError, map[string]any{"method": "m"})},
			expected: `{"version":"1.1","error":{"code":-32000,"message":"Server error","data":{"method":"m"}},"id":2}`,
		},
		{
			name:     "unknown dialect falls back to 2.0",
			resp:     &service.Response{Version: service.Version(9), ID: int64(3), Result: true},
			expected: `{"jsonrpc":"2.0","result":true,"id":3}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.resp)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(data))
		})
	}
}

func TestResponseRoundTrip(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name    string
		payload string
	}{
		{"2.0 numeric id", `{"jsonrpc":"2.0","method":"echo","params":{"a":[1,2,{"b":null}]},"id":11}`},
		{"1.1 string id", `{"version":"1.1","method":"echo","params":["x",true,1.5],"id":"r"}`},
		{"integer id beyond 2^53", `{"jsonrpc":"2.0","method":"echo","params":[9007199254740993],"id":9007199254740993}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := svc.Call(context.Background(), []byte(tt.payload), nil)

			var resp service.Response
			require.NoError(t, json.Unmarshal(out, &resp))
			require.Nil(t, resp.Error)

			rewrapped, err := json.Marshal(&service.Response{Version: resp.Version, ID: resp.ID, Result: resp.Result})
			require.NoError(t, err)
			assert.Equal(t, string(out), string(rewrapped))
		})
	}
}

func TestResponseUnmarshalJSON_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no version tag", `{"result":1,"id":1}`},
		{"unknown version", `{"jsonrpc":"3.0","result":1,"id":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp service.Response
			err := json.Unmarshal([]byte(tt.input), &resp)
			assert.True(t, errors.Is(err, service.ErrInvalidEnvelope), "got %v", err)
		})
	}
}

// Replies in the 2.0 dialect must be readable by an independent JSON-RPC 2.0 implementation.
func TestWireCompatibility(t *testing.T) {
	svc := newTestService(t)

	t.Run("success", func(t *testing.T) {
		out := svc.Call(context.Background(), []byte(`{"jsonrpc":"2.0","method":"subtract","params":[42,23],"id":1}`), nil)

		msg, err := jsonrpc.DecodeMessage(out)
		require.NoError(t, err)
		resp, ok := msg.(*jsonrpc.Response)
		require.True(t, ok, "expected a response, got %T", msg)

		assert.Equal(t, int64(1), resp.ID.Raw())
		assert.NoError(t, resp.Error)
		assert.JSONEq(t, `19`, string(resp.Result))
	})

	t.Run("error", func(t *testing.T) {
		out := svc.Call(context.Background(), []byte(`{"jsonrpc":"2.0","method":"nope","id":"abc"}`), nil)

		msg, err := jsonrpc.DecodeMessage(out)
		require.NoError(t, err)
		resp, ok := msg.(*jsonrpc.Response)
		require.True(t, ok, "expected a response, got %T", msg)

		assert.Equal(t, "abc", resp.ID.Raw())
		var wireErr *jsonrpc.Error
		require.True(t, errors.As(resp.Error, &wireErr))
		assert.Equal(t, int64(jsonrpc.CodeMethodNotFound), wireErr.Code)
		assert.Equal(t, "Method not found", wireErr.Message)
		assert.JSONEq(t, `{"available_methods":["echo","fail","meta","panic","subtract"]}`, string(wireErr.Data))
	})

	t.Run("batch entries", func(t *testing.T) {
		out := svc.Call(context.Background(), []byte(`[
			{"jsonrpc":"2.0","method":"echo","params":[1],"id":"a"},
			{"jsonrpc":"2.0","method":"fail","id":"b"}
		]`), nil)

		var entries []json.RawMessage
		require.NoError(t, json.Unmarshal(out, &entries))
		require.Len(t, entries, 2)
		for _, entry := range entries {
			msg, err := jsonrpc.DecodeMessage(entry)
			require.NoError(t, err)
			assert.IsType(t, &jsonrpc.Response{}, msg)
		}
	})
}

// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package service

import (
	"github.com/H0llyW00dzZ/jsonrpcbase/src/internal/helper/jsonrpc"
	"github.com/mark3labs/mcp-go/mcp"
)

// Request is a normalized call record.
type Request struct {
	// ID is nil for a notification.
	ID      any
	Version Version
	Method  string
	// Params is nil, []any or map[string]any.
	Params any
}

// IsNotification reports whether the request expects no response.
func (r *Request) IsNotification() bool { return r.ID == nil }

// normalize turns one decoded record into a Request.
//
// The returned Request is never nil: on failure it carries the id and
// dialect extracted before the failing step, so the error can be stamped
// with them.
func (s *Service) normalize(v any) (*Request, *Error) {
	req := &Request{Version: s.defaultVersion}

	record, ok := v.(map[string]any)
	if !ok {
		return req, NewError(InvalidRequest, nil)
	}

	id, err := extractID(record)
	if err != nil {
		return req, err
	}
	req.ID = id

	version, err := extractVersion(record)
	if err != nil {
		return req, err
	}
	req.Version = version

	method, err := extractMethod(record)
	if err != nil {
		return req, err
	}
	req.Method = method

	if _, err := s.registry.lookup(method); err != nil {
		return req, err
	}

	params, err := extractParams(record)
	if err != nil {
		return req, err
	}
	req.Params = params

	return req, nil
}

func extractID(record map[string]any) (any, *Error) {
	raw, ok := record["id"]
	if !ok {
		return nil, nil
	}
	if !jsonrpc.IsValidID(raw) {
		return nil, detailsError(InvalidRequest, "Invalid type for the id field")
	}
	return jsonrpc.NormalizeID(raw), nil
}

func extractVersion(record map[string]any) (Version, *Error) {
	tag, hasTag := record["jsonrpc"]
	if hasTag && tag == mcp.JSONRPC_VERSION {
		return V2_0, nil
	}
	legacy, hasLegacy := record["version"]
	if hasLegacy && legacy == version11 {
		return V1_1, nil
	}
	if hasTag || hasLegacy {
		return 0, detailsError(InvalidRequest, "Invalid JSON-RPC version")
	}
	return 0, detailsError(InvalidRequest, "Missing JSON-RPC version")
}

func extractMethod(record map[string]any) (string, *Error) {
	raw, ok := record["method"]
	if !ok {
		return "", detailsError(InvalidRequest, `The required "method" field is missing`)
	}
	method, ok := raw.(string)
	if !ok {
		return "", detailsError(InvalidRequest, `Invalid type for the "method" field; must be a string`)
	}
	return method, nil
}

func extractParams(record map[string]any) (any, *Error) {
	raw, ok := record["params"]
	if !ok {
		return nil, nil
	}
	switch raw.(type) {
	case nil, []any, map[string]any:
		return raw, nil
	default:
		return nil, detailsError(InvalidRequest, "Invalid type for the params field")
	}
}

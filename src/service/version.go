// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package service

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// Version is a JSON-RPC protocol dialect. The zero value is [V2_0].
type Version int

const (
	// V2_0 is JSON-RPC 2.0, tagged on the wire as "jsonrpc":"2.0".
	V2_0 Version = iota
	// V1_1 is the legacy JSON-RPC 1.1 dialect, tagged as "version":"1.1".
	V1_1
)

const version11 = "1.1"

// ParseVersion maps a dialect string ("2.0" or "1.1") to a [Version].
func ParseVersion(s string) (Version, error) {
	switch s {
	case mcp.JSONRPC_VERSION:
		return V2_0, nil
	case version11:
		return V1_1, nil
	default:
		return V2_0, fmt.Errorf("unsupported JSON-RPC version %q", s)
	}
}

// Valid reports whether v is a known dialect.
func (v Version) Valid() bool { return v == V2_0 || v == V1_1 }

// String returns the dialect's wire value.
func (v Version) String() string {
	switch v {
	case V2_0:
		return mcp.JSONRPC_VERSION
	case V1_1:
		return version11
	default:
		return fmt.Sprintf("Version(%d)", int(v))
	}
}

// field returns the envelope key carrying the dialect tag.
func (v Version) field() string {
	if v == V1_1 {
		return "version"
	}
	return "jsonrpc"
}

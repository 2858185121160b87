// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package jsonrpc provides helper functions for [JSON-RPC 2.0] message handling.
// It includes utilities for decoding raw payloads into generic values, checking
// and normalizing request id values (whole number floats become int64), and
// converting generic params into typed structs for handler authors.
//
// [JSON-RPC 2.0]: https://www.jsonrpc.org/specification
package jsonrpc

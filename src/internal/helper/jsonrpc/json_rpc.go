// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package jsonrpc

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strings"
)

// ErrEmptyPayload is returned by Decode when the payload holds no JSON value.
var ErrEmptyPayload = errors.New("empty payload")

// maxExactInt is the largest magnitude up to which every integer has an
// exact float64 representation (2^53).
const maxExactInt = 1 << 53

// Decode parses a raw JSON-RPC payload into generic Go values
// (map[string]any, []any, float64, json.Number, string, bool or nil).
//
// Numbers decode as float64, except integers beyond ±2^53, which stay
// [json.Number] so that large ids and params round-trip exactly.
//
// Parameters:
//   - data: Raw payload bytes
//
// Returns:
//   - any: The decoded value
//   - error: Decoder error for malformed or empty input
func Decode(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyPayload
	}

	// Validates the whole input, trailing data included.
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return numbers(v), nil
}

// numbers converts the json.Number values in v to float64, keeping the
// integers a float64 cannot hold exactly.
func numbers(v any) any {
	switch v := v.(type) {
	case json.Number:
		return number(v)
	case map[string]any:
		for k, elem := range v {
			v[k] = numbers(elem)
		}
		return v
	case []any:
		for i, elem := range v {
			v[i] = numbers(elem)
		}
		return v
	default:
		return v
	}
}

func number(n json.Number) any {
	if i, err := n.Int64(); err == nil {
		if i >= -maxExactInt && i <= maxExactInt {
			return float64(i)
		}
		return n
	}
	// Integer literals beyond int64 are kept verbatim.
	if !strings.ContainsAny(n.String(), ".eE") {
		return n
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n
}

// IsValidID reports whether v may be used as a request id: a string or any
// integer or floating point number. Booleans, null and structured values are
// rejected.
func IsValidID(v any) bool {
	switch v.(type) {
	case string, json.Number,
		float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	default:
		return false
	}
}

// NormalizeID converts whole number ids to int64 for JSON-RPC ID fields.
//
// A float64 holding a whole number that fits an int64 is converted, which
// keeps an id of 1 encoded as 1 in the reply. A [json.Number] is converted
// when it parses as an int64 and returned unchanged otherwise.
//
// Parameters:
//   - v: Value to normalize
//
// Returns:
//   - any: Normalized value (int64 for whole numbers, else original)
func NormalizeID(v any) any {
	switch id := v.(type) {
	case float64:
		if id == math.Trunc(id) && id >= math.MinInt64 && id < math.MaxInt64 {
			return int64(id)
		}
	case json.Number:
		if i, err := id.Int64(); err == nil {
			return i
		}
	}
	return v
}

// UnmarshalFromMap converts a map/any to a struct via JSON round-trip.
//
// Handlers receive params as generic values; this turns them into a
// strongly-typed struct (for named params) or slice (for positional params).
//
// Parameters:
//   - src: Source map or value to convert
//   - dest: Pointer to destination value
//
// Returns:
//   - error: Error if marshaling or unmarshaling fails
func UnmarshalFromMap(src any, dest any) error {
	data, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

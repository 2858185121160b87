// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/H0llyW00dzZ/jsonrpcbase/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/jsonrpcbase/src/internal/helper/jsonrpc"
)

// Response is a reply envelope. Exactly one of Result and Error is
// meaningful: a non-nil Error marks an error response.
type Response struct {
	Version Version
	ID      any
	Result  any
	Error   *Error
}

// MarshalJSON encodes the envelope with the dialect tag first, then
// result or error, then id. The id is always present.
func (r *Response) MarshalJSON() ([]byte, error) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	version := r.Version
	if !version.Valid() {
		version = V2_0
	}

	buf.WriteByte('{')
	fmt.Fprintf(buf, "%q:%q", version.field(), version.String())

	if r.Error != nil {
		buf.WriteString(`,"error":`)
		if err := writeValue(buf, r.Error); err != nil {
			return nil, err
		}
	} else {
		buf.WriteString(`,"result":`)
		if err := writeValue(buf, r.Result); err != nil {
			return nil, err
		}
	}

	buf.WriteString(`,"id":`)
	if err := writeValue(buf, r.ID); err != nil {
		return nil, err
	}
	buf.WriteByte('}')

	return gc.Detach(buf), nil
}

func writeValue(buf gc.Buffer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = buf.Write(data)
	return err
}

// wireResponse is the decoding shape of a reply envelope.
type wireResponse struct {
	JSONRPC *string         `json:"jsonrpc"`
	Version *string         `json:"version"`
	Result  json.RawMessage `json:"result"`
	Error   *Error          `json:"error"`
	ID      json.RawMessage `json:"id"`
}

// ErrInvalidEnvelope is returned when decoding a reply that is neither a
// 2.0 nor a 1.1 envelope.
var ErrInvalidEnvelope = errors.New("invalid response envelope")

// UnmarshalJSON decodes a reply envelope produced by [Response.MarshalJSON].
func (r *Response) UnmarshalJSON(data []byte) error {
	var wire wireResponse
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	var tag string
	switch {
	case wire.JSONRPC != nil:
		tag = *wire.JSONRPC
	case wire.Version != nil:
		tag = *wire.Version
	default:
		return fmt.Errorf("%w: missing version tag", ErrInvalidEnvelope)
	}
	version, err := ParseVersion(tag)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEnvelope, err)
	}

	out := Response{Version: version, Error: wire.Error}
	if len(wire.ID) > 0 {
		id, err := jsonrpc.Decode(wire.ID)
		if err != nil {
			return err
		}
		out.ID = jsonrpc.NormalizeID(id)
	}
	if wire.Error == nil && len(wire.Result) > 0 {
		if out.Result, err = jsonrpc.Decode(wire.Result); err != nil {
			return err
		}
	}
	*r = out
	return nil
}

// newResult builds a success response stamped with the request's id and dialect.
func (s *Service) newResult(req *Request, result any) *Response {
	return &Response{
		Version: s.dialect(req.Version),
		ID:      req.ID,
		Result:  result,
	}
}

// fail builds an error response for req. Errors on notifications are
// logged and dropped unless they are parse or invalid-request errors.
func (s *Service) fail(req *Request, err *Error) *Response {
	if req.IsNotification() && !err.reported() {
		s.log.Printf("Dropping %s for notification %q: %v", err.Message, req.Method, err.Data)
		return nil
	}
	if err.reported() {
		s.log.Printf("Rejecting request: %s", err)
	}
	return &Response{
		Version: s.dialect(req.Version),
		ID:      req.ID,
		Error:   err,
	}
}

func (s *Service) dialect(v Version) Version {
	if v.Valid() {
		return v
	}
	return s.defaultVersion
}

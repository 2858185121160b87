// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package service

import (
	"fmt"
	"maps"

	"github.com/modelcontextprotocol/go-sdk/jsonrpc"
)

// Kind identifies one entry of the fixed JSON-RPC error taxonomy.
type Kind int

const (
	// ParseError means the payload was not valid JSON.
	ParseError Kind = iota + 1
	// InvalidRequest means the JSON value is not a valid request object.
	InvalidRequest
	// MethodNotFound means no handler is registered under the method name.
	MethodNotFound
	// InvalidParams means the params failed schema validation.
	InvalidParams
	// InternalError is reserved for failures inside the service itself.
	InternalError
	// ServerError wraps a failure raised by a handler.
	ServerError
)

// CodeServerError is the generic implementation-defined server error code.
const CodeServerError = -32000

// Handlers may return an [*Error] with a code in this inclusive range.
const (
	minServerCode = -32099
	maxServerCode = CodeServerError
)

// Code returns the numeric code of k.
func (k Kind) Code() int {
	switch k {
	case ParseError:
		return jsonrpc.CodeParseError
	case InvalidRequest:
		return jsonrpc.CodeInvalidRequest
	case MethodNotFound:
		return jsonrpc.CodeMethodNotFound
	case InvalidParams:
		return jsonrpc.CodeInvalidParams
	case InternalError:
		return jsonrpc.CodeInternalError
	case ServerError:
		return CodeServerError
	default:
		return jsonrpc.CodeInternalError
	}
}

// Message returns the default message of k.
func (k Kind) Message() string {
	switch k {
	case ParseError:
		return "Parse error"
	case InvalidRequest:
		return "Invalid Request"
	case MethodNotFound:
		return "Method not found"
	case InvalidParams:
		return "Invalid params"
	case ServerError:
		return "Server error"
	default:
		return "Internal error"
	}
}

// String implements [fmt.Stringer].
func (k Kind) String() string { return k.Message() }

// Error is a JSON-RPC error object.
//
// It implements the error interface, so handlers can return one directly
// and callers can match it with [errors.As].
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// NewError returns an error of the given kind with its default code and message.
func NewError(kind Kind, data any) *Error {
	return &Error{
		Code:    kind.Code(),
		Message: kind.Message(),
		Data:    data,
	}
}

// NewServerError returns a handler-defined error. Codes outside the
// server range -32099..-32000 are replaced by the generic server error
// when the error crosses the handler boundary.
func NewServerError(code int, message string, data any) *Error {
	return &Error{Code: code, Message: message, Data: data}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "jsonrpc: <nil>"
	}
	if e.Data != nil {
		return fmt.Sprintf("jsonrpc: %d %s: %v", e.Code, e.Message, e.Data)
	}
	return fmt.Sprintf("jsonrpc: %d %s", e.Code, e.Message)
}

// reported reports whether the error is answered even for a notification.
func (e *Error) reported() bool {
	return e.Code == jsonrpc.CodeParseError || e.Code == jsonrpc.CodeInvalidRequest
}

func inServerRange(code int) bool {
	return code >= minServerCode && code <= maxServerCode
}

func detailsError(kind Kind, details string) *Error {
	return NewError(kind, map[string]any{"details": details})
}

func methodNotFound(available []string) *Error {
	return NewError(MethodNotFound, map[string]any{"available_methods": available})
}

// withMethod returns a copy of e whose data names the failing method.
func (e *Error) withMethod(method string) *Error {
	out := *e
	switch data := e.Data.(type) {
	case nil:
		out.Data = map[string]any{"method": method}
	case map[string]any:
		merged := maps.Clone(data)
		merged["method"] = method
		out.Data = merged
	default:
		out.Data = map[string]any{"details": data, "method": method}
	}
	return &out
}

// describe renders a failure as "<type>: <message>".
func describe(v any) string {
	if err, ok := v.(error); ok {
		return fmt.Sprintf("%T: %s", err, err.Error())
	}
	return fmt.Sprintf("%T: %v", v, v)
}

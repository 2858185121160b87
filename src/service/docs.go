// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package service implements the transport-independent core of a JSON-RPC
// service: it decodes call payloads, validates them against the JSON-RPC 2.0
// and legacy 1.1 envelope rules, dispatches them to registered handlers and
// builds the replies, including for batches and notifications.
//
// The package never touches a network. An embedder reads a payload from its
// transport, hands it to [Service.Call] and writes back whatever bytes come
// out (nothing at all for notifications).
//
// # Basic Usage
//
//	svc := service.New(service.WithLogger(logger.NewCLILogger()))
//	svc.Register("subtract", func(ctx context.Context, params, meta any) (any, error) {
//		args, _ := params.([]any)
//		if len(args) != 2 {
//			return nil, service.NewServerError(-32001, "subtract takes two numbers", nil)
//		}
//		return args[0].(float64) - args[1].(float64), nil
//	}, nil)
//
//	reply := svc.Call(ctx, []byte(`{"jsonrpc":"2.0","method":"subtract","params":[42,23],"id":1}`), nil)
//	// {"jsonrpc":"2.0","result":19,"id":1}
//
// # Errors
//
// Every failure becomes exactly one error object using the fixed taxonomy
// ([ParseError], [InvalidRequest], [MethodNotFound], [InvalidParams],
// [InternalError], [ServerError]). Handler errors and panics never reach the
// embedder; they are reported as server errors naming the method. Errors
// for notifications are logged and dropped, except parse and invalid-request
// errors, which are always answered.
//
// # Validation
//
// Params validation is pluggable through [Validator]. The service never
// depends on a validation engine; see package schema for a JSON Schema
// implementation.
//
// # Batches
//
// Batch entries are independent. They run on a bounded worker pool (see
// [WithBatchConcurrency]) and replies keep the order of their entries.
package service

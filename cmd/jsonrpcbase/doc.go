// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// jsonrpcbase is a command-line evaluator for JSON-RPC 2.0 and 1.1 payloads.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/jsonrpcbase/cmd/jsonrpcbase@latest
//
// # Usage
//
//	jsonrpcbase call [-f FILE] [--config FILE] [--meta JSON]
//	jsonrpcbase methods [--config FILE]
//
// # Environment
//
//	JSONRPCBASE_CONFIG_FILE      Configuration file used when --config is absent
//	JSONRPCBASE_DEFAULT_VERSION  Dialect for replies to unrecognizable payloads ("2.0" or "1.1")
//	JSONRPCBASE_LOG_FORMAT       "text" or "json"
//
// # Examples
//
// Evaluate a single request:
//
//	echo '{"jsonrpc":"2.0","method":"subtract","params":[42,23],"id":1}' | jsonrpcbase call
//
// Evaluate a batch stored in a file, with method schemas from a config:
//
//	jsonrpcbase call -f batch.json --config jsonrpcbase.yaml
//
// List the registered methods:
//
//	jsonrpcbase methods
package main

// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface of the jsonrpcbase evaluator.
// It implements a Cobra-based CLI with two commands: call, which runs one
// payload through a service with demo methods and prints the reply, and
// methods, which lists the registered methods as a markdown table.
// The package handles file I/O, configuration loading and context
// cancellation, and reports through the logger package.
package cli

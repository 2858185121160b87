// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-style helpers for the command-line entry points.
//
// Key functions:
//   - GetExecutableName: Returns the executable name without extension for usage strings
//
// # Usage
//
//	import "github.com/H0llyW00dzZ/jsonrpcbase/src/internal/helper/posix"
//
//	exe := posix.GetExecutableName()
//	rootCmd := &cobra.Command{
//	    Use:     exe,
//	    Example: fmt.Sprintf("  %s call -f request.json", exe),
//	}
//
// Behavior across platforms:
//
//   - Linux/macOS: "/usr/bin/jsonrpcbase" → "jsonrpcbase"
//   - Windows: "C:\bin\jsonrpcbase.exe" → "jsonrpcbase"
//   - Fallback: Empty args → [DefaultName]
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix

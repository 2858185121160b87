// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package codec reads JSON and YAML documents, picking the decoder from the
// file extension (.json, .yaml, .yml).
//
// It backs both the configuration loader and the service schema loader, so
// every file the binary reads accepts the same formats.
package codec

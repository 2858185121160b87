// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultName is reported when os.Args carries no program name.
const DefaultName = "jsonrpcbase"

// GetExecutableName returns the base name of os.Args[0] with any ".exe"
// suffix removed. Windows-style paths are handled on every platform.
func GetExecutableName() string {
	if len(os.Args) == 0 || os.Args[0] == "" {
		return DefaultName
	}
	return baseName(os.Args[0])
}

func baseName(path string) string {
	name := filepath.Base(path)

	// filepath.Base only knows the host separator.
	if strings.ContainsAny(name, `\/`) {
		parts := strings.FieldsFunc(name, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			name = parts[len(parts)-1]
		}
	}

	return strings.TrimSuffix(name, ".exe")
}

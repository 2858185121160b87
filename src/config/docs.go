// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads jsonrpcbase settings from a JSON or YAML file and the
// environment, and turns them into [service.Option] values.
//
// Example configuration (YAML):
//
//	service:
//	  defaultVersion: "2.0"
//	  batchConcurrency: 8
//	  discover: true
//	  schemaFile: methods.yaml
//	  infoFile: service.yaml
//	log:
//	  format: json
//	  silent: false
//
// Relative document paths are resolved against the configuration file's
// directory.
package config

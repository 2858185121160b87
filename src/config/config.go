// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/H0llyW00dzZ/jsonrpcbase/src/internal/helper/codec"
	"github.com/H0llyW00dzZ/jsonrpcbase/src/logger"
	"github.com/H0llyW00dzZ/jsonrpcbase/src/schema"
	"github.com/H0llyW00dzZ/jsonrpcbase/src/service"
)

// Environment variables read by [Load].
const (
	EnvConfigFile     = "JSONRPCBASE_CONFIG_FILE"
	EnvDefaultVersion = "JSONRPCBASE_DEFAULT_VERSION"
	EnvLogFormat      = "JSONRPCBASE_LOG_FORMAT"
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Default values applied before the configuration file is read.
const (
	DefaultVersion   = "2.0"
	DefaultLogFormat = LogFormatText
)

// ErrUnsupportedFormat is returned for configuration files whose extension
// is not .json, .yaml or .yml.
var ErrUnsupportedFormat = codec.ErrUnsupportedFormat

// Config represents the jsonrpcbase configuration structure.
//
// The configuration can be loaded from a JSON or YAML file given directly or
// through the JSONRPCBASE_CONFIG_FILE environment variable, with defaults
// applied for any missing values.
// Supported file extensions: .json, .yaml, .yml
type Config struct {
	// Service: Settings of the JSON-RPC service core
	Service struct {
		// DefaultVersion: Dialect for errors raised before a request's dialect is known ("2.0" or "1.1")
		DefaultVersion string `json:"defaultVersion" yaml:"defaultVersion"`
		// BatchConcurrency: Maximum batch entries processed at once (<= 0 uses GOMAXPROCS)
		BatchConcurrency int `json:"batchConcurrency" yaml:"batchConcurrency"`
		// Discover: Register the rpc.discover method
		Discover bool `json:"discover" yaml:"discover"`
		// SchemaFile: Service schema document holding per-method params schemas
		SchemaFile string `json:"schemaFile,omitempty" yaml:"schemaFile,omitempty"`
		// InfoFile: Service info document returned by rpc.discover
		InfoFile string `json:"infoFile,omitempty" yaml:"infoFile,omitempty"`
	} `json:"service" yaml:"service"`

	// Log: Logging settings
	Log struct {
		// Format: "text" for plain lines or "json" for one JSON object per line
		Format string `json:"format" yaml:"format"`
		// Silent: Suppress all log output
		Silent bool `json:"silent" yaml:"silent"`
	} `json:"log" yaml:"log"`

	// dir is the directory of the loaded file; relative document paths
	// are resolved against it.
	dir string
}

// Documents holds the documents referenced by the configuration.
type Documents struct {
	// Schema is the service schema document, or nil.
	Schema any
	// Info is the service info document, or nil.
	Info any
	// Methods maps method names to their compiled params schemas.
	Methods map[string]*schema.Schema
}

// Default returns a configuration with every default applied.
func Default() *Config {
	config := &Config{}
	config.Service.DefaultVersion = DefaultVersion
	config.Log.Format = DefaultLogFormat
	return config
}

// Load loads configuration from a JSON or YAML file or applies defaults.
//
// Parameters:
//   - configPath: Path to the configuration file (optional, can be empty)
//     Supported formats: .json, .yaml, .yml
//
// Returns:
//   - A pointer to the loaded Config struct with defaults applied
//   - An error if the configuration file cannot be read or parsed
//
// Configuration Priority:
//  1. Default values are set
//  2. JSONRPCBASE_CONFIG_FILE environment variable is checked if configPath is empty
//  3. Config file values override defaults (if file exists and is valid)
//  4. Environment variables override config file values
//     (JSONRPCBASE_DEFAULT_VERSION, JSONRPCBASE_LOG_FORMAT)
//
// Invalid values fall back to their defaults.
func Load(configPath string) (*Config, error) {
	config := Default()

	// Check environment variable for config file path if not provided
	if configPath == "" {
		configPath = os.Getenv(EnvConfigFile)
	}

	if configPath != "" {
		if err := codec.ReadFile(configPath, config); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
		config.dir = filepath.Dir(configPath)
	}

	if v := os.Getenv(EnvDefaultVersion); v != "" {
		config.Service.DefaultVersion = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		config.Log.Format = v
	}

	// Validate and set defaults for invalid values
	if _, err := service.ParseVersion(config.Service.DefaultVersion); err != nil {
		config.Service.DefaultVersion = DefaultVersion
	}
	config.Log.Format = strings.ToLower(config.Log.Format)
	if config.Log.Format != LogFormatText && config.Log.Format != LogFormatJSON {
		config.Log.Format = DefaultLogFormat
	}

	return config, nil
}

// Logger builds the logger described by the configuration, writing to w.
func (c *Config) Logger(w io.Writer) logger.Logger {
	if c.Log.Format == LogFormatJSON || c.Log.Silent {
		return logger.NewJSONLogger(w, c.Log.Silent)
	}
	log := logger.NewCLILogger()
	if w != nil {
		log.SetOutput(w)
	}
	return log
}

// LoadDocuments reads the schema and info documents named by the
// configuration. Missing entries yield nil documents.
func (c *Config) LoadDocuments() (*Documents, error) {
	docs := &Documents{Methods: map[string]*schema.Schema{}}

	if c.Service.SchemaFile != "" {
		doc, err := schema.LoadDocument(c.resolve(c.Service.SchemaFile))
		if err != nil {
			return nil, fmt.Errorf("failed to load service schema: %w", err)
		}
		methods, err := schema.MethodSchemas(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to load service schema: %w", err)
		}
		docs.Schema = doc
		docs.Methods = methods
	}

	if c.Service.InfoFile != "" {
		doc, err := schema.LoadDocument(c.resolve(c.Service.InfoFile))
		if err != nil {
			return nil, fmt.Errorf("failed to load service info: %w", err)
		}
		docs.Info = doc
	}

	return docs, nil
}

// ServiceOptions converts the configuration into service options. The
// schema validator is always installed; discovery is enabled when
// configured.
func (c *Config) ServiceOptions(log logger.Logger, docs *Documents) []service.Option {
	version, err := service.ParseVersion(c.Service.DefaultVersion)
	if err != nil {
		version = service.V2_0
	}

	opts := []service.Option{
		service.WithLogger(log),
		service.WithDefaultVersion(version),
		service.WithBatchConcurrency(c.Service.BatchConcurrency),
		service.WithValidator(schema.NewValidator()),
	}
	if c.Service.Discover {
		var schemaDoc, infoDoc any
		if docs != nil {
			schemaDoc, infoDoc = docs.Schema, docs.Info
		}
		opts = append(opts, service.WithDiscovery(schemaDoc, infoDoc))
	}
	return opts
}

func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) || c.dir == "" {
		return path
	}
	return filepath.Join(c.dir, path)
}

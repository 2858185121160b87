// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package service

import (
	"context"
	"maps"
	"slices"
	"sync"
)

// Handler implements one JSON-RPC method.
//
// params is nil, []any or map[string]any. Numbers inside params are
// float64, except integers beyond ±2^53, which arrive as [encoding/json.Number]
// to keep them exact. meta is whatever the embedder
// passed to [Service.Call] (an auth token, a peer address, ...).
type Handler func(ctx context.Context, params any, meta any) (any, error)

// Entry is a registered method.
type Entry struct {
	Handler Handler
	// Schema is handed to the configured [Validator] before each call.
	// A nil Schema disables validation for the method.
	Schema any
}

// Registry maps method names to entries. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	methods map[string]Entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{methods: make(map[string]Entry)}
}

// Register stores h under name, replacing any previous entry.
func (r *Registry) Register(name string, h Handler, schema any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.methods[name] = Entry{Handler: h, Schema: schema}
}

// Lookup returns the entry registered under name. A missing method is
// reported as a MethodNotFound [*Error] listing the available methods.
func (r *Registry) Lookup(name string) (Entry, error) {
	entry, err := r.lookup(name)
	if err != nil {
		return Entry{}, err
	}
	return entry, nil
}

func (r *Registry) lookup(name string) (Entry, *Error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.methods[name]
	if !ok {
		return Entry{}, methodNotFound(slices.Sorted(maps.Keys(r.methods)))
	}
	return entry, nil
}

// Names returns the registered method names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.methods))
}

// Len returns the number of registered methods.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.methods)
}

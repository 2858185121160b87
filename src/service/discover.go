// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package service

import "context"

// DiscoverMethod is the name of the built-in service discovery method.
const DiscoverMethod = "rpc.discover"

// Discovery is the result of [DiscoverMethod].
type Discovery struct {
	Schema      any      `json:"schema"`
	ServiceInfo any      `json:"service_info"`
	Methods     []string `json:"methods"`
}

// discoverHandler answers rpc.discover from the documents given to
// [WithDiscovery] and the live registry.
func (s *Service) discoverHandler(schema, info any) Handler {
	return func(context.Context, any, any) (any, error) {
		return Discovery{
			Schema:      schema,
			ServiceInfo: info,
			Methods:     s.registry.Names(),
		}, nil
	}
}

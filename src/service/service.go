// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package service

import (
	"context"
	"runtime"

	"github.com/H0llyW00dzZ/jsonrpcbase/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/jsonrpcbase/src/internal/helper/jsonrpc"
	"github.com/H0llyW00dzZ/jsonrpcbase/src/logger"
)

// Service is a transport-independent JSON-RPC endpoint.
//
// It is safe for concurrent use; methods may be registered while calls are
// in flight.
type Service struct {
	registry       *Registry
	validator      Validator
	log            logger.Logger
	defaultVersion Version
	concurrency    int
	discovery      *discoveryDocs
}

type discoveryDocs struct {
	schema any
	info   any
}

// Option configures a [Service].
type Option func(*Service)

// WithLogger sets the logger used for rejected requests, dropped
// notification errors and handler failures. A nil logger is ignored.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithValidator sets the params validator. Without one, method schemas
// other than [NoParams] are not checked.
func WithValidator(v Validator) Option {
	return func(s *Service) { s.validator = v }
}

// WithDefaultVersion sets the dialect used for errors raised before a
// request's own dialect is known. Unknown dialects are ignored.
func WithDefaultVersion(v Version) Option {
	return func(s *Service) {
		if v.Valid() {
			s.defaultVersion = v
		}
	}
}

// WithBatchConcurrency bounds the number of batch entries processed at
// once. Values below 1 select runtime.GOMAXPROCS(0); 1 runs batches
// sequentially.
func WithBatchConcurrency(n int) Option {
	return func(s *Service) {
		if n < 1 {
			n = runtime.GOMAXPROCS(0)
		}
		s.concurrency = n
	}
}

// WithDiscovery registers [DiscoverMethod], which returns the given service
// schema and info documents along with the registered method names.
func WithDiscovery(schema, info any) Option {
	return func(s *Service) {
		s.discovery = &discoveryDocs{schema: schema, info: info}
	}
}

// New creates a service with an empty registry.
func New(opts ...Option) *Service {
	s := &Service{
		registry:       NewRegistry(),
		log:            logger.NewJSONLogger(nil, true),
		defaultVersion: V2_0,
		concurrency:    runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.discovery != nil {
		s.registry.Register(DiscoverMethod, s.discoverHandler(s.discovery.schema, s.discovery.info), NoParams)
	}
	return s
}

// Register adds a method, replacing any method already registered under name.
// schema may be nil.
func (s *Service) Register(name string, h Handler, schema any) {
	s.registry.Register(name, h, schema)
}

// Registry returns the service's method registry.
func (s *Service) Registry() *Registry { return s.registry }

// DefaultVersion returns the dialect used for errors of unknown origin.
func (s *Service) DefaultVersion() Version { return s.defaultVersion }

// Call processes a raw JSON payload and returns the encoded reply, or nil
// when there is nothing to send back (a notification or a batch of them).
//
// Call never fails: every problem is reported inside the reply.
func (s *Service) Call(ctx context.Context, payload []byte, meta any) []byte {
	v, err := jsonrpc.Decode(payload)
	if err != nil {
		resp := s.fail(&Request{Version: s.defaultVersion}, detailsError(ParseError, err.Error()))
		return s.encode(resp)
	}
	return s.encode(s.CallValue(ctx, v, meta))
}

// CallValue processes an already decoded payload (as produced by
// encoding/json into an any) and returns nil, a [*Response] or a
// []*Response.
func (s *Service) CallValue(ctx context.Context, v any, meta any) any {
	batch, ok := v.([]any)
	if !ok {
		if resp := s.handle(ctx, v, meta); resp != nil {
			return resp
		}
		return nil
	}

	if len(batch) == 0 {
		return s.fail(&Request{Version: s.defaultVersion}, detailsError(InvalidRequest, "Batch request array is empty"))
	}
	if out := s.dispatchBatch(ctx, batch, meta); len(out) > 0 {
		return out
	}
	return nil
}

// encode serializes the result of CallValue.
func (s *Service) encode(out any) []byte {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()         // Reset the buffer to prevent data leaks
		gc.Default.Put(buf) // Return the buffer to the pool for reuse
	}()

	switch out := out.(type) {
	case *Response:
		s.writeResponse(buf, out)
	case []*Response:
		buf.WriteByte('[')
		for i, resp := range out {
			if i > 0 {
				buf.WriteByte(',')
			}
			s.writeResponse(buf, resp)
		}
		buf.WriteByte(']')
	default:
		return nil
	}

	return gc.Detach(buf)
}

// writeResponse appends one encoded response. A result that cannot be
// encoded is replaced by an internal error for the same id.
func (s *Service) writeResponse(buf gc.Buffer, resp *Response) {
	data, err := resp.MarshalJSON()
	if err != nil {
		s.log.Printf("Failed to encode response for id %v: %v", resp.ID, err)
		fallback := &Response{
			Version: resp.Version,
			ID:      resp.ID,
			Error:   detailsError(InternalError, err.Error()),
		}
		if data, err = fallback.MarshalJSON(); err != nil {
			fallback.ID = nil
			data, _ = fallback.MarshalJSON()
		}
	}
	buf.Write(data)
}

// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package service

import (
	"context"
	"errors"
)

// dispatch runs a normalized request and builds its response.
// It returns nil for notifications.
func (s *Service) dispatch(ctx context.Context, req *Request, meta any) *Response {
	entry, rerr := s.registry.lookup(req.Method)
	if rerr != nil {
		// Unregistered between normalization and dispatch.
		return s.fail(req, rerr)
	}

	if rerr := s.validate(entry, req); rerr != nil {
		return s.fail(req, rerr)
	}

	result, rerr := s.invoke(ctx, entry.Handler, req, meta)
	if rerr != nil {
		return s.fail(req, rerr)
	}

	if req.IsNotification() {
		return nil
	}
	return s.newResult(req, result)
}

func (s *Service) validate(entry Entry, req *Request) *Error {
	if np, ok := entry.Schema.(noParams); ok {
		return np.check(req.Params)
	}
	if entry.Schema == nil || s.validator == nil {
		return nil
	}

	err := s.validator.Validate(entry.Schema, req.Params)
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrInvalidSchema) {
		s.log.Printf("Method %s has an unusable schema: %v", req.Method, err)
		return detailsError(InternalError, err.Error())
	}

	data := map[string]any{"details": err.Error()}
	var pe PathError
	if errors.As(err, &pe) {
		path := pe.Path()
		if path == nil {
			path = []any{}
		}
		data["path"] = path
	}
	return NewError(InvalidParams, data)
}

// invoke calls the handler, converting returned errors and panics into
// server errors that name the method.
func (s *Service) invoke(ctx context.Context, h Handler, req *Request, meta any) (result any, rerr *Error) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Printf("Method %s panicked: %v", req.Method, r)
			rerr = serverFailure(req.Method, r)
			result = nil
		}
	}()

	result, err := h(ctx, req.Params, meta)
	if err == nil {
		return result, nil
	}

	var custom *Error
	if errors.As(err, &custom) && custom != nil {
		if inServerRange(custom.Code) {
			s.log.Printf("Method %s returned server error %d: %s", req.Method, custom.Code, custom.Message)
			return nil, custom.withMethod(req.Method)
		}
		s.log.Printf("Method %s returned error code %d outside the server range -32099..-32000", req.Method, custom.Code)
		return nil, serverFailure(req.Method, err)
	}

	s.log.Printf("Method %s threw an error: %v", req.Method, err)
	return nil, serverFailure(req.Method, err)
}

func serverFailure(method string, cause any) *Error {
	return NewError(ServerError, map[string]any{
		"details": describe(cause),
		"method":  method,
	})
}

// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package service

import (
	"context"
	"sync"
)

// dispatchBatch runs every entry of a batch on the bounded worker pool.
//
// Responses keep the order of their entries. Notifications are omitted, so
// the result may be empty.
func (s *Service) dispatchBatch(ctx context.Context, entries []any, meta any) []*Response {
	slots := make([]*Response, len(entries))

	if s.concurrency <= 1 || len(entries) == 1 {
		for i, entry := range entries {
			slots[i] = s.handle(ctx, entry, meta)
		}
		return compact(slots)
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, s.concurrency) // Semaphore to limit concurrency
	for i, entry := range entries {
		sem <- struct{}{}
		wg.Add(1)
		go func(i int, entry any) {
			defer func() {
				<-sem // Release token
				wg.Done()
			}()
			slots[i] = s.handle(ctx, entry, meta)
		}(i, entry)
	}
	wg.Wait()

	return compact(slots)
}

// handle normalizes and dispatches a single record.
func (s *Service) handle(ctx context.Context, record any, meta any) *Response {
	req, err := s.normalize(record)
	if err != nil {
		return s.fail(req, err)
	}
	return s.dispatch(ctx, req, meta)
}

func compact(slots []*Response) []*Response {
	out := slots[:0]
	for _, resp := range slots {
		if resp != nil {
			out = append(out, resp)
		}
	}
	return out
}

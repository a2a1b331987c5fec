package inmemory

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type requestEntry struct {
	done bool
	wait chan struct{} // закрывается при Complete или Forget
}

// RequestCache in-memory учёт request_id ограниченного размера.
// Лимит относится к завершённым запросам, при переполнении забываются самые старые
type RequestCache struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*requestEntry
	order   []uuid.UUID
	limit   int
}

func NewRequestCache(limit int) *RequestCache {
	if limit <= 0 {
		limit = 10000
	}
	return &RequestCache{
		entries: make(map[uuid.UUID]*requestEntry, limit),
		order:   make([]uuid.UUID, 0, limit),
		limit:   limit,
	}
}

func (c *RequestCache) Acquire(ctx context.Context, requestID uuid.UUID) (bool, error) {
	for {
		c.mu.Lock()
		e, ok := c.entries[requestID]
		if !ok {
			c.entries[requestID] = &requestEntry{wait: make(chan struct{})}
			c.mu.Unlock()
			return true, nil
		}
		if e.done {
			c.mu.Unlock()
			return false, nil
		}
		wait := e.wait
		c.mu.Unlock()

		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-wait:
		}
	}
}

func (c *RequestCache) Complete(requestID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[requestID]
	if !ok || e.done {
		return
	}
	e.done = true
	close(e.wait)

	if len(c.order) >= c.limit {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	c.order = append(c.order, requestID)
}

func (c *RequestCache) Forget(requestID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[requestID]
	if !ok {
		return
	}
	delete(c.entries, requestID)
	if !e.done {
		close(e.wait)
		return
	}
	for i, id := range c.order {
		if id == requestID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *RequestCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import "sync"

// Subscription is a handle on a registered change handler.
type Subscription interface {
	Unsubscribe()
}

// Hub fans a payload-free "something changed" signal out to every subscriber.
// Handlers run on the publishing goroutine and must not block.
type Hub struct {
	mu       sync.Mutex
	nextID   uint64
	handlers map[uint64]func()
}

func NewHub() *Hub {
	return &Hub{handlers: make(map[uint64]func())}
}

// Subscribe registers fn and returns its subscription
func (h *Hub) Subscribe(fn func()) Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID
	h.handlers[id] = fn

	return &subscription{hub: h, id: id}
}

// Publish calls every live handler once.
func (h *Hub) Publish() {
	h.mu.Lock()
	fns := make([]func(), 0, len(h.handlers))
	for _, fn := range h.handlers {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Len returns the number of live subscriptions
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.handlers)
}

func (h *Hub) remove(id uint64) {
	h.mu.Lock()
	delete(h.handlers, id)
	h.mu.Unlock()
}

type subscription struct {
	hub  *Hub
	id   uint64
	once sync.Once
}

// Unsubscribe removes the handler; later calls do nothing.
func (s *subscription) Unsubscribe() {
	s.once.Do(func() {
		s.hub.remove(s.id)
	})
}

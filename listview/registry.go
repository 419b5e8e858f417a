// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package listview

import (
	"sync"

	"github.com/google/uuid"
)

// Registry tracks mounted views so later requests can address them by id.
type Registry struct {
	mu    sync.RWMutex
	views map[string]*View
}

func NewRegistry() *Registry {
	return &Registry{views: make(map[string]*View)}
}

// Add stores v under a new id
func (r *Registry) Add(v *View) string {
	id := uuid.NewString()

	r.mu.Lock()
	r.views[id] = v
	r.mu.Unlock()

	return id
}

func (r *Registry) Get(id string) (*View, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.views[id]
	return v, ok
}

func (r *Registry) Remove(id string) {
	r.mu.Lock()
	delete(r.views, id)
	r.mu.Unlock()
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.views)
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gate

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultIdleTimeout is how long an untouched session is kept
const DefaultIdleTimeout = 30 * time.Minute

// Sessions keeps one Gate per browser session.
type Sessions struct {
	password string
	idle     time.Duration
	opts     []Option
	now      func() time.Time

	mu    sync.Mutex
	gates map[string]*session
}

type session struct {
	gate     *Gate
	lastSeen time.Time
}

func NewSessions(password string, idle time.Duration, opts ...Option) *Sessions {
	if idle <= 0 {
		idle = DefaultIdleTimeout
	}
	return &Sessions{
		password: password,
		idle:     idle,
		opts:     opts,
		now:      time.Now,
		gates:    make(map[string]*session),
	}
}

// Get returns the gate for id. An empty or unknown id starts a new session,
// and the id to hand back to the client is returned alongside.
func (s *Sessions) Get(id string) (string, *Gate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if sess, ok := s.gates[id]; ok && id != "" {
		sess.lastSeen = now
		return id, sess.gate
	}

	s.pruneLocked(now)

	id = uuid.NewString()
	g := New(s.password, s.opts...)
	s.gates[id] = &session{gate: g, lastSeen: now}
	return id, g
}

// Prune drops sessions idle for longer than the timeout and returns how many
func (s *Sessions) Prune() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pruneLocked(s.now())
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.gates)
}

func (s *Sessions) pruneLocked(now time.Time) int {
	n := 0
	for id, sess := range s.gates {
		if now.Sub(sess.lastSeen) > s.idle {
			sess.gate.Close()
			delete(s.gates, id)
			n++
		}
	}
	return n
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gate

import (
	"crypto/subtle"
	"fmt"
	"sync"
	"time"
)

// DisplayedAttempts is the countdown shown to the surveyor. Nothing is
// enforced when it reaches zero.
const DisplayedAttempts = 3

// DefaultMessageTTL is how long an error message stays visible
const DefaultMessageTTL = 3 * time.Second

// Gate holds the unlock state of one surveyor session.
type Gate struct {
	password string
	ttl      time.Duration

	mu       sync.Mutex
	unlocked bool
	attempts int
	message  string
	msgSeq   uint64
	timer    *time.Timer
}

type Option func(*Gate)

// WithMessageTTL overrides how long the incorrect-password message is kept
func WithMessageTTL(d time.Duration) Option {
	return func(g *Gate) { g.ttl = d }
}

func New(password string, opts ...Option) *Gate {
	g := &Gate{password: password, ttl: DefaultMessageTTL}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Enter compares input with the configured password. A match unlocks the
// gate at any attempt count; a mismatch counts an attempt and shows a
// countdown message for the configured TTL.
func (g *Gate) Enter(input string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if subtle.ConstantTimeCompare([]byte(input), []byte(g.password)) == 1 {
		g.unlocked = true
		g.clearMessageLocked()
		return true
	}

	g.attempts++
	g.message = fmt.Sprintf("Incorrect password. %d attempts remaining.", remaining(g.attempts))
	g.msgSeq++

	// each failure restarts the clock
	if g.timer != nil {
		g.timer.Stop()
	}
	seq := g.msgSeq
	g.timer = time.AfterFunc(g.ttl, func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		if g.msgSeq == seq {
			g.message = ""
		}
	})
	return false
}

// Lock returns the gate to its initial state
func (g *Gate) Lock() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.unlocked = false
	g.attempts = 0
	g.clearMessageLocked()
}

// Close stops the pending message timer
func (g *Gate) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.clearMessageLocked()
}

func (g *Gate) Unlocked() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.unlocked
}

func (g *Gate) Attempts() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.attempts
}

func (g *Gate) Remaining() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return remaining(g.attempts)
}

// Message is the current error message, or "" once it has expired
func (g *Gate) Message() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.message
}

func (g *Gate) clearMessageLocked() {
	g.message = ""
	g.msgSeq++
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
}

func remaining(attempts int) int {
	return max(0, DisplayedAttempts-attempts)
}

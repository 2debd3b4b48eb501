// Package testutils provides shared test doubles for the interaction core.
package testutils

import (
	"sort"
	"sync"
	"time"
)

// FakeScheduler collects scheduled callbacks and fires them on demand,
// letting tests drive delayed effects deterministically.
type FakeScheduler struct {
	mu      sync.Mutex
	now     time.Duration
	pending []scheduled
}

type scheduled struct {
	at time.Duration
	fn func()
}

// NewFakeScheduler creates an empty scheduler at time zero.
func NewFakeScheduler() *FakeScheduler {
	return &FakeScheduler{}
}

// AfterFunc records the callback for firing at now+d.
func (s *FakeScheduler) AfterFunc(d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, scheduled{at: s.now + d, fn: fn})
}

// Advance moves the clock forward and fires every callback that came due,
// in schedule order. Callbacks may schedule further callbacks.
func (s *FakeScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	s.mu.Unlock()

	for {
		fn := s.popDue()
		if fn == nil {
			return
		}
		fn()
	}
}

func (s *FakeScheduler) popDue() func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	sort.SliceStable(s.pending, func(i, j int) bool {
		return s.pending[i].at < s.pending[j].at
	})
	for i, entry := range s.pending {
		if entry.at <= s.now {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return entry.fn
		}
	}
	return nil
}

// PendingCount returns the number of callbacks not yet fired.
func (s *FakeScheduler) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// CelebrationCounter counts Trigger calls.
type CelebrationCounter struct {
	mu    sync.Mutex
	count int
}

// Trigger increments the counter.
func (c *CelebrationCounter) Trigger() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count++
}

// Count returns the number of Trigger calls so far.
func (c *CelebrationCounter) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

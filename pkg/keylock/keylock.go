// Package keylock serializes work per key while leaving unrelated keys
// unsynchronized.
package keylock

import (
	"context"
	"sync"
)

// Lock represents an acquired key that must be released exactly once.
type Lock interface {
	Release()
}

// Locker hands out one mutual-exclusion slot per key. Entries are dropped
// once nobody holds or waits for them.
type Locker struct {
	mu    sync.Mutex
	slots map[string]*slot
}

type slot struct {
	ch   chan struct{}
	refs int
}

// New -.
func New() *Locker {
	return &Locker{slots: make(map[string]*slot)}
}

// Acquire blocks until key is free or ctx is done.
func (l *Locker) Acquire(ctx context.Context, key string) (Lock, error) {
	l.mu.Lock()

	s, ok := l.slots[key]
	if !ok {
		s = &slot{ch: make(chan struct{}, 1)}
		l.slots[key] = s
	}

	s.refs++
	l.mu.Unlock()

	select {
	case s.ch <- struct{}{}:
		return &held{locker: l, key: key, slot: s}, nil
	case <-ctx.Done():
		l.drop(key, s)

		return nil, ctx.Err()
	}
}

// Len reports how many keys are currently held or awaited.
func (l *Locker) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.slots)
}

func (l *Locker) drop(key string, s *slot) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s.refs--
	if s.refs == 0 {
		delete(l.slots, key)
	}
}

type held struct {
	locker *Locker
	key    string
	slot   *slot
	once   sync.Once
}

func (h *held) Release() {
	h.once.Do(func() {
		<-h.slot.ch
		h.locker.drop(h.key, h.slot)
	})
}

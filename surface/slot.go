// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"sync"
)

// Slot errors.
var (
	// ErrSlotPopulated is returned by Populate after the first success.
	ErrSlotPopulated = errors.New("surface: slot already populated")

	// ErrSlotClosed is returned by Populate after Close.
	ErrSlotClosed = errors.New("surface: slot closed")
)

// Slot is a shared, initially empty holder for a State.
//
// The asynchronous initializer populates it exactly once; window
// callbacks read it at any time and treat an empty slot as "not ready".
// Every access to the State goes through With, which holds the slot's
// lock for the duration of the call, so a resize and a render never
// interleave.
//
// Slot is safe for concurrent use. The zero value is an empty slot.
type Slot struct {
	mu     sync.Mutex
	state  *State
	closed bool
}

// NewSlot returns an empty slot.
func NewSlot() *Slot {
	return &Slot{}
}

// Populate stores s in the slot. It fails if the slot is already populated
// or closed; the caller then still owns s.
func (sl *Slot) Populate(s *State) error {
	if s == nil {
		return errors.New("surface: populate with nil state")
	}
	sl.mu.Lock()
	defer sl.mu.Unlock()
	switch {
	case sl.closed:
		return ErrSlotClosed
	case sl.state != nil:
		return ErrSlotPopulated
	}
	sl.state = s
	return nil
}

// Ready reports whether the slot holds a State.
func (sl *Slot) Ready() bool {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	return sl.state != nil
}

// With calls fn with the State while holding the slot's lock.
// If the slot is empty, fn is not called and With returns (false, nil).
func (sl *Slot) With(fn func(*State) error) (ready bool, err error) {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	if sl.state == nil {
		return false, nil
	}
	return true, fn(sl.state)
}

// Close destroys the held State, if any, and rejects later Populate calls.
// It is idempotent.
func (sl *Slot) Close() {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	sl.closed = true
	if sl.state != nil {
		sl.state.Destroy()
		sl.state = nil
	}
}

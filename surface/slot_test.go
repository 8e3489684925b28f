// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/gogpu/gpuwindow"
	"github.com/gogpu/gpuwindow/backend"
	"github.com/gogpu/gpuwindow/internal/gputest"
)

func TestSlotEmpty(t *testing.T) {
	var sl Slot

	if sl.Ready() {
		t.Error("zero Slot is ready")
	}
	called := false
	ready, err := sl.With(func(*State) error {
		called = true
		return nil
	})
	if ready || err != nil || called {
		t.Errorf("With() on empty slot = (%v, %v), called = %v", ready, err, called)
	}
}

func TestSlotPopulateOnce(t *testing.T) {
	s, _, _ := newTestState(t, 10, 10, 1)
	other, _, _ := newTestState(t, 10, 10, 1)
	sl := NewSlot()

	if err := sl.Populate(nil); err == nil {
		t.Error("Populate(nil) succeeded")
	}
	if err := sl.Populate(s); err != nil {
		t.Fatalf("Populate() error = %v", err)
	}
	if err := sl.Populate(other); !errors.Is(err, ErrSlotPopulated) {
		t.Errorf("second Populate() error = %v, want ErrSlotPopulated", err)
	}

	var got *State
	ready, err := sl.With(func(st *State) error {
		got = st
		return errInjected
	})
	if !ready {
		t.Fatal("With() not ready after Populate")
	}
	if !errors.Is(err, errInjected) {
		t.Errorf("With() error = %v, want fn's error", err)
	}
	if got != s {
		t.Error("With() passed a different state")
	}
}

func TestSlotClose(t *testing.T) {
	b := gputest.NewBackend()
	inst, _ := b.CreateInstance()
	s, err := Initialize(context.Background(), inst, gputest.NewWindow(10, 10, 1))
	if err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	sl := NewSlot()
	if err := sl.Populate(s); err != nil {
		t.Fatalf("Populate() error = %v", err)
	}

	sl.Close()
	sl.Close()

	if sl.Ready() {
		t.Error("closed slot is ready")
	}
	want := []string{"surface", "device", "adapter"}
	if got := b.Destroyed(); !reflect.DeepEqual(got, want) {
		t.Errorf("destroyed = %v, want %v", got, want)
	}
	if err := sl.Populate(s); !errors.Is(err, ErrSlotClosed) {
		t.Errorf("Populate() after Close error = %v, want ErrSlotClosed", err)
	}
}

// Callbacks delivered while initialization is still running must see an
// empty slot, and the first access after Populate must see a complete
// state. Run with -race.
func TestSlotConcurrentAccess(t *testing.T) {
	b := gputest.NewBackend()
	inst, _ := b.CreateInstance()
	win := gputest.NewWindow(400, 300, 1)
	sl := NewSlot()
	defer sl.Close()

	stop := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				ready, err := sl.With(func(s *State) error {
					if s.Size() == (Extent{}) {
						t.Error("observed a partially initialized state")
					}
					if err := s.Reconfigure(); err != nil {
						return err
					}
					return s.RenderFrame()
				})
				if ready && err != nil {
					t.Errorf("With() error = %v", err)
				}
			}
		}()
	}

	if err := <-Start(context.Background(), inst, win, sl); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	close(stop)
	wg.Wait()

	if !sl.Ready() {
		t.Error("slot not ready after Start")
	}
}

func TestStartFailure(t *testing.T) {
	b := gputest.NewBackend()
	b.Fail = gputest.Failures{RequestAdapter: backend.ErrNoAdapter}
	inst, _ := b.CreateInstance()
	sl := NewSlot()

	done := Start(context.Background(), inst, gputest.NewWindow(10, 10, 1), sl)
	err := <-done
	if !errors.Is(err, gpuwindow.ErrNoCompatibleAdapter) {
		t.Fatalf("Start() error = %v, want ErrNoCompatibleAdapter", err)
	}
	if _, ok := <-done; ok {
		t.Error("done channel not closed after the result")
	}
	if sl.Ready() {
		t.Error("slot populated after failed initialization")
	}
}

func TestStartIntoClosedSlot(t *testing.T) {
	b := gputest.NewBackend()
	inst, _ := b.CreateInstance()
	sl := NewSlot()
	sl.Close()

	err := <-Start(context.Background(), inst, gputest.NewWindow(10, 10, 1), sl)
	if !errors.Is(err, ErrSlotClosed) {
		t.Fatalf("Start() error = %v, want ErrSlotClosed", err)
	}
	want := []string{"surface", "device", "adapter"}
	if got := b.Destroyed(); !reflect.DeepEqual(got, want) {
		t.Errorf("destroyed = %v, want %v", got, want)
	}
}

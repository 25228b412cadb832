package uniauth

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestPollerFiresOnceWhenPredicatePasses(t *testing.T) {
	var fired atomic.Int32
	p := NewPoller(5*time.Millisecond,
		func() bool { return true },
		func() { fired.Add(1) },
	)
	p.Start()
	defer p.Stop()

	deadline := time.After(time.Second)
	for fired.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("poller never fired")
		case <-time.After(time.Millisecond):
		}
	}

	// A passing predicate must not refire on subsequent ticks.
	time.Sleep(30 * time.Millisecond)
	if got := fired.Load(); got != 1 {
		t.Fatalf("fired %d times, want 1", got)
	}
}

func TestPollerWaitsForPredicate(t *testing.T) {
	var ready atomic.Bool
	var fired atomic.Int32
	p := NewPoller(5*time.Millisecond,
		func() bool { return ready.Load() },
		func() { fired.Add(1) },
	)
	p.Start()
	defer p.Stop()

	time.Sleep(30 * time.Millisecond)
	if fired.Load() != 0 {
		t.Fatal("fired before predicate passed")
	}

	ready.Store(true)
	deadline := time.After(time.Second)
	for fired.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("poller never fired after predicate passed")
		case <-time.After(time.Millisecond):
		}
	}
}

func TestPollerStopPreventsCallback(t *testing.T) {
	var fired atomic.Int32
	p := NewPoller(5*time.Millisecond,
		func() bool { return false },
		func() { fired.Add(1) },
	)
	p.Start()
	p.Stop()
	p.Stop() // idempotent

	time.Sleep(30 * time.Millisecond)
	if fired.Load() != 0 {
		t.Fatalf("fired %d times after Stop, want 0", fired.Load())
	}
}

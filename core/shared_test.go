package core

import (
	"testing"

	"nrftimer/regs"
	"nrftimer/sim"
	"nrftimer/timer"
)

func TestSharedRunsInCriticalSection(t *testing.T) {
	s := sim.NewBasic()
	c := timer.Start(timer.NewBasic(s).IntoCounter())
	shared := NewShared(c)

	called := shared.With(func(c timer.Timer[timer.W32, timer.CounterMode, timer.Started, timer.AllDisabled4]) {
		if !inCritical() {
			t.Error("With must run with interrupts disabled")
		}
		timer.Tick(c)
		timer.Unpend0(c)
	})
	if !called {
		t.Fatal("With did not call the function")
	}
	if inCritical() {
		t.Error("Critical section was not left")
	}
	if s.Counter() != 1 {
		t.Errorf("Expected counter 1, got %d", s.Counter())
	}
}

func TestSharedTakePut(t *testing.T) {
	s := sim.NewBasic()
	shared := NewShared(timer.NewBasic(s).IntoTimer())

	tm, ok := shared.Take()
	if !ok {
		t.Fatal("Expected a value")
	}
	if shared.With(func(timer.Timer[timer.W32, timer.TimerMode[timer.P0], timer.Stopped, timer.AllDisabled4]) {}) {
		t.Error("With must not run on an empty container")
	}

	// Transitions change the type, so the stopped handle goes back unchanged
	running := timer.Start(tm)
	stopped := timer.Stop(running)
	shared.Put(stopped)

	shared.With(func(tm timer.Timer[timer.W32, timer.TimerMode[timer.P0], timer.Stopped, timer.AllDisabled4]) {
		timer.CompareAgainst1(tm, 77)
	})
	if got := s.Load(regs.CC(1)); got != 77 {
		t.Errorf("Expected CC[1]=77, got %d", got)
	}
}

//go:build nrf52840

package main

import (
	"device/nrf"
	"machine"
	"runtime/interrupt"
	"sync/atomic"

	"nrftimer/core"
	"nrftimer/timer"
)

// eventCounter is TIMER3 counting button presses. COMPARE[5] interrupts
// every CounterWrap presses, COMPARE[0..4] mark fractions of it.
type eventCounter = timer.Timer[timer.W32, timer.CounterMode, timer.Started,
	timer.IRQ6[timer.Disabled, timer.Disabled, timer.Disabled, timer.Disabled, timer.Disabled, timer.Enabled]]

var (
	counter *core.Shared[eventCounter]
	laps    atomic.Uint32
)

func startCounter() eventCounter {
	c := TIMER3.IntoCounter()
	timer.CompareAgainst0(c, CounterWrap/5)
	timer.CompareAgainst1(c, 2*CounterWrap/5)
	timer.CompareAgainst2(c, 3*CounterWrap/5)
	timer.CompareAgainst3(c, 4*CounterWrap/5)
	timer.CompareAgainst4(c, CounterWrap-1)
	timer.CompareAgainst5(c, CounterWrap)
	return timer.Start(timer.EnableInterrupt5(c))
}

// InitCounter routes the button to TIMER3 and enables its interrupt
func InitCounter() {
	counter = core.NewShared(startCounter())

	intr := interrupt.New(nrf.IRQ_TIMER3, handleCounter)
	intr.SetPriority(0xC0)
	intr.Enable()

	button := machine.BUTTON
	button.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	button.SetInterrupt(machine.PinFalling, func(machine.Pin) {
		counter.With(func(c eventCounter) { timer.Tick(c) })
	})
}

func handleCounter(interrupt.Interrupt) {
	counter.With(func(c eventCounter) {
		timer.Unpend5(c)
		c.Reset()
	})
	laps.Add(1)
}

// counterDump reads TIMER3 from the main loop
func counterDump() (timer.Dump, bool) {
	var d timer.Dump
	ok := counter.With(func(c eventCounter) { d = c.Dump() })
	return d, ok
}

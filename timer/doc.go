// Package timer drives the nRF52840 TIMER peripheral through handles whose
// type records the peripheral's configuration.
//
// A handle has four type parameters:
//
//	Timer[W Width, M Mode, S RunState, I LaneList]
//
// W is the counter bit width (W8, W16, W24, W32), M is the operating mode
// (CounterMode or TimerMode[P] with a prescaler P0..P9), S is Stopped or
// Started and I lists the interrupt state of each compare channel (IRQ4 for
// TIMER0..TIMER2, IRQ6 for TIMER3 and TIMER4).
//
// Every operation that changes the hardware configuration takes a handle and
// returns a new one whose type matches the registers after the write. An
// operation that is illegal in the current configuration simply does not
// accept the handle's type, so the mistake is reported by the compiler:
//
//	t := timer.NewBasic(bus).IntoCounter()
//	t = timer.SetWidth[timer.W16](t)       // does not compile: type changed
//	s := timer.Start(timer.SetWidth[timer.W16](t))
//	timer.Start(s)                         // does not compile: already started
//	timer.SetPrescaler[timer.P4](s)        // does not compile: counter mode
//
// Go values can be copied, so a superseded handle still exists after a
// transition. Using one panics with ErrStaleHandle before any register is
// touched.
//
// The package does no locking. Handles shared with an interrupt handler must
// be wrapped by the caller, for example in core.Shared.
package timer

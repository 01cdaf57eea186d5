package timer

import "nrftimer/regs"

// Per-channel operations. Channel n is addressed through the n-th lane of
// the handle's LaneList, so channels 4 and 5 only exist on 6 channel timers.
// Enabling and disabling interrupts changes the handle type; unpending,
// comparing and capturing work in any state.

func enableInterrupt(b regs.Bus, n int) {
	b.Store(regs.IntenSet, regs.IntenCompare(n))
}

func disableInterrupt(b regs.Bus, n int) {
	b.Store(regs.IntenClr, regs.IntenCompare(n))
}

func unpend(b regs.Bus, n int) {
	b.Store(regs.EventsCompare(n), regs.NoEvent)
}

func compareAgainst(b regs.Bus, n int, val uint32) {
	b.Store(regs.CC(n), val)
}

func capture(b regs.Bus, n int) uint32 {
	b.Store(regs.TasksCapture(n), regs.Trigger)
	return b.Load(regs.CC(n))
}

// Channel 0

// EnableInterrupt0 enables the COMPARE[0] interrupt (INTENSET).
// The interrupt must currently be disabled.
func EnableInterrupt0[W Width, M Mode, S RunState, R LaneList](t Timer[W, M, S, Lanes[Disabled, R]]) Timer[W, M, S, Lanes[Enabled, R]] {
	enableInterrupt(t.bus(), 0)
	return advance[W, M, S, Lanes[Enabled, R]](t.p)
}

// DisableInterrupt0 disables the COMPARE[0] interrupt (INTENCLR).
// The interrupt must currently be enabled.
func DisableInterrupt0[W Width, M Mode, S RunState, R LaneList](t Timer[W, M, S, Lanes[Enabled, R]]) Timer[W, M, S, Lanes[Disabled, R]] {
	disableInterrupt(t.bus(), 0)
	return advance[W, M, S, Lanes[Disabled, R]](t.p)
}

// Unpend0 clears EVENTS_COMPARE[0]. An event has to be cleared before the
// next match on the channel can be observed.
func Unpend0[W Width, M Mode, S RunState, X Lane, R LaneList](t Timer[W, M, S, Lanes[X, R]]) {
	unpend(t.bus(), 0)
}

// CompareAgainst0 writes the compare value of channel 0. Any uint32 is
// accepted; the peripheral only compares the low W bits.
func CompareAgainst0[W Width, M Mode, S RunState, X Lane, R LaneList](t Timer[W, M, S, Lanes[X, R]], val uint32) {
	compareAgainst(t.bus(), 0, val)
}

// Capture0 latches the counter into CC[0] and returns it. The compare value
// previously written to the channel is overwritten.
func Capture0[W Width, M Mode, S RunState, X Lane, R LaneList](t Timer[W, M, S, Lanes[X, R]]) uint32 {
	return capture(t.bus(), 0)
}

// Channel 1

// EnableInterrupt1 enables the COMPARE[1] interrupt
func EnableInterrupt1[W Width, M Mode, S RunState, A Lane, R LaneList](t Timer[W, M, S, Lanes[A, Lanes[Disabled, R]]]) Timer[W, M, S, Lanes[A, Lanes[Enabled, R]]] {
	enableInterrupt(t.bus(), 1)
	return advance[W, M, S, Lanes[A, Lanes[Enabled, R]]](t.p)
}

// DisableInterrupt1 disables the COMPARE[1] interrupt
func DisableInterrupt1[W Width, M Mode, S RunState, A Lane, R LaneList](t Timer[W, M, S, Lanes[A, Lanes[Enabled, R]]]) Timer[W, M, S, Lanes[A, Lanes[Disabled, R]]] {
	disableInterrupt(t.bus(), 1)
	return advance[W, M, S, Lanes[A, Lanes[Disabled, R]]](t.p)
}

// Unpend1 clears EVENTS_COMPARE[1]
func Unpend1[W Width, M Mode, S RunState, A, X Lane, R LaneList](t Timer[W, M, S, Lanes[A, Lanes[X, R]]]) {
	unpend(t.bus(), 1)
}

// CompareAgainst1 writes the compare value of channel 1
func CompareAgainst1[W Width, M Mode, S RunState, A, X Lane, R LaneList](t Timer[W, M, S, Lanes[A, Lanes[X, R]]], val uint32) {
	compareAgainst(t.bus(), 1, val)
}

// Capture1 latches the counter into CC[1] and returns it
func Capture1[W Width, M Mode, S RunState, A, X Lane, R LaneList](t Timer[W, M, S, Lanes[A, Lanes[X, R]]]) uint32 {
	return capture(t.bus(), 1)
}

// Channel 2

// EnableInterrupt2 enables the COMPARE[2] interrupt
func EnableInterrupt2[W Width, M Mode, S RunState, A, B Lane, R LaneList](t Timer[W, M, S, Lanes[A, Lanes[B, Lanes[Disabled, R]]]]) Timer[W, M, S, Lanes[A, Lanes[B, Lanes[Enabled, R]]]] {
	enableInterrupt(t.bus(), 2)
	return advance[W, M, S, Lanes[A, Lanes[B, Lanes[Enabled, R]]]](t.p)
}

// DisableInterrupt2 disables the COMPARE[2] interrupt
func DisableInterrupt2[W Width, M Mode, S RunState, A, B Lane, R LaneList](t Timer[W, M, S, Lanes[A, Lanes[B, Lanes[Enabled, R]]]]) Timer[W, M, S, Lanes[A, Lanes[B, Lanes[Disabled, R]]]] {
	disableInterrupt(t.bus(), 2)
	return advance[W, M, S, Lanes[A, Lanes[B, Lanes[Disabled, R]]]](t.p)
}

// Unpend2 clears EVENTS_COMPARE[2]
func Unpend2[W Width, M Mode, S RunState, A, B, X Lane, R LaneList](t Timer[W, M, S, Lanes[A, Lanes[B, Lanes[X, R]]]]) {
	unpend(t.bus(), 2)
}

// CompareAgainst2 writes the compare value of channel 2
func CompareAgainst2[W Width, M Mode, S RunState, A, B, X Lane, R LaneList](t Timer[W, M, S, Lanes[A, Lanes[B, Lanes[X, R]]]], val uint32) {
	compareAgainst(t.bus(), 2, val)
}

// Capture2 latches the counter into CC[2] and returns it
func Capture2[W Width, M Mode, S RunState, A, B, X Lane, R LaneList](t Timer[W, M, S, Lanes[A, Lanes[B, Lanes[X, R]]]]) uint32 {
	return capture(t.bus(), 2)
}

// Channel 3

// EnableInterrupt3 enables the COMPARE[3] interrupt
func EnableInterrupt3[W Width, M Mode, S RunState, A, B, C Lane, R LaneList](t Timer[W, M, S, Lanes[A, Lanes[B, Lanes[C, Lanes[Disabled, R]]]]]) Timer[W, M, S, Lanes[A, Lanes[B, Lanes[C, Lanes[Enabled, R]]]]] {
	enableInterrupt(t.bus(), 3)
	return advance[W, M, S, Lanes[A, Lanes[B, Lanes[C, Lanes[Enabled, R]]]]](t.p)
}

// DisableInterrupt3 disables the COMPARE[3] interrupt
func DisableInterrupt3[W Width, M Mode, S RunState, A, B, C Lane, R LaneList](t Timer[W, M, S, Lanes[A, Lanes[B, Lanes[C, Lanes[Enabled, R]]]]]) Timer[W, M, S, Lanes[A, Lanes[B, Lanes[C, Lanes[Disabled, R]]]]] {
	disableInterrupt(t.bus(), 3)
	return advance[W, M, S, Lanes[A, Lanes[B, Lanes[C, Lanes[Disabled, R]]]]](t.p)
}

// Unpend3 clears EVENTS_COMPARE[3]
func Unpend3[W Width, M Mode, S RunState, A, B, C, X Lane, R LaneList](t Timer[W, M, S, Lanes[A, Lanes[B, Lanes[C, Lanes[X, R]]]]]) {
	unpend(t.bus(), 3)
}

// CompareAgainst3 writes the compare value of channel 3
func CompareAgainst3[W Width, M Mode, S RunState, A, B, C, X Lane, R LaneList](t Timer[W, M, S, Lanes[A, Lanes[B, Lanes[C, Lanes[X, R]]]]], val uint32) {
	compareAgainst(t.bus(), 3, val)
}

// Capture3 latches the counter into CC[3] and returns it
func Capture3[W Width, M Mode, S RunState, A, B, C, X Lane, R LaneList](t Timer[W, M, S, Lanes[A, Lanes[B, Lanes[C, Lanes[X, R]]]]]) uint32 {
	return capture(t.bus(), 3)
}

// Channel 4

// EnableInterrupt4 enables the COMPARE[4] interrupt
func EnableInterrupt4[W Width, M Mode, S RunState, A, B, C, D Lane, R LaneList](t Timer[W, M, S, Lanes[A, Lanes[B, Lanes[C, Lanes[D, Lanes[Disabled, R]]]]]]) Timer[W, M, S, Lanes[A, Lanes[B, Lanes[C, Lanes[D, Lanes[Enabled, R]]]]]] {
	enableInterrupt(t.bus(), 4)
	return advance[W, M, S, Lanes[A, Lanes[B, Lanes[C, Lanes[D, Lanes[Enabled, R]]]]]](t.p)
}

// DisableInterrupt4 disables the COMPARE[4] interrupt
func DisableInterrupt4[W Width, M Mode, S RunState, A, B, C, D Lane, R LaneList](t Timer[W, M, S, Lanes[A, Lanes[B, Lanes[C, Lanes[D, Lanes[Enabled, R]]]]]]) Timer[W, M, S, Lanes[A, Lanes[B, Lanes[C, Lanes[D, Lanes[Disabled, R]]]]]] {
	disableInterrupt(t.bus(), 4)
	return advance[W, M, S, Lanes[A, Lanes[B, Lanes[C, Lanes[D, Lanes[Disabled, R]]]]]](t.p)
}

// Unpend4 clears EVENTS_COMPARE[4]
func Unpend4[W Width, M Mode, S RunState, A, B, C, D, X Lane, R LaneList](t Timer[W, M, S, Lanes[A, Lanes[B, Lanes[C, Lanes[D, Lanes[X, R]]]]]]) {
	unpend(t.bus(), 4)
}

// CompareAgainst4 writes the compare value of channel 4
func CompareAgainst4[W Width, M Mode, S RunState, A, B, C, D, X Lane, R LaneList](t Timer[W, M, S, Lanes[A, Lanes[B, Lanes[C, Lanes[D, Lanes[X, R]]]]]], val uint32) {
	compareAgainst(t.bus(), 4, val)
}

// Capture4 latches the counter into CC[4] and returns it
func Capture4[W Width, M Mode, S RunState, A, B, C, D, X Lane, R LaneList](t Timer[W, M, S, Lanes[A, Lanes[B, Lanes[C, Lanes[D, Lanes[X, R]]]]]]) uint32 {
	return capture(t.bus(), 4)
}

// Channel 5

// EnableInterrupt5 enables the COMPARE[5] interrupt
func EnableInterrupt5[W Width, M Mode, S RunState, A, B, C, D, E Lane, R LaneList](t Timer[W, M, S, Lanes[A, Lanes[B, Lanes[C, Lanes[D, Lanes[E, Lanes[Disabled, R]]]]]]]) Timer[W, M, S, Lanes[A, Lanes[B, Lanes[C, Lanes[D, Lanes[E, Lanes[Enabled, R]]]]]]] {
	enableInterrupt(t.bus(), 5)
	return advance[W, M, S, Lanes[A, Lanes[B, Lanes[C, Lanes[D, Lanes[E, Lanes[Enabled, R]]]]]]](t.p)
}

// DisableInterrupt5 disables the COMPARE[5] interrupt
func DisableInterrupt5[W Width, M Mode, S RunState, A, B, C, D, E Lane, R LaneList](t Timer[W, M, S, Lanes[A, Lanes[B, Lanes[C, Lanes[D, Lanes[E, Lanes[Enabled, R]]]]]]]) Timer[W, M, S, Lanes[A, Lanes[B, Lanes[C, Lanes[D, Lanes[E, Lanes[Disabled, R]]]]]]] {
	disableInterrupt(t.bus(), 5)
	return advance[W, M, S, Lanes[A, Lanes[B, Lanes[C, Lanes[D, Lanes[E, Lanes[Disabled, R]]]]]]](t.p)
}

// Unpend5 clears EVENTS_COMPARE[5]
func Unpend5[W Width, M Mode, S RunState, A, B, C, D, E, X Lane, R LaneList](t Timer[W, M, S, Lanes[A, Lanes[B, Lanes[C, Lanes[D, Lanes[E, Lanes[X, R]]]]]]]) {
	unpend(t.bus(), 5)
}

// CompareAgainst5 writes the compare value of channel 5
func CompareAgainst5[W Width, M Mode, S RunState, A, B, C, D, E, X Lane, R LaneList](t Timer[W, M, S, Lanes[A, Lanes[B, Lanes[C, Lanes[D, Lanes[E, Lanes[X, R]]]]]]], val uint32) {
	compareAgainst(t.bus(), 5, val)
}

// Capture5 latches the counter into CC[5] and returns it
func Capture5[W Width, M Mode, S RunState, A, B, C, D, E, X Lane, R LaneList](t Timer[W, M, S, Lanes[A, Lanes[B, Lanes[C, Lanes[D, Lanes[E, Lanes[X, R]]]]]]]) uint32 {
	return capture(t.bus(), 5)
}

package timer

import "nrftimer/regs"

// Timer is a TIMER peripheral whose width, mode, run state and per-channel
// interrupt state are W, M, S and I.
//
// The zero Timer has no peripheral; handles come from Basic.IntoTimer,
// Basic.IntoCounter, Extended.IntoTimer and Extended.IntoCounter.
type Timer[W Width, M Mode, S RunState, I LaneList] struct {
	p   *peripheral
	gen uint32
}

// peripheral is the register block shared by all handles of one raw instance.
// gen identifies the only handle allowed to touch it.
type peripheral struct {
	bus      regs.Bus
	channels int
	gen      uint32
}

// Basic is a raw TIMER with four capture/compare channels (TIMER0..TIMER2).
// Copies of a Basic share the peripheral and its ownership.
type Basic struct {
	p *peripheral
}

// Extended is a raw TIMER with six capture/compare channels (TIMER3, TIMER4)
type Extended struct {
	p *peripheral
}

// NewBasic wraps the registers of a 4 channel TIMER
func NewBasic(bus regs.Bus) *Basic {
	return &Basic{p: &peripheral{bus: bus, channels: 4}}
}

// NewExtended wraps the registers of a 6 channel TIMER
func NewExtended(bus regs.Bus) *Extended {
	return &Extended{p: &peripheral{bus: bus, channels: 6}}
}

// IntoTimer initializes the peripheral as a stopped 32 bit timer counting the
// undivided base clock, with every compare interrupt disabled and unpended.
// Handles created earlier from r become stale.
func (r *Basic) IntoTimer() Timer[W32, TimerMode[P0], Stopped, AllDisabled4] {
	return construct[TimerMode[P0], AllDisabled4](r.p)
}

// IntoCounter initializes the peripheral as a stopped 32 bit event counter,
// with every compare interrupt disabled and unpended.
// Handles created earlier from r become stale.
func (r *Basic) IntoCounter() Timer[W32, CounterMode, Stopped, AllDisabled4] {
	return construct[CounterMode, AllDisabled4](r.p)
}

// IntoTimer is the 6 channel variant of Basic.IntoTimer
func (r *Extended) IntoTimer() Timer[W32, TimerMode[P0], Stopped, AllDisabled6] {
	return construct[TimerMode[P0], AllDisabled6](r.p)
}

// IntoCounter is the 6 channel variant of Basic.IntoCounter
func (r *Extended) IntoCounter() Timer[W32, CounterMode, Stopped, AllDisabled6] {
	return construct[CounterMode, AllDisabled6](r.p)
}

// construct forces the baseline configuration whatever the registers held
func construct[M Mode, I LaneList](p *peripheral) Timer[W32, M, Stopped, I] {
	if p == nil {
		panic(ErrNoPeripheral)
	}
	var m M
	var w W32
	b := p.bus

	b.Store(regs.TasksStop, regs.Trigger)
	b.Modify(regs.Bitmode, regs.BitmodeMask, w.bitmode())
	b.Store(regs.IntenClr, regs.IntenCompareMask(p.channels))
	for n := 0; n < p.channels; n++ {
		b.Store(regs.EventsCompare(n), regs.NoEvent)
	}
	b.Modify(regs.Mode, regs.ModeMask, m.mode())
	if exp, ok := m.prescale(); ok {
		b.Modify(regs.Prescaler, regs.PrescalerMask, uint32(exp))
	}

	return advance[W32, M, Stopped, I](p)
}

// advance hands the peripheral to a new handle and retires the current one
func advance[W Width, M Mode, S RunState, I LaneList](p *peripheral) Timer[W, M, S, I] {
	p.gen++
	return Timer[W, M, S, I]{p: p, gen: p.gen}
}

// bus returns the register bus, panicking if t is no longer the live handle
func (t Timer[W, M, S, I]) bus() regs.Bus {
	if t.p == nil {
		panic(ErrNoPeripheral)
	}
	if t.gen != t.p.gen {
		panic(ErrStaleHandle)
	}
	return t.p.bus
}

// Start triggers TASKS_START on a stopped timer
func Start[W Width, M Mode, I LaneList](t Timer[W, M, Stopped, I]) Timer[W, M, Started, I] {
	t.bus().Store(regs.TasksStart, regs.Trigger)
	return advance[W, M, Started, I](t.p)
}

// Stop triggers TASKS_STOP on a started timer
func Stop[W Width, M Mode, I LaneList](t Timer[W, M, Started, I]) Timer[W, M, Stopped, I] {
	t.bus().Store(regs.TasksStop, regs.Trigger)
	return advance[W, M, Stopped, I](t.p)
}

// SetWidth selects the counter width W2. The timer must be stopped.
//
//	t := timer.SetWidth[timer.W16](t)
func SetWidth[W2 Width, W Width, M Mode, I LaneList](t Timer[W, M, Stopped, I]) Timer[W2, M, Stopped, I] {
	var w W2
	t.bus().Modify(regs.Bitmode, regs.BitmodeMask, w.bitmode())
	return advance[W2, M, Stopped, I](t.p)
}

// SetPrescaler selects the clock divisor 2^P2 of a stopped timer in timer
// mode. Counter mode handles have no prescaler and are not accepted.
func SetPrescaler[P2 Prescaler, W Width, P Prescaler, I LaneList](t Timer[W, TimerMode[P], Stopped, I]) Timer[W, TimerMode[P2], Stopped, I] {
	var p P2
	t.bus().Modify(regs.Prescaler, regs.PrescalerMask, uint32(p.exponent()))
	return advance[W, TimerMode[P2], Stopped, I](t.p)
}

// Tick increments a started counter by one. The counter wraps to zero past
// the largest value of W without any notification.
func Tick[W Width, I LaneList](t Timer[W, CounterMode, Started, I]) {
	t.bus().Store(regs.TasksCount, regs.Trigger)
}

// Reset clears the counter value. It works in either run state and leaves
// the configuration alone.
func (t Timer[W, M, S, I]) Reset() {
	t.bus().Store(regs.TasksClear, regs.Trigger)
}

// State describes the configuration of a timer
type State struct {
	Mode       ModeKind
	Prescaler  uint8  // exponent, timer mode only
	Frequency  uint32 // counting frequency in Hz, 0 in counter mode
	Width      uint8  // counter width in bits
	Running    bool
	Interrupts uint8 // bit n set when the COMPARE[n] interrupt is enabled
	Channels   int
}

// State reports the configuration recorded in t's type
func (t Timer[W, M, S, I]) State() State {
	var (
		w W
		m M
		s S
		i I
	)
	st := State{
		Mode:       ModeCounter,
		Width:      w.bits(),
		Running:    s.running(),
		Interrupts: i.mask(),
		Channels:   i.count(),
	}
	if exp, ok := m.prescale(); ok {
		st.Mode = ModeTimer
		st.Prescaler = exp
		st.Frequency = regs.BaseClock >> exp
	}
	return st
}

// Dump is the register-side view of a timer
type Dump struct {
	State   State
	Compare [regs.MaxChannels]uint32 // CC[n]
	Pending uint8                    // bit n set while EVENTS_COMPARE[n] is latched
}

// Dump reads the compare registers and latched events of every channel
func (t Timer[W, M, S, I]) Dump() Dump {
	b := t.bus()
	d := Dump{State: t.State()}
	for n := 0; n < d.State.Channels; n++ {
		d.Compare[n] = b.Load(regs.CC(n))
		if b.Load(regs.EventsCompare(n)) != regs.NoEvent {
			d.Pending |= 1 << n
		}
	}
	return d
}

// Package sim is a behavioral model of the nRF52840 TIMER register block.
//
// A sim.Timer implements regs.Bus, so the timer driver runs against it
// unchanged. Tasks, events and interrupt enables behave like the hardware;
// the base clock only moves when Clock is called.
package sim

import (
	"nrftimer/regs"
	"nrftimer/timer"
)

// Op is the kind of a recorded register access
type Op uint8

const (
	OpLoad Op = iota
	OpStore
)

// Access is one recorded register access
type Access struct {
	Op    Op
	Off   regs.Offset
	Value uint32
}

// Timer models one TIMER instance
type Timer struct {
	channels int

	mode      uint32
	bitmode   uint32
	prescaler uint32
	shorts    uint32
	inten     uint32
	events    [regs.MaxChannels]uint32
	cc        [regs.MaxChannels]uint32

	running bool
	counter uint32
	residue uint64 // base clock cycles not yet worth a tick

	tracing bool
	trace   []Access
}

// New returns a timer with n capture/compare channels in its reset state
func New(n int) *Timer {
	if n < 1 || n > regs.MaxChannels {
		panic("sim: channel count out of range")
	}
	return &Timer{channels: n}
}

// NewBasic models TIMER0..TIMER2
func NewBasic() *Timer { return New(4) }

// NewExtended models TIMER3 and TIMER4
func NewExtended() *Timer { return New(6) }

// Channels returns the number of capture/compare channels
func (s *Timer) Channels() int { return s.channels }

// Load implements regs.Bus
func (s *Timer) Load(off regs.Offset) uint32 {
	v := s.load(off)
	if s.tracing {
		s.trace = append(s.trace, Access{Op: OpLoad, Off: off, Value: v})
	}
	return v
}

func (s *Timer) load(off regs.Offset) uint32 {
	switch off {
	case regs.Mode:
		return s.mode
	case regs.Bitmode:
		return s.bitmode
	case regs.Prescaler:
		return s.prescaler
	case regs.Shorts:
		return s.shorts
	case regs.IntenSet, regs.IntenClr:
		return s.inten
	}
	if base, n, ok := regs.Channel(off); ok && n < s.channels {
		switch base {
		case regs.EventsCompare(0):
			return s.events[n]
		case regs.CC(0):
			return s.cc[n]
		}
	}
	// Tasks and unmapped offsets read as zero
	return 0
}

// Store implements regs.Bus
func (s *Timer) Store(off regs.Offset, v uint32) {
	if s.tracing {
		s.trace = append(s.trace, Access{Op: OpStore, Off: off, Value: v})
	}

	switch off {
	case regs.TasksStart:
		if v&regs.Trigger != 0 {
			s.running = true
		}
	case regs.TasksStop, regs.TasksShutdown:
		if v&regs.Trigger != 0 {
			s.running = false
		}
	case regs.TasksCount:
		if v&regs.Trigger != 0 && s.running && s.mode&regs.ModeMask != regs.ModeTimer {
			s.increment()
		}
	case regs.TasksClear:
		if v&regs.Trigger != 0 {
			s.counter = 0
			s.residue = 0
		}
	case regs.Mode:
		s.mode = v & regs.ModeMask
	case regs.Bitmode:
		s.bitmode = v & regs.BitmodeMask
	case regs.Prescaler:
		s.prescaler = v & regs.PrescalerMask
	case regs.Shorts:
		s.shorts = v
	case regs.IntenSet:
		s.inten |= v & regs.IntenCompareMask(s.channels)
	case regs.IntenClr:
		s.inten &^= v
	default:
		s.storeChannel(off, v)
	}
}

func (s *Timer) storeChannel(off regs.Offset, v uint32) {
	base, n, ok := regs.Channel(off)
	if !ok || n >= s.channels {
		return
	}
	switch base {
	case regs.TasksCapture(0):
		if v&regs.Trigger != 0 {
			s.cc[n] = s.counter
		}
	case regs.EventsCompare(0):
		s.events[n] = v
	case regs.CC(0):
		s.cc[n] = v
	}
}

// Modify implements regs.Bus
func (s *Timer) Modify(off regs.Offset, mask, value uint32) {
	regs.ModifyWith(s, off, mask, value)
}

// Clock feeds cycles of the 16 MHz base clock to the model. Only a started
// timer in timer mode counts them, divided by its prescaler.
func (s *Timer) Clock(cycles uint64) {
	if !s.running || s.mode&regs.ModeMask != regs.ModeTimer {
		return
	}
	total := s.residue + cycles
	shift := s.prescaler
	if shift > regs.PrescalerMax {
		shift = regs.PrescalerMax
	}
	ticks := total >> shift
	s.residue = total - ticks<<shift
	for ; ticks > 0; ticks-- {
		s.increment()
	}
}

// increment advances the counter by one and latches matching compare events
func (s *Timer) increment() {
	mask := timer.WidthMask(s.widthBits())
	s.counter = (s.counter + 1) & mask
	for n := 0; n < s.channels; n++ {
		if s.counter == s.cc[n]&mask {
			s.events[n] = 1
		}
	}
}

func (s *Timer) widthBits() uint8 {
	switch s.bitmode & regs.BitmodeMask {
	case regs.Bitmode08:
		return 8
	case regs.Bitmode24:
		return 24
	case regs.Bitmode32:
		return 32
	}
	return 16
}

// Counter returns the internal counter value, which the hardware only
// exposes through a capture
func (s *Timer) Counter() uint32 { return s.counter }

// SetCounter overwrites the internal counter value
func (s *Timer) SetCounter(v uint32) { s.counter = v & timer.WidthMask(s.widthBits()) }

// Running reports whether the timer was started and not stopped since
func (s *Timer) Running() bool { return s.running }

// Event reports whether EVENTS_COMPARE[n] is latched
func (s *Timer) Event(n int) bool { return n < s.channels && s.events[n] != 0 }

// Pending reports whether channel n requests an interrupt: its event is
// latched and its COMPARE interrupt is enabled
func (s *Timer) Pending(n int) bool {
	return s.Event(n) && s.inten&regs.IntenCompare(n) != 0
}

// State decodes the registers into the configuration a handle describes
func (s *Timer) State() timer.State {
	st := timer.State{
		Mode:       timer.ModeCounter,
		Width:      s.widthBits(),
		Running:    s.running,
		Interrupts: regs.CompareBits(s.inten),
		Channels:   s.channels,
	}
	if s.mode&regs.ModeMask == regs.ModeTimer {
		st.Mode = timer.ModeTimer
		st.Prescaler = uint8(s.prescaler)
		st.Frequency = regs.BaseClock >> s.prescaler
	}
	return st
}

// Record turns recording of register accesses on or off
func (s *Timer) Record(on bool) { s.tracing = on }

// Trace returns the register accesses recorded since the last ResetTrace
func (s *Timer) Trace() []Access { return s.trace }

// ResetTrace drops the recorded accesses
func (s *Timer) ResetTrace() { s.trace = s.trace[:0] }

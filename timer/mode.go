package timer

import "nrftimer/regs"

// Mode is the operating mode written to the MODE register
type Mode interface {
	mode() uint32
	prescale() (exp uint8, ok bool)
}

// CounterMode counts TASKS_COUNT triggers. It has no prescaler and the
// counter only moves through Tick.
type CounterMode struct{}

// TimerMode counts the base clock divided by 2^P
type TimerMode[P Prescaler] struct{}

func (CounterMode) mode() uint32 { return regs.ModeCounter }

func (CounterMode) prescale() (uint8, bool) { return 0, false }

func (TimerMode[P]) mode() uint32 { return regs.ModeTimer }

func (TimerMode[P]) prescale() (uint8, bool) {
	var p P
	return p.exponent(), true
}

// ModeKind tells the two operating modes apart at run time
type ModeKind uint8

const (
	ModeTimer ModeKind = iota
	ModeCounter
)

func (k ModeKind) String() string {
	switch k {
	case ModeTimer:
		return "timer"
	case ModeCounter:
		return "counter"
	}
	return "unknown"
}

package timer

// Lane is the interrupt state of one compare channel
type Lane interface {
	enabled() bool
}

// Enabled marks a channel whose COMPARE interrupt is enabled
type Enabled struct{}

// Disabled marks a channel whose COMPARE interrupt is disabled
type Disabled struct{}

func (Enabled) enabled() bool  { return true }
func (Disabled) enabled() bool { return false }

// LaneList is the interrupt state of all channels of a timer, written as a
// list of lanes: Lanes[channel 0, Lanes[channel 1, ... End]].
// The length of the list is the channel count of the register layout, so
// per-channel operations for channel n only accept lists longer than n.
type LaneList interface {
	mask() uint8
	count() int
}

// Lanes prepends the state of one channel to the states of the channels
// after it
type Lanes[A Lane, R LaneList] struct{}

// End terminates a LaneList
type End struct{}

func (Lanes[A, R]) mask() uint8 {
	var a A
	var r R
	m := r.mask() << 1
	if a.enabled() {
		m |= 1
	}
	return m
}

func (Lanes[A, R]) count() int {
	var r R
	return 1 + r.count()
}

func (End) mask() uint8 { return 0 }
func (End) count() int  { return 0 }

// IRQ4 is the interrupt state of a 4 channel timer (TIMER0..TIMER2)
type IRQ4[A, B, C, D Lane] = Lanes[A, Lanes[B, Lanes[C, Lanes[D, End]]]]

// IRQ6 is the interrupt state of a 6 channel timer (TIMER3, TIMER4)
type IRQ6[A, B, C, D, E, F Lane] = Lanes[A, Lanes[B, Lanes[C, Lanes[D, Lanes[E, Lanes[F, End]]]]]]

// AllDisabled4 is the interrupt state of a freshly initialized 4 channel timer
type AllDisabled4 = IRQ4[Disabled, Disabled, Disabled, Disabled]

// AllDisabled6 is the interrupt state of a freshly initialized 6 channel timer
type AllDisabled6 = IRQ6[Disabled, Disabled, Disabled, Disabled, Disabled, Disabled]

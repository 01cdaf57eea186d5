package core

import "sync/atomic"

// Timer frequencies
const (
	TimerFreq = 1000000 // System time runs at 1 MHz (16 MHz base clock, prescaler 4)
)

var (
	systemTicks atomic.Uint32
	uptimeHigh  atomic.Uint32 // Wraps of systemTicks since boot
	bootTime    uint64        // Time at boot for uptime calculation
)

// GetTime returns the current system time in timer ticks
func GetTime() uint32 {
	return systemTicks.Load()
}

// SetTime sets the current system time (for testing/hardware integration)
func SetTime(ticks uint32) {
	systemTicks.Store(ticks)
}

// UpdateTime stores a new reading of the 32 bit hardware counter, counting
// a wrap when the reading went backwards.
// Must be called at least once per counter period (about 71 minutes at 1 MHz).
func UpdateTime(ticks uint32) {
	if ticks < systemTicks.Load() {
		uptimeHigh.Add(1)
	}
	systemTicks.Store(ticks)
}

// GetUptime returns 64-bit uptime in timer ticks
func GetUptime() uint64 {
	return (uint64(uptimeHigh.Load())<<32 | uint64(GetTime())) - bootTime
}

// TimerFromUS converts microseconds to timer ticks
func TimerFromUS(us uint32) uint32 {
	return uint32(uint64(us) * TimerFreq / 1000000)
}

// TimerToUS converts timer ticks to microseconds
func TimerToUS(ticks uint32) uint32 {
	return uint32(uint64(ticks) * 1000000 / TimerFreq)
}

// TimerInit records the boot time, call once the clock source runs
func TimerInit() {
	uptimeHigh.Store(0)
	bootTime = uint64(GetTime())
}

//go:build nrf52840

package main

import (
	"nrftimer/core"
	"nrftimer/timer"
)

// sysClock is TIMER1 counting microseconds: 16 MHz >> 4
type sysClock = timer.Timer[timer.W32, timer.TimerMode[timer.P4], timer.Started, timer.AllDisabled4]

var clock sysClock

// InitClock starts TIMER1 as the 1 MHz system time base
func InitClock() {
	clock = timer.Start(timer.SetPrescaler[timer.P4](TIMER1.IntoTimer()))
	if f := clock.State().Frequency; f != core.TimerFreq {
		panic("system clock runs at " + core.Utoa(f) + " Hz")
	}
	UpdateSystemTime()
	core.TimerInit()
}

// GetHardwareTime latches the running count into CC[0] and reads it back
func GetHardwareTime() uint32 {
	return timer.Capture0(clock)
}

// UpdateSystemTime feeds the core time base.
// Called from the main loop, at least once per 71 minutes.
func UpdateSystemTime() {
	core.UpdateTime(GetHardwareTime())
}

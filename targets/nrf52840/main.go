//go:build nrf52840

package main

import (
	"time"

	"nrftimer/core"
	"nrftimer/timer"
)

func main() {
	InitDebug()
	InitClock()
	InitCounter()

	core.DebugPrintln("timer telemetry started")

	// TIMER0 stays a stopped 16 bit timer, reported to show a configuration
	// the host has not seen running
	idle := timer.SetWidth[timer.W16](TIMER0.IntoTimer())

	last := core.GetTime()
	var reported uint32
	for {
		UpdateSystemTime()
		now := core.GetTime()

		if now-last >= core.TimerFromUS(TelemetryPeriodUS) {
			last = now
			sendSnapshot(0, idle.Dump())
			sendSnapshot(1, clock.Dump())
			if d, ok := counterDump(); ok {
				sendSnapshot(3, d)
			}
			if TraceRegisters {
				core.DumpTraceRing()
				core.ClearTraceRing()
			}
			flush()
		}

		if n := laps.Load(); n != reported {
			reported = n
			core.DebugAsync("counter lap " + core.Utoa(n))
		}

		time.Sleep(time.Millisecond)
	}
}

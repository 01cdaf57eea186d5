//go:build nrf52840

package main

import (
	"nrftimer/core"
	"nrftimer/regs"
	"nrftimer/timer"
)

// busFor returns the register bus of TIMERn, traced when TraceRegisters is set
func busFor(n int) regs.Bus {
	b := regs.Instances[n].Bus()
	if TraceRegisters {
		b = core.TraceBus(b, uint8(n))
	}
	return b
}

// Raw TIMER instances. Each is turned into a handle once, in main.
var (
	TIMER0 = timer.NewBasic(busFor(0))
	TIMER1 = timer.NewBasic(busFor(1))
	TIMER2 = timer.NewBasic(busFor(2))
	TIMER3 = timer.NewExtended(busFor(3))
	TIMER4 = timer.NewExtended(busFor(4))
)

package core

import "nrftimer/regs"

// tracedBus records every access to the wrapped bus in the trace ring
type tracedBus struct {
	bus   regs.Bus
	timer uint8
}

// TraceBus wraps the bus of TIMER instance index so that its register
// accesses land in the trace ring while tracing is enabled
func TraceBus(bus regs.Bus, index uint8) regs.Bus {
	return &tracedBus{bus: bus, timer: index}
}

func (b *tracedBus) Load(off regs.Offset) uint32 {
	v := b.bus.Load(off)
	RecordAccess(EvtLoad, b.timer, off, v)
	return v
}

func (b *tracedBus) Store(off regs.Offset, v uint32) {
	RecordAccess(EvtStore, b.timer, off, v)
	b.bus.Store(off, v)
}

func (b *tracedBus) Modify(off regs.Offset, mask, value uint32) {
	RecordAccess(EvtModify, b.timer, off, value&mask)
	b.bus.Modify(off, mask, value)
}

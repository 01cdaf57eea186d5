//go:build tinygo

package regs

import (
	"runtime/volatile"
	"unsafe"
)

// MMIO is the Bus of a register block at a fixed address
type MMIO uintptr

func (m MMIO) reg(off Offset) *volatile.Register32 {
	return (*volatile.Register32)(unsafe.Pointer(uintptr(m) + uintptr(off)))
}

func (m MMIO) Load(off Offset) uint32 {
	return m.reg(off).Get()
}

func (m MMIO) Store(off Offset, v uint32) {
	m.reg(off).Set(v)
}

func (m MMIO) Modify(off Offset, mask, value uint32) {
	m.reg(off).ReplaceBits(value&mask, mask, 0)
}

// Bus returns the memory mapped registers of the instance
func (i Instance) Bus() Bus {
	return MMIO(i.Base)
}

package timer

import "nrftimer/regs"

// Width is the counter bit width selected in BITMODE.
// The set of widths is closed: W8, W16, W24 and W32.
type Width interface {
	bitmode() uint32
	bits() uint8
}

// W8 selects an 8 bit counter
type W8 struct{}

// W16 selects a 16 bit counter
type W16 struct{}

// W24 selects a 24 bit counter
type W24 struct{}

// W32 selects a 32 bit counter
type W32 struct{}

func (W8) bitmode() uint32  { return regs.Bitmode08 }
func (W16) bitmode() uint32 { return regs.Bitmode16 }
func (W24) bitmode() uint32 { return regs.Bitmode24 }
func (W32) bitmode() uint32 { return regs.Bitmode32 }

func (W8) bits() uint8  { return 8 }
func (W16) bits() uint8 { return 16 }
func (W24) bits() uint8 { return 24 }
func (W32) bits() uint8 { return 32 }

// WidthMask returns the counter mask for a width of the given number of bits
func WidthMask(bits uint8) uint32 {
	if bits >= 32 {
		return 0xFFFFFFFF
	}
	return 1<<bits - 1
}

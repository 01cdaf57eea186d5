package regs

// Bus provides access to the registers of one TIMER block.
// Writes never fail: the bus has no error path.
type Bus interface {
	// Load reads the register at off
	Load(off Offset) uint32

	// Store writes v to the register at off
	Store(off Offset, v uint32)

	// Modify replaces the bits selected by mask with the matching bits of value,
	// computing the new register value from the current one
	Modify(off Offset, mask, value uint32)
}

// ModifyWith implements Modify on top of Load and Store.
// Bus implementations without a native read-modify-write can call it.
func ModifyWith(b Bus, off Offset, mask, value uint32) {
	b.Store(off, b.Load(off)&^mask|value&mask)
}

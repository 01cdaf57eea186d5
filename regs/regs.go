// Package regs describes the register block of the nRF52840 TIMER peripheral
// and the bus the timer driver uses to reach it.
package regs

// Offset is the byte offset of a register inside one TIMER block
type Offset uint32

// TIMER register map (nRF52840 product specification v1.7, section 6.30)
const (
	TasksStart    Offset = 0x000 // Start timer
	TasksStop     Offset = 0x004 // Stop timer
	TasksCount    Offset = 0x008 // Increment timer (counter modes only)
	TasksClear    Offset = 0x00C // Clear time
	TasksShutdown Offset = 0x010 // Shut down timer (deprecated)
	Shorts        Offset = 0x200 // Shortcuts between local events and tasks
	IntenSet      Offset = 0x304 // Enable interrupt
	IntenClr      Offset = 0x308 // Disable interrupt
	Mode          Offset = 0x504 // Timer mode selection
	Bitmode       Offset = 0x508 // Configure the number of bits used by the TIMER
	Prescaler     Offset = 0x510 // Timer prescaler register

	tasksCapture0  Offset = 0x040
	eventsCompare0 Offset = 0x140
	cc0            Offset = 0x540
)

// MaxChannels is the channel count of the widest TIMER layout
const MaxChannels = 6

// TasksCapture returns the offset of TASKS_CAPTURE[n]
func TasksCapture(n int) Offset { return tasksCapture0 + Offset(4*n) }

// EventsCompare returns the offset of EVENTS_COMPARE[n]
func EventsCompare(n int) Offset { return eventsCompare0 + Offset(4*n) }

// CC returns the offset of the capture/compare register CC[n]
func CC(n int) Offset { return cc0 + Offset(4*n) }

// Channel reports which channel a per-channel offset belongs to.
// ok is false for registers that are not per-channel.
func Channel(off Offset) (base Offset, n int, ok bool) {
	for _, b := range [...]Offset{tasksCapture0, eventsCompare0, cc0} {
		if off >= b && off < b+4*MaxChannels && (off-b)%4 == 0 {
			return b, int(off-b) / 4, true
		}
	}
	return 0, 0, false
}

// Field values
const (
	Trigger = 1 // Written to a TASKS_* register to trigger the task
	NoEvent = 0 // Written to an EVENTS_* register to clear it

	ModeMask            = 0x3
	ModeTimer           = 0 // Select Timer mode
	ModeCounter         = 1 // Counter (deprecated in the datasheet in favour of LowPowerCounter)
	ModeLowPowerCounter = 2 // Select Low Power Counter mode

	BitmodeMask = 0x3
	Bitmode16   = 0
	Bitmode08   = 1
	Bitmode24   = 2
	Bitmode32   = 3

	PrescalerMask = 0xF
	PrescalerMax  = 9

	intenCompareShift = 16
)

// IntenCompare returns the INTENSET/INTENCLR bit for COMPARE[n]
func IntenCompare(n int) uint32 { return 1 << (intenCompareShift + n) }

// IntenCompareMask returns the COMPARE bits of the first n channels
func IntenCompareMask(n int) uint32 {
	return ((1 << n) - 1) << intenCompareShift
}

// CompareBits extracts the per-channel COMPARE bits from an INTEN value
func CompareBits(inten uint32) uint8 {
	return uint8(inten>>intenCompareShift) & (1<<MaxChannels - 1)
}

// BaseClock is the frequency feeding the prescaler (PCLK16M)
const BaseClock = 16000000

// Instance describes one physical TIMER
type Instance struct {
	Name     string
	Base     uintptr
	Channels int
}

// Peripheral instances present on the nRF52840
var Instances = [...]Instance{
	{Name: "TIMER0", Base: 0x40008000, Channels: 4},
	{Name: "TIMER1", Base: 0x40009000, Channels: 4},
	{Name: "TIMER2", Base: 0x4000A000, Channels: 4},
	{Name: "TIMER3", Base: 0x4001A000, Channels: 6},
	{Name: "TIMER4", Base: 0x4001B000, Channels: 6},
}

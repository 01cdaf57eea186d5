package core

import "nrftimer/regs"

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

// RegisterEvent captures one register access for post-mortem analysis
type RegisterEvent struct {
	Op     uint8       // EvtLoad, EvtStore or EvtModify
	Timer  uint8       // Index of the TIMER instance
	Offset regs.Offset // Register offset inside the instance
	Value  uint32      // Value read or written
	Clock  uint32      // System time at the access
}

// Event type codes
const (
	EvtLoad   = 1 // Register read
	EvtStore  = 2 // Register write
	EvtModify = 3 // Read-modify-write, Value holds the bits written
)

const (
	TraceRingSize = 32 // Keep last 32 accesses for post-mortem
)

var (
	// debugPrintln is the global debug print function (can be set by platform code)
	debugPrintln DebugWriter = func(s string) {} // No-op by default

	// debugEnabled controls whether debug output is active
	debugEnabled bool = false

	// Register access ring buffer (non-blocking, for post-mortem)
	traceRing     [TraceRingSize]RegisterEvent
	traceRingHead uint8
	traceEnabled  bool

	// Async debug output channel
	debugChan chan string
)

// SetDebugWriter sets the platform-specific debug output function
// This allows platforms to redirect debug output to UART, USB, etc.
func SetDebugWriter(writer DebugWriter) {
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug output is enabled
func IsDebugEnabled() bool {
	return debugEnabled
}

// SetTraceEnabled turns recording of register accesses on or off
func SetTraceEnabled(enabled bool) {
	traceEnabled = enabled
}

// InitAsyncDebug starts the async debug output goroutine
// Call this from main() after SetDebugWriter
func InitAsyncDebug() {
	debugChan = make(chan string, 16)
	go debugOutputWorker()
}

func debugOutputWorker() {
	for msg := range debugChan {
		if debugPrintln != nil {
			debugPrintln(msg)
		}
	}
}

// DebugPrintln writes a debug message using the platform-specific writer
// Blocks if debug is enabled (use DebugAsync for non-blocking)
func DebugPrintln(msg string) {
	if debugEnabled && debugPrintln != nil {
		debugPrintln(msg)
	}
}

// DebugAsync queues a debug message for async output (non-blocking)
// Drops the message when the queue is full
func DebugAsync(msg string) {
	if debugChan != nil {
		select {
		case debugChan <- msg:
		default:
		}
	}
}

// RecordAccess stores a register access in the ring buffer
func RecordAccess(op, timer uint8, off regs.Offset, value uint32) {
	if !traceEnabled {
		return
	}
	idx := traceRingHead
	traceRing[idx] = RegisterEvent{
		Op:     op,
		Timer:  timer,
		Offset: off,
		Value:  value,
		Clock:  GetTime(),
	}
	traceRingHead = (idx + 1) % TraceRingSize
}

// TraceEvents returns the recorded accesses, oldest first
func TraceEvents() []RegisterEvent {
	events := make([]RegisterEvent, 0, TraceRingSize)
	for i := uint8(0); i < TraceRingSize; i++ {
		evt := traceRing[(traceRingHead+i)%TraceRingSize]
		if evt.Op == 0 {
			continue // Empty slot
		}
		events = append(events, evt)
	}
	return events
}

// DumpTraceRing outputs the register access ring (call on shutdown/error)
func DumpTraceRing() {
	if debugPrintln == nil {
		return
	}

	debugPrintln("[TRACE] === Register Trace Dump ===")
	for _, evt := range TraceEvents() {
		var name string
		switch evt.Op {
		case EvtLoad:
			name = "LOAD  "
		case EvtStore:
			name = "STORE "
		case EvtModify:
			name = "MODIFY"
		default:
			name = "UNKNOWN"
		}

		debugPrintln("[TRACE] " + name +
			" timer=" + Utoa(uint32(evt.Timer)) +
			" off=" + hex32(uint32(evt.Offset)) +
			" val=" + hex32(evt.Value) +
			" clock=" + Utoa(evt.Clock))
	}
	debugPrintln("[TRACE] === End Dump ===")
}

// ClearTraceRing clears the trace buffer
func ClearTraceRing() {
	for i := range traceRing {
		traceRing[i] = RegisterEvent{}
	}
	traceRingHead = 0
}

//go:build nrf52840

package main

// Firmware configuration, fixed at compile time
const (
	// TelemetryPeriodUS is the interval between snapshot frames
	TelemetryPeriodUS = 250000

	// TraceRegisters routes every TIMER register access through the trace
	// ring, dumped with the "trace" debug line
	TraceRegisters = false

	// CounterWrap is the event count at which TIMER3 raises COMPARE[5]
	CounterWrap = 1000

	// Debug enables LogLine output
	Debug = true
)

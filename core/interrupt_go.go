//go:build !tinygo

package core

// State is the saved interrupt state on regular Go
type State uintptr

// criticalDepth counts nested critical sections so tests can observe them
var criticalDepth int

// disableInterrupts enters a critical section (no interrupts on regular Go)
func disableInterrupts() State {
	criticalDepth++
	return State(criticalDepth)
}

// restoreInterrupts leaves the critical section entered by disableInterrupts
func restoreInterrupts(state State) {
	criticalDepth = int(state) - 1
}

// inCritical reports whether a critical section is active
func inCritical() bool {
	return criticalDepth > 0
}

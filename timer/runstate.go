package timer

// RunState is Stopped or Started
type RunState interface {
	running() bool
}

// Stopped marks a timer that is not counting
type Stopped struct{}

// Started marks a timer after TASKS_START
type Started struct{}

func (Stopped) running() bool { return false }
func (Started) running() bool { return true }

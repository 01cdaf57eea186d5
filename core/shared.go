package core

// Shared holds a value, typically a timer handle, that the main program and
// interrupt handlers both use. Every access runs with interrupts disabled.
type Shared[T any] struct {
	v   T
	set bool
}

// NewShared returns a container holding v
func NewShared[T any](v T) *Shared[T] {
	return &Shared[T]{v: v, set: true}
}

// With calls fn with the held value inside a critical section.
// It reports false without calling fn when the container is empty.
func (s *Shared[T]) With(fn func(v T)) bool {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	if !s.set {
		return false
	}
	fn(s.v)
	return true
}

// Take removes the value, for example to apply a transition to it.
// Interrupt handlers see an empty container until Put is called.
func (s *Shared[T]) Take() (T, bool) {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	v, ok := s.v, s.set
	var zero T
	s.v, s.set = zero, false
	return v, ok
}

// Put stores v, replacing any held value
func (s *Shared[T]) Put(v T) {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	s.v, s.set = v, true
}

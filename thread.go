package green

import "fmt"

// A Thread is a thread control block: it owns one stack buffer, one
// register context record and one lifecycle state.
//
// Threads are created by [New] and live as long as their [Runtime].
// Only the Runtime mutates them.
type Thread struct {
	id    int
	stack []byte
	ctx   Context
	state State

	// wake parks the goroutine that carries this slot while the slot is
	// switched out. start, when not nil, is the entry of a freshly spawned
	// task, consumed by the first switch-in.
	wake  chan struct{}
	start func()
}

func newThread(id int, stack []byte) *Thread {
	return newThreadWithState(id, stack, Available)
}

func newThreadWithState(id int, stack []byte, s State) *Thread {
	return &Thread{
		id:    id,
		stack: stack,
		state: s,
		wake:  make(chan struct{}, 1),
	}
}

// ID returns the slot index of t.
func (t *Thread) ID() int {
	return t.id
}

// State returns the lifecycle state of t.
func (t *Thread) State() State {
	return t.state
}

// Context returns a copy of the register context record of t.
func (t *Thread) Context() Context {
	return t.ctx
}

// Stack returns the stack buffer of t.
func (t *Thread) Stack() []byte {
	return t.stack
}

func (t *Thread) transition(to State) {
	if !CanTransition(t.state, to) {
		panic(fmt.Sprintf("green: illegal state transition %v -> %v on thread %d", t.state, to, t.id))
	}
	t.state = to
}

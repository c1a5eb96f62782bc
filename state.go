package green

import "fmt"

// State is the lifecycle state of a green thread.
type State uint8

const (
	// Available means the slot holds no task and can be spawned into.
	Available State = iota
	// Ready means the slot holds a task that waits to be switched into.
	Ready
	// Running means the slot is the one currently executing.
	Running
)

func (s State) String() string {
	switch s {
	case Available:
		return "Available"
	case Ready:
		return "Ready"
	case Running:
		return "Running"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// transitions is the finite set of legal state changes:
//
//	Available → Ready      (spawn)
//	Ready     → Running    (scheduled)
//	Running   → Ready      (yield, or switching away from the control slot)
//	Running   → Available  (task return)
var transitions = [3][3]bool{
	Available: {Ready: true},
	Ready:     {Running: true},
	Running:   {Ready: true, Available: true},
}

// CanTransition reports whether a green thread may go from state from to
// state to.
func CanTransition(from, to State) bool {
	if from > Running || to > Running {
		return false
	}
	return transitions[from][to]
}

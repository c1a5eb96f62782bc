package green

const (
	// StackSize is the size, in bytes, of the stack buffer of each
	// green thread.
	StackSize = 4096

	// StackAlign is the stack pointer alignment required by the riscv64
	// psABI.
	StackAlign = 16

	// StackReserve is the room left below the aligned top of stack for
	// the save frame of the switch primitive.
	StackReserve = 32

	// DefaultCapacity is the number of green threads a Runtime holds
	// besides the control slot, when a program has no better number.
	DefaultCapacity = 4
)

// An arena is one allocation carved into fixed-size stacks, one per slot.
// Stacks are never resized or freed, and are reused unzeroed by successive
// occupants of a slot.
type arena struct {
	buf []byte
}

func newArena(n int) arena {
	return arena{buf: make([]byte, n*StackSize)}
}

func (a arena) len() int {
	return len(a.buf) / StackSize
}

// stack returns the stack of slot i. Appending to it cannot spill into
// the next slot.
func (a arena) stack(i int) []byte {
	lo, hi := i*StackSize, (i+1)*StackSize
	return a.buf[lo:hi:hi]
}

package green

import (
	"log/slog"
	"slices"
)

// A Runtime schedules and switches green threads.
//
// A Runtime owns a fixed pool of [Thread]s. Slot 0 is the control context,
// the goroutine that calls the Run method; slots 1 to Cap are green
// threads. Exactly one slot is Running at any time.
//
// The scheduling step scans the pool in round-robin order, starting just
// after the current slot, for the next Ready slot and switches into it.
// If the scan comes back to the current slot, nothing happens: the current
// slot keeps running, even if it has just yielded.
//
// A Runtime must be initialized by calling the Init method before use.
// It is not safe for concurrent use by unrelated goroutines.
type Runtime struct {
	threads  []*Thread
	current  int
	arena    arena
	sw       Switcher
	logger   *slog.Logger
	onSwitch func(from, to int)
	ps       panicstack
	inited   bool
}

// New creates a [Runtime] with room for capacity green threads.
//
// All threads and stacks are allocated here: slot 0 is Running, slots 1 to
// capacity are Available with zeroed contexts and stacks.
func New(capacity int, opts ...Option) *Runtime {
	if capacity < 0 {
		panic("green: negative capacity")
	}

	rt := &Runtime{
		arena:  newArena(capacity + 1),
		sw:     handoff{},
		logger: slog.New(slog.DiscardHandler),
	}

	rt.threads = make([]*Thread, capacity+1)
	rt.threads[0] = newThreadWithState(0, rt.arena.stack(0), Running)
	for i := 1; i <= capacity; i++ {
		rt.threads[i] = newThread(i, rt.arena.stack(i))
	}

	for _, opt := range opts {
		opt(rt)
	}

	return rt
}

// Init makes rt ready for use.
// It must be called exactly once, before any other method.
func (rt *Runtime) Init() {
	if rt.inited {
		panic("green: Init called twice")
	}
	rt.inited = true
}

func (rt *Runtime) mustInit(op string) {
	if !rt.inited {
		panic("green: " + op + " called before Init")
	}
}

// Cap returns the number of green threads rt can hold, not counting the
// control slot.
func (rt *Runtime) Cap() int {
	return len(rt.threads) - 1
}

// Current returns the slot index of the running thread.
func (rt *Runtime) Current() int {
	return rt.current
}

// Thread returns the thread in slot i.
func (rt *Runtime) Thread(i int) *Thread {
	return rt.threads[i]
}

// Spawn assigns task to an Available green thread and marks it Ready.
// task does not run until the thread is scheduled.
//
// Spawn panics if no green thread is Available; the pool never grows.
//
// Spawn can be called from the control context or from a green thread.
func (rt *Runtime) Spawn(task func()) {
	rt.mustInit("Spawn")

	if task == nil {
		panic("green: Spawn(nil): undefined behavior")
	}

	i := slices.IndexFunc(rt.threads, func(t *Thread) bool { return t.state == Available })
	if i == -1 {
		panic("green: no available green thread")
	}

	t := rt.threads[i]

	rt.logger.Debug("spawning task on green thread", "thread", t.id)

	t.ctx = InitialContext(t.stack, funcPC(task), funcPC(trampoline))
	t.start = func() { rt.enter(t.id, task) }
	t.transition(Ready)
}

// Run schedules green threads until none is Ready, then returns.
//
// Run must be called from the control context, not from a green thread.
//
// If any green thread panicked, Run panics when it returns, with a value
// that aggregates every such panic.
func (rt *Runtime) Run() {
	rt.mustInit("Run")

	if rt.current != 0 {
		panic("green: Run called from a green thread")
	}

	for rt.schedule() {
	}

	rt.logger.Debug("all threads finished")

	ps := rt.ps
	rt.ps = nil
	ps.Repanic()
}

// Yield performs a scheduling step from the running thread and reports
// whether a switch occurred.
//
// When Yield is called from a green thread and returns, the green thread
// has been switched back into, or no other thread was Ready.
func (rt *Runtime) Yield() bool {
	rt.mustInit("Yield")
	return rt.schedule()
}

// taskReturn reclaims the slot of the running green thread and switches
// away from it for good.
func (rt *Runtime) taskReturn() {
	if rt.current == 0 {
		panic("green: task return on the control slot")
	}

	rt.threads[rt.current].transition(Available)

	if !rt.schedule() {
		panic("green: internal error: no thread to return to")
	}
}

// schedule is the scheduling step.
func (rt *Runtime) schedule() bool {
	n := len(rt.threads)

	pos := rt.current
	for {
		pos = (pos + 1) % n
		if pos == rt.current {
			return false
		}
		if rt.threads[pos].state == Ready {
			break
		}
	}

	old, next := rt.threads[rt.current], rt.threads[pos]

	// State changes only after the hook returns.
	rt.logger.Debug("switching green threads", "from", old.id, "to", next.id)

	if f := rt.onSwitch; f != nil {
		f(old.id, next.id)
	}

	if old.state == Running {
		old.transition(Ready)
	}

	next.transition(Running)
	rt.current = pos

	prev := inject(rt)

	rt.sw.Switch(old, next)

	if old.id == 0 {
		restore(prev)
	}

	return true
}

// enter is where the goroutine of a freshly spawned green thread starts.
// The task runs to completion, then the trampoline hands the slot back.
func (rt *Runtime) enter(id int, task func()) {
	rt.ps.Try(id, task)
	trampoline()
}

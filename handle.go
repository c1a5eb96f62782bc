package green

import "sync/atomic"

// active is the runtime handle: the Runtime whose green thread is running.
// It is set right before every switch and cleared when control comes back
// to a control slot, so it is nil outside green threads.
var active atomic.Pointer[Runtime]

func inject(rt *Runtime) (prev *Runtime) {
	return active.Swap(rt)
}

func restore(prev *Runtime) {
	active.Store(prev)
}

// Yield suspends the running green thread and lets the next Ready one run.
// If no other thread is Ready, Yield returns immediately and the calling
// green thread keeps running.
//
// Yield panics if it is not called from a green thread.
func Yield() {
	rt := running()
	if rt == nil {
		panic("green: Yield called outside a green thread")
	}
	rt.Yield()
}

// running returns the Runtime of the calling green thread, or nil if the
// caller is not a green thread.
func running() *Runtime {
	if rt := active.Load(); rt != nil && rt.current != 0 {
		return rt
	}
	return nil
}

// trampoline is wired as the return address of every spawned green thread.
// It runs when the task returns and never comes back to its caller with
// the slot still occupied.
func trampoline() {
	rt := active.Load()
	if rt == nil {
		panic("green: trampoline reached without a runtime")
	}
	rt.taskReturn()
}

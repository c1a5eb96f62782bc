// Package green is a library for cooperative, stackful green threads.
//
// A [Runtime] owns a fixed pool of thread control blocks, each with its own
// stack buffer and register context record, and multiplexes them onto one
// logical thread of execution.
// There is no preemption. A green thread runs until it calls [Yield] or
// returns.
//
// # Lifecycle
//
// The pool is allocated once, by [New], and never grows.
// Slot 0 is reserved for the control context: the goroutine that calls
// [Runtime.Run]. Every other slot cycles Available → Ready → Running →
// (Ready | Available) for as long as the process lives.
//
//	rt := green.New(4)
//	rt.Init()
//	rt.Spawn(func() {
//		for range 3 {
//			green.Yield()
//		}
//	})
//	rt.Run()
//
// [Runtime.Spawn] does not run anything. It writes the initial context of an
// Available slot and marks it Ready.
// [Runtime.Run] then repeatedly performs a scheduling step: a round-robin
// scan, starting just after the current slot, for the next Ready slot, and
// a context switch into it. Run returns when a scan comes back around to the
// current slot without finding one.
//
// # Context Switching
//
// The register context record, [Context], has the riscv64 LP64 layout:
// return address, stack pointer, the twelve callee-saved registers s0-s11,
// and a resume address. Every field sits at a fixed offset, see
// [OffsetRA] and friends.
//
// The only piece of code that actually transfers control is a [Switcher].
// Go owns goroutine stacks, so the default Switcher cannot load a foreign
// stack pointer. Instead, each occupied slot is backed by a goroutine and
// a switch hands control from one goroutine to another, parking the old
// one until a later switch loads it back. The context records are still
// written the way a register-level switch would read them: a freshly
// spawned slot has its stack pointer computed from the top of its stack,
// its resume address set to the task and its return address set to a
// trampoline, which hands the slot back to the scheduler when the task
// returns.
//
// # Panic Propagation
//
// A green thread has no way to report an error to the scheduler.
// An unrecovered panic in a green thread ends that thread as if it had
// returned, and the [Runtime.Run] method panics, after all other green
// threads complete, with a value that aggregates every such panic.
package green

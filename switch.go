package green

import "runtime"

// A Switcher is the context switch primitive of a [Runtime].
//
// Switch persists the context of the running thread old, loads the context
// of next and transfers control to it. From the point of view of old, Switch
// does not return until a later Switch loads old back.
//
// When old is Available, its task has returned and old is never loaded back
// from this call site; Switch may then return as soon as control has been
// transferred, and the caller must not touch the Runtime afterwards.
//
// The Runtime has already updated the states of old and next, and its
// current slot, when it calls Switch.
//
// The default Switcher carries each slot on a goroutine, whose stack and
// registers belong to the Go runtime. It only persists the return address
// of old, into both RA and NRA; SP and s0-s11 keep the values written at
// spawn. The record returned by [Thread.Context] is therefore not a full
// register snapshot.
type Switcher interface {
	Switch(old, next *Thread)
}

// handoff is the default Switcher.
//
// Each occupied slot is carried by a goroutine. Switching starts the
// goroutine of next if it has just been spawned, or wakes it otherwise, and
// parks the goroutine of old.
type handoff struct{}

func (handoff) Switch(old, next *Thread) {
	exiting := old.state == Available

	pc := callerPC()
	old.ctx.RA = uint64(pc)
	old.ctx.NRA = uint64(pc)

	if start := next.start; start != nil {
		next.start = nil
		go start()
	} else {
		next.wake <- struct{}{}
	}

	if exiting {
		return
	}

	<-old.wake
}

// callerPC returns the address at which the caller of Switch resumes.
func callerPC() uintptr {
	var pcs [1]uintptr
	if runtime.Callers(3, pcs[:]) == 0 {
		return 0
	}
	return pcs[0]
}

package green

import (
	"fmt"
	"runtime/debug"
	"strings"
	"sync/atomic"
)

// panicstack collects the unrecovered panics of green threads, in the order
// they happened, until Run rethrows them.
type panicstack []threadpanic

func (ps panicstack) Repanic() {
	if len(ps) != 0 {
		panic(&panicvalue{panics: ps})
	}
}

// Try runs the task of green thread id and records its panic, if any, along
// with the stack at the time of the panic.
func (ps *panicstack) Try(id int, task func()) (ok bool) {
	defer func() {
		if !ok {
			v := recover()
			if v == nil {
				panic("green: green threads do not support runtime.Goexit()")
			}
			*ps = append(*ps, threadpanic{thread: id, value: v, stack: debug.Stack()})
		}
	}()
	task()
	return true
}

type threadpanic struct {
	thread int
	value  any
	stack  []byte
}

type panicvalue struct {
	panics []threadpanic
	errs   atomic.Pointer[[]error]
}

func (pv *panicvalue) Error() string {
	var b strings.Builder
	b.WriteString("green threads panicked as follows:")
	for i, p := range pv.panics {
		fmt.Fprintf(&b, "\n(%d/%d) green thread %d panicked: %v", i+1, len(pv.panics), p.thread, p.value)
		if p.stack != nil {
			b.WriteString("\n\n")
			b.Write(p.stack)
		}
	}
	return b.String()
}

// Unwrap returns the panic values that are errors, so that errors.Is and
// errors.As see through a rethrown panic.
func (pv *panicvalue) Unwrap() []error {
	if p := pv.errs.Load(); p != nil {
		return *p
	}
	var errs []error
	for _, p := range pv.panics {
		if err, ok := p.value.(error); ok {
			errs = append(errs, err)
		}
	}
	pv.errs.Store(&errs)
	return errs
}

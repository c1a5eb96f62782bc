package green

// A WaitGroup waits for a collection of green threads to finish.
//
// Unlike [sync.WaitGroup], Wait does not block the goroutine: it yields the
// calling green thread until the counter becomes zero.
//
// A WaitGroup must not be shared by more than one [Runtime].
type WaitGroup struct {
	n int
}

// Add adds delta, which may be negative, to the [WaitGroup] counter.
// If the counter is negative, Add panics.
func (wg *WaitGroup) Add(delta int) {
	if wg.n >= 0 {
		wg.n += delta
	}
	if wg.n < 0 {
		panic("green(WaitGroup): negative counter")
	}
}

// Done decrements the [WaitGroup] counter by one.
func (wg *WaitGroup) Done() {
	wg.Add(-1)
}

// Wait yields the calling green thread until the [WaitGroup] counter is
// zero.
//
// Wait must be called from a green thread. If the counter never reaches
// zero, the caller keeps yielding and [Runtime.Run] never returns.
func (wg *WaitGroup) Wait() {
	for wg.n != 0 {
		Yield()
	}
}

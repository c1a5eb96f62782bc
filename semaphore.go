package green

// Semaphore provides a way to bound access to a resource among green
// threads. The callers can request access with a given weight.
//
// Waiters are served in arrival order: a small request never overtakes
// a large one that arrived first.
//
// A Semaphore must not be shared by more than one [Runtime].
type Semaphore struct {
	size    int64
	cur     int64
	waiters []*waiter
}

type waiter struct {
	n int64
}

// NewSemaphore creates a new weighted semaphore with the given maximum
// combined weight.
func NewSemaphore(n int64) *Semaphore {
	return &Semaphore{size: n}
}

// Acquire yields the calling green thread until a weight of n is acquired
// from the semaphore.
//
// Acquire must be called from a green thread, unless the weight is
// available right away; otherwise it panics without queueing. A weight larger than the size
// of the semaphore can never be acquired; Acquire panics instead.
func (s *Semaphore) Acquire(n int64) {
	if n < 0 {
		panic("green(Semaphore): negative weight")
	}
	if n > s.size {
		panic("green(Semaphore): weight exceeds size")
	}
	if s.TryAcquire(n) {
		return
	}
	if running() == nil {
		panic("green(Semaphore): Acquire would yield outside a green thread")
	}
	w := &waiter{n: n}
	s.waiters = append(s.waiters, w)
	for !s.grant(w) {
		Yield()
	}
}

// TryAcquire acquires the semaphore with a weight of n without yielding.
// On success, returns true. On failure, returns false and leaves the
// semaphore unchanged.
func (s *Semaphore) TryAcquire(n int64) bool {
	if n < 0 {
		panic("green(Semaphore): negative weight")
	}
	if s.size-s.cur < n || len(s.waiters) != 0 {
		return false
	}
	s.cur += n
	return true
}

// Release releases the semaphore with a weight of n.
func (s *Semaphore) Release(n int64) {
	if n < 0 {
		panic("green(Semaphore): negative weight")
	}
	if s.cur >= 0 {
		s.cur -= n
	}
	if s.cur < 0 {
		panic("green(Semaphore): released more than held")
	}
}

// grant acquires for w if w is the first waiter and its weight fits.
func (s *Semaphore) grant(w *waiter) bool {
	if s.waiters[0] != w || s.size-s.cur < w.n {
		return false
	}
	s.cur += w.n
	s.waiters[0] = nil
	s.waiters = s.waiters[1:]
	return true
}

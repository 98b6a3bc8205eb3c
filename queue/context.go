package queue

import "sync/atomic"

// ThreadPool is the shared park/wake/termination-detection facility
// every worker's ThreadContext coordinates through. An in-flight
// counter is incremented by Pushed and decremented by Popped; package
// worker calls them only for cross-thread completion messages, so
// tasks sitting in a queue.Pool deque are not counted. The pool
// terminates once the counter reaches zero and every worker is parked
// in Sleep, at which point Sleep returns false everywhere.
type ThreadPool struct {
	n        int
	inFlight atomic.Int64

	mu     chan struct{} // binary mutex guarding parked/parkedCount/done
	parked []bool
	parkedCount int
	done        bool

	doorbell []chan struct{}
}

// NewThreadPool allocates coordination state for n worker threads.
func NewThreadPool(n int) *ThreadPool {
	p := &ThreadPool{
		n:        n,
		mu:       make(chan struct{}, 1),
		parked:   make([]bool, n),
		doorbell: make([]chan struct{}, n),
	}
	p.mu <- struct{}{}
	for i := range p.doorbell {
		p.doorbell[i] = make(chan struct{}, 1)
	}
	return p
}

func (p *ThreadPool) lock()   { <-p.mu }
func (p *ThreadPool) unlock() { p.mu <- struct{}{} }

func (p *ThreadPool) ring(i int) {
	select {
	case p.doorbell[i] <- struct{}{}:
	default:
	}
}

// Start returns the ThreadContext for worker thread index i.
func (p *ThreadPool) Start(index int) *ThreadContext {
	return &ThreadContext{pool: p, index: index}
}

// ThreadContext is one worker's handle onto its ThreadPool.
type ThreadContext struct {
	pool  *ThreadPool
	index int
}

// Pushed records one more in-flight unit of work: a cross-thread
// completion send that some other worker must still receive.
func (c *ThreadContext) Pushed() { c.pool.inFlight.Add(1) }

// Popped records that one in-flight unit of work has been received and
// consumed.
func (c *ThreadContext) Popped() { c.pool.inFlight.Add(-1) }

// Wake rings every other thread's doorbell, used after a burst of
// local-queue pushes that might give idle stealers something to do.
func (c *ThreadContext) Wake() {
	for i := 0; i < c.pool.n; i++ {
		if i != c.index {
			c.pool.ring(i)
		}
	}
}

// WakeOne rings a single thread's doorbell, used when a completion was
// just sent directly to that thread.
func (c *ThreadContext) WakeOne(i int) {
	c.pool.ring(i)
}

// Sleep parks this thread until woken or the pool terminates. It
// returns true if the thread was woken to look for more work, false if
// the whole pool has reached quiescence and the worker should exit its
// main loop.
func (c *ThreadContext) Sleep() bool {
	p := c.pool

	p.lock()
	if p.done {
		p.unlock()
		return false
	}
	p.parked[c.index] = true
	p.parkedCount++
	if p.parkedCount == p.n && p.inFlight.Load() == 0 {
		p.done = true
		for i := 0; i < p.n; i++ {
			p.ring(i)
		}
	}
	p.unlock()

	<-p.doorbell[c.index]

	p.lock()
	p.parked[c.index] = false
	p.parkedCount--
	awake := !p.done
	p.unlock()

	return awake
}

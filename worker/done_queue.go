package worker

import (
	"sync"

	"github.com/fieldcarve/fieldcarve/octree"
)

// done is a completed cluster's summary, addressed to the thread that
// owns the task whose children just finished resolving.
type done struct {
	task   Task
	result octree.BranchResult
	source int // thread that observed the completion, for record's recursive call
}

// doneQueue is one thread's inbox for cross-thread completions: any
// number of peer threads may push, only the owning thread ever pops.
// A mutex-guarded slice rather than a buffered channel, so a burst of
// simultaneous completions from many peers never blocks a sender.
type doneQueue struct {
	mu    sync.Mutex
	items []done
}

func (q *doneQueue) push(d done) {
	q.mu.Lock()
	q.items = append(q.items, d)
	q.mu.Unlock()
}

func (q *doneQueue) pop() (done, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return done{}, false
	}
	d := q.items[0]
	q.items = q.items[1:]
	return d, true
}

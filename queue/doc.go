// Package queue implements the work-stealing deque pool (C5) the
// scheduler distributes octree-subdivision tasks through: one deque per
// worker thread, owner push/pop from the back, thieves steal from the
// front, plus the park/wake/termination-detection coordination a worker
// main loop needs to know when to sleep and when the whole pool is
// finished.
//
// Per spec.md's own design note, deques are guarded by a plain
// sync.Mutex rather than a lock-free Chase-Lev structure: steal
// contention is low in the common case (a thief only looks when its own
// deque is empty), and no repo in this corpus ships a lock-free deque to
// ground one on.
package queue

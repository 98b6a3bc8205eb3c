// Package worker runs the parallel adaptive octree build: a fixed pool
// of threads shares one work-stealing queue.Pool of Tasks, each Task a
// single cell awaiting classification into 8 children. Classification
// results flow back up a Task's parent chain via a record/onDone
// protocol, matching the upward-completion design of
// original_source/fidget/src/mesh/worker.rs.
package worker

package worker

import (
	"errors"
	"strconv"
)

// ErrAborted names a build abandoned after a peer thread's error.
// Scheduler.Run does not return it: when a worker fails, Run returns
// that worker's own error (for example a *ClassifyError).
var ErrAborted = errors.New("worker: aborted after a peer thread's error")

// ClassifyError wraps a failure from the caller-supplied cell
// classifier, naming the cell depth at which it occurred.
type ClassifyError struct {
	Depth int
	Err   error
}

func (e *ClassifyError) Error() string {
	return "worker: classify at depth " + strconv.Itoa(e.Depth) + ": " + e.Err.Error()
}

func (e *ClassifyError) Unwrap() error { return e.Err }

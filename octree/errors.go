package octree

import "errors"

// Sentinel errors for cell bookkeeping violations.
var (
	// ErrAlreadyRecorded indicates Record was called on a cell slot
	// whose state was not Invalid — a cell must transition exactly once.
	ErrAlreadyRecorded = errors.New("octree: cell already recorded")

	// ErrIndexOutOfRange indicates an operation referenced a cell index
	// outside the builder's allocated range.
	ErrIndexOutOfRange = errors.New("octree: cell index out of range")
)

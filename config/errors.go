package config

import "errors"

// Sentinel errors returned by Resolve when a Settings value is
// out of range.
var (
	ErrInvalidThreads           = errors.New("config: threads must be >= 1")
	ErrInvalidMaxDepth          = errors.New("config: max depth must be >= 0")
	ErrInvalidFlatnessThreshold = errors.New("config: flatness threshold must be in (0, 180) degrees")
	ErrInvalidRegisterLimit     = errors.New("config: register limit must be >= 1")
)

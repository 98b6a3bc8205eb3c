package config

import "runtime"

// Settings bundles the scheduler/octree/extractor tuning knobs.
type Settings struct {
	// Threads is the number of worker goroutines the scheduler spawns.
	Threads int

	// MaxDepth bounds octree subdivision; depth 0 means the root cell is
	// never subdivided.
	MaxDepth int

	// FlatnessThreshold is the maximum pairwise angle, in degrees,
	// between an 8-cluster's child normals for mesh.Extractor to
	// collapse the cluster into a single Leaf.
	FlatnessThreshold float64

	// RegisterLimit is a backend register-count knob. Resolve validates
	// it, but no package in this module reads it: tape.Build and the
	// interpreter backend do not limit tape size.
	RegisterLimit int
}

// Option configures a Settings value before Resolve validates it.
type Option func(*Settings)

// WithThreads overrides the worker goroutine count.
func WithThreads(n int) Option {
	return func(s *Settings) { s.Threads = n }
}

// WithMaxDepth overrides the maximum subdivision depth.
func WithMaxDepth(depth int) Option {
	return func(s *Settings) { s.MaxDepth = depth }
}

// WithFlatnessThreshold overrides the cluster-collapse angle threshold,
// in degrees.
func WithFlatnessThreshold(degrees float64) Option {
	return func(s *Settings) { s.FlatnessThreshold = degrees }
}

// WithRegisterLimit overrides the backend register limit.
func WithRegisterLimit(limit int) Option {
	return func(s *Settings) { s.RegisterLimit = limit }
}

// defaults returns the baseline Settings applied before any Option runs.
func defaults() Settings {
	return Settings{
		Threads:           runtime.GOMAXPROCS(0),
		MaxDepth:          8,
		FlatnessThreshold: 10,
		RegisterLimit:     1 << 20,
	}
}

// Resolve builds a validated Settings from opts, applied left to right
// over the package defaults.
func Resolve(opts ...Option) (Settings, error) {
	s := defaults()
	for _, opt := range opts {
		opt(&s)
	}

	if s.Threads < 1 {
		return Settings{}, ErrInvalidThreads
	}
	if s.MaxDepth < 0 {
		return Settings{}, ErrInvalidMaxDepth
	}
	if s.FlatnessThreshold <= 0 || s.FlatnessThreshold >= 180 {
		return Settings{}, ErrInvalidFlatnessThreshold
	}
	if s.RegisterLimit < 1 {
		return Settings{}, ErrInvalidRegisterLimit
	}
	return s, nil
}

// Package config bundles the runtime knobs the scheduler, octree
// builder, and surface extractor are tuned by: thread count, maximum
// subdivision depth, the surface extractor's flatness threshold, and a
// tape register-count guard. Settings is built via functional options,
// in the same Option-closure style used elsewhere in this codebase's
// graph constructors.
package config

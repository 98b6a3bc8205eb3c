// Package octree implements the per-thread partial octree (C6): cell
// storage, cluster-of-8 completion tracking, and the final
// cross-thread Merge.
//
// A Builder owns one thread's contiguous cell vector. Cells only ever
// transition Invalid -> {Empty, Full, Leaf, Branch}, exactly once; the
// 8-of-8 completion check (CheckDone) fires exactly once per cluster,
// so writers never race on a cell's terminal state. SurfaceExtractor is
// the consumed interface a concrete dual-contouring implementation
// (see package mesh) supplies; Builder only calls it, never assumes a
// particular reconstruction heuristic.
package octree

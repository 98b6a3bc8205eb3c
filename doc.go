// Package fieldcarve compiles implicit-surface scalar field expressions
// (f(x, y, z) = 0) into linearized tapes and renders them by building an
// adaptive octree in parallel over a pool of worker threads.
//
// The pipeline runs in three stages:
//
//	expr/   — Stage0: the expression DAG (constants, variables, arithmetic,
//	          choice operators min/max).
//	group/  — Stage1: a read-only source analysis that groups nodes by
//	          their unconditional-vs-choice-dependent reachability, so the
//	          tape builder knows which nodes survive every choice outcome.
//	tape/   — the register-allocated linear program a Backend evaluates,
//	          plus choice-decided simplification and buffer-pool reuse.
//
// eval/ supplies the Backend interface (interval, float, and vectorized
// array evaluation) used by worker/ to classify octree cells and decide
// where to subdivide, recording proven min/max choice outcomes in a
// ChoiceBitmap so descendant cells can be simplified. octree/ holds the
// cell storage and cluster-completion bookkeeping that per-thread
// builders stitch together; mesh/ extracts a dual-contoured surface from
// the finished tree. parser/ compiles a reference s-expression text
// format into Stage0 for the cmd/fieldcarve CLI.
package fieldcarve

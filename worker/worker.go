package worker

import (
	"sync/atomic"

	"github.com/fieldcarve/fieldcarve/eval"
	"github.com/fieldcarve/fieldcarve/octree"
	"github.com/fieldcarve/fieldcarve/queue"
	"github.com/fieldcarve/fieldcarve/tape"
)

// Classifier is the cell-classification callback a Scheduler drives;
// Classify is the one implementation this repository ships.
type Classifier func(bounds octree.Box, group *eval.Group) (octree.CellResult[*eval.Group], error)

// workerState is one goroutine's private view of the build: its own
// builder and storage pool, its queue handle, and the shared pieces
// (peer inboxes, the poison flag) it reads but never owns exclusively.
type workerState struct {
	index     int
	maxDepth  int
	classify  Classifier
	extractor octree.SurfaceExtractor[*eval.Group]

	builder *octree.Builder[*eval.Group]
	storage *tape.Storage

	tasks *queue.Handle[Task]
	own   *doneQueue
	peers []*doneQueue

	poisoned *atomic.Bool
}

// run is the worker main loop: drain completions, run a task, or sleep,
// until the pool signals quiescence or a peer's error poisons the run.
func (w *workerState) run(ctx *queue.ThreadContext) error {
	for {
		if w.poisoned.Load() {
			return nil
		}
		if d, ok := w.own.pop(); ok {
			if err := w.onDone(d.result, d.task, d.source, ctx); err != nil {
				return err
			}
			ctx.Popped()
			continue
		}
		if task, ok := w.tasks.Pop(); ok {
			if err := w.runTask(task, ctx); err != nil {
				return err
			}
			continue
		}
		if !ctx.Sleep() {
			return nil
		}
	}
}

// runTask allocates an 8-cluster for task's cell, classifies each of
// its 8 children, and either records a terminal result immediately or
// pushes a continuation task for further subdivision.
func (w *workerState) runTask(task Task, ctx *queue.ThreadContext) error {
	base := w.builder.Reserve(8)
	parent := task.Parent()

	for i := 0; i < 8; i++ {
		child := parent.Child(base, i)
		result, err := octree.EvalCell(child, task.Eval(), w.maxDepth, w.classify, w.extractor)
		if err != nil {
			return &ClassifyError{Depth: child.Depth, Err: err}
		}
		if result.Done {
			if err := w.record(base+i, result.Cell, task, ctx); err != nil {
				return err
			}
			continue
		}
		w.tasks.Push(task.Recurse(result.Next, child, w.index))
	}

	if w.tasks.Changed() {
		ctx.Wake()
	} else {
		task.Release(w.storage)
	}
	return nil
}

// record writes cell into slot index, owned by enclosing's cell (the
// task whose 8 children this slot belongs to). If that completes the
// whole cluster, the cluster's summary is delivered to whichever thread
// is waiting on enclosing: this thread directly, or a peer via its
// doneQueue.
func (w *workerState) record(index int, cell octree.Cell, enclosing Task, ctx *queue.ThreadContext) error {
	if err := w.builder.Record(index, cell); err != nil {
		return err
	}
	base := index &^ 7
	result, ready := w.builder.CheckDone(base)
	if !ready {
		return nil
	}
	if enclosing.Source() == w.index {
		return w.onDone(result, enclosing, w.index, ctx)
	}
	ctx.Pushed()
	w.peers[enclosing.Source()].push(done{task: enclosing, result: result, source: w.index})
	ctx.WakeOne(enclosing.Source())
	return nil
}

// onDone converts a cluster's BranchResult into a Cell addressed at
// task's own slot, recursing one level further up task's chain if one
// exists, or writing directly if task was the root task.
func (w *workerState) onDone(result octree.BranchResult, task Task, source int, ctx *queue.ThreadContext) error {
	var cell octree.Cell
	switch result.Kind {
	case octree.CellBranch:
		cell = octree.BranchCell(result.BranchIndex, source)
	default:
		cell = octree.Cell{Kind: result.Kind, Position: result.Position, Normal: result.Normal}
	}

	if task.HasNext() {
		return w.record(task.Parent().Index, cell, task.NextTask(), ctx)
	}
	return w.builder.Record(task.Parent().Index, cell)
}

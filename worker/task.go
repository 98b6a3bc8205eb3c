package worker

import (
	"sync/atomic"

	"github.com/fieldcarve/fieldcarve/eval"
	"github.com/fieldcarve/fieldcarve/octree"
	"github.com/fieldcarve/fieldcarve/tape"
)

// taskData is one link in a Task's parent chain. Source is the thread
// that owns the enclosing cell one level up (Next), and is where a
// finished cluster's completion must be delivered if this thread isn't
// it. refs counts outstanding references to this node: the Task that
// owns it directly, plus one per child Task spawned via Task.Recurse
// (which clones a pointer into this node, not the node itself). A node
// is only released, and its Eval's tape returned to storage, once every
// reference has released — the Go rendition of the originating design's
// Arc<TaskData>/try_unwrap chain-walk, made explicit via an atomic
// counter since Go has no unique-owner probe on a shared pointer.
type taskData struct {
	eval   *eval.Group
	parent octree.CellIndex
	source int
	next   *taskData
	refs   atomic.Int32
}

// Task is a cheap-to-copy handle onto a taskData node.
type Task struct {
	data *taskData
}

// NewRootTask seeds the first Task: the whole bounding box, owned by
// thread 0, with no enclosing parent.
func NewRootTask(group *eval.Group) Task {
	d := &taskData{eval: group, parent: octree.RootCellIndex(), source: 0}
	d.refs.Store(1)
	return Task{data: d}
}

// Eval returns the evaluator group this task's cell should classify
// under.
func (t Task) Eval() *eval.Group { return t.data.eval }

// Parent returns the CellIndex of the cell this task is subdividing.
func (t Task) Parent() octree.CellIndex { return t.data.parent }

// Source returns the index of the thread that should be notified once
// this task's 8 children all resolve.
func (t Task) Source() int { return t.data.source }

// HasNext reports whether this task has an enclosing parent task (false
// only for the root task).
func (t Task) HasNext() bool { return t.data.next != nil }

// NextTask returns the enclosing task one level up the chain. It is a
// borrow: it does not change either task's reference count, mirroring
// the originating design's use of Arc::as_ref rather than clone when
// the caller only needs to read through the pointer.
func (t Task) NextTask() Task { return Task{data: t.data.next} }

// Recurse builds the child Task for one of this task's 8 octants,
// continuing the parent chain through t. It bumps t's reference count
// by one, since the new child now also holds a path back to t.
func (t Task) Recurse(group *eval.Group, parent octree.CellIndex, source int) Task {
	t.data.refs.Add(1)
	d := &taskData{eval: group, parent: parent, source: source, next: t.data}
	d.refs.Store(1)
	return Task{data: d}
}

// Release drops this Task's own reference to its chain, reclaiming each
// node's Eval group (returning its tape to storage) as far up the chain
// as reference counts allow. A node with other live references (a
// sibling task still holding a path through it) stops the walk there;
// whichever reference releases last continues it.
func (t Task) Release(storage *tape.Storage) {
	d := t.data
	for d != nil {
		if d.refs.Add(-1) != 0 {
			return
		}
		d.eval.Release(storage)
		d = d.next
	}
}

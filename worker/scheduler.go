package worker

import (
	"sync"
	"sync/atomic"

	"github.com/fieldcarve/fieldcarve/config"
	"github.com/fieldcarve/fieldcarve/eval"
	"github.com/fieldcarve/fieldcarve/octree"
	"github.com/fieldcarve/fieldcarve/queue"
	"github.com/fieldcarve/fieldcarve/tape"
)

// Scheduler builds an adaptive octree for one evaluator group across a
// fixed pool of worker goroutines.
type Scheduler struct {
	settings  config.Settings
	extractor octree.SurfaceExtractor[*eval.Group]
	classify  Classifier
}

// NewScheduler returns a Scheduler bound to settings and extractor. A
// nil classify defaults to Classify.
func NewScheduler(settings config.Settings, extractor octree.SurfaceExtractor[*eval.Group], classify Classifier) *Scheduler {
	if classify == nil {
		classify = Classify
	}
	return &Scheduler{settings: settings, extractor: extractor, classify: classify}
}

// Run seeds and drives the build to completion, returning the merged
// cell vector. Worker 0 owns the octree's root.
func (s *Scheduler) Run(root *eval.Group) ([]octree.Cell, error) {
	n := s.settings.Threads

	builders := make([]*octree.Builder[*eval.Group], n)
	storages := make([]*tape.Storage, n)
	doneQueues := make([]*doneQueue, n)
	for i := 0; i < n; i++ {
		builders[i] = octree.NewBuilder[*eval.Group](s.extractor)
		storages[i] = tape.NewStorage()
		doneQueues[i] = &doneQueue{}
	}

	rootResult, err := octree.EvalCell(octree.RootCellIndex(), root, s.settings.MaxDepth, s.classify, s.extractor)
	if err != nil {
		return nil, &ClassifyError{Depth: 0, Err: err}
	}

	// A terminal root has no children, so its single slot is the whole
	// octree.
	if rootResult.Done {
		rootSlot := builders[0].Reserve(1)
		if err := builders[0].Record(rootSlot, rootResult.Cell); err != nil {
			return nil, err
		}
		return octree.Merge(builders), nil
	}

	// Reserve a full 8-wide block for the root's own slot (index 0), not
	// just 1 cell: builder 0 is otherwise empty, so its first real
	// Reserve(8) call (for the root's children, in runTask) must still
	// land on an 8-aligned base. Reserving only 1 here would leave
	// builder 0 at length 1, so that call would return base=1, and
	// record's index&^7 cluster-base math would straddle this slot and
	// an unrelated later cluster instead of the root's real children.
	// Indices 1-7 of this block are permanent padding, never addressed
	// by any Branch.
	builders[0].Reserve(8)

	taskPool := queue.NewPool[Task](n)
	taskPool.Handle(0).Push(NewRootTask(rootResult.Next))

	threadPool := queue.NewThreadPool(n)
	var poisoned atomic.Bool
	var errOnce sync.Once
	var firstErr error

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			w := &workerState{
				index:     i,
				maxDepth:  s.settings.MaxDepth,
				classify:  s.classify,
				extractor: s.extractor,
				builder:   builders[i],
				storage:   storages[i],
				tasks:     taskPool.Handle(i),
				own:       doneQueues[i],
				peers:     doneQueues,
				poisoned:  &poisoned,
			}
			ctx := threadPool.Start(i)
			if err := w.run(ctx); err != nil {
				poisoned.Store(true)
				errOnce.Do(func() { firstErr = err })
				ctx.Wake() // rouse any peer parked in Sleep so it observes poisoned and exits
			}
		}(i)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return octree.Merge(builders), nil
}

package worker

import (
	"github.com/fieldcarve/fieldcarve/eval"
	"github.com/fieldcarve/fieldcarve/octree"
	"github.com/fieldcarve/fieldcarve/tape"
)

// Classify implements the interval-evaluation half of cell
// classification: evaluate group's backend over bounds, and resolve a
// sign-determined Done result directly from the resulting interval
// without ever touching the tape. An interval strictly above zero means
// the whole box lies outside the surface (Empty); strictly at-or-below
// zero means the whole box lies inside it (Full). Otherwise the box is
// ambiguous and must be subdivided, under a tape simplified against
// whichever choices the interval pass proved decided.
//
// Every ambiguous cell is simplified unconditionally rather than only
// when the simplified tape is smaller by some threshold: Simplify's
// dead-code elimination never grows a tape, so there is no case where
// skipping it helps, only cases where it wastes the comparison.
func Classify(bounds octree.Box, group *eval.Group) (octree.CellResult[*eval.Group], error) {
	choices := tape.NewChoiceBitmap(group.NumChoices())

	x := eval.Interval{Lo: bounds.Min[0], Hi: bounds.Max[0]}
	y := eval.Interval{Lo: bounds.Min[1], Hi: bounds.Max[1]}
	z := eval.Interval{Lo: bounds.Min[2], Hi: bounds.Max[2]}

	result, err := group.Backend().EvalInterval(x, y, z, choices)
	if err != nil {
		return octree.CellResult[*eval.Group]{}, err
	}

	switch {
	case result.Lo > 0:
		return octree.CellResult[*eval.Group]{Done: true, Cell: octree.Empty()}, nil
	case result.Hi <= 0:
		return octree.CellResult[*eval.Group]{Done: true, Cell: octree.Full()}, nil
	}

	backend, simplified, err := group.Backend().Simplify(choices)
	if err != nil {
		return octree.CellResult[*eval.Group]{}, err
	}
	next := eval.NewGroup(backend, simplified, group.NumChoices())
	return octree.CellResult[*eval.Group]{Done: false, Next: next}, nil
}

package mesh

import (
	"math"

	"github.com/fieldcarve/fieldcarve/config"
	"github.com/fieldcarve/fieldcarve/eval"
	"github.com/fieldcarve/fieldcarve/octree"
)

// edges lists the 12 edges of a unit cube by corner index pairs; two
// corners are joined iff their indices differ in exactly one bit (see
// octree.Box.Child for the bit-to-axis convention this mirrors): the
// first 4 run along X, the next 4 along Y, the last 4 along Z.
var edges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7},
	{0, 2}, {1, 3}, {4, 6}, {5, 7},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

func corner(bounds octree.Box, i int) [3]float64 {
	var p [3]float64
	for axis := 0; axis < 3; axis++ {
		if i&(1<<axis) == 0 {
			p[axis] = bounds.Min[axis]
		} else {
			p[axis] = bounds.Max[axis]
		}
	}
	return p
}

// Extractor is a dual-contouring octree.SurfaceExtractor: it places one
// Hermite-averaged vertex per leaf cell and collapses flat 8-clusters.
type Extractor struct {
	settings config.Settings
}

// NewExtractor returns an Extractor tuned by settings.FlatnessThreshold.
func NewExtractor(settings config.Settings) *Extractor {
	return &Extractor{settings: settings}
}

var _ octree.SurfaceExtractor[*eval.Group] = (*Extractor)(nil)

// Leaf computes a vertex position and normal for a surface-crossing
// cell: every one of the cell's 12 edges is sampled at both endpoints,
// and every edge whose sign changes contributes a linearly-interpolated
// zero crossing to the vertex average and a central-difference gradient
// to the normal average. Position and normal are thus the mean of all
// Hermite intersection data found on the cell's boundary, not a single
// exact isosurface point — sufficient for display-quality meshing
// without requiring a QEF solve.
func (e *Extractor) Leaf(bounds octree.Box, group *eval.Group) (position, normal [3]float64, err error) {
	backend := group.Backend()

	var corners [8]float64
	for i := 0; i < 8; i++ {
		p := corner(bounds, i)
		corners[i], err = backend.EvalFloat(p[0], p[1], p[2])
		if err != nil {
			return position, normal, err
		}
	}

	var sumPos, sumNormal [3]float64
	count := 0
	for _, e2 := range edges {
		fa, fb := corners[e2[0]], corners[e2[1]]
		if (fa > 0) == (fb > 0) {
			continue // no sign change on this edge
		}
		pa, pb := corner(bounds, e2[0]), corner(bounds, e2[1])
		t := fa / (fa - fb)
		var p [3]float64
		for axis := 0; axis < 3; axis++ {
			p[axis] = pa[axis] + t*(pb[axis]-pa[axis])
		}

		g, err := gradient(backend, p, bounds)
		if err != nil {
			return position, normal, err
		}

		for axis := 0; axis < 3; axis++ {
			sumPos[axis] += p[axis]
			sumNormal[axis] += g[axis]
		}
		count++
	}

	if count == 0 {
		return position, normal, ErrNoSignChange
	}

	for axis := 0; axis < 3; axis++ {
		position[axis] = sumPos[axis] / float64(count)
	}
	return position, normalize(sumNormal), nil
}

// gradient approximates the surface normal at p via central differences,
// stepped by a fraction of bounds' smallest edge so the step scales with
// the cell regardless of its depth. For points on the cell boundary, one
// side of each difference lies just outside the cell.
func gradient(backend eval.Backend, p [3]float64, bounds octree.Box) ([3]float64, error) {
	step := bounds.Max[0] - bounds.Min[0]
	for axis := 1; axis < 3; axis++ {
		if d := bounds.Max[axis] - bounds.Min[axis]; d < step {
			step = d
		}
	}
	h := step * 1e-3

	var g [3]float64
	for axis := 0; axis < 3; axis++ {
		plus, minus := p, p
		plus[axis] += h
		minus[axis] -= h
		fp, err := backend.EvalFloat(plus[0], plus[1], plus[2])
		if err != nil {
			return g, err
		}
		fm, err := backend.EvalFloat(minus[0], minus[1], minus[2])
		if err != nil {
			return g, err
		}
		g[axis] = (fp - fm) / (2 * h)
	}
	return g, nil
}

func normalize(v [3]float64) [3]float64 {
	length := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if length == 0 {
		return v
	}
	return [3]float64{v[0] / length, v[1] / length, v[2] / length}
}

// ReduceCluster collapses an 8-cluster into a single Leaf iff every
// child is itself a Leaf and every pairwise angle between their normals
// is below settings.FlatnessThreshold degrees; the collapsed vertex and
// normal are the mean of the 8 children's. Any Empty, Full, or Branch
// child, or a normal-angle spread past the threshold, keeps the cluster
// as a Branch.
func (e *Extractor) ReduceCluster(children [8]octree.Cell) (octree.Cell, bool) {
	for _, c := range children {
		if c.Kind != octree.CellLeaf {
			return octree.Cell{}, false
		}
	}

	thresholdCos := math.Cos(e.settings.FlatnessThreshold * math.Pi / 180)
	for i := 0; i < 8; i++ {
		for j := i + 1; j < 8; j++ {
			if dot(children[i].Normal, children[j].Normal) < thresholdCos {
				return octree.Cell{}, false
			}
		}
	}

	var sumPos, sumNormal [3]float64
	for _, c := range children {
		for axis := 0; axis < 3; axis++ {
			sumPos[axis] += c.Position[axis]
			sumNormal[axis] += c.Normal[axis]
		}
	}
	var position [3]float64
	for axis := 0; axis < 3; axis++ {
		position[axis] = sumPos[axis] / 8
	}
	return octree.LeafCell(position, normalize(sumNormal)), true
}

func dot(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

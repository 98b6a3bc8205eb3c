package group

import (
	"sort"

	"github.com/fieldcarve/fieldcarve/expr"
)

// Group is a set of nodes that share the same normalized Source list: the
// unit of tape simplification. Choices is sorted, unique, and has
// Left/Right merged into Both and Root-absorption already applied.
type Group struct {
	Choices []Source
	Nodes   []expr.NodeIndex
}

// Stage1 is the result of Analyze: a group assignment for every Stage0
// node, plus the groups themselves.
type Stage1 struct {
	// NodeGroup maps a node's index directly into Groups.
	NodeGroup []int

	// Groups holds every group, in first-appearance order (ascending by
	// the smallest NodeIndex that maps to it).
	Groups []Group

	// NumChoices mirrors expr.Graph.NumChoices at analysis time.
	NumChoices int

	// Root is the root node's index, copied from the input graph for
	// convenience.
	Root expr.NodeIndex
}

// GroupOf returns the Group that node n belongs to.
func (s *Stage1) GroupOf(n expr.NodeIndex) Group {
	return s.Groups[s.NodeGroup[n]]
}

// worklistItem is one pending (node, source) propagation.
type worklistItem struct {
	node expr.NodeIndex
	src  Source
}

// Analyze derives Stage1 from a finalized Stage0 graph.
//
// Algorithm: starting from (root, Source::Root), propagate sources
// top-down with an explicit worklist (never Go recursion, per the
// package doc). At a non-choice node, the incoming source is forwarded
// unchanged to every child. At a min/max node, the incoming source is
// discarded in favor of Left(choice) for the first operand and
// Right(choice) for the second — this is how a node "beneath" a choice
// becomes conditioned on that choice, regardless of what was reachable
// above it. Because the graph is a DAG, a (node, source) pair is only
// ever processed once; re-deriving an already-seen pair is a guaranteed
// no-op and is skipped.
func Analyze(g *expr.Graph) (*Stage1, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Finalized() {
		return nil, ErrNotFinalized
	}
	root, ok := g.Root()
	if !ok {
		return nil, ErrNotFinalized
	}

	n := g.Len()
	seen := make([]map[Source]struct{}, n)

	stack := []worklistItem{{node: root, src: Root()}}
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		set := seen[item.node]
		if set == nil {
			set = make(map[Source]struct{}, 1)
			seen[item.node] = set
		}
		if _, dup := set[item.src]; dup {
			continue
		}
		set[item.src] = struct{}{}

		nd := g.Node(item.node)
		if nd.Op.IsChoice() {
			stack = append(stack,
				worklistItem{node: nd.A, src: Left(nd.Choice)},
				worklistItem{node: nd.B, src: Right(nd.Choice)},
			)
			continue
		}
		for _, child := range expr.Children(nd) {
			stack = append(stack, worklistItem{node: child, src: item.src})
		}
	}

	normalized := make([][]Source, n)
	for i, set := range seen {
		normalized[i] = normalize(set)
	}

	nodeGroup := make([]int, n)
	groups := make([]Group, 0, n)
	keyToIndex := make(map[string]int, n)

	for i := 0; i < n; i++ {
		k := key(normalized[i])
		idx, ok := keyToIndex[k]
		if !ok {
			idx = len(groups)
			keyToIndex[k] = idx
			groups = append(groups, Group{Choices: normalized[i]})
		}
		groups[idx].Nodes = append(groups[idx].Nodes, expr.NodeIndex(i))
		nodeGroup[i] = idx
	}

	for i := range nodeGroup {
		if nodeGroup[i] < 0 || nodeGroup[i] >= len(groups) {
			return nil, &StructuralError{Err: ErrUnassignedNode}
		}
	}

	return &Stage1{
		NodeGroup:  nodeGroup,
		Groups:     groups,
		NumChoices: g.NumChoices(),
		Root:       root,
	}, nil
}

// normalize flattens a raw, unordered source set into the sorted,
// deduplicated canonical form used as a Group key:
//
//   - if Root is present, the whole set collapses to [Root];
//   - otherwise, Left(c) and Right(c) together become Both(c);
//   - the result is sorted by (Kind, ChoiceIndex).
func normalize(set map[Source]struct{}) []Source {
	if _, ok := set[Root()]; ok {
		return []Source{Root()}
	}

	out := make([]Source, 0, len(set))
	for s := range set {
		switch s.Kind {
		case SourceLeft:
			if _, ok := set[Right(s.Choice)]; ok {
				out = append(out, Both(s.Choice))
			} else {
				out = append(out, s)
			}
		case SourceRight:
			if _, ok := set[Left(s.Choice)]; ok {
				// Already emitted as Both(c) by the Left branch above.
			} else {
				out = append(out, s)
			}
		default:
			// SourceBoth should never appear in a raw collected set
			// (only Left/Right/Root are ever pushed onto the worklist),
			// but is handled for defense-in-depth.
			out = append(out, s)
		}
	}

	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

package group

import (
	"strconv"
	"strings"

	"github.com/fieldcarve/fieldcarve/expr"
)

// SourceKind tags which of the four reachability conditions a Source
// describes.
type SourceKind uint8

// The four source kinds. Root subsumes every other source for a node;
// Both(c) replaces the pair {Left(c), Right(c)} during normalization.
const (
	SourceRoot SourceKind = iota
	SourceLeft
	SourceRight
	SourceBoth
)

func (k SourceKind) String() string {
	switch k {
	case SourceRoot:
		return "root"
	case SourceLeft:
		return "left"
	case SourceRight:
		return "right"
	case SourceBoth:
		return "both"
	default:
		return "?"
	}
}

// Source tags one condition under which a node is reached from the root:
// Root, Left(c), Right(c), or Both(c), where c is the ChoiceIndex of the
// min/max node that forked reachability.
type Source struct {
	Kind   SourceKind
	Choice expr.ChoiceIndex
}

// Root is the always-reachable source.
func Root() Source { return Source{Kind: SourceRoot} }

// Left, Right, and Both build sources conditioned on choice node c.
func Left(c expr.ChoiceIndex) Source  { return Source{Kind: SourceLeft, Choice: c} }
func Right(c expr.ChoiceIndex) Source { return Source{Kind: SourceRight, Choice: c} }
func Both(c expr.ChoiceIndex) Source  { return Source{Kind: SourceBoth, Choice: c} }

// less implements the total order used to sort a normalized Source list:
// by (Kind, Choice).
func less(a, b Source) bool {
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	return a.Choice < b.Choice
}

// key renders a sorted, normalized Source list into a canonical string
// suitable as a Group map key. Two lists produce equal keys iff they are
// equal as sets (they are always pre-sorted and de-duplicated by
// normalize, so this is just a stable serialization).
func key(sources []Source) string {
	if len(sources) == 0 {
		return ""
	}
	var b strings.Builder
	for i, s := range sources {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteByte(byte('0' + s.Kind))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(int(s.Choice)))
	}
	return b.String()
}

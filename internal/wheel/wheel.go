package wheel

import (
	"fmt"
	"strings"
)

// #region types

// Primary identifies one of the six top-level emotion families.
type Primary string

const (
	PrimaryJoy        Primary = "joy"
	PrimarySadness    Primary = "sadness"
	PrimaryAnger      Primary = "anger"
	PrimaryFear       Primary = "fear"
	PrimarySurprise   Primary = "surprise"
	PrimaryResilience Primary = "resilience"
)

// Primaries lists the six families in canonical classifier order.
var Primaries = []Primary{
	PrimaryJoy, PrimarySadness, PrimaryAnger,
	PrimaryFear, PrimarySurprise, PrimaryResilience,
}

// Node is one entry in the wheel (a primary, secondary, or tertiary).
// Valence is signed [-1, 1]; Arousal is [0, 1]. Phrase carries the anchor
// terms used for lexical similarity against reflection text.
type Node struct {
	Label   string
	Valence float64
	Arousal float64
	Phrase  []string
}

// Path is a fully resolved primary/secondary/tertiary triple. Secondary
// and Tertiary may be empty when selection was suppressed.
type Path struct {
	Primary   Primary
	Secondary string
	Tertiary  string
}

// Wheel is the immutable, validated 6x6x6 taxonomy. Build it once with
// Load; never mutate it afterwards.
type Wheel struct {
	primaries   map[Primary]Node
	secondaries map[Primary][]Node
	tertiaries  map[string][]Node // keyed by secondary label
	parent      map[string]Primary
}

// #endregion types

// #region load

// Load builds the wheel from the static table and validates the closed
// set: 6 primaries, 6 secondaries each, 6 tertiaries each, 216 leaves,
// no duplicate labels anywhere. Any violation is a programming defect,
// so Load panics rather than returning an error.
func Load() *Wheel {
	w := &Wheel{
		primaries:   make(map[Primary]Node, 6),
		secondaries: make(map[Primary][]Node, 6),
		tertiaries:  make(map[string][]Node, 36),
		parent:      make(map[string]Primary, 36),
	}

	if len(table) != 6 {
		panic(fmt.Sprintf("wheel: %d primaries, want 6", len(table)))
	}

	seen := make(map[string]bool, 258)
	leaves := 0

	for _, p := range table {
		prim := Primary(p.node.Label)
		if seen[p.node.Label] {
			panic("wheel: duplicate label " + p.node.Label)
		}
		seen[p.node.Label] = true
		w.primaries[prim] = p.node

		if len(p.children) != 6 {
			panic(fmt.Sprintf("wheel: primary %s has %d secondaries, want 6", prim, len(p.children)))
		}
		for _, s := range p.children {
			if seen[s.node.Label] {
				panic("wheel: duplicate label " + s.node.Label)
			}
			seen[s.node.Label] = true
			w.secondaries[prim] = append(w.secondaries[prim], s.node)
			w.parent[s.node.Label] = prim

			if len(s.leaves) != 6 {
				panic(fmt.Sprintf("wheel: secondary %s has %d tertiaries, want 6", s.node.Label, len(s.leaves)))
			}
			for _, t := range s.leaves {
				if seen[t] {
					panic("wheel: duplicate label " + t)
				}
				seen[t] = true
				// Leaves inherit their secondary's affect coordinates.
				w.tertiaries[s.node.Label] = append(w.tertiaries[s.node.Label], Node{
					Label:   t,
					Valence: s.node.Valence,
					Arousal: s.node.Arousal,
				})
				leaves++
			}
		}
	}

	if leaves != 216 {
		panic(fmt.Sprintf("wheel: %d leaves, want 216", leaves))
	}
	return w
}

// #endregion load

// #region lookup

// PrimaryNode returns the node for a primary family.
func (w *Wheel) PrimaryNode(p Primary) Node {
	return w.primaries[p]
}

// Secondaries returns the six children of a primary, in table order.
func (w *Wheel) Secondaries(p Primary) []Node {
	return w.secondaries[p]
}

// Tertiaries returns the six leaves under a secondary label, or nil when
// the label is not a secondary of the wheel.
func (w *Wheel) Tertiaries(secondary string) []Node {
	return w.tertiaries[secondary]
}

// ParentOf returns the primary owning a secondary label.
func (w *Wheel) ParentOf(secondary string) (Primary, bool) {
	p, ok := w.parent[secondary]
	return p, ok
}

// Contains reports whether the path is a member of the closed set.
// Empty secondary/tertiary segments are valid (suppressed selection).
func (w *Wheel) Contains(path Path) bool {
	if _, ok := w.primaries[path.Primary]; !ok {
		return false
	}
	if path.Secondary == "" {
		return path.Tertiary == ""
	}
	found := false
	for _, s := range w.secondaries[path.Primary] {
		if s.Label == path.Secondary {
			found = true
			break
		}
	}
	if !found {
		return false
	}
	if path.Tertiary == "" {
		return true
	}
	for _, t := range w.tertiaries[path.Secondary] {
		if t.Label == path.Tertiary {
			return true
		}
	}
	return false
}

// #endregion lookup

// #region valence-domains

// SignedValence maps event-style valence [0, 1] onto the canonical
// emotion valence domain [-1, 1].
func SignedValence(v01 float64) float64 {
	return 2*v01 - 1
}

// UnitValence maps canonical emotion valence [-1, 1] onto [0, 1].
func UnitValence(v float64) float64 {
	return (v + 1) / 2
}

// #endregion valence-domains

// #region positive

// IsPositive reports whether a primary is a positive-valence shell
// (relevant to sarcasm inversion and tertiary suppression).
func IsPositive(p Primary) bool {
	switch p {
	case PrimaryJoy, PrimaryResilience:
		return true
	}
	return false
}

// PhraseText joins a node's anchor terms for similarity scoring.
func (n Node) PhraseText() string {
	return n.Label + " " + strings.Join(n.Phrase, " ")
}

// #endregion positive

// Package threads links a new reflection to recent history items that
// cover the same ground, so downstream consumers can tell a one-off bad
// day from a topic the user keeps circling back to.
package threads

import (
	"sort"
	"time"

	"github.com/danielpatrickdp/affective-state/go-engine/internal/config"
	"github.com/danielpatrickdp/affective-state/go-engine/internal/state"
)

// #region types

// Relation qualifies how close a linked reflection is.
type Relation string

const (
	RelationIdentical Relation = "identical"
	RelationRecurring Relation = "recurring"
	RelationRelated   Relation = "related"
)

// ThreadState summarizes the link set as a whole.
type ThreadState string

const (
	StateNew       ThreadState = "new"       // no prior history at all
	StateIsolated  ThreadState = "isolated"  // history exists, nothing links
	StateRecurring ThreadState = "recurring" // strongest link is a near repeat
	StateOngoing   ThreadState = "ongoing"   // several links, an active thread
	StateRelated   ThreadState = "related"   // weak links only
)

// Link is one connection to a prior reflection.
type Link struct {
	ReflectionID string   `json:"reflection_id"`
	Similarity   float64  `json:"similarity"`
	Relation     Relation `json:"relation"`
}

// Result is the full thread verdict for one reflection.
type Result struct {
	State ThreadState `json:"state"`
	Links []Link      `json:"links,omitempty"`
}

// Detector scores candidates from history against the new reflection.
type Detector struct {
	cfg config.Threads
}

// NewDetector creates a detector.
func NewDetector(cfg config.Threads) *Detector {
	return &Detector{cfg: cfg}
}

// #endregion types

// #region detect

// Detect links the reflection described by tokens and labels to prior
// history. History is most-recent-first; only items inside the window
// are considered, capped at MaxCandidates. A candidate links when the
// blended similarity clears the threshold, or when its event labels
// alone overlap heavily even if the wording changed completely.
func (d *Detector) Detect(tokens, labels []string, now time.Time, history []state.HistoryItem) Result {
	if len(history) == 0 {
		return Result{State: StateNew}
	}

	cutoff := now.AddDate(0, 0, -d.cfg.WindowDays)
	tokSet := setOf(filterStopwords(tokens))
	labSet := setOf(labels)

	var links []Link
	seen := 0
	for _, item := range history {
		if item.Timestamp.Before(cutoff) {
			break
		}
		if seen++; seen > d.cfg.MaxCandidates {
			break
		}

		lex := jaccard(tokSet, setOf(filterStopwords(item.Tokens)))
		lab := jaccard(labSet, setOf(item.EventLabels))
		sim := d.cfg.LexicalWeight*lex + d.cfg.LabelWeight*lab

		if sim >= d.cfg.LinkThreshold || lab >= d.cfg.LabelOverlapFloor {
			links = append(links, Link{
				ReflectionID: item.ReflectionID,
				Similarity:   round3(sim),
				Relation:     d.relation(sim, lab),
			})
		}
	}

	sort.SliceStable(links, func(i, j int) bool {
		return links[i].Similarity > links[j].Similarity
	})
	if len(links) > d.cfg.MaxLinks {
		links = links[:d.cfg.MaxLinks]
	}

	return Result{State: d.threadState(links), Links: links}
}

func (d *Detector) relation(sim, labelJaccard float64) Relation {
	switch {
	case sim >= d.cfg.IdenticalBand:
		return RelationIdentical
	case sim >= d.cfg.RecurringBand && labelJaccard > 0:
		return RelationRecurring
	default:
		return RelationRelated
	}
}

func (d *Detector) threadState(links []Link) ThreadState {
	switch {
	case len(links) == 0:
		return StateIsolated
	case len(links) >= d.cfg.OngoingLinkCount:
		return StateOngoing
	case links[0].Relation != RelationRelated:
		return StateRecurring
	default:
		return StateRelated
	}
}

// #endregion detect

// #region similarity

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}
	shared := 0
	for k := range small {
		if _, ok := large[k]; ok {
			shared++
		}
	}
	return float64(shared) / float64(len(a)+len(b)-shared)
}

func setOf(items []string) map[string]struct{} {
	s := make(map[string]struct{}, len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}
	return s
}

func filterStopwords(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, skip := stopwords[t]; !skip {
			out = append(out, t)
		}
	}
	return out
}

func round3(v float64) float64 {
	return float64(int(v*1000+0.5)) / 1000
}

// stopwords are dropped before lexical overlap so filler does not
// inflate similarity between unrelated reflections.
var stopwords = map[string]struct{}{
	"a": {}, "about": {}, "after": {}, "again": {}, "all": {}, "am": {},
	"an": {}, "and": {}, "any": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "because": {}, "been": {}, "being": {}, "but": {}, "by": {},
	"can": {}, "could": {}, "did": {}, "do": {}, "does": {}, "doing": {},
	"dont": {}, "for": {}, "from": {}, "had": {}, "has": {}, "have": {},
	"he": {}, "her": {}, "here": {}, "him": {}, "his": {}, "how": {},
	"i": {}, "if": {}, "im": {}, "in": {}, "into": {}, "is": {}, "it": {},
	"its": {}, "ive": {}, "just": {}, "like": {}, "me": {}, "my": {},
	"no": {}, "not": {}, "of": {}, "on": {}, "or": {}, "our": {},
	"out": {}, "she": {}, "so": {}, "some": {}, "than": {}, "that": {},
	"the": {}, "their": {}, "them": {}, "then": {}, "there": {},
	"they": {}, "this": {}, "to": {}, "too": {}, "up": {}, "very": {},
	"was": {}, "we": {}, "were": {}, "what": {}, "when": {}, "which": {},
	"who": {}, "will": {}, "with": {}, "would": {}, "you": {}, "your": {},
}

// #endregion similarity

// Package selector descends the wheel below a chosen primary: one of its
// six secondaries, then one of that secondary's six tertiaries. The
// candidate sets come from the wheel tables only, so a label outside the
// closed 216-path set cannot be produced. A neutral gate runs first.
package selector

import (
	"strings"

	"go.uber.org/zap"

	"github.com/danielpatrickdp/affective-state/go-engine/internal/config"
	"github.com/danielpatrickdp/affective-state/go-engine/internal/features"
	"github.com/danielpatrickdp/affective-state/go-engine/internal/valence"
	"github.com/danielpatrickdp/affective-state/go-engine/internal/wheel"
)

// #region types

// Result is the hierarchy-descent outcome. Secondary/Tertiary are empty
// when suppressed; Neutral marks the neutral-gate short circuit.
type Result struct {
	Path              wheel.Path
	SecondaryScore    float64
	TertiaryScore     float64
	TertiaryAmbiguous bool

	Neutral bool
	// Node affect of the deepest resolved node (or neutral defaults).
	Valence    float64 // signed [-1, 1]
	Arousal    float64 // [0, 1]
	Confidence float64 // neutral-gate confidence; 0 for non-neutral paths
}

// NodeSims optionally carries embedding similarity per node label.
type NodeSims map[string]float64

// Selector scores wheel candidates against reflection text.
type Selector struct {
	wheel  *wheel.Wheel
	cfg    config.Selector
	logger *zap.Logger
}

// NewSelector creates a selector. logger may be nil.
func NewSelector(w *wheel.Wheel, cfg config.Selector, logger *zap.Logger) *Selector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Selector{wheel: w, cfg: cfg, logger: logger}
}

// #endregion types

// #region neutral-gate

// Neutral defaults: the unit-midpoint valence (0.50, signed 0), low
// arousal, low confidence.
const (
	neutralValence    = 0.0
	neutralArousal    = 0.35
	neutralConfidence = 0.40
)

// CheckNeutral runs the neutral gate: no event anchors, no emotion
// terms, and the text is either very short, heavily hedged, or loops on
// itself. Returns a low-confidence neutral result instead of forcing a
// label.
func (s *Selector) CheckNeutral(ex features.Extraction) (Result, bool) {
	if !ex.Flags.NeutralEvent || !ex.Flags.NeutralEmotion {
		return Result{}, false
	}
	short := len(ex.Tokens) <= s.cfg.NeutralMaxTokens
	hedged := ex.HedgeCount >= s.cfg.NeutralMinHedges
	looping := ex.RepeatRatio >= s.cfg.NeutralRepeatRatio
	if !short && !hedged && !looping {
		return Result{}, false
	}
	return Result{
		Neutral:           true,
		TertiaryAmbiguous: true,
		Valence:           neutralValence,
		Arousal:           neutralArousal,
		Confidence:        neutralConfidence,
	}, true
}

// #endregion neutral-gate

// #region select

// Select descends from the chosen primary. sims may be nil.
func (s *Selector) Select(p wheel.Primary, ex features.Extraction, split valence.Split, sims NodeSims) Result {
	sec, secScore := s.best(s.wheel.Secondaries(p), ex, split, sims, false)

	res := Result{
		Path:           wheel.Path{Primary: p, Secondary: sec.Label},
		SecondaryScore: secScore,
		Valence:        sec.Valence,
		Arousal:        sec.Arousal,
	}

	ter, terScore := s.best(s.wheel.Tertiaries(sec.Label), ex, split, sims, ex.Flags.Sarcasm)
	if terScore < s.cfg.TertiaryFloor || ter.Label == "" {
		res.TertiaryAmbiguous = true
		s.logger.Debug("tertiary suppressed",
			zap.String("secondary", sec.Label),
			zap.Float64("score", terScore),
		)
		return res
	}

	res.Path.Tertiary = ter.Label
	res.TertiaryScore = terScore
	res.Valence = ter.Valence
	res.Arousal = ter.Arousal
	return res
}

// best scores each candidate and returns the argmax. When
// suppressPositive is set (sarcasm), positive-valence candidates are
// skipped entirely.
func (s *Selector) best(nodes []wheel.Node, ex features.Extraction, split valence.Split, sims NodeSims, suppressPositive bool) (wheel.Node, float64) {
	var bestNode wheel.Node
	bestScore := -1.0
	for _, n := range nodes {
		if suppressPositive && n.Valence > 0 {
			continue
		}
		score := s.nodeSimilarity(n, ex, sims) + s.contextBoost(n, split)
		if score > bestScore {
			bestNode, bestScore = n, score
		}
	}
	if bestScore < 0 {
		return wheel.Node{}, 0
	}
	return bestNode, bestScore
}

// #endregion select

// #region similarity

// nodeSimilarity scores a candidate against the token stream. An exact
// label hit is decisive; shared 5-char stems catch inflections
// ("accomplished" -> "accomplishment"); anchor-phrase overlap fills in
// the rest.
func (s *Selector) nodeSimilarity(n wheel.Node, ex features.Extraction, sims NodeSims) float64 {
	if sims != nil {
		if v, ok := sims[n.Label]; ok {
			return v
		}
	}

	best := 0.0
	label := strings.ToLower(n.Label)
	for _, tok := range ex.Tokens {
		if tok == label {
			return 1.0
		}
		if sharedStem(tok, label) {
			best = maxf(best, 0.8)
		}
	}

	if len(n.Phrase) > 0 {
		hits := 0
		lowerJoined := " " + strings.ToLower(strings.Join(ex.Tokens, " ")) + " "
		for _, ph := range n.Phrase {
			ph = strings.ToLower(ph)
			if strings.Contains(ph, " ") {
				if strings.Contains(lowerJoined, " "+ph+" ") {
					hits++
				}
				continue
			}
			for _, tok := range ex.Tokens {
				if tok == ph || sharedStem(tok, ph) {
					hits++
					break
				}
			}
		}
		// Two phrase hits are strong evidence even without a label hit.
		best = maxf(best, minf(float64(hits)/2.0, 1.0)*0.9)
	}
	return best
}

// contextBoost nudges coping-flavored candidates when the writer
// describes a bad event they hold agency over, so resilience-type
// secondaries win over achievement-type even at lower raw similarity.
func (s *Selector) contextBoost(n wheel.Node, split valence.Split) float64 {
	if split.Event.EventValence >= 0.4 || split.Event.Control == valence.ControlLow {
		return 0
	}
	if copingNodes[n.Label] {
		return s.cfg.ContextBoost
	}
	return 0
}

// copingNodes are the secondaries describing handling adversity rather
// than enjoying success.
var copingNodes = map[string]bool{
	"determination": true, "courage": true, "acceptance": true,
	"recovery": true, "agency": true, "growth": true,
	"defiance": true, "frustration": true,
}

// #endregion similarity

// #region helpers

// sharedStem reports whether two words share a 5-character prefix, both
// being at least 5 long.
func sharedStem(a, b string) bool {
	return len(a) >= 5 && len(b) >= 5 && a[:5] == b[:5]
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// #endregion helpers

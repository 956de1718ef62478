package primary

import (
	"github.com/danielpatrickdp/affective-state/go-engine/internal/lexicon"
	"github.com/danielpatrickdp/affective-state/go-engine/internal/valence"
	"github.com/danielpatrickdp/affective-state/go-engine/internal/wheel"
)

// #region candidates

// candidates is the mutable working set a rule pipeline transforms. Each
// rule receives the current scores and returns adjusted ones; the scorer
// renormalizes between rules.
type candidates struct {
	scores       map[wheel.Primary]float64
	eventValence float64
	fired        []string
}

// rerankRule is one conditional multiplier step. applies inspects the
// input only; apply mutates the candidate set.
type rerankRule struct {
	name    string
	applies func(Input) bool
	apply   func(*candidates, Input)
}

// #endregion candidates

// #region rules

// rules returns the deterministic rerank pipeline in firing order.
func (s *Scorer) rules() []rerankRule {
	return []rerankRule{
		{
			// Bad event the writer had a hand in: reads as anger, not fear.
			name: "anger_on_controlled_bad_event",
			applies: func(in Input) bool {
				return in.Split.Event.EventValence < 0.4 &&
					in.Split.Event.Control != valence.ControlLow
			},
			apply: func(c *candidates, _ Input) {
				c.scores[wheel.PrimaryAnger] *= s.rerank.AngerControlBoost
			},
		},
		{
			// "scared ... but I handled it": concession pattern flips the
			// reading from fear toward resilience.
			name: "concession_fear_to_agency",
			applies: func(in Input) bool {
				return hasConcessionPattern(in)
			},
			apply: func(c *candidates, _ Input) {
				c.scores[wheel.PrimaryResilience] *= s.rerank.ConcessionAgencyBoost
				c.scores[wheel.PrimaryFear] *= s.rerank.ConcessionFearCut
			},
		},
		{
			// "not happy" about a good event: suppress joy, credit the
			// composed stance instead.
			name: "negated_joy_on_good_event",
			applies: func(in Input) bool {
				return hasNegatedPositiveTerm(in) && in.Split.Event.EventValence >= 0.6
			},
			apply: func(c *candidates, _ Input) {
				c.scores[wheel.PrimaryJoy] *= s.rerank.NegatedJoyCut
				c.scores[wheel.PrimaryResilience] *= s.rerank.NegatedJoyAgencyBoost
			},
		},
		{
			// Sarcasm inverts the positive shells and discounts the event
			// reading itself.
			name: "sarcasm_inversion",
			applies: func(in Input) bool {
				return in.Extraction.Flags.Sarcasm
			},
			apply: func(c *candidates, _ Input) {
				for _, p := range wheel.Primaries {
					if wheel.IsPositive(p) {
						c.scores[p] *= s.rerank.SarcasmPositiveCut
					}
				}
				c.eventValence *= s.rerank.SarcasmEventValenceCut
			},
		},
	}
}

// #endregion rules

// #region pattern-detection

// hasConcessionPattern reports a fear term, then a concessive breaker,
// then an agency verb, in token order.
func hasConcessionPattern(in Input) bool {
	fearIdx := -1
	for _, h := range in.Extraction.Emotions {
		if h.Primary == string(wheel.PrimaryFear) && !h.Negated {
			fearIdx = h.Index
			break
		}
	}
	if fearIdx < 0 {
		return false
	}
	butIdx := -1
	for i := fearIdx + 1; i < len(in.Extraction.Tokens); i++ {
		if lexicon.ScopeBreakers[in.Extraction.Tokens[i]] {
			butIdx = i
			break
		}
	}
	if butIdx < 0 {
		return false
	}
	for i := butIdx + 1; i < len(in.Extraction.Tokens); i++ {
		if lexicon.AgencyVerbs[in.Extraction.Tokens[i]] {
			return true
		}
	}
	return false
}

// hasNegatedPositiveTerm reports a joy-family term under negation scope
// (litotes does not count; "not unhappy" already reads positive).
func hasNegatedPositiveTerm(in Input) bool {
	for _, h := range in.Extraction.Emotions {
		if h.Negated && !h.Litotes && h.Primary == string(wheel.PrimaryJoy) {
			return true
		}
	}
	return false
}

// #endregion pattern-detection

// Package primary fuses the external classifier distribution with
// deterministic context evidence and a rerank rule pass, producing one
// of the six wheel primaries.
package primary

import (
	"strings"

	"go.uber.org/zap"

	"github.com/danielpatrickdp/affective-state/go-engine/internal/config"
	"github.com/danielpatrickdp/affective-state/go-engine/internal/features"
	"github.com/danielpatrickdp/affective-state/go-engine/internal/providers"
	"github.com/danielpatrickdp/affective-state/go-engine/internal/valence"
	"github.com/danielpatrickdp/affective-state/go-engine/internal/wheel"
)

// #region scorer

// Scorer holds the fusion weights, rule multipliers and wheel tables.
type Scorer struct {
	weights config.Weights
	rerank  config.Rerank
	wheel   *wheel.Wheel
	logger  *zap.Logger
}

// NewScorer creates a scorer. logger may be nil.
func NewScorer(w *wheel.Wheel, weights config.Weights, rerank config.Rerank, logger *zap.Logger) *Scorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scorer{weights: weights, rerank: rerank, wheel: w, logger: logger}
}

// #endregion scorer

// #region score

// Score runs fusion, then the rerank rule pipeline, then argmax with the
// rule-preferring tie-break.
func (s *Scorer) Score(in Input) Result {
	baseTop, _ := in.Distribution.Top()

	raw := make(map[wheel.Primary]float64, len(wheel.Primaries))
	for _, p := range wheel.Primaries {
		raw[p] = s.fuse(p, in)
	}
	raw = normalize(raw)

	cands := candidates{scores: clone(raw), eventValence: in.Split.Event.EventValence}
	for _, rule := range s.rules() {
		if !rule.applies(in) {
			continue
		}
		before := clone(cands.scores)
		rule.apply(&cands, in)
		cands.scores = normalize(cands.scores)
		cands.fired = append(cands.fired, rule.name)
		s.logger.Debug("rerank rule fired",
			zap.String("rule", rule.name),
			zap.Any("before", before),
			zap.Any("after", cands.scores),
		)
	}

	winner := s.pick(raw, cands)

	return Result{
		Primary:        winner,
		Scores:         cands.scores,
		BaseTop:        baseTop,
		RerankAgree:    winner == baseTop,
		RulesFired:     cands.fired,
		EventValence:   cands.eventValence,
		ClassifierConf: in.Distribution.EntropyConfidence(),
	}
}

// fuse computes the weighted base score for one primary.
func (s *Scorer) fuse(p wheel.Primary, in Input) float64 {
	w := s.weights
	score := w.Classifier * in.Distribution[p]
	score += w.TertiarySimilarity * s.tertiarySim(p, in)
	score += w.DomainMatch * domainAffinity(in.Split.Event.Domain.Primary, p)
	score += w.ControlMatch * controlAffinity(in.Split.Event.Control, p)
	score += w.PolarityMatch * polarityAffinity(in.Split.Event.Polarity, p)
	score += w.CoreSimilarity * s.coreSim(p, in)
	return score
}

// #endregion score

// #region similarity

// tertiarySim is the best similarity between the text and any leaf
// phrase under the primary: embedding-backed when available, lexical
// overlap otherwise.
func (s *Scorer) tertiarySim(p wheel.Primary, in Input) float64 {
	if in.Sims != nil && in.Sims.Tertiary != nil {
		if v, ok := in.Sims.Tertiary[p]; ok {
			return v
		}
	}
	best := 0.0
	for _, sec := range s.wheel.Secondaries(p) {
		if v := LexicalSimilarity(in.Extraction.Tokens, sec.PhraseText()); v > best {
			best = v
		}
	}
	return best
}

// coreSim measures how close the reflection's felt coordinates sit to
// the primary's own, blended with phrase overlap.
func (s *Scorer) coreSim(p wheel.Primary, in Input) float64 {
	if in.Sims != nil && in.Sims.Core != nil {
		if v, ok := in.Sims.Core[p]; ok {
			return v
		}
	}
	node := s.wheel.PrimaryNode(p)
	lex := LexicalSimilarity(in.Extraction.Tokens, node.PhraseText())

	// Coordinate proximity only counts when the text carries feeling words.
	if in.Extraction.Flags.NeutralEmotion {
		return lex
	}
	dv := in.Split.EmotionValence - node.Valence
	da := in.Split.EmotionArousal - node.Arousal
	coord := 1 - (abs(dv)/2+abs(da))/2
	if coord < 0 {
		coord = 0
	}
	return 0.5*lex + 0.5*coord
}

// LexicalSimilarity is token overlap between the reflection and an
// anchor phrase, normalized by phrase size.
func LexicalSimilarity(tokens []string, phrase string) float64 {
	words := strings.Fields(strings.ToLower(phrase))
	if len(words) == 0 {
		return 0
	}
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	hits := 0
	for _, w := range words {
		if set[w] {
			hits++
		}
	}
	return float64(hits) / float64(len(words))
}

// #endregion similarity

// #region affinity

// domainAffinity encodes which primaries a life domain raises the prior
// for. Values are soft match scores in [0, 1]; 0.5 is neutral.
func domainAffinity(domain string, p wheel.Primary) float64 {
	affinities := map[string]map[wheel.Primary]float64{
		"work":          {wheel.PrimaryFear: 0.7, wheel.PrimaryAnger: 0.65, wheel.PrimaryResilience: 0.6},
		"relationships": {wheel.PrimarySadness: 0.7, wheel.PrimaryJoy: 0.6, wheel.PrimaryAnger: 0.6},
		"health":        {wheel.PrimaryFear: 0.75, wheel.PrimarySadness: 0.6},
		"finance":       {wheel.PrimaryFear: 0.7, wheel.PrimaryAnger: 0.6},
		"education":     {wheel.PrimaryFear: 0.65, wheel.PrimaryJoy: 0.6},
		"family":        {wheel.PrimarySadness: 0.65, wheel.PrimaryJoy: 0.6, wheel.PrimaryAnger: 0.6},
	}
	if m, ok := affinities[domain]; ok {
		if v, ok := m[p]; ok {
			return v
		}
	}
	return 0.5
}

// controlAffinity: agency favors resilience and anger; helplessness
// favors fear and sadness.
func controlAffinity(c valence.Control, p wheel.Primary) float64 {
	switch c {
	case valence.ControlHigh:
		switch p {
		case wheel.PrimaryResilience:
			return 0.8
		case wheel.PrimaryAnger:
			return 0.65
		case wheel.PrimaryFear:
			return 0.35
		}
	case valence.ControlLow:
		switch p {
		case wheel.PrimaryFear:
			return 0.7
		case wheel.PrimarySadness:
			return 0.65
		case wheel.PrimaryResilience:
			return 0.35
		}
	}
	return 0.5
}

// polarityAffinity: upcoming events read anticipatory (fear/joy),
// events that fell through read as loss or grievance.
func polarityAffinity(pol valence.Polarity, p wheel.Primary) float64 {
	switch pol {
	case valence.PolarityPlanned:
		switch p {
		case wheel.PrimaryFear:
			return 0.7
		case wheel.PrimaryJoy:
			return 0.6
		}
	case valence.PolarityDidNotHappen:
		switch p {
		case wheel.PrimarySadness:
			return 0.7
		case wheel.PrimaryAnger:
			return 0.6
		}
	}
	return 0.5
}

// #endregion affinity

// #region pick

// pick selects the winner: argmax over reranked scores, except that a
// rule-boosted candidate within TieBreakRatio of the raw top wins over a
// non-boosted one.
func (s *Scorer) pick(raw map[wheel.Primary]float64, c candidates) wheel.Primary {
	top := argmax(c.scores)
	if len(c.fired) == 0 {
		return top
	}

	rawTop := argmax(raw)
	if top == rawTop {
		return top
	}
	// The rerank moved the argmax. Honor it only when the new winner's
	// raw score was already within the tie-break band of the raw top;
	// otherwise the rules outran the evidence.
	if raw[top] >= s.rerank.TieBreakRatio*raw[rawTop] {
		return top
	}
	return rawTop
}

// #endregion pick

// #region fallback

// RuleDistribution is the deterministic classifier fallback: emotion-term
// votes weighted by valence magnitude, uniform when the text carries no
// feeling words.
func RuleDistribution(ex features.Extraction) providers.Distribution {
	dist := make(providers.Distribution, len(wheel.Primaries))
	for _, h := range ex.Emotions {
		weight := abs(h.Valence)
		if weight < 0.2 {
			weight = 0.2
		}
		target := wheel.Primary(h.Primary)
		if h.Litotes {
			// "not unhappy" votes weakly positive, not for the negated family.
			target = wheel.PrimaryJoy
			weight *= 0.6
		} else if h.Negated && h.Valence < 0 {
			// Negated positive term: the felt emotion is not the term's family.
			target = wheel.PrimarySadness
			weight *= 0.7
		}
		dist[target] += weight
	}
	if len(dist) == 0 {
		return providers.Distribution{}.Normalize()
	}
	return dist.Normalize()
}

// #endregion fallback

// #region helpers

// normalize scales scores to sum to 1, accumulating in fixed primary
// order so identical input rounds identically on every call.
func normalize(m map[wheel.Primary]float64) map[wheel.Primary]float64 {
	var sum float64
	for _, p := range wheel.Primaries {
		sum += m[p]
	}
	if sum <= 0 {
		return m
	}
	out := make(map[wheel.Primary]float64, len(m))
	for _, p := range wheel.Primaries {
		if v, ok := m[p]; ok {
			out[p] = v / sum
		}
	}
	return out
}

func clone(m map[wheel.Primary]float64) map[wheel.Primary]float64 {
	out := make(map[wheel.Primary]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func argmax(m map[wheel.Primary]float64) wheel.Primary {
	best := wheel.Primaries[0]
	bestV := m[best]
	for _, p := range wheel.Primaries[1:] {
		if m[p] > bestV {
			best, bestV = p, m[p]
		}
	}
	return best
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// #endregion helpers

// Package valence splits a reflection into event valence (how good or
// bad the described event is) and emotion valence (how the writer feels),
// and derives the event context (domain, control, polarity). The two
// sides score independently: "promoted but terrified" keeps a high event
// valence and a low emotion valence at the same time.
package valence

import (
	"sort"
	"strings"

	"github.com/danielpatrickdp/affective-state/go-engine/internal/features"
	"github.com/danielpatrickdp/affective-state/go-engine/internal/lexicon"
)

// #region types

// Control grades how much agency the writer shows over the event.
type Control string

const (
	ControlLow    Control = "low"
	ControlMedium Control = "medium"
	ControlHigh   Control = "high"
)

// Polarity marks whether the event is upcoming, occurred, or failed to
// occur.
type Polarity string

const (
	PolarityPlanned      Polarity = "planned"
	PolarityHappened     Polarity = "happened"
	PolarityDidNotHappen Polarity = "did_not_happen"
)

// Domain is the life-domain mixture of the reflection. MixtureRatio is
// the secondary domain's hit share relative to the primary: 0 means a
// pure single-domain reflection, values near 1 an even split.
type Domain struct {
	Primary      string
	Secondary    string
	MixtureRatio float64
}

// EventContext bundles the event-side reading of a reflection.
// EventValence lives in [0, 1]; 0.5 is the no-anchor default.
type EventContext struct {
	Domain       Domain
	Control      Control
	Polarity     Polarity
	EventValence float64
}

// Split is the full output of the valence splitter, including the
// component confidences the calibrator folds in later.
type Split struct {
	Event           EventContext
	EmotionValence  float64 // signed [-1, 1]
	EmotionArousal  float64 // [0, 1]
	DomainConfidence   float64
	ControlConfidence  float64
	PolarityConfidence float64
}

// Expressed is the outward tone estimate derived from surface signals.
type Expressed struct {
	Tone        string  // positive | negative | flat | mixed
	Intensity   float64 // [0, 1]
	Willingness float64 // [0, 1] willingness to express
}

// #endregion types

// #region compute

// Compute derives the valence split and event context from an extraction
// over the normalized text.
func Compute(ex features.Extraction, lowerText string) Split {
	s := Split{}
	s.Event.EventValence = eventValence(ex.Anchors)
	s.EmotionValence, s.EmotionArousal = emotionValence(ex.Emotions)
	s.Event.Domain, s.DomainConfidence = domainMixture(ex.DomainHits)
	s.Event.Control, s.ControlConfidence = control(ex)
	s.Event.Polarity, s.PolarityConfidence = polarity(lowerText)
	return s
}

// eventValence maps the mean post-negation anchor weight onto [0, 1].
// No anchors means no event evidence: return the 0.5 midpoint.
func eventValence(anchors []features.AnchorHit) float64 {
	if len(anchors) == 0 {
		return 0.5
	}
	var sum float64
	for _, a := range anchors {
		sum += a.Weight
	}
	mean := sum / float64(len(anchors))
	return clamp01(0.5 + 0.5*mean)
}

// emotionValence averages emotion-term coordinates. Defaults to
// (0, 0.35) when the text carries no feeling words.
func emotionValence(hits []features.EmotionHit) (float64, float64) {
	if len(hits) == 0 {
		return 0, 0.35
	}
	var v, a float64
	for _, h := range hits {
		v += h.Valence
		a += h.Arousal
	}
	return clampSigned(v / float64(len(hits))), clamp01(a / float64(len(hits)))
}

// #endregion compute

// #region domain

func domainMixture(hits map[string]int) (Domain, float64) {
	if len(hits) == 0 {
		return Domain{Primary: "general"}, 0.3
	}

	type dc struct {
		name  string
		count int
	}
	ranked := make([]dc, 0, len(hits))
	total := 0
	for name, c := range hits {
		ranked = append(ranked, dc{name, c})
		total += c
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].name < ranked[j].name
	})

	d := Domain{Primary: ranked[0].name}
	if len(ranked) > 1 && ranked[1].count > 0 {
		d.Secondary = ranked[1].name
		d.MixtureRatio = float64(ranked[1].count) / float64(ranked[0].count)
	}

	conf := float64(ranked[0].count) / float64(total)
	if ranked[0].count >= 3 {
		conf = clamp01(conf + 0.2)
	}
	return d, clamp01(conf)
}

// #endregion domain

// #region control

// control grades agency from agency-verb density, discounted by hedging.
func control(ex features.Extraction) (Control, float64) {
	score := float64(ex.AgencyCount) - 0.5*float64(ex.HedgeCount)
	switch {
	case score >= 2:
		return ControlHigh, 0.8
	case score >= 1:
		return ControlMedium, 0.65
	case ex.AgencyCount > 0:
		return ControlMedium, 0.5
	}
	return ControlLow, 0.55
}

// #endregion control

// #region polarity

func polarity(lower string) (Polarity, float64) {
	for _, cue := range lexicon.NotHappenedCues {
		if strings.Contains(lower, cue) {
			return PolarityDidNotHappen, 0.8
		}
	}
	for _, cue := range lexicon.PlannedCues {
		if strings.Contains(lower, cue) {
			return PolarityPlanned, 0.6
		}
	}
	return PolarityHappened, 0.7
}

// #endregion polarity

// #region expressed

// Express estimates the outward signal from surface texture: punctuation
// and intensifiers raise intensity, hedging lowers willingness, and the
// tone follows the emotion valence sign unless hits disagree.
func Express(ex features.Extraction, emotionValence float64) Expressed {
	intensity := 0.3 + 0.25*ex.IntensifierSum*4 + 0.1*float64(min(ex.Exclamations, 3))
	if ex.Flags.Profanity != lexicon.ProfanityNone {
		intensity += 0.15
	}
	intensity = clamp01(intensity)

	willingness := 1.0 - 0.15*float64(min(ex.HedgeCount, 4)) - 0.1*float64(min(ex.Ellipses, 2))
	willingness = clamp01(willingness)

	tone := "flat"
	pos, neg := 0, 0
	for _, h := range ex.Emotions {
		if h.Valence > 0.1 {
			pos++
		} else if h.Valence < -0.1 {
			neg++
		}
	}
	switch {
	case pos > 0 && neg > 0:
		tone = "mixed"
	case emotionValence > 0.1:
		tone = "positive"
	case emotionValence < -0.1:
		tone = "negative"
	}

	return Expressed{Tone: tone, Intensity: intensity, Willingness: willingness}
}

// #endregion expressed

// #region helpers

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampSigned(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

// #endregion helpers

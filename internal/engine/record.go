package engine

// #region request

import (
	"time"

	"github.com/danielpatrickdp/affective-state/go-engine/internal/risk"
	"github.com/danielpatrickdp/affective-state/go-engine/internal/state"
	"github.com/danielpatrickdp/affective-state/go-engine/internal/threads"
	"github.com/danielpatrickdp/affective-state/go-engine/internal/valence"
	"github.com/danielpatrickdp/affective-state/go-engine/internal/wheel"
)

// Request is one enrichment call. ReflectionID and Timestamp are
// optional; the engine assigns a fresh id and the current time when
// they are zero.
type Request struct {
	UserID       string
	Text         string
	ReflectionID string
	Timestamp    time.Time
}

// #endregion request

// #region record

// WheelPath is the resolved taxonomy placement. Secondary and Tertiary
// are empty when suppressed; TertiaryAmbiguous marks a descent that
// stopped because no leaf cleared the floor.
type WheelPath struct {
	Primary           string `json:"primary"`
	Secondary         string `json:"secondary,omitempty"`
	Tertiary          string `json:"tertiary,omitempty"`
	TertiaryAmbiguous bool   `json:"tertiary_ambiguous,omitempty"`
}

// EventReading is the event-side half of the valence split.
type EventReading struct {
	Valence      float64 `json:"valence"` // [0, 1]
	Domain       string  `json:"domain"`
	DomainMix    string  `json:"domain_mix,omitempty"`
	MixtureRatio float64 `json:"mixture_ratio,omitempty"`
	Control      string  `json:"control"`
	Polarity     string  `json:"polarity"`
}

// RecordFlags surfaces the linguistic flags a consumer may want to
// render or audit.
type RecordFlags struct {
	Negated     bool     `json:"negated,omitempty"`
	Litotes     bool     `json:"litotes,omitempty"`
	Sarcasm     bool     `json:"sarcasm,omitempty"`
	Profanity   string   `json:"profanity,omitempty"`
	Neutral     bool     `json:"neutral,omitempty"`
	BelowFloor  bool     `json:"below_floor,omitempty"`
	RulesFired  []string `json:"rules_fired,omitempty"`
	RerankAgree bool     `json:"rerank_agree"`
}

// DynamicsReading reports the recursive update.
type DynamicsReading struct {
	Baseline  state.DynamicsState `json:"baseline"`
	Shock     state.DynamicsState `json:"shock"`
	Expressed valence.Expressed   `json:"expressed"`
	ERI       float64             `json:"eri"`
	NewState  state.DynamicsState `json:"new_state"`
}

// Provenance describes how the record was produced.
type Provenance struct {
	ReflectionID string `json:"reflection_id"`
	Degraded     bool   `json:"degraded"` // classifier fallback was used
	LatencyMS    int64  `json:"latency_ms"`
}

// EnrichmentRecord is the full output of one enrich call.
type EnrichmentRecord struct {
	Wheel      WheelPath `json:"wheel"`
	Valence    float64   `json:"valence"` // signed [-1, 1]
	Arousal    float64   `json:"arousal"` // [0, 1]
	Confidence float64   `json:"confidence"`

	Event EventReading `json:"event"`
	Flags RecordFlags  `json:"flags"`

	Dynamics  DynamicsReading     `json:"dynamics"`
	Temporal  state.TemporalState `json:"temporal"`
	Recursion threads.Result      `json:"recursion"`

	RiskSignals []risk.Signal `json:"risk_signals,omitempty"`
	Provenance  Provenance    `json:"provenance"`
}

// #endregion record

// #region helpers

func pathOf(p wheel.Path, ambiguous bool) WheelPath {
	return WheelPath{
		Primary:           string(p.Primary),
		Secondary:         p.Secondary,
		Tertiary:          p.Tertiary,
		TertiaryAmbiguous: ambiguous,
	}
}

// #endregion helpers

package state

import "time"

// #region dynamics-state

// DynamicsState is the smoothed per-user affective state the recursive
// engine owns. Valence is signed [-1, 1]; Arousal is [0, 1].
type DynamicsState struct {
	Valence float64 `json:"valence"`
	Arousal float64 `json:"arousal"`
}

// DefaultDynamicsState is the state of a user with no prior reflections.
func DefaultDynamicsState() DynamicsState {
	return DynamicsState{Valence: 0.0, Arousal: 0.3}
}

// #endregion dynamics-state

// #region temporal-state

// Regime is the categorical risk state of the temporal tracker.
type Regime string

const (
	RegimeNormal   Regime = "normal"
	RegimeElevated Regime = "elevated"
	RegimeAlert    Regime = "alert"
)

// TemporalState is the long-horizon per-user tracker: short/long EMAs of
// valence, exponentially weighted volatility, standardized drift, risk
// and confidence momentum, and the regime. Decay is driven by elapsed
// real time, not by event count.
type TemporalState struct {
	S            float64   `json:"s"`     // short EMA of valence
	B            float64   `json:"b"`     // long EMA of valence (baseline)
	Sigma        float64   `json:"sigma"` // EW standard deviation
	Z            float64   `json:"z"`     // standardized drift (S-B)/sigma
	R            float64   `json:"r"`     // risk momentum
	C            float64   `json:"c"`     // confidence momentum
	Regime       Regime    `json:"regime"`
	N            int       `json:"n"` // observations seen
	LastUpdateTS time.Time `json:"last_update_ts"`

	// CriticalHits are recent critical risk-flag timestamps, kept inside
	// the critical window for the alert transition rule.
	CriticalHits []time.Time `json:"critical_hits,omitempty"`
}

// #endregion temporal-state

// #region history

// HistoryItem is one prior reflection's footprint: the coordinates and
// event labels the baseline and thread detector need. Ordered
// most-recent-first wherever a slice of these appears.
type HistoryItem struct {
	ReflectionID string    `json:"reflection_id"`
	Valence      float64   `json:"valence"` // signed [-1, 1]
	Arousal      float64   `json:"arousal"` // [0, 1]
	EventLabels  []string  `json:"event_labels"`
	Tokens       []string  `json:"tokens,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// #endregion history

// #region user-state

// UserState bundles both persisted per-user states.
type UserState struct {
	UserID   string
	Dynamics DynamicsState
	Temporal TemporalState
}

// #endregion user-state

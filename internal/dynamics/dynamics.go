// Package dynamics is the per-reflection recursive update: rolling
// baseline, shock, expressed-reality incongruence, and the smoothed
// per-user state. Update is a pure function of its inputs.
package dynamics

import (
	"math"

	"github.com/danielpatrickdp/affective-state/go-engine/internal/config"
	"github.com/danielpatrickdp/affective-state/go-engine/internal/state"
)

// #region types

// Input carries the per-reflection signals the update consumes.
type Input struct {
	// Invoked coordinates: valence signed [-1, 1], arousal [0, 1].
	InvokedValence float64
	InvokedArousal float64

	SentimentConfidence float64 // calibrated classification confidence
	Intensity           float64 // expressed intensity [0, 1]
	Willingness         float64 // willingness to express [0, 1]
}

// Expressed is the outward-state estimate derived inside the update.
type Expressed struct {
	Valence float64
	Arousal float64
}

// Result bundles everything Update computes.
type Result struct {
	Baseline  state.DynamicsState
	Shock     state.DynamicsState // invoked - baseline, component-wise
	Expressed Expressed
	ERI       float64 // expressed-reality incongruence
	NewState  state.DynamicsState
}

// #endregion types

// #region baseline

// ComputeBaseline averages valence/arousal over the n most recent prior
// reflections. No history means the documented default (0.0, 0.3).
func ComputeBaseline(history []state.HistoryItem, n int) state.DynamicsState {
	if len(history) == 0 || n <= 0 {
		return state.DefaultDynamicsState()
	}
	if n > len(history) {
		n = len(history)
	}
	var v, a float64
	for _, h := range history[:n] {
		v += h.Valence
		a += h.Arousal
	}
	return state.DynamicsState{
		Valence: v / float64(n),
		Arousal: a / float64(n),
	}
}

// #endregion baseline

// #region update

// Update computes the next smoothed state from the previous state, the
// invoked observation, and bounded history. Pure: same inputs, same
// result.
func Update(prev state.DynamicsState, in Input, history []state.HistoryItem, cfg config.Dynamics) Result {
	baseline := ComputeBaseline(history, cfg.BaselineWindow)

	shock := state.DynamicsState{
		Valence: in.InvokedValence - baseline.Valence,
		Arousal: in.InvokedArousal - baseline.Arousal,
	}

	// Expressed estimate: arousal blends invoked arousal, classification
	// confidence, and surface intensity; valence shrinks toward zero as
	// willingness to express drops.
	aExp := clamp01(0.35*in.InvokedArousal + 0.35*in.SentimentConfidence + 0.30*in.Intensity)
	vExp := clampSigned(in.InvokedValence * (0.7 + 0.3*in.Willingness))

	eri := math.Abs(in.InvokedValence-vExp) +
		(0.25+0.5*in.Intensity)*math.Abs(in.InvokedArousal-aExp)

	// Direction of the invoked emotion in (valence, arousal) space,
	// centered on the 0.5 arousal midline.
	dirV, dirA := unit(in.InvokedValence, in.InvokedArousal-0.5)

	drive := cfg.Gamma * (in.Intensity - eri)
	newV := (1-cfg.Alpha)*prev.Valence + cfg.Alpha*baseline.Valence +
		cfg.Beta*shock.Valence + drive*dirV
	newA := (1-cfg.Alpha)*prev.Arousal + cfg.Alpha*baseline.Arousal +
		cfg.Beta*shock.Arousal + drive*dirA*0.5

	next := state.DynamicsState{
		Valence: round3(clampSigned(newV)),
		Arousal: round3(clamp01(newA)),
	}

	return Result{
		Baseline:  baseline,
		Shock:     shock,
		Expressed: Expressed{Valence: vExp, Arousal: aExp},
		ERI:       eri,
		NewState:  next,
	}
}

// #endregion update

// #region helpers

// unit normalizes (v, a) to length 1; a zero vector stays zero.
func unit(v, a float64) (float64, float64) {
	norm := math.Sqrt(v*v + a*a)
	if norm == 0 {
		return 0, 0
	}
	return v / norm, a / norm
}

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

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// #endregion helpers

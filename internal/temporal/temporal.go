// Package temporal maintains the long-horizon per-user tracker: a
// short and a long exponential moving average of valence, exponentially
// weighted volatility, standardized drift, risk and confidence momentum,
// and the normal/elevated/alert regime.
//
// All decay is a function of elapsed real time between observations,
// never of event count. The short EMA is additionally freshness-gated:
// an isolated observation arriving after a long silence moves S less
// than the same observation arriving inside a dense cluster, because a
// lone data point is weak evidence of a sustained short-term state.
package temporal

import (
	"math"
	"time"

	"github.com/danielpatrickdp/affective-state/go-engine/internal/config"
	"github.com/danielpatrickdp/affective-state/go-engine/internal/lexicon"
	"github.com/danielpatrickdp/affective-state/go-engine/internal/risk"
	"github.com/danielpatrickdp/affective-state/go-engine/internal/state"
)

// #region types

// Observation is one reflection's footprint entering the tracker.
type Observation struct {
	Valence       float64 // signed [-1, 1]
	Arousal       float64 // [0, 1]
	ERI           float64
	SelfAwareness float64 // [0, 1] self-awareness signal for C momentum
	RiskSignals   []risk.Signal
	Timestamp     time.Time
}

// Tracker advances TemporalState. It holds configuration only; all
// state lives in the value passed through Advance.
type Tracker struct {
	cfg config.Temporal
}

// NewTracker creates a tracker.
func NewTracker(cfg config.Temporal) *Tracker {
	return &Tracker{cfg: cfg}
}

// baseGain is the blend weight of a zero-gap observation into the short
// EMA; the effective gain is baseGain * exp(-dt/tauShort).
const baseGain = 0.6

// minGapHours floors the elapsed time so same-instant observations still
// advance the tracker.
const minGapHours = 1.0 / 60.0

// #endregion types

// #region advance

// Advance folds one observation into the state and returns the next
// state. The input is never mutated. Calling Advance always moves the
// tracker: N increments and LastUpdateTS moves even for duplicate text.
func (t *Tracker) Advance(prev state.TemporalState, obs Observation) state.TemporalState {
	if prev.N == 0 {
		return t.initial(obs)
	}

	dt := obs.Timestamp.Sub(prev.LastUpdateTS).Hours()
	if dt < minGapHours {
		dt = minGapHours
	}

	next := prev

	// Short EMA: decay S toward the long baseline over the silence, then
	// blend the observation in with a freshness-gated gain. Both shrink
	// with elapsed time, so a long-isolated observation contributes less.
	decayS := math.Exp(-dt / t.cfg.TauShortHours)
	sDecayed := prev.B + (prev.S-prev.B)*decayS
	gain := baseGain * decayS

	diff := obs.Valence - sDecayed
	incr := gain * diff
	next.S = sDecayed + incr

	// EW variance (West's update) on the same gain, with the variance
	// itself relaxing toward the default over the silence.
	varDefault := t.cfg.SigmaDefault * t.cfg.SigmaDefault
	varPrev := prev.Sigma * prev.Sigma
	varDecayed := varDefault + (varPrev-varDefault)*decayS
	varNext := (1 - gain) * (varDecayed + diff*incr)
	next.Sigma = math.Sqrt(math.Max(varNext, 0))

	// Long EMA: conventional time-aware blend, much slower.
	aB := 1 - math.Exp(-dt/t.cfg.TauLongHours)
	next.B = prev.B + aB*(obs.Valence-prev.B)

	// Standardized drift with a floored sigma.
	sigma := math.Max(next.Sigma, t.cfg.SigmaFloor)
	next.Z = (next.S - next.B) / sigma

	// Risk and confidence momentum share a time constant.
	aR := 1 - math.Exp(-dt/t.cfg.TauRiskHours)
	next.R = prev.R + aR*(t.riskScore(obs)-prev.R)
	next.C = prev.C + aR*(obs.SelfAwareness-prev.C)

	next.CriticalHits = t.pruneCritical(prev.CriticalHits, obs)
	next.Regime = t.regime(next, obs)
	next.N = prev.N + 1
	next.LastUpdateTS = obs.Timestamp
	return next
}

// initial seeds the tracker from the first observation: S=B=invoked,
// default volatility, regime normal unless the very first reflection
// already carries critical flags.
func (t *Tracker) initial(obs Observation) state.TemporalState {
	st := state.TemporalState{
		S:            obs.Valence,
		B:            obs.Valence,
		Sigma:        t.cfg.SigmaDefault,
		Z:            0,
		R:            baseGain * t.riskScore(obs),
		C:            baseGain * obs.SelfAwareness,
		Regime:       state.RegimeNormal,
		N:            1,
		LastUpdateTS: obs.Timestamp,
	}
	st.CriticalHits = t.pruneCritical(nil, obs)
	st.Regime = t.regime(st, obs)
	return st
}

// #endregion advance

// #region risk-score

// riskScore turns one observation into a [0, 1] instantaneous risk
// reading: incongruence, arousal spikes, and lexicon flags.
func (t *Tracker) riskScore(obs Observation) float64 {
	score := 0.3 * math.Min(obs.ERI/2, 1)

	if obs.Arousal >= t.cfg.ArousalSpike {
		score += 0.3 * (obs.Arousal - t.cfg.ArousalSpike) / (1 - t.cfg.ArousalSpike)
	}

	flags := 0.5*float64(risk.CountTier(obs.RiskSignals, lexicon.RiskCritical)) +
		0.25*float64(risk.CountTier(obs.RiskSignals, lexicon.RiskElevated)) +
		0.1*float64(risk.CountTier(obs.RiskSignals, lexicon.RiskTrend))
	score += math.Min(flags, 1)

	return math.Min(score, 1)
}

// #endregion risk-score

// #region regime

// regime is a deterministic function of the fresh momentum values and
// the current observation's flags. There is no terminal state: a
// quiet stretch de-escalates back to normal.
func (t *Tracker) regime(st state.TemporalState, obs Observation) state.Regime {
	if st.R > t.cfg.RiskAlert || len(st.CriticalHits) >= t.cfg.CriticalCount {
		return state.RegimeAlert
	}
	if math.Abs(st.Z) >= t.cfg.DriftElevated ||
		st.R >= t.cfg.RiskElevated ||
		risk.CountTier(obs.RiskSignals, lexicon.RiskElevated) >= 2 ||
		risk.CountTier(obs.RiskSignals, lexicon.RiskCritical) >= 1 {
		return state.RegimeElevated
	}
	return state.RegimeNormal
}

// pruneCritical appends this observation's critical hits and drops any
// outside the rolling window.
func (t *Tracker) pruneCritical(hits []time.Time, obs Observation) []time.Time {
	cutoff := obs.Timestamp.Add(-time.Duration(t.cfg.CriticalWindowHours * float64(time.Hour)))
	var kept []time.Time
	for _, h := range hits {
		if h.After(cutoff) {
			kept = append(kept, h)
		}
	}
	for i := 0; i < risk.CountTier(obs.RiskSignals, lexicon.RiskCritical); i++ {
		kept = append(kept, obs.Timestamp)
	}
	return kept
}

// #endregion regime

package temporal

import (
	"testing"
	"time"

	"github.com/danielpatrickdp/affective-state/go-engine/internal/config"
	"github.com/danielpatrickdp/affective-state/go-engine/internal/lexicon"
	"github.com/danielpatrickdp/affective-state/go-engine/internal/risk"
	"github.com/danielpatrickdp/affective-state/go-engine/internal/state"
)

var t0 = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func elevated(phrase string) risk.Signal {
	return risk.Signal{Phrase: phrase, Tier: lexicon.RiskElevated}
}

func TestFirstObservation(t *testing.T) {
	tr := NewTracker(config.DefaultTemporal())
	st := tr.Advance(state.TemporalState{}, Observation{
		Valence:   0.6,
		Arousal:   0.4,
		Timestamp: t0,
	})

	if st.S != 0.6 || st.B != 0.6 {
		t.Fatalf("first observation should seed S=B=invoked, got S=%f B=%f", st.S, st.B)
	}
	if st.Sigma != 0.15 {
		t.Fatalf("expected default sigma 0.15, got %f", st.Sigma)
	}
	if st.N != 1 {
		t.Fatalf("expected n=1, got %d", st.N)
	}
	if st.Regime != state.RegimeNormal {
		t.Fatalf("calm first observation should start normal, got %s", st.Regime)
	}
	if !st.LastUpdateTS.Equal(t0) {
		t.Fatalf("timestamp not recorded: %v", st.LastUpdateTS)
	}
}

// Four reflections spaced 6h/12h/18h: a swing between calm and
// high-arousal flagged entries must leave the tracker escalated, with
// more accumulated risk than after the first entry.
func TestRegimeEscalationScenario(t *testing.T) {
	tr := NewTracker(config.DefaultTemporal())

	st := tr.Advance(state.TemporalState{}, Observation{
		Valence: 0.6, Arousal: 0.4, Timestamp: t0,
	})
	riskAfterFirst := st.R

	st = tr.Advance(st, Observation{
		Valence: 0.2, Arousal: 0.8,
		RiskSignals: []risk.Signal{elevated("anxiety")},
		Timestamp:   t0.Add(6 * time.Hour),
	})
	st = tr.Advance(st, Observation{
		Valence: 0.7, Arousal: 0.3,
		Timestamp: t0.Add(18 * time.Hour),
	})
	st = tr.Advance(st, Observation{
		Valence: 0.1, Arousal: 0.9,
		RiskSignals: []risk.Signal{elevated("depression"), elevated("anxiety")},
		Timestamp:   t0.Add(36 * time.Hour),
	})

	if st.Regime != state.RegimeElevated && st.Regime != state.RegimeAlert {
		t.Fatalf("scenario should end escalated, got %s", st.Regime)
	}
	if st.R <= riskAfterFirst {
		t.Fatalf("risk momentum should grow: %f after first, %f at end",
			riskAfterFirst, st.R)
	}
	if st.N != 4 {
		t.Fatalf("expected 4 observations, got %d", st.N)
	}
}

// The same observation moves the short EMA less after a long silence
// than after a short one: decay runs on elapsed time, not event count.
func TestShortEMADecayIsTimeBased(t *testing.T) {
	tr := NewTracker(config.DefaultTemporal())
	seed := tr.Advance(state.TemporalState{}, Observation{
		Valence: 0.0, Arousal: 0.3, Timestamp: t0,
	})

	obs := Observation{Valence: 0.8, Arousal: 0.5}

	obs.Timestamp = t0.Add(2 * time.Hour)
	shortGap := tr.Advance(seed, obs)

	obs.Timestamp = t0.Add(20 * time.Hour)
	longGap := tr.Advance(seed, obs)

	if shortGap.S <= longGap.S {
		t.Fatalf("short-gap observation should pull S harder: %f vs %f",
			shortGap.S, longGap.S)
	}
	if longGap.S <= seed.S {
		t.Fatal("the observation should still register after a long gap")
	}
}

func TestCriticalFlagsForceAlert(t *testing.T) {
	tr := NewTracker(config.DefaultTemporal())
	critical := risk.Signal{Phrase: "no reason to live", Tier: lexicon.RiskCritical}

	st := tr.Advance(state.TemporalState{}, Observation{
		Valence: -0.5, Arousal: 0.6,
		RiskSignals: []risk.Signal{critical},
		Timestamp:   t0,
	})
	st = tr.Advance(st, Observation{
		Valence: -0.7, Arousal: 0.7,
		RiskSignals: []risk.Signal{critical},
		Timestamp:   t0.Add(10 * time.Hour),
	})

	if st.Regime != state.RegimeAlert {
		t.Fatalf("two critical flags within the window should alert, got %s", st.Regime)
	}
	if len(st.CriticalHits) != 2 {
		t.Fatalf("expected 2 tracked critical hits, got %d", len(st.CriticalHits))
	}
}

func TestCriticalWindowPrunes(t *testing.T) {
	tr := NewTracker(config.DefaultTemporal())
	critical := risk.Signal{Phrase: "suicide", Tier: lexicon.RiskCritical}

	st := tr.Advance(state.TemporalState{}, Observation{
		Valence: -0.5, Arousal: 0.6,
		RiskSignals: []risk.Signal{critical},
		Timestamp:   t0,
	})
	// Well past the 72h window: the old hit must not stack.
	st = tr.Advance(st, Observation{
		Valence: -0.4, Arousal: 0.5,
		RiskSignals: []risk.Signal{critical},
		Timestamp:   t0.Add(200 * time.Hour),
	})

	if len(st.CriticalHits) != 1 {
		t.Fatalf("expected stale hit pruned, got %d", len(st.CriticalHits))
	}
}

func TestQuietStretchDeescalates(t *testing.T) {
	tr := NewTracker(config.DefaultTemporal())

	st := tr.Advance(state.TemporalState{}, Observation{
		Valence: -0.6, Arousal: 0.9,
		RiskSignals: []risk.Signal{elevated("hopeless"), elevated("worthless")},
		Timestamp:   t0,
	})
	if st.Regime == state.RegimeNormal {
		t.Fatal("flagged observation should escalate")
	}

	// Calm entries across two quiet weeks.
	for i := 1; i <= 4; i++ {
		st = tr.Advance(st, Observation{
			Valence: 0.3, Arousal: 0.3,
			Timestamp: t0.Add(time.Duration(i) * 84 * time.Hour),
		})
	}
	if st.Regime != state.RegimeNormal {
		t.Fatalf("quiet stretch should de-escalate, got %s (R=%f Z=%f)", st.Regime, st.R, st.Z)
	}
}

func TestAdvanceAlwaysMoves(t *testing.T) {
	tr := NewTracker(config.DefaultTemporal())
	st := tr.Advance(state.TemporalState{}, Observation{
		Valence: 0.2, Arousal: 0.4, Timestamp: t0,
	})
	next := tr.Advance(st, Observation{
		Valence: 0.2, Arousal: 0.4, Timestamp: t0.Add(time.Hour),
	})

	if next.N != st.N+1 {
		t.Fatal("identical observation must still advance the tracker")
	}
	if !next.LastUpdateTS.After(st.LastUpdateTS) {
		t.Fatal("timestamp must advance")
	}
}

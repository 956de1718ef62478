package dynamics

import (
	"testing"
	"time"

	"github.com/danielpatrickdp/affective-state/go-engine/internal/config"
	"github.com/danielpatrickdp/affective-state/go-engine/internal/state"
)

func TestBaselineEmptyHistory(t *testing.T) {
	b := ComputeBaseline(nil, 5)
	if b.Valence != 0.0 || b.Arousal != 0.3 {
		t.Fatalf("empty history baseline should be (0.0, 0.3), got (%f, %f)",
			b.Valence, b.Arousal)
	}
}

func TestBaselineAveragesRecentWindow(t *testing.T) {
	now := time.Now()
	history := []state.HistoryItem{
		{Valence: 0.6, Arousal: 0.5, Timestamp: now},
		{Valence: 0.2, Arousal: 0.3, Timestamp: now.Add(-time.Hour)},
		// Outside the window of 2.
		{Valence: -1.0, Arousal: 0.9, Timestamp: now.Add(-2 * time.Hour)},
	}
	b := ComputeBaseline(history, 2)
	if b.Valence < 0.39 || b.Valence > 0.41 {
		t.Fatalf("expected valence ~0.4, got %f", b.Valence)
	}
	if b.Arousal < 0.39 || b.Arousal > 0.41 {
		t.Fatalf("expected arousal ~0.4, got %f", b.Arousal)
	}
}

func TestERIMonotoneInWillingnessGap(t *testing.T) {
	prev := state.DefaultDynamicsState()
	cfg := config.DefaultDynamics()

	base := Input{
		InvokedValence:      0.8,
		InvokedArousal:      0.6,
		SentimentConfidence: 0.7,
		Intensity:           0.5,
	}

	var lastERI float64 = -1
	// Lower willingness widens the expressed/invoked valence gap.
	for _, w := range []float64{1.0, 0.7, 0.4, 0.1} {
		in := base
		in.Willingness = w
		res := Update(prev, in, nil, cfg)
		if res.ERI < lastERI {
			t.Fatalf("ERI should not decrease as willingness drops: w=%f eri=%f < %f",
				w, res.ERI, lastERI)
		}
		lastERI = res.ERI
	}
}

func TestUpdateBoundsAndSmoothing(t *testing.T) {
	prev := state.DynamicsState{Valence: 0.9, Arousal: 0.9}
	cfg := config.DefaultDynamics()

	res := Update(prev, Input{
		InvokedValence:      -1.0,
		InvokedArousal:      1.0,
		SentimentConfidence: 1.0,
		Intensity:           1.0,
		Willingness:         0.0,
	}, nil, cfg)

	if res.NewState.Valence < -1 || res.NewState.Valence > 1 {
		t.Fatalf("valence out of range: %f", res.NewState.Valence)
	}
	if res.NewState.Arousal < 0 || res.NewState.Arousal > 1 {
		t.Fatalf("arousal out of range: %f", res.NewState.Arousal)
	}
	// Smoothed: one extreme observation must not snap the state to it.
	if res.NewState.Valence <= -0.9 {
		t.Fatalf("state snapped to the observation: %f", res.NewState.Valence)
	}
}

func TestShockIsDeviationFromBaseline(t *testing.T) {
	cfg := config.DefaultDynamics()
	res := Update(state.DefaultDynamicsState(), Input{
		InvokedValence: 0.5,
		InvokedArousal: 0.7,
		Willingness:    1.0,
	}, nil, cfg)

	// Empty history baseline is (0.0, 0.3).
	if res.Shock.Valence < 0.49 || res.Shock.Valence > 0.51 {
		t.Fatalf("expected valence shock ~0.5, got %f", res.Shock.Valence)
	}
	if res.Shock.Arousal < 0.39 || res.Shock.Arousal > 0.41 {
		t.Fatalf("expected arousal shock ~0.4, got %f", res.Shock.Arousal)
	}
}

func TestUpdateDeterministic(t *testing.T) {
	cfg := config.DefaultDynamics()
	in := Input{InvokedValence: 0.3, InvokedArousal: 0.5, SentimentConfidence: 0.6,
		Intensity: 0.4, Willingness: 0.8}
	a := Update(state.DefaultDynamicsState(), in, nil, cfg)
	b := Update(state.DefaultDynamicsState(), in, nil, cfg)
	if a.NewState != b.NewState || a.ERI != b.ERI {
		t.Fatal("update is not deterministic")
	}
}

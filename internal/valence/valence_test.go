package valence

import (
	"strings"
	"testing"

	"github.com/danielpatrickdp/affective-state/go-engine/internal/features"
)

func split(text string) Split {
	return Compute(features.Extract(text), strings.ToLower(text))
}

func TestEventValenceDefaultsToMidpoint(t *testing.T) {
	s := split("thinking about things today")
	if s.Event.EventValence != 0.5 {
		t.Fatalf("no anchors should give 0.5, got %f", s.Event.EventValence)
	}
}

func TestEventValenceFromAnchors(t *testing.T) {
	good := split("I got promoted today")
	if good.Event.EventValence <= 0.8 {
		t.Fatalf("promotion should score high, got %f", good.Event.EventValence)
	}
	bad := split("I got fired today")
	if bad.Event.EventValence >= 0.2 {
		t.Fatalf("firing should score low, got %f", bad.Event.EventValence)
	}
}

func TestEventEmotionSplitIndependence(t *testing.T) {
	// Good event, bad feeling: the two channels must not blur.
	s := split("I got promoted and I am terrified")
	if s.Event.EventValence <= 0.7 {
		t.Fatalf("event side should stay positive, got %f", s.Event.EventValence)
	}
	if s.EmotionValence >= 0 {
		t.Fatalf("emotion side should stay negative, got %f", s.EmotionValence)
	}
}

func TestEmotionValenceDefault(t *testing.T) {
	s := split("went to the store")
	if s.EmotionValence != 0 || s.EmotionArousal != 0.35 {
		t.Fatalf("no feeling words should give (0, 0.35), got (%f, %f)",
			s.EmotionValence, s.EmotionArousal)
	}
}

func TestControlFromAgency(t *testing.T) {
	high := split("I decided to quit and confronted my boss")
	if high.Event.Control != ControlHigh {
		t.Fatalf("three agency verbs should read high control, got %s", high.Event.Control)
	}
	low := split("everything just happens to me")
	if low.Event.Control != ControlLow {
		t.Fatalf("no agency should read low control, got %s", low.Event.Control)
	}
}

func TestPolarity(t *testing.T) {
	cases := []struct {
		text string
		want Polarity
	}{
		{"the job offer fell through", PolarityDidNotHappen},
		{"the interview is next week", PolarityPlanned},
		{"I got the job", PolarityHappened},
	}
	for _, c := range cases {
		s := split(c.text)
		if s.Event.Polarity != c.want {
			t.Errorf("%q: polarity %s, want %s", c.text, s.Event.Polarity, c.want)
		}
	}
}

func TestDomainMixture(t *testing.T) {
	s := split("my boss moved the deadline and my salary review")
	if s.Event.Domain.Primary != "work" {
		t.Fatalf("expected work domain, got %q", s.Event.Domain.Primary)
	}
}

func TestExpressSurfaceSignals(t *testing.T) {
	loud := Express(features.Extract("I am so incredibly angry!!!"), -0.6)
	quiet := Express(features.Extract("maybe I guess it was kind of bad..."), -0.2)

	if loud.Intensity <= quiet.Intensity {
		t.Fatalf("intensifiers and exclamations should raise intensity: %f vs %f",
			loud.Intensity, quiet.Intensity)
	}
	if quiet.Willingness >= loud.Willingness {
		t.Fatalf("hedges and ellipses should lower willingness: %f vs %f",
			quiet.Willingness, loud.Willingness)
	}
	if loud.Tone != "negative" {
		t.Fatalf("expected negative tone, got %s", loud.Tone)
	}
}

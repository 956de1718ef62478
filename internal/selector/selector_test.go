package selector

import (
	"strings"
	"testing"

	"github.com/danielpatrickdp/affective-state/go-engine/internal/config"
	"github.com/danielpatrickdp/affective-state/go-engine/internal/features"
	"github.com/danielpatrickdp/affective-state/go-engine/internal/valence"
	"github.com/danielpatrickdp/affective-state/go-engine/internal/wheel"
)

func newTestSelector() *Selector {
	return NewSelector(wheel.Load(), config.DefaultSelector(), nil)
}

func extractAndSplit(text string) (features.Extraction, valence.Split) {
	ex := features.Extract(text)
	return ex, valence.Compute(ex, strings.ToLower(text))
}

func TestNeutralGateShortText(t *testing.T) {
	s := newTestSelector()
	res, ok := s.CheckNeutral(features.Extract("thinking about stuff"))
	if !ok {
		t.Fatal("short affectless text should pass the neutral gate")
	}
	if !res.Neutral {
		t.Fatal("result not marked neutral")
	}
	if res.Valence != 0 || res.Arousal != 0.35 || res.Confidence != 0.40 {
		t.Fatalf("unexpected neutral defaults: v=%f a=%f c=%f",
			res.Valence, res.Arousal, res.Confidence)
	}
}

func TestNeutralGateHedgedText(t *testing.T) {
	s := newTestSelector()
	_, ok := s.CheckNeutral(features.Extract(
		"maybe it was kind of an ordinary day I guess, nothing in particular going on"))
	if !ok {
		t.Fatal("heavily hedged affectless text should pass the neutral gate")
	}
}

func TestNeutralGateRejectsEmotionText(t *testing.T) {
	s := newTestSelector()
	if _, ok := s.CheckNeutral(features.Extract("so sad")); ok {
		t.Fatal("text with a feeling word must not pass the neutral gate")
	}
	if _, ok := s.CheckNeutral(features.Extract("got fired")); ok {
		t.Fatal("text with an event anchor must not pass the neutral gate")
	}
}

func TestDescentResolvesTertiary(t *testing.T) {
	s := newTestSelector()
	ex, sp := extractAndSplit("I feel so proud of this accomplishment")
	res := s.Select(wheel.PrimaryJoy, ex, sp, nil)

	if res.Path.Secondary != "achievement" {
		t.Fatalf("expected achievement secondary, got %q", res.Path.Secondary)
	}
	if res.TertiaryAmbiguous {
		t.Fatal("explicit leaf mention should resolve the tertiary")
	}
	if res.Path.Tertiary != "accomplishment" {
		t.Fatalf("expected accomplishment leaf, got %q", res.Path.Tertiary)
	}
	if !s.wheel.Contains(res.Path) {
		t.Fatalf("selector produced a path outside the wheel: %+v", res.Path)
	}
}

func TestVagueTextLeavesTertiaryAmbiguous(t *testing.T) {
	s := newTestSelector()
	ex, sp := extractAndSplit("I feel proud")
	res := s.Select(wheel.PrimaryJoy, ex, sp, nil)

	if res.Path.Secondary == "" {
		t.Fatal("secondary should always resolve")
	}
	if !res.TertiaryAmbiguous {
		t.Fatalf("vague text should suppress the tertiary, got %q", res.Path.Tertiary)
	}
	if res.Path.Tertiary != "" {
		t.Fatalf("ambiguous result must carry no tertiary, got %q", res.Path.Tertiary)
	}
}

func TestSarcasmSuppressesPositiveLeaves(t *testing.T) {
	s := newTestSelector()
	ex, sp := extractAndSplit("Oh great, what a wonderful accomplishment, lucky me")
	if !ex.Flags.Sarcasm {
		t.Fatal("fixture should carry a sarcasm cue")
	}
	res := s.Select(wheel.PrimaryJoy, ex, sp, nil)
	// Every joy leaf is positive, so sarcasm must block the descent there.
	if res.Path.Tertiary != "" {
		t.Fatalf("sarcasm should suppress positive tertiaries, got %q", res.Path.Tertiary)
	}
}

func TestCopingBoostOnControlledBadEvent(t *testing.T) {
	s := newTestSelector()
	ex, sp := extractAndSplit("I got fired but I handled it and started over")
	res := s.Select(wheel.PrimaryResilience, ex, sp, nil)

	if !copingNodes[res.Path.Secondary] {
		t.Fatalf("expected a coping secondary, got %q", res.Path.Secondary)
	}
}

func TestSelectedAffectComesFromDeepestNode(t *testing.T) {
	s := newTestSelector()
	ex, sp := extractAndSplit("I feel so proud of this accomplishment")
	res := s.Select(wheel.PrimaryJoy, ex, sp, nil)

	if res.Valence <= 0 {
		t.Fatalf("joy-branch node should carry positive valence, got %f", res.Valence)
	}
	if res.Arousal < 0 || res.Arousal > 1 {
		t.Fatalf("arousal out of range: %f", res.Arousal)
	}
}

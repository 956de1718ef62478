package risk

import (
	"testing"

	"github.com/danielpatrickdp/affective-state/go-engine/internal/lexicon"
)

func TestDetectTiers(t *testing.T) {
	signals := Detect("i feel hopeless and exhausted, sometimes i think about suicide")

	if len(signals) != 3 {
		t.Fatalf("expected 3 signals, got %d: %+v", len(signals), signals)
	}
	// Critical first.
	if signals[0].Tier != lexicon.RiskCritical {
		t.Fatalf("critical signal should sort first, got %+v", signals[0])
	}
	if CountTier(signals, lexicon.RiskCritical) != 1 ||
		CountTier(signals, lexicon.RiskElevated) != 1 ||
		CountTier(signals, lexicon.RiskTrend) != 1 {
		t.Fatalf("tier counts wrong: %+v", signals)
	}
}

func TestDetectNothing(t *testing.T) {
	if got := Detect("had a nice walk and made dinner"); len(got) != 0 {
		t.Fatalf("benign text should carry no signals, got %+v", got)
	}
}

func TestDetectSubstringPhrases(t *testing.T) {
	signals := Detect("everything fell apart and i can't go on like this")
	if CountTier(signals, lexicon.RiskElevated) != 1 {
		t.Fatalf("expected elevated phrase hit, got %+v", signals)
	}
}

package wheel

import "testing"

func TestLoadClosedSet(t *testing.T) {
	w := Load()

	if len(Primaries) != 6 {
		t.Fatalf("expected 6 primaries, got %d", len(Primaries))
	}

	leaves := 0
	for _, p := range Primaries {
		secs := w.Secondaries(p)
		if len(secs) != 6 {
			t.Fatalf("primary %s has %d secondaries, want 6", p, len(secs))
		}
		for _, sec := range secs {
			ters := w.Tertiaries(sec.Label)
			if len(ters) != 6 {
				t.Fatalf("secondary %s has %d tertiaries, want 6", sec.Label, len(ters))
			}
			for _, ter := range ters {
				leaves++
				path := Path{Primary: p, Secondary: sec.Label, Tertiary: ter.Label}
				if !w.Contains(path) {
					t.Fatalf("wheel rejects its own path %+v", path)
				}
			}
		}
	}
	if leaves != 216 {
		t.Fatalf("expected 216 leaves, got %d", leaves)
	}
}

func TestContainsRejectsCrossBranch(t *testing.T) {
	w := Load()

	joySec := w.Secondaries(PrimaryJoy)[0]
	sadSec := w.Secondaries(PrimarySadness)[0]
	sadTer := w.Tertiaries(sadSec.Label)[0]

	// Tertiary from a sadness branch grafted under a joy secondary.
	bad := Path{Primary: PrimaryJoy, Secondary: joySec.Label, Tertiary: sadTer.Label}
	if w.Contains(bad) {
		t.Fatalf("wheel accepted cross-branch path %+v", bad)
	}

	// Secondary under the wrong primary.
	bad = Path{Primary: PrimaryJoy, Secondary: sadSec.Label}
	if w.Contains(bad) {
		t.Fatalf("wheel accepted foreign secondary %+v", bad)
	}
}

func TestNodeAffectRanges(t *testing.T) {
	w := Load()
	for _, p := range Primaries {
		for _, sec := range w.Secondaries(p) {
			for _, n := range append([]Node{sec}, w.Tertiaries(sec.Label)...) {
				if n.Valence < -1 || n.Valence > 1 {
					t.Errorf("node %s valence %f out of range", n.Label, n.Valence)
				}
				if n.Arousal < 0 || n.Arousal > 1 {
					t.Errorf("node %s arousal %f out of range", n.Label, n.Arousal)
				}
			}
		}
	}
}

func TestValenceConversions(t *testing.T) {
	cases := []struct {
		unit   float64
		signed float64
	}{
		{0.0, -1.0},
		{0.5, 0.0},
		{1.0, 1.0},
	}
	for _, c := range cases {
		if got := SignedValence(c.unit); got != c.signed {
			t.Errorf("SignedValence(%f) = %f, want %f", c.unit, got, c.signed)
		}
		if got := UnitValence(c.signed); got != c.unit {
			t.Errorf("UnitValence(%f) = %f, want %f", c.signed, got, c.unit)
		}
	}
}

func TestIsPositive(t *testing.T) {
	if !IsPositive(PrimaryJoy) || !IsPositive(PrimaryResilience) {
		t.Fatal("joy and resilience should read positive")
	}
	if IsPositive(PrimarySadness) || IsPositive(PrimaryFear) {
		t.Fatal("sadness and fear should not read positive")
	}
}

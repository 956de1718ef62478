package features

import "testing"

func TestPlainNegationFlipsPositiveTerm(t *testing.T) {
	ex := Extract("I'm not happy")

	if !ex.Flags.Negation.Present {
		t.Fatal("negation not detected")
	}
	if len(ex.Emotions) != 1 {
		t.Fatalf("expected 1 emotion hit, got %d", len(ex.Emotions))
	}
	hit := ex.Emotions[0]
	if !hit.Negated || hit.Litotes {
		t.Fatalf("want plain negation, got negated=%v litotes=%v", hit.Negated, hit.Litotes)
	}
	if hit.Valence >= 0 {
		t.Fatalf("negated positive term should read negative, got %f", hit.Valence)
	}
}

func TestLitotesReadsAttenuatedPositive(t *testing.T) {
	lit := Extract("I'm not unhappy")
	plain := Extract("I'm not happy")

	if len(lit.Emotions) != 1 {
		t.Fatalf("expected 1 emotion hit, got %d", len(lit.Emotions))
	}
	hit := lit.Emotions[0]
	if !hit.Litotes {
		t.Fatal("negated negative term should flag litotes")
	}
	if hit.Valence <= 0 {
		t.Fatalf("litotes should read positive, got %f", hit.Valence)
	}
	// Attenuated: weaker than the plain term's magnitude.
	if hit.Valence >= 0.6 {
		t.Fatalf("litotes should be attenuated, got %f", hit.Valence)
	}
	if lit.Flags.Negation.Strength != NegationLitotes {
		t.Fatalf("expected litotes strength, got %s", lit.Flags.Negation.Strength)
	}
	// Distinct from plain negation: opposite sign.
	if plain.Emotions[0].Valence >= hit.Valence {
		t.Fatal("plain negation and litotes should land on opposite sides")
	}
}

func TestScopeBreakerEndsNegation(t *testing.T) {
	ex := Extract("not fired but happy")

	if len(ex.Anchors) != 1 {
		t.Fatalf("expected 1 anchor, got %d", len(ex.Anchors))
	}
	if !ex.Anchors[0].Flipped || ex.Anchors[0].Weight <= 0 {
		t.Fatalf("negated bad event should flip positive, got %+v", ex.Anchors[0])
	}
	if len(ex.Emotions) != 1 {
		t.Fatalf("expected 1 emotion hit, got %d", len(ex.Emotions))
	}
	if ex.Emotions[0].Negated {
		t.Fatal("scope should break at 'but'; 'happy' must not be negated")
	}
}

func TestEffortWordsCarryNoEventValence(t *testing.T) {
	ex := Extract("worked hard all week and studied every night")
	if len(ex.Anchors) != 0 {
		t.Fatalf("effort words must not score as anchors, got %+v", ex.Anchors)
	}
	if !ex.Flags.NeutralEvent {
		t.Fatal("expected neutral event flag")
	}
}

func TestSarcasmCue(t *testing.T) {
	ex := Extract("Oh great, another deadline moved up. Just perfect.")
	if !ex.Flags.Sarcasm {
		t.Fatal("sarcasm cue not detected")
	}
}

func TestIntensifierBoost(t *testing.T) {
	plain := Extract("I feel sad")
	boosted := Extract("I feel really sad")

	if len(plain.Emotions) != 1 || len(boosted.Emotions) != 1 {
		t.Fatalf("expected 1 emotion hit in each, got %d and %d",
			len(plain.Emotions), len(boosted.Emotions))
	}
	if boosted.Emotions[0].Valence >= plain.Emotions[0].Valence {
		t.Fatalf("intensifier should deepen negative valence: %f vs %f",
			boosted.Emotions[0].Valence, plain.Emotions[0].Valence)
	}
	if boosted.Emotions[0].Arousal <= plain.Emotions[0].Arousal {
		t.Fatal("intensifier should raise arousal")
	}
}

func TestExtractDeterministic(t *testing.T) {
	text := "got promoted but I'm terrified of the new role"
	a := Extract(text)
	b := Extract(text)

	if len(a.Tokens) != len(b.Tokens) || len(a.Anchors) != len(b.Anchors) ||
		len(a.Emotions) != len(b.Emotions) {
		t.Fatal("extraction is not deterministic")
	}
	for i := range a.Tokens {
		if a.Tokens[i] != b.Tokens[i] {
			t.Fatalf("token %d differs: %s vs %s", i, a.Tokens[i], b.Tokens[i])
		}
	}
}

func TestContractionsCollapse(t *testing.T) {
	ex := Extract("don't know, can't say")
	for _, tok := range ex.Tokens {
		if tok == "don" || tok == "t" || tok == "nt" {
			t.Fatalf("contraction split badly: %v", ex.Tokens)
		}
	}
	if !ex.Flags.Negation.Present {
		t.Fatalf("contracted negators must register negation, tokens: %v", ex.Tokens)
	}
}

func TestContractedNegationScopesEmotion(t *testing.T) {
	ex := Extract("I don't feel happy about it")

	if !ex.Flags.Negation.Present {
		t.Fatalf("negation not detected, tokens: %v", ex.Tokens)
	}
	if len(ex.Emotions) != 1 {
		t.Fatalf("expected 1 emotion hit, got %d", len(ex.Emotions))
	}
	hit := ex.Emotions[0]
	if !hit.Negated {
		t.Fatal("'happy' should fall inside the contracted negator's scope")
	}
	if hit.Valence >= 0 {
		t.Fatalf("negated positive term should read negative, got %f", hit.Valence)
	}
}

func TestRepeatRatio(t *testing.T) {
	ex := Extract("why why why why")
	if ex.RepeatRatio < 0.5 {
		t.Fatalf("looping text should score high repeat ratio, got %f", ex.RepeatRatio)
	}
}

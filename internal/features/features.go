// Package features extracts linguistic signals from a single reflection:
// negation with forward scope, sarcasm cues, profanity, hedges,
// intensifiers, agency verbs, and domain keyword mixtures. Extraction is
// pure: same text in, same signals out.
package features

import (
	"strings"
	"unicode"

	"github.com/tsawler/prose/v3"

	"github.com/danielpatrickdp/affective-state/go-engine/internal/lexicon"
)

// #region types

// NegationStrength grades how hard a negation bends its scope.
type NegationStrength string

const (
	NegationWeak     NegationStrength = "weak"
	NegationModerate NegationStrength = "moderate"
	NegationStrong   NegationStrength = "strong"
	NegationLitotes  NegationStrength = "litotes"
)

// Negation is the negation flag pair exposed on Flags.
type Negation struct {
	Present  bool
	Strength NegationStrength
}

// Flags bundles the boolean-ish linguistic flags for a reflection.
type Flags struct {
	Negation       Negation
	Sarcasm        bool
	Profanity      lexicon.ProfanityCategory
	NeutralEmotion bool // no emotion-term hits
	NeutralEvent   bool // no event-anchor hits
}

// AnchorHit is one event anchor found in the text, with negation scope
// already applied. Weight is the post-scope signed contribution; a nulled
// anchor keeps Negated=true with Weight 0.
type AnchorHit struct {
	Token   string
	Weight  float64
	Negated bool
	Flipped bool
	Index   int
}

// EmotionHit is one emotion term found in the text. Valence/Arousal are
// post-negation, post-intensifier coordinates.
type EmotionHit struct {
	Token   string
	Valence float64
	Arousal float64
	Primary string
	Negated bool
	Litotes bool
	Index   int
}

// Extraction is the full feature bundle handed to the valence splitter,
// the primary scorer, and the neutral gate.
type Extraction struct {
	Tokens         []string
	Flags          Flags
	Anchors        []AnchorHit
	Emotions       []EmotionHit
	HedgeCount     int
	IntensifierSum float64
	AgencyCount    int
	Exclamations   int
	Ellipses       int
	DomainHits     map[string]int
	RepeatRatio    float64 // 1 - unique/total tokens
}

// #endregion types

// #region scope-window

// negationWindow is the forward token span a negator governs unless a
// scope breaker ends it earlier.
const negationWindow = 4

// #endregion scope-window

// #region extract

// Extract tokenizes text and scans every lexicon category in one pass
// over the token stream.
func Extract(text string) Extraction {
	lower := strings.ToLower(text)
	tokens := tokenize(text)

	ex := Extraction{
		Tokens:       tokens,
		Exclamations: strings.Count(text, "!"),
		Ellipses:     strings.Count(text, "..."),
		DomainHits:   map[string]int{},
	}

	// Negation scope map: scope[i] holds the strength class governing
	// token i, "" when unscoped.
	scope := negationScopes(tokens)

	strongest := NegationStrength("")
	sawLitotes := false

	for i, tok := range tokens {
		// event anchors (effort words never score)
		if w, ok := lexicon.EventAnchors[tok]; ok && !lexicon.EffortWords[tok] {
			hit := AnchorHit{Token: tok, Weight: w, Index: i}
			switch scope[i] {
			case "weak":
				hit.Negated = true
				hit.Weight = 0
			case "moderate", "strong":
				hit.Negated = true
				hit.Flipped = true
				hit.Weight = -w
			}
			ex.Anchors = append(ex.Anchors, hit)
		}

		// emotion terms
		if term, ok := lexicon.EmotionTerms[tok]; ok {
			hit := EmotionHit{
				Token:   tok,
				Valence: term.Valence,
				Arousal: term.Arousal,
				Primary: term.Primary,
				Index:   i,
			}
			if boost := trailingIntensifier(tokens, i); boost > 0 {
				hit.Valence *= 1 + boost
				hit.Arousal = clamp01(hit.Arousal + boost)
			}
			if s := scope[i]; s != "" {
				hit.Negated = true
				if term.Valence < 0 {
					// "not unhappy": litotes reads as attenuated positive,
					// not as the mirror emotion.
					hit.Litotes = true
					hit.Valence = -term.Valence * 0.4
					hit.Arousal *= 0.7
					sawLitotes = true
				} else {
					hit.Valence = -term.Valence * 0.5
				}
			}
			hit.Valence = clampSigned(hit.Valence)
			ex.Emotions = append(ex.Emotions, hit)
		}

		if lexicon.Negators[tok] != "" {
			strongest = strongerOf(strongest, NegationStrength(lexicon.Negators[tok]))
		}
		if lexicon.Hedges[tok] {
			ex.HedgeCount++
		}
		if b, ok := lexicon.Intensifiers[tok]; ok {
			ex.IntensifierSum += b
		}
		if lexicon.AgencyVerbs[tok] {
			ex.AgencyCount++
		}
		if cat, ok := lexicon.ProfanityTerms[tok]; ok {
			ex.Flags.Profanity = strongerProfanity(ex.Flags.Profanity, cat, tokens, i)
		}
	}

	for domain, words := range lexicon.DomainKeywords {
		for _, w := range words {
			for _, tok := range tokens {
				if tok == w {
					ex.DomainHits[domain]++
				}
			}
		}
	}

	ex.RepeatRatio = repeatRatio(tokens)

	ex.Flags.Negation = Negation{Present: strongest != ""}
	if sawLitotes {
		ex.Flags.Negation.Strength = NegationLitotes
	} else {
		ex.Flags.Negation.Strength = strongest
	}
	ex.Flags.Sarcasm = hasSarcasmCue(lower)
	if ex.Flags.Profanity == "" {
		ex.Flags.Profanity = lexicon.ProfanityNone
	}
	ex.Flags.NeutralEmotion = len(ex.Emotions) == 0
	ex.Flags.NeutralEvent = len(ex.Anchors) == 0

	return ex
}

// #endregion extract

// #region negation-scope

// negationScopes returns, per token index, the strength class of the
// negator governing it. A negator scopes forward negationWindow tokens
// and stops at scope breakers.
func negationScopes(tokens []string) []string {
	scope := make([]string, len(tokens))
	for i, tok := range tokens {
		strength, ok := lexicon.Negators[tok]
		if !ok {
			continue
		}
		for j := i + 1; j < len(tokens) && j <= i+negationWindow; j++ {
			if lexicon.ScopeBreakers[tokens[j]] {
				break
			}
			scope[j] = strength
		}
	}
	return scope
}

// #endregion negation-scope

// #region helpers

// tokenize produces lowercase tokens with contractions collapsed
// ("don't" -> "dont"), using prose when it parses and whitespace
// splitting otherwise. prose emits contraction clitics as separate
// tokens ("do" + "n't"); those are stitched back onto the preceding
// token so negators like "dont" and "cant" match.
func tokenize(text string) []string {
	var raw []string
	if doc, err := prose.NewDocument(text); err == nil {
		for _, t := range doc.Tokens() {
			raw = append(raw, t.Text)
		}
	} else {
		raw = strings.Fields(text)
	}

	var tokens []string
	for _, r := range raw {
		tok := strings.Map(func(c rune) rune {
			if unicode.IsLetter(c) || unicode.IsDigit(c) {
				return unicode.ToLower(c)
			}
			return -1
		}, r)
		if tok == "" {
			continue
		}
		if clitic(r) && len(tokens) > 0 {
			tokens[len(tokens)-1] += tok
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// clitic reports whether a raw token is a contraction piece prose split
// off the preceding word: "n't", or an apostrophe-led suffix like "'m"
// or "'ve".
func clitic(r string) bool {
	if strings.HasPrefix(r, "'") || strings.HasPrefix(r, "’") {
		return true
	}
	low := strings.ToLower(r)
	return low == "n't" || low == "n’t"
}

// trailingIntensifier returns the boost of an intensifier in the two
// tokens before index i, 0 when none.
func trailingIntensifier(tokens []string, i int) float64 {
	for j := i - 1; j >= 0 && j >= i-2; j-- {
		if b, ok := lexicon.Intensifiers[tokens[j]]; ok {
			return b
		}
	}
	return 0
}

func hasSarcasmCue(lower string) bool {
	for _, cue := range lexicon.SarcasmCues {
		if strings.Contains(lower, cue) {
			return true
		}
	}
	return false
}

// strongerOf keeps the more severe of two negation strengths.
func strongerOf(a, b NegationStrength) NegationStrength {
	rank := map[NegationStrength]int{"": 0, NegationWeak: 1, NegationModerate: 2, NegationStrong: 3}
	if rank[b] > rank[a] {
		return b
	}
	return a
}

// strongerProfanity prefers directed over expletive over emphatic, and
// upgrades a term to directed when aimed at a person token.
func strongerProfanity(cur, next lexicon.ProfanityCategory, tokens []string, i int) lexicon.ProfanityCategory {
	if next == lexicon.ProfanityEmphatic && i+1 < len(tokens) && personToken(tokens[i+1]) {
		next = lexicon.ProfanityDirected
	}
	rank := map[lexicon.ProfanityCategory]int{
		"": 0, lexicon.ProfanityNone: 0, lexicon.ProfanityEmphatic: 1,
		lexicon.ProfanityExpletive: 2, lexicon.ProfanityDirected: 3,
	}
	if rank[next] > rank[cur] {
		return next
	}
	return cur
}

func personToken(tok string) bool {
	switch tok {
	case "he", "she", "they", "boss", "guy", "man", "woman", "coworker", "him", "her":
		return true
	}
	return false
}

// repeatRatio is 1 - unique/total; high values mark rumination loops.
func repeatRatio(tokens []string) float64 {
	if len(tokens) == 0 {
		return 0
	}
	unique := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		unique[t] = struct{}{}
	}
	return 1 - float64(len(unique))/float64(len(tokens))
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

// #endregion helpers

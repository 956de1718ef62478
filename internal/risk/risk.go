// Package risk scans reflections for tiered risk language. Detection is
// lexicon-driven and deterministic; the temporal tracker turns hits into
// momentum.
package risk

import (
	"sort"
	"strings"

	"github.com/danielpatrickdp/affective-state/go-engine/internal/lexicon"
)

// #region types

// Signal is one matched risk phrase with its severity tier.
type Signal struct {
	Phrase string           `json:"phrase"`
	Tier   lexicon.RiskTier `json:"tier"`
}

// #endregion types

// #region detect

// Detect scans normalized text for risk phrases. Results are sorted
// critical first, then elevated, then trend, alphabetical within a tier.
func Detect(lowerText string) []Signal {
	var signals []Signal
	for phrase, tier := range lexicon.RiskTerms {
		if strings.Contains(lowerText, phrase) {
			signals = append(signals, Signal{Phrase: phrase, Tier: tier})
		}
	}
	sort.Slice(signals, func(i, j int) bool {
		if signals[i].Tier != signals[j].Tier {
			return tierRank(signals[i].Tier) > tierRank(signals[j].Tier)
		}
		return signals[i].Phrase < signals[j].Phrase
	})
	return signals
}

// CountTier returns how many signals sit at the given tier.
func CountTier(signals []Signal, tier lexicon.RiskTier) int {
	n := 0
	for _, s := range signals {
		if s.Tier == tier {
			n++
		}
	}
	return n
}

func tierRank(t lexicon.RiskTier) int {
	switch t {
	case lexicon.RiskCritical:
		return 3
	case lexicon.RiskElevated:
		return 2
	case lexicon.RiskTrend:
		return 1
	}
	return 0
}

// #endregion detect

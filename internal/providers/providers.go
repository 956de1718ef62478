// Package providers defines the collaborator interfaces the engine calls
// out to — classifier, embeddings, optional soft-signal language model —
// plus concrete HTTP clients. The core never depends on a transport; it
// sees these interfaces only.
package providers

import (
	"context"
	"errors"
	"math"

	"github.com/danielpatrickdp/affective-state/go-engine/internal/wheel"
)

// ErrUnavailable marks a provider call that failed or timed out. Callers
// fall back to the deterministic rule path and mark the result degraded.
var ErrUnavailable = errors.New("provider unavailable")

// #region distribution

// Distribution is a probability distribution over the six primaries.
type Distribution map[wheel.Primary]float64

// Normalize scales the distribution to sum to 1, accumulating in fixed
// primary order so identical input rounds identically on every call.
// A zero distribution becomes uniform; labels outside the six primaries
// are dropped.
func (d Distribution) Normalize() Distribution {
	var sum float64
	for _, p := range wheel.Primaries {
		sum += d[p]
	}
	out := make(Distribution, len(wheel.Primaries))
	if sum <= 0 {
		for _, p := range wheel.Primaries {
			out[p] = 1.0 / float64(len(wheel.Primaries))
		}
		return out
	}
	for _, p := range wheel.Primaries {
		if v, ok := d[p]; ok {
			out[p] = v / sum
		}
	}
	return out
}

// Entropy returns the Shannon entropy of the distribution in nats,
// accumulated in fixed primary order.
func (d Distribution) Entropy() float64 {
	var h float64
	for _, p := range wheel.Primaries {
		if v := d[p]; v > 0 {
			h -= v * math.Log(v)
		}
	}
	return h
}

// EntropyConfidence maps entropy onto [0, 1]: 1 at a point mass, 0 at
// the uniform distribution.
func (d Distribution) EntropyConfidence() float64 {
	max := math.Log(float64(len(wheel.Primaries)))
	if max == 0 {
		return 0
	}
	c := 1 - d.Entropy()/max
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

// Top returns the argmax primary and its probability.
func (d Distribution) Top() (wheel.Primary, float64) {
	best := wheel.Primaries[0]
	var bestP float64 = -1
	for _, p := range wheel.Primaries {
		if d[p] > bestP {
			best, bestP = p, d[p]
		}
	}
	return best, bestP
}

// #endregion distribution

// #region interfaces

// TextClassifier returns a 6-way probability distribution for a
// reflection text.
type TextClassifier interface {
	Classify(ctx context.Context, text string) (Distribution, error)
}

// EmbeddingProvider returns a dense vector for similarity scoring.
type EmbeddingProvider interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// SoftSignal is an optional language-model reading of the outward tone.
type SoftSignal struct {
	Tone        string  `json:"tone"`
	Intensity   float64 `json:"intensity"`
	Willingness float64 `json:"willingness"`
}

// LanguageModelProvider supplies soft expressed-signal hints. Optional:
// a nil provider means surface heuristics only.
type LanguageModelProvider interface {
	ExpressedHint(ctx context.Context, text string) (SoftSignal, error)
}

// #endregion interfaces

// #region similarity

// Cosine computes cosine similarity; 0 for mismatched or empty vectors.
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	denom := math.Sqrt(na) * math.Sqrt(nb)
	if denom == 0 {
		return 0
	}
	return dot / denom
}

// #endregion similarity

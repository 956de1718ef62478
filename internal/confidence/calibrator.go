// Package confidence fuses the pipeline's component confidences into one
// calibrated score, with optional offline-fitted monotone remaps
// (temperature, Platt, isotonic).
package confidence

import (
	"math"

	"github.com/danielpatrickdp/affective-state/go-engine/internal/config"
)

// #region components

// Components are the eight per-stage confidences, all in [0, 1].
type Components struct {
	ClassifierEntropy   float64 // 1 - normalized entropy of the 6-way distribution
	RerankAgreement     float64 // classifier argmax agrees with the final winner
	NegationConsistency float64
	SarcasmConsistency  float64
	Control             float64
	Polarity            float64
	Domain              float64
	SecondarySimilarity float64
}

// #endregion components

// #region calibrator

// Calibrator combines components under fixed published weights and
// applies an optional fitted remap. The remap is monotone, so it never
// reorders two scores.
type Calibrator struct {
	weights config.Calibration
	remap   Remap
}

// NewCalibrator creates a calibrator with no remap.
func NewCalibrator(weights config.Calibration) *Calibrator {
	return &Calibrator{weights: weights}
}

// SetRemap installs an offline-fitted monotone remap, or nil to clear.
func (c *Calibrator) SetRemap(r Remap) {
	c.remap = r
}

// Fuse computes the weighted sum and applies the remap if present.
func (c *Calibrator) Fuse(comp Components) float64 {
	w := c.weights
	score := w.ClassifierEntropy*comp.ClassifierEntropy +
		w.RerankAgreement*comp.RerankAgreement +
		w.NegationConsistency*comp.NegationConsistency +
		w.SarcasmConsistency*comp.SarcasmConsistency +
		w.Control*comp.Control +
		w.Polarity*comp.Polarity +
		w.Domain*comp.Domain +
		w.SecondarySimilarity*comp.SecondarySimilarity
	score = clamp01(score)
	if c.remap != nil {
		score = clamp01(c.remap.Apply(score))
	}
	return score
}

// #endregion calibrator

// #region helpers

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// logit maps (0, 1) to the real line, with clipping away from 0 and 1.
func logit(p float64) float64 {
	const eps = 1e-6
	if p < eps {
		p = eps
	}
	if p > 1-eps {
		p = 1 - eps
	}
	return math.Log(p / (1 - p))
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// #endregion helpers

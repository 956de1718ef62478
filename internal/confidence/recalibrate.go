package confidence

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// #region types

// Pair is one labeled calibration example: the confidence the pipeline
// emitted and whether the classification was correct.
type Pair struct {
	Confidence float64
	Correct    bool
}

// Remap is a monotone confidence transform fitted offline and applied at
// inference. Monotonicity means applying it never alters a ranking.
type Remap interface {
	Apply(p float64) float64
}

// #endregion types

// #region temperature

// Temperature divides the confidence logit by T before re-squashing.
// T > 1 softens overconfident scores; T < 1 sharpens.
type Temperature struct {
	T float64
}

// Apply implements Remap.
func (t Temperature) Apply(p float64) float64 {
	return sigmoid(logit(p) / t.T)
}

// FitTemperature grid-searches T in [0.25, 4] minimizing negative log
// likelihood over the labeled pairs.
func FitTemperature(pairs []Pair) (Temperature, error) {
	if len(pairs) == 0 {
		return Temperature{}, fmt.Errorf("no calibration pairs")
	}
	bestT, bestNLL := 1.0, math.Inf(1)
	for t := 0.25; t <= 4.0; t += 0.05 {
		nll := 0.0
		for _, p := range pairs {
			q := sigmoid(logit(p.Confidence) / t)
			if p.Correct {
				nll -= math.Log(math.Max(q, 1e-9))
			} else {
				nll -= math.Log(math.Max(1-q, 1e-9))
			}
		}
		if nll < bestNLL {
			bestT, bestNLL = t, nll
		}
	}
	return Temperature{T: bestT}, nil
}

// #endregion temperature

// #region platt

// Platt is the two-parameter sigmoid remap sigmoid(A*logit(p) + B).
type Platt struct {
	A float64
	B float64
}

// Apply implements Remap. A is fitted non-negative, so the map stays
// monotone non-decreasing.
func (pl Platt) Apply(p float64) float64 {
	return sigmoid(pl.A*logit(p) + pl.B)
}

// FitPlatt fits A, B by gradient descent on logistic loss.
func FitPlatt(pairs []Pair) (Platt, error) {
	if len(pairs) == 0 {
		return Platt{}, fmt.Errorf("no calibration pairs")
	}
	a, b := 1.0, 0.0
	lr := 0.1
	n := float64(len(pairs))
	for iter := 0; iter < 500; iter++ {
		var gradA, gradB float64
		for _, p := range pairs {
			x := logit(p.Confidence)
			q := sigmoid(a*x + b)
			y := 0.0
			if p.Correct {
				y = 1.0
			}
			gradA += (q - y) * x
			gradB += (q - y)
		}
		a -= lr * gradA / n
		b -= lr * gradB / n
		if a < 0 {
			a = 0 // keep the remap monotone
		}
	}
	return Platt{A: a, B: b}, nil
}

// #endregion platt

// #region isotonic

// Isotonic is a step-function remap from pool-adjacent-violators.
type Isotonic struct {
	X []float64 // breakpoints, ascending
	Y []float64 // fitted values, non-decreasing
}

// Apply implements Remap: step lookup with flat extrapolation.
func (iso Isotonic) Apply(p float64) float64 {
	if len(iso.X) == 0 {
		return p
	}
	idx := sort.SearchFloat64s(iso.X, p)
	if idx == 0 {
		return iso.Y[0]
	}
	return iso.Y[idx-1]
}

// FitIsotonic runs pool-adjacent-violators over pairs sorted by
// confidence.
func FitIsotonic(pairs []Pair) (Isotonic, error) {
	if len(pairs) == 0 {
		return Isotonic{}, fmt.Errorf("no calibration pairs")
	}
	sorted := make([]Pair, len(pairs))
	copy(sorted, pairs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Confidence < sorted[j].Confidence })

	type block struct {
		sum, weight, x float64
	}
	var blocks []block
	for _, p := range sorted {
		y := 0.0
		if p.Correct {
			y = 1.0
		}
		blocks = append(blocks, block{sum: y, weight: 1, x: p.Confidence})
		// Merge while the monotonicity constraint is violated.
		for len(blocks) >= 2 {
			last := blocks[len(blocks)-1]
			prev := blocks[len(blocks)-2]
			if prev.sum/prev.weight <= last.sum/last.weight {
				break
			}
			merged := block{
				sum:    prev.sum + last.sum,
				weight: prev.weight + last.weight,
				x:      prev.x,
			}
			blocks = blocks[:len(blocks)-2]
			blocks = append(blocks, merged)
		}
	}

	iso := Isotonic{
		X: make([]float64, len(blocks)),
		Y: make([]float64, len(blocks)),
	}
	for i, b := range blocks {
		iso.X[i] = b.x
		iso.Y[i] = b.sum / b.weight
	}
	return iso, nil
}

// #endregion isotonic

// #region ece

// ECE computes expected calibration error over equal-width bins: the
// accuracy-vs-confidence gap weighted by bin occupancy.
func ECE(pairs []Pair, bins int) float64 {
	if len(pairs) == 0 || bins <= 0 {
		return 0
	}
	type bin struct {
		confs []float64
		accs  []float64
	}
	bs := make([]bin, bins)
	for _, p := range pairs {
		idx := int(p.Confidence * float64(bins))
		if idx >= bins {
			idx = bins - 1
		}
		acc := 0.0
		if p.Correct {
			acc = 1.0
		}
		bs[idx].confs = append(bs[idx].confs, p.Confidence)
		bs[idx].accs = append(bs[idx].accs, acc)
	}
	var ece float64
	n := float64(len(pairs))
	for _, b := range bs {
		if len(b.confs) == 0 {
			continue
		}
		gap := math.Abs(stat.Mean(b.accs, nil) - stat.Mean(b.confs, nil))
		ece += gap * float64(len(b.confs)) / n
	}
	return ece
}

// #endregion ece

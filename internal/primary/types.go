package primary

import (
	"github.com/danielpatrickdp/affective-state/go-engine/internal/features"
	"github.com/danielpatrickdp/affective-state/go-engine/internal/providers"
	"github.com/danielpatrickdp/affective-state/go-engine/internal/valence"
	"github.com/danielpatrickdp/affective-state/go-engine/internal/wheel"
)

// #region input

// Input carries everything the fusion pass scores a reflection against.
// Sims may be nil; the scorer then falls back to lexical overlap against
// the wheel's anchor phrases.
type Input struct {
	Distribution providers.Distribution
	Extraction   features.Extraction
	Split        valence.Split

	// Sims holds embedding-based similarity per primary, when an
	// embedding provider was available. Nil entries are fine.
	Sims *Similarities
}

// Similarities carries precomputed embedding similarities.
type Similarities struct {
	Tertiary map[wheel.Primary]float64 // best leaf-phrase similarity under the primary
	Core     map[wheel.Primary]float64 // similarity to the primary's own phrase
}

// #endregion input

// #region result

// Result is the primary-selection outcome plus the evidence the
// calibrator and selector need downstream.
type Result struct {
	Primary wheel.Primary
	Scores  map[wheel.Primary]float64 // final normalized scores

	// BaseTop is the classifier's own argmax before reranking; agreement
	// with Primary feeds the confidence calibrator.
	BaseTop        wheel.Primary
	RerankAgree    bool
	RulesFired     []string
	EventValence   float64 // post-sarcasm event valence, [0, 1]
	ClassifierConf float64 // entropy confidence of the input distribution
}

// #endregion result

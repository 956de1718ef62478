// Package config bundles every tunable constant in the pipeline. The
// rerank multipliers and fusion weights are empirical; they ship as
// defaults here rather than as hard-coded truths at call sites.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// #region fusion-weights

// Weights are the primary-scorer fusion coefficients. They must sum to
// 1.0; Validate enforces it.
type Weights struct {
	Classifier         float64 `yaml:"classifier"`
	TertiarySimilarity float64 `yaml:"tertiary_similarity"`
	DomainMatch        float64 `yaml:"domain_match"`
	ControlMatch       float64 `yaml:"control_match"`
	PolarityMatch      float64 `yaml:"polarity_match"`
	CoreSimilarity     float64 `yaml:"core_similarity"`
}

// DefaultWeights returns the published fusion coefficients.
func DefaultWeights() Weights {
	return Weights{
		Classifier:         0.35,
		TertiarySimilarity: 0.15,
		DomainMatch:        0.10,
		ControlMatch:       0.10,
		PolarityMatch:      0.10,
		CoreSimilarity:     0.20,
	}
}

// #endregion fusion-weights

// #region rerank

// Rerank holds the deterministic rerank rule multipliers.
type Rerank struct {
	AngerControlBoost      float64 `yaml:"anger_control_boost"`       // anger when bad event + control
	ConcessionAgencyBoost  float64 `yaml:"concession_agency_boost"`   // resilience on fear..but..agency
	ConcessionFearCut      float64 `yaml:"concession_fear_cut"`
	NegatedJoyCut          float64 `yaml:"negated_joy_cut"`
	NegatedJoyAgencyBoost  float64 `yaml:"negated_joy_agency_boost"`
	SarcasmPositiveCut     float64 `yaml:"sarcasm_positive_cut"`      // inversion scale on positive shells
	SarcasmEventValenceCut float64 `yaml:"sarcasm_event_valence_cut"` // event valence scale under sarcasm
	TieBreakRatio          float64 `yaml:"tie_break_ratio"`           // rule winner must reach this share of top raw
}

// DefaultRerank returns the published rule multipliers.
func DefaultRerank() Rerank {
	return Rerank{
		AngerControlBoost:      1.20,
		ConcessionAgencyBoost:  1.15,
		ConcessionFearCut:      0.85,
		NegatedJoyCut:          0.65,
		NegatedJoyAgencyBoost:  1.15,
		SarcasmPositiveCut:     0.40,
		SarcasmEventValenceCut: 0.60,
		TieBreakRatio:          0.80,
	}
}

// #endregion rerank

// #region selector

// Selector holds hierarchy-descent thresholds.
type Selector struct {
	TertiaryFloor float64 `yaml:"tertiary_floor"` // below this, tertiary is "ambiguous"
	ContextBoost  float64 `yaml:"context_boost"`  // added for context-preferred candidates
	NeutralMaxTokens int  `yaml:"neutral_max_tokens"`
	NeutralMinHedges int  `yaml:"neutral_min_hedges"`
	NeutralRepeatRatio float64 `yaml:"neutral_repeat_ratio"`
}

// DefaultSelector returns hierarchy-descent defaults.
func DefaultSelector() Selector {
	return Selector{
		TertiaryFloor:      0.6,
		ContextBoost:       0.15,
		NeutralMaxTokens:   6,
		NeutralMinHedges:   2,
		NeutralRepeatRatio: 0.5,
	}
}

// #endregion selector

// #region calibration

// Calibration holds the confidence fusion weights. Published weights sum
// to 1.0; Validate enforces it.
type Calibration struct {
	ClassifierEntropy   float64 `yaml:"classifier_entropy"`
	RerankAgreement     float64 `yaml:"rerank_agreement"`
	NegationConsistency float64 `yaml:"negation_consistency"`
	SarcasmConsistency  float64 `yaml:"sarcasm_consistency"`
	Control             float64 `yaml:"control"`
	Polarity            float64 `yaml:"polarity"`
	Domain              float64 `yaml:"domain"`
	SecondarySimilarity float64 `yaml:"secondary_similarity"`
}

// DefaultCalibration returns the published confidence fusion weights.
func DefaultCalibration() Calibration {
	return Calibration{
		ClassifierEntropy:   0.20,
		RerankAgreement:     0.15,
		NegationConsistency: 0.10,
		SarcasmConsistency:  0.10,
		Control:             0.10,
		Polarity:            0.10,
		Domain:              0.10,
		SecondarySimilarity: 0.15,
	}
}

// #endregion calibration

// #region dynamics

// Dynamics holds the recursive update coefficients.
type Dynamics struct {
	Alpha          float64 `yaml:"alpha"` // pull toward baseline
	Beta           float64 `yaml:"beta"`  // shock pass-through
	Gamma          float64 `yaml:"gamma"` // directional intensity term
	BaselineWindow int     `yaml:"baseline_window"`
}

// DefaultDynamics returns the published update coefficients.
func DefaultDynamics() Dynamics {
	return Dynamics{Alpha: 0.1, Beta: 0.5, Gamma: 0.08, BaselineWindow: 5}
}

// #endregion dynamics

// #region temporal

// Temporal holds the time-aware tracker constants. Time constants are in
// hours of real elapsed time, not event counts.
type Temporal struct {
	TauShortHours  float64 `yaml:"tau_short_hours"`
	TauLongHours   float64 `yaml:"tau_long_hours"`
	TauRiskHours   float64 `yaml:"tau_risk_hours"`
	SigmaDefault   float64 `yaml:"sigma_default"`
	SigmaFloor     float64 `yaml:"sigma_floor"`
	DriftElevated  float64 `yaml:"drift_elevated"`  // |z| threshold into elevated
	RiskAlert      float64 `yaml:"risk_alert"`      // R threshold into alert
	RiskElevated   float64 `yaml:"risk_elevated"`   // R threshold into elevated
	CriticalWindowHours float64 `yaml:"critical_window_hours"`
	CriticalCount  int     `yaml:"critical_count"`  // critical flags in window forcing alert
	ArousalSpike   float64 `yaml:"arousal_spike"`   // arousal above this feeds risk
}

// DefaultTemporal returns the tracker defaults.
func DefaultTemporal() Temporal {
	return Temporal{
		TauShortHours:       12,
		TauLongHours:        24 * 7,
		TauRiskHours:        36,
		SigmaDefault:        0.15,
		SigmaFloor:          0.05,
		DriftElevated:       1.5,
		RiskAlert:           0.65,
		RiskElevated:        0.30,
		CriticalWindowHours: 72,
		CriticalCount:       2,
		ArousalSpike:        0.75,
	}
}

// #endregion temporal

// #region threads

// Threads holds the recursion detector constants.
type Threads struct {
	WindowDays        int     `yaml:"window_days"`
	MaxCandidates     int     `yaml:"max_candidates"`
	MaxLinks          int     `yaml:"max_links"`
	LinkThreshold     float64 `yaml:"link_threshold"`
	LabelOverlapFloor float64 `yaml:"label_overlap_floor"`
	LexicalWeight     float64 `yaml:"lexical_weight"`
	LabelWeight       float64 `yaml:"label_weight"`
	IdenticalBand     float64 `yaml:"identical_band"`
	RecurringBand     float64 `yaml:"recurring_band"`
	OngoingLinkCount  int     `yaml:"ongoing_link_count"`
}

// DefaultThreads returns the recursion detector defaults.
func DefaultThreads() Threads {
	return Threads{
		WindowDays:        14,
		MaxCandidates:     50,
		MaxLinks:          5,
		LinkThreshold:     0.70,
		LabelOverlapFloor: 0.60,
		LexicalWeight:     0.4,
		LabelWeight:       0.6,
		IdenticalBand:     0.90,
		RecurringBand:     0.75,
		OngoingLinkCount:  3,
	}
}

// #endregion threads

// #region engine

// Engine holds orchestration-level settings.
type Engine struct {
	ProviderTimeoutMillis int     `yaml:"provider_timeout_millis"`
	MinConfidenceFloor    float64 `yaml:"min_confidence_floor"`
	HistoryLimit          int     `yaml:"history_limit"`
	CacheSize             int     `yaml:"cache_size"`
}

// DefaultEngine returns orchestration defaults.
func DefaultEngine() Engine {
	return Engine{
		ProviderTimeoutMillis: 1500,
		MinConfidenceFloor:    0.15,
		HistoryLimit:          20,
		CacheSize:             256,
	}
}

// #endregion engine

// #region config

// Config is the full tunable set for one engine instance.
type Config struct {
	Weights     Weights     `yaml:"weights"`
	Rerank      Rerank      `yaml:"rerank"`
	Selector    Selector    `yaml:"selector"`
	Calibration Calibration `yaml:"calibration"`
	Dynamics    Dynamics    `yaml:"dynamics"`
	Temporal    Temporal    `yaml:"temporal"`
	Threads     Threads     `yaml:"threads"`
	Engine      Engine      `yaml:"engine"`
}

// Default returns the full default configuration.
func Default() Config {
	return Config{
		Weights:     DefaultWeights(),
		Rerank:      DefaultRerank(),
		Selector:    DefaultSelector(),
		Calibration: DefaultCalibration(),
		Dynamics:    DefaultDynamics(),
		Temporal:    DefaultTemporal(),
		Threads:     DefaultThreads(),
		Engine:      DefaultEngine(),
	}
}

// Load reads YAML overrides on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that weight families still sum to 1.0 after overrides.
func (c Config) Validate() error {
	w := c.Weights
	fusion := w.Classifier + w.TertiarySimilarity + w.DomainMatch +
		w.ControlMatch + w.PolarityMatch + w.CoreSimilarity
	if fusion < 0.999 || fusion > 1.001 {
		return fmt.Errorf("fusion weights sum to %.4f, want 1.0", fusion)
	}
	k := c.Calibration
	cal := k.ClassifierEntropy + k.RerankAgreement + k.NegationConsistency +
		k.SarcasmConsistency + k.Control + k.Polarity + k.Domain + k.SecondarySimilarity
	if cal < 0.999 || cal > 1.001 {
		return fmt.Errorf("calibration weights sum to %.4f, want 1.0", cal)
	}
	return nil
}

// #endregion config

// Package engine wires the full enrichment pipeline: feature
// extraction, valence split, classification, wheel selection,
// confidence calibration, the recursive and temporal state updates,
// thread detection, and persistence. One Enrich call per reflection.
package engine

// #region imports

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/danielpatrickdp/affective-state/go-engine/internal/config"
	"github.com/danielpatrickdp/affective-state/go-engine/internal/confidence"
	"github.com/danielpatrickdp/affective-state/go-engine/internal/dynamics"
	"github.com/danielpatrickdp/affective-state/go-engine/internal/features"
	"github.com/danielpatrickdp/affective-state/go-engine/internal/lexicon"
	"github.com/danielpatrickdp/affective-state/go-engine/internal/primary"
	"github.com/danielpatrickdp/affective-state/go-engine/internal/providers"
	"github.com/danielpatrickdp/affective-state/go-engine/internal/risk"
	"github.com/danielpatrickdp/affective-state/go-engine/internal/selector"
	"github.com/danielpatrickdp/affective-state/go-engine/internal/state"
	"github.com/danielpatrickdp/affective-state/go-engine/internal/temporal"
	"github.com/danielpatrickdp/affective-state/go-engine/internal/threads"
	"github.com/danielpatrickdp/affective-state/go-engine/internal/valence"
	"github.com/danielpatrickdp/affective-state/go-engine/internal/wheel"
)

// #endregion imports

// #region errors

var (
	ErrEmptyText = errors.New("empty reflection text")
	ErrEmptyUser = errors.New("empty user id")
)

// #endregion errors

// #region engine-struct

// Options carries the optional collaborators. Nil fields degrade
// gracefully: no classifier means the deterministic rule distribution,
// no embedder means lexical similarity only, no soft-signal provider
// means surface heuristics only.
type Options struct {
	Classifier  providers.TextClassifier
	Embedder    providers.EmbeddingProvider
	SoftSignals providers.LanguageModelProvider
	Provenance  state.ProvenanceLogger
	Logger      *zap.Logger
}

// Engine is the top-level enrichment coordinator. Safe for concurrent
// use; writes for one user are serialized.
type Engine struct {
	cfg    config.Config
	wheel  *wheel.Wheel
	scorer *primary.Scorer
	sel    *selector.Selector
	calib  *confidence.Calibrator
	track  *temporal.Tracker
	detect *threads.Detector

	store      state.Store
	provenance state.ProvenanceLogger

	classifier providers.TextClassifier
	embedder   providers.EmbeddingProvider
	soft       providers.LanguageModelProvider
	logger     *zap.Logger

	flight singleflight.Group
	cache  *classifyCache

	phrasesMu  sync.Mutex
	phraseVecs map[wheel.Primary][]float64

	usersMu sync.Mutex
	users   map[string]*sync.Mutex
}

// New creates a fully wired engine over a validated config and a state
// store.
func New(cfg config.Config, store state.Store, opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	w := wheel.Load()
	return &Engine{
		cfg:        cfg,
		wheel:      w,
		scorer:     primary.NewScorer(w, cfg.Weights, cfg.Rerank, logger),
		sel:        selector.NewSelector(w, cfg.Selector, logger),
		calib:      confidence.NewCalibrator(cfg.Calibration),
		track:      temporal.NewTracker(cfg.Temporal),
		detect:     threads.NewDetector(cfg.Threads),
		store:      store,
		provenance: opts.Provenance,
		classifier: opts.Classifier,
		embedder:   opts.Embedder,
		soft:       opts.SoftSignals,
		logger:     logger,
		cache:      newClassifyCache(cfg.Engine.CacheSize),
		users:      make(map[string]*sync.Mutex),
	}
}

// SetRemap installs a fitted confidence remap (temperature, Platt, or
// isotonic) from an offline recalibration run.
func (e *Engine) SetRemap(r confidence.Remap) {
	e.calib.SetRemap(r)
}

// #endregion engine-struct

// #region enrich

// Enrich runs the full pipeline for one reflection and persists the
// per-user state transition. Repeating the same text reuses the cached
// classification but still advances the dynamics and temporal state:
// the same words on a different day are a different observation.
func (e *Engine) Enrich(ctx context.Context, req Request) (EnrichmentRecord, error) {
	started := time.Now()

	if strings.TrimSpace(req.Text) == "" {
		return EnrichmentRecord{}, ErrEmptyText
	}
	if req.UserID == "" {
		return EnrichmentRecord{}, ErrEmptyUser
	}
	if req.ReflectionID == "" {
		req.ReflectionID = uuid.NewString()
	}
	ts := req.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	lower := strings.ToLower(req.Text)
	ex := features.Extract(req.Text)
	split := valence.Compute(ex, lower)
	signals := risk.Detect(lower)
	expressed := e.expressed(ctx, req.Text, ex, split)

	rec := EnrichmentRecord{
		Event: EventReading{
			Valence:      split.Event.EventValence,
			Domain:       split.Event.Domain.Primary,
			DomainMix:    split.Event.Domain.Secondary,
			MixtureRatio: split.Event.Domain.MixtureRatio,
			Control:      string(split.Event.Control),
			Polarity:     string(split.Event.Polarity),
		},
		RiskSignals: signals,
	}
	rec.Flags.Negated = ex.Flags.Negation.Present
	rec.Flags.Sarcasm = ex.Flags.Sarcasm
	if ex.Flags.Profanity != lexicon.ProfanityNone {
		rec.Flags.Profanity = string(ex.Flags.Profanity)
	}
	for _, h := range ex.Emotions {
		if h.Litotes {
			rec.Flags.Litotes = true
			break
		}
	}

	degraded := false
	if neutral, ok := e.sel.CheckNeutral(ex); ok {
		rec.Flags.Neutral = true
		rec.Flags.RerankAgree = true
		rec.Valence = neutral.Valence
		rec.Arousal = neutral.Arousal
		rec.Confidence = neutral.Confidence
	} else {
		dist, deg := e.classify(ctx, req.UserID, req.Text, ex)
		degraded = deg

		pr := e.scorer.Score(primary.Input{
			Distribution: dist,
			Extraction:   ex,
			Split:        split,
			Sims:         e.similarities(ctx, req.Text),
		})
		sel := e.sel.Select(pr.Primary, ex, split, nil)

		rec.Wheel = pathOf(sel.Path, sel.TertiaryAmbiguous)
		rec.Valence = sel.Valence
		rec.Arousal = sel.Arousal
		rec.Flags.RulesFired = pr.RulesFired
		rec.Flags.RerankAgree = pr.RerankAgree
		rec.Event.Valence = pr.EventValence
		rec.Confidence = e.calib.Fuse(e.components(ex, split, pr, sel))

		if rec.Confidence < e.cfg.Engine.MinConfidenceFloor {
			// Keep the primary for the state update but do not publish a
			// placement this weak below the top level.
			rec.Flags.BelowFloor = true
			rec.Wheel.Secondary = ""
			rec.Wheel.Tertiary = ""
			rec.Wheel.TertiaryAmbiguous = false
		}
	}

	if err := e.advanceUser(&rec, req, ex, split, expressed, signals, ts); err != nil {
		return EnrichmentRecord{}, err
	}

	rec.Provenance = Provenance{
		ReflectionID: req.ReflectionID,
		Degraded:     degraded,
		LatencyMS:    time.Since(started).Milliseconds(),
	}
	e.logProvenance(req, rec)

	e.logger.Info("reflection enriched",
		zap.String("user", req.UserID),
		zap.String("reflection", req.ReflectionID),
		zap.String("primary", rec.Wheel.Primary),
		zap.Float64("confidence", rec.Confidence),
		zap.String("regime", string(rec.Temporal.Regime)),
		zap.Bool("degraded", degraded),
	)
	return rec, nil
}

// #endregion enrich

// #region state-advance

// advanceUser performs the serialized read-modify-write for one user:
// dynamics update, temporal advance, thread detection, persistence.
func (e *Engine) advanceUser(rec *EnrichmentRecord, req Request, ex features.Extraction, split valence.Split, expressed valence.Expressed, signals []risk.Signal, ts time.Time) error {
	mu := e.userLock(req.UserID)
	mu.Lock()
	defer mu.Unlock()

	us, found, err := e.store.GetUserState(req.UserID)
	if err != nil {
		return err
	}
	if !found {
		us = state.UserState{
			UserID:   req.UserID,
			Dynamics: state.DefaultDynamicsState(),
		}
	}

	history, err := e.store.History(req.UserID, e.cfg.Engine.HistoryLimit)
	if err != nil {
		return err
	}

	dyn := dynamics.Update(us.Dynamics, dynamics.Input{
		InvokedValence:      rec.Valence,
		InvokedArousal:      rec.Arousal,
		SentimentConfidence: rec.Confidence,
		Intensity:           expressed.Intensity,
		Willingness:         expressed.Willingness,
	}, history, e.cfg.Dynamics)

	temp := e.track.Advance(us.Temporal, temporal.Observation{
		Valence:       rec.Valence,
		Arousal:       rec.Arousal,
		ERI:           dyn.ERI,
		SelfAwareness: selfAwareness(ex, rec.Confidence),
		RiskSignals:   signals,
		Timestamp:     ts,
	})

	labels := eventLabels(ex, split, rec.Wheel)
	rec.Recursion = e.detect.Detect(ex.Tokens, labels, ts, history)

	us.Dynamics = dyn.NewState
	us.Temporal = temp
	if err := e.store.PutUserState(us); err != nil {
		return err
	}
	if err := e.store.AppendHistory(req.UserID, state.HistoryItem{
		ReflectionID: req.ReflectionID,
		Valence:      rec.Valence,
		Arousal:      rec.Arousal,
		EventLabels:  labels,
		Tokens:       ex.Tokens,
		Timestamp:    ts,
	}); err != nil {
		return err
	}

	rec.Dynamics = DynamicsReading{
		Baseline:  dyn.Baseline,
		Shock:     dyn.Shock,
		Expressed: expressed,
		ERI:       dyn.ERI,
		NewState:  dyn.NewState,
	}
	rec.Temporal = temp
	return nil
}

func (e *Engine) userLock(userID string) *sync.Mutex {
	e.usersMu.Lock()
	defer e.usersMu.Unlock()
	mu, ok := e.users[userID]
	if !ok {
		mu = &sync.Mutex{}
		e.users[userID] = mu
	}
	return mu
}

// #endregion state-advance

// #region classification

// classify returns the 6-way distribution, consulting the cache and
// collapsing concurrent identical requests. A missing or failing
// classifier falls back to the deterministic rule distribution and
// marks the record degraded.
func (e *Engine) classify(ctx context.Context, userID, text string, ex features.Extraction) (providers.Distribution, bool) {
	key := userID + "\x00" + text
	if dist, ok := e.cache.get(key); ok {
		return dist, false
	}
	if e.classifier == nil {
		return primary.RuleDistribution(ex), true
	}

	v, err, _ := e.flight.Do(key, func() (interface{}, error) {
		cctx, cancel := context.WithTimeout(ctx, time.Duration(e.cfg.Engine.ProviderTimeoutMillis)*time.Millisecond)
		defer cancel()
		return e.classifier.Classify(cctx, text)
	})
	if err != nil {
		e.logger.Warn("classifier unavailable, using rule distribution",
			zap.String("user", userID), zap.Error(err))
		return primary.RuleDistribution(ex), true
	}

	dist := v.(providers.Distribution).Normalize()
	e.cache.put(key, dist)
	return dist, false
}

// similarities computes embedding similarity of the text against each
// primary's anchor phrase. Returns nil when no embedder is wired or the
// call fails; the scorer then uses lexical overlap.
func (e *Engine) similarities(ctx context.Context, text string) *primary.Similarities {
	if e.embedder == nil {
		return nil
	}
	cctx, cancel := context.WithTimeout(ctx, time.Duration(e.cfg.Engine.ProviderTimeoutMillis)*time.Millisecond)
	defer cancel()

	vecs := e.phraseVectors(cctx)
	if vecs == nil {
		return nil
	}

	tv, err := e.embedder.Embed(cctx, text)
	if err != nil {
		return nil
	}
	core := make(map[wheel.Primary]float64, len(wheel.Primaries))
	for p, pv := range vecs {
		core[p] = (providers.Cosine(tv, pv) + 1) / 2
	}
	return &primary.Similarities{Core: core}
}

// phraseVectors lazily embeds the six anchor phrases. A failed attempt
// leaves the cache empty so a later reflection retries instead of
// disabling similarity scoring for the life of the process.
func (e *Engine) phraseVectors(ctx context.Context) map[wheel.Primary][]float64 {
	e.phrasesMu.Lock()
	defer e.phrasesMu.Unlock()
	if e.phraseVecs != nil {
		return e.phraseVecs
	}
	vecs := make(map[wheel.Primary][]float64, len(wheel.Primaries))
	for _, p := range wheel.Primaries {
		vec, err := e.embedder.Embed(ctx, e.wheel.PrimaryNode(p).PhraseText())
		if err != nil {
			e.logger.Warn("phrase embedding failed", zap.Error(err))
			return nil
		}
		vecs[p] = vec
	}
	e.phraseVecs = vecs
	return vecs
}

// expressed derives the outward-signal estimate, blending in the
// language-model hint when one is wired. Hint failures are ignored.
func (e *Engine) expressed(ctx context.Context, text string, ex features.Extraction, split valence.Split) valence.Expressed {
	est := valence.Express(ex, split.EmotionValence)
	if e.soft == nil {
		return est
	}
	cctx, cancel := context.WithTimeout(ctx, time.Duration(e.cfg.Engine.ProviderTimeoutMillis)*time.Millisecond)
	defer cancel()
	hint, err := e.soft.ExpressedHint(cctx, text)
	if err != nil {
		return est
	}
	if hint.Tone != "" {
		est.Tone = hint.Tone
	}
	est.Intensity = (est.Intensity + hint.Intensity) / 2
	est.Willingness = (est.Willingness + hint.Willingness) / 2
	return est
}

// #endregion classification

// #region components

// components assembles the calibration inputs from the evidence trail.
func (e *Engine) components(ex features.Extraction, split valence.Split, pr primary.Result, sel selector.Result) confidence.Components {
	comp := confidence.Components{
		ClassifierEntropy:   pr.ClassifierConf,
		RerankAgreement:     0.4,
		NegationConsistency: 1.0,
		SarcasmConsistency:  1.0,
		Control:             split.ControlConfidence,
		Polarity:            split.PolarityConfidence,
		Domain:              split.DomainConfidence,
		SecondarySimilarity: sel.SecondaryScore,
	}
	if pr.RerankAgree {
		comp.RerankAgreement = 1.0
	}

	if ex.Flags.Negation.Present {
		handled := false
		for _, rule := range pr.RulesFired {
			if rule == "negated_joy_on_good_event" {
				handled = true
			}
		}
		switch {
		case wheel.IsPositive(pr.Primary) && !handled:
			comp.NegationConsistency = 0.3
		case handled:
			comp.NegationConsistency = 0.7
		default:
			comp.NegationConsistency = 0.8
		}
	}

	if ex.Flags.Sarcasm {
		if wheel.IsPositive(pr.Primary) {
			comp.SarcasmConsistency = 0.2
		} else {
			comp.SarcasmConsistency = 0.7
		}
	}
	return comp
}

// selfAwareness estimates how much deliberate self-reading the text
// carries: naming feelings and committing to them (few hedges) reads as
// higher awareness than vague or hedged text.
func selfAwareness(ex features.Extraction, conf float64) float64 {
	named := float64(len(ex.Emotions))
	if named > 2 {
		named = 2
	}
	hedge := float64(ex.HedgeCount)
	if hedge > 4 {
		hedge = 4
	}
	v := 0.4*conf + 0.4*(named/2) + 0.2*(1-hedge/4)
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// eventLabels builds the label set for thread matching: anchor tokens,
// the domain reading, and the resolved wheel labels.
func eventLabels(ex features.Extraction, split valence.Split, path WheelPath) []string {
	var labels []string
	seen := make(map[string]bool)
	add := func(l string) {
		if l != "" && !seen[l] {
			seen[l] = true
			labels = append(labels, l)
		}
	}
	for _, a := range ex.Anchors {
		add(a.Token)
	}
	add(split.Event.Domain.Primary)
	add(split.Event.Domain.Secondary)
	add(path.Primary)
	add(path.Secondary)
	return labels
}

// #endregion components

// #region provenance

func (e *Engine) logProvenance(req Request, rec EnrichmentRecord) {
	if e.provenance == nil {
		return
	}
	decision := rec.Wheel.Primary
	if rec.Flags.Neutral {
		decision = "neutral"
	}
	reason := "classified"
	switch {
	case rec.Flags.Neutral:
		reason = "neutral_gate"
	case rec.Flags.BelowFloor:
		reason = "below_confidence_floor"
	case len(rec.Flags.RulesFired) > 0:
		reason = strings.Join(rec.Flags.RulesFired, ",")
	}
	signals, _ := json.Marshal(map[string]interface{}{
		"confidence": rec.Confidence,
		"eri":        rec.Dynamics.ERI,
		"regime":     rec.Temporal.Regime,
		"thread":     rec.Recursion.State,
	})
	if err := e.provenance.LogProvenance(state.ProvenanceEntry{
		ReflectionID: req.ReflectionID,
		UserID:       req.UserID,
		Decision:     decision,
		Reason:       reason,
		SignalsJSON:  string(signals),
		Degraded:     rec.Provenance.Degraded,
		CreatedAt:    time.Now().UTC(),
	}); err != nil {
		e.logger.Warn("provenance write failed", zap.Error(err))
	}
}

// #endregion provenance

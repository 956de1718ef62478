package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
)

// #region soft-signal-provider

const expressedHintPrompt = `You read one personal journal reflection and report only how the ` +
	`writer presents themselves on the surface, not what they actually feel. ` +
	`Respond with a single JSON object: {"tone": "positive|negative|flat|mixed", ` +
	`"intensity": 0..1, "willingness": 0..1}. "willingness" is how openly the ` +
	`writer expresses emotion (hedged, clipped text scores low). No prose.`

// OpenAISoftSignal asks an OpenAI-compatible model for an expressed-tone
// reading. It is the optional LanguageModelProvider; everything it
// returns can be overridden by surface heuristics when it fails.
type OpenAISoftSignal struct {
	client *openai.Client
	model  string
}

// NewOpenAISoftSignal creates a soft-signal provider. model is the
// OpenAI model name, e.g. "gpt-4o-mini".
func NewOpenAISoftSignal(apiKey, model string) *OpenAISoftSignal {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAISoftSignal{client: &client, model: model}
}

// ExpressedHint sends the reflection and decodes the JSON verdict.
func (p *OpenAISoftSignal) ExpressedHint(ctx context.Context, text string) (SoftSignal, error) {
	if p.client == nil || p.model == "" {
		return SoftSignal{}, fmt.Errorf("soft signal provider not configured")
	}

	params := responses.ResponseNewParams{
		Model:           p.model,
		MaxOutputTokens: openai.Int(120),
		Instructions:    openai.String(expressedHintPrompt),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: []responses.ResponseInputItemUnionParam{
				responses.ResponseInputItemParamOfMessage(text, responses.EasyInputMessageRoleUser),
			},
		},
	}

	resp, err := p.client.Responses.New(ctx, params)
	if err != nil {
		return SoftSignal{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	out := strings.TrimSpace(resp.OutputText())
	// Models occasionally fence the JSON; strip markers before decoding.
	out = strings.TrimPrefix(out, "```json")
	out = strings.TrimPrefix(out, "```")
	out = strings.TrimSuffix(out, "```")

	var sig SoftSignal
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &sig); err != nil {
		return SoftSignal{}, fmt.Errorf("decode soft signal: %w", err)
	}
	sig.Intensity = clamp01(sig.Intensity)
	sig.Willingness = clamp01(sig.Willingness)
	return sig, nil
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

// #endregion soft-signal-provider

package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/danielpatrickdp/affective-state/go-engine/internal/wheel"
)

// #region classifier-client

// classifyResponse is the sidecar /classify wire format.
type classifyResponse struct {
	Scores     map[string]float64 `json:"scores"`
	DurationMs float64            `json:"duration_ms"`
}

// SidecarClassifier calls the emotion-classifier sidecar service over
// HTTP. The sidecar returns raw scores per primary; the client
// normalizes them.
type SidecarClassifier struct {
	baseURL    string
	httpClient *http.Client
}

// NewSidecarClassifier creates a classifier client.
func NewSidecarClassifier(baseURL string) *SidecarClassifier {
	return &SidecarClassifier{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Classify sends text to the sidecar and returns the normalized 6-way
// distribution. Unknown labels in the response are dropped; missing
// labels score zero.
func (c *SidecarClassifier) Classify(ctx context.Context, text string) (Distribution, error) {
	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/classify", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var result classifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	dist := make(Distribution, len(wheel.Primaries))
	for _, p := range wheel.Primaries {
		dist[p] = result.Scores[string(p)]
	}
	return dist.Normalize(), nil
}

// Healthy checks whether the sidecar responds.
func (c *SidecarClassifier) Healthy() bool {
	resp, err := c.httpClient.Get(c.baseURL + "/health")
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// #endregion classifier-client

// #region embedding-client

// embeddingRequest is the Ollama API request format.
type embeddingRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

// embeddingResponse is the Ollama API response format.
type embeddingResponse struct {
	Embedding []float64 `json:"embedding"`
}

// OllamaEmbedder generates embeddings via an Ollama server.
type OllamaEmbedder struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewOllamaEmbedder creates an embedding client. Empty arguments fall
// back to the local default server and model.
func NewOllamaEmbedder(baseURL, model string) *OllamaEmbedder {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if model == "" {
		model = "nomic-embed-text"
	}
	return &OllamaEmbedder{
		baseURL: baseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Embed generates an embedding for the given text.
func (c *OllamaEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	if text == "" {
		return nil, fmt.Errorf("empty text")
	}

	body, err := json.Marshal(embeddingRequest{Model: c.model, Prompt: text})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/embeddings", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var result embeddingResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(result.Embedding) == 0 {
		return nil, fmt.Errorf("empty embedding")
	}
	return result.Embedding, nil
}

// #endregion embedding-client

package embed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultModel is used when no embedding model is configured.
const DefaultModel = "nomic-embed-text"

// OllamaClient calls the Ollama REST API for embeddings and model pulls.
type OllamaClient struct {
	baseURL    string
	model      string
	useGPU     bool
	httpClient *http.Client
}

func NewOllamaClient(baseURL, model string, useGPU bool, timeout time.Duration) *OllamaClient {
	if model == "" {
		model = DefaultModel
	}
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &OllamaClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		model:      model,
		useGPU:     useGPU,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Model returns the configured model name.
func (c *OllamaClient) Model() string { return c.model }

type embedRequest struct {
	Model   string         `json:"model"`
	Input   []string       `json:"input"`
	Options map[string]any `json:"options,omitempty"`
}

type embedResponse struct {
	Embeddings [][]float32 `json:"embeddings"`
}

// Embed generates one vector per input text in a single batch call.
func (c *OllamaClient) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	req := embedRequest{Model: c.model, Input: texts}
	if !c.useGPU {
		req.Options = map[string]any{"num_gpu": 0}
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal embed request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/embed", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("ollama embed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<26))
	if err != nil {
		return nil, fmt.Errorf("read embed response: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, &ModelNotFoundError{Model: c.model, Message: string(respBody)}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama embed status %d: %s", resp.StatusCode, truncate(string(respBody), 200))
	}

	var apiResp embedResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return nil, fmt.Errorf("decode embed response: %w", err)
	}
	if len(apiResp.Embeddings) != len(texts) {
		return nil, fmt.Errorf("ollama embed: got %d vectors for %d texts", len(apiResp.Embeddings), len(texts))
	}
	return apiResp.Embeddings, nil
}

type pullRequest struct {
	Model  string `json:"model"`
	Stream bool   `json:"stream"`
}

// Pull registers the model with the server, blocking until the download
// completes.
func (c *OllamaClient) Pull(ctx context.Context) error {
	body, err := json.Marshal(pullRequest{Model: c.model, Stream: false})
	if err != nil {
		return fmt.Errorf("marshal pull request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/pull", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("ollama pull: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("ollama pull %s: status %d: %s", c.model, resp.StatusCode, truncate(string(respBody), 200))
	}
	return nil
}

// Close releases idle connections.
func (c *OllamaClient) Close() {
	c.httpClient.CloseIdleConnections()
}

// ModelNotFoundError reports an embed call against an unregistered model.
type ModelNotFoundError struct {
	Model   string
	Message string
}

func (e *ModelNotFoundError) Error() string {
	return fmt.Sprintf("model %s not found: %s", e.Model, truncate(e.Message, 200))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

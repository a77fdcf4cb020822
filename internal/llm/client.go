// Package llm provides the client for the hosted model API.
//
// The API is OpenAI-compatible: chat completions (optionally streamed over
// SSE) and image generation, authenticated with a single bearer credential.
package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Config holds configuration for the model client.
type Config struct {
	APIKey         string
	BaseURL        string
	Model          string
	ImageModel     string
	RequestTimeout time.Duration
	MaxRetries     int
}

// DefaultConfig returns default configuration for the given credential.
func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey:         apiKey,
		BaseURL:        "https://api.openai.com/v1",
		Model:          "gpt-4o-mini",
		ImageModel:     "gpt-image-1",
		RequestTimeout: 120 * time.Second,
		MaxRetries:     3,
	}
}

// Client calls the model API. A single attempt is made per retryable
// condition up to MaxRetries; validation never reaches this layer.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	imageModel string
	maxRetries int
	httpClient *http.Client
}

// NewClient creates a model client from config, filling zero values with
// defaults.
func NewClient(cfg Config) *Client {
	def := DefaultConfig(cfg.APIKey)
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	if cfg.Model == "" {
		cfg.Model = def.Model
	}
	if cfg.ImageModel == "" {
		cfg.ImageModel = def.ImageModel
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = def.RequestTimeout
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = def.MaxRetries
	}
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		model:      cfg.Model,
		imageModel: cfg.ImageModel,
		maxRetries: cfg.MaxRetries,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	Stream      bool          `json:"stream,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends a system+user prompt pair and returns the completion text.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	body, err := c.post(ctx, "completion", "/chat/completions", chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "system", Content: system}, {Role: "user", Content: user}},
		Temperature: 0.35,
	})
	if err != nil {
		return "", err
	}

	var resp chatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", &ServiceError{Op: "completion", Cause: "unparseable response body", Err: err}
	}
	if resp.Error != nil {
		return "", &ServiceError{Op: "completion", Cause: resp.Error.Message}
	}
	if len(resp.Choices) == 0 {
		return "", &ServiceError{Op: "completion", Cause: "no completion returned"}
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// CompleteStream sends a prompt with streaming enabled and invokes fn for
// each content delta. It returns the full accumulated text.
func (c *Client) CompleteStream(ctx context.Context, system, user string, fn func(delta string) error) (string, error) {
	reqBody, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "system", Content: system}, {Role: "user", Content: user}},
		Temperature: 0.35,
		Stream:      true,
	})
	if err != nil {
		return "", &ServiceError{Op: "completion stream", Cause: "marshal request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(reqBody))
	if err != nil {
		return "", &ServiceError{Op: "completion stream", Cause: "create request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "text/event-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &ServiceError{Op: "completion stream", Cause: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", &ServiceError{Op: "completion stream", Status: resp.StatusCode, Cause: strings.TrimSpace(string(body))}
	}

	var full strings.Builder
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if data == "" || data == "[DONE]" {
			continue
		}

		var chunk chatResponse
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			slog.Debug("Skipping unparseable stream chunk", "error", err)
			continue
		}
		if len(chunk.Choices) == 0 {
			continue
		}
		delta := chunk.Choices[0].Delta.Content
		if delta == "" {
			continue
		}
		full.WriteString(delta)
		if err := fn(delta); err != nil {
			return "", &ServiceError{Op: "completion stream", Cause: "delta callback aborted", Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return "", &ServiceError{Op: "completion stream", Cause: "stream interrupted", Err: err}
	}
	return strings.TrimSpace(full.String()), nil
}

type imageRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
	Size   string `json:"size"`
}

type imageResponse struct {
	Data []struct {
		B64JSON string `json:"b64_json"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateImages produces n moodboard images for a prompt and returns the
// decoded PNG bytes. Images are a fixed 1024x1024.
func (c *Client) GenerateImages(ctx context.Context, imagePrompt string, n int) ([][]byte, error) {
	if n <= 0 {
		n = 1
	}
	body, err := c.post(ctx, "image generation", "/images/generations", imageRequest{
		Model:  c.imageModel,
		Prompt: imagePrompt,
		N:      n,
		Size:   "1024x1024",
	})
	if err != nil {
		return nil, err
	}

	var resp imageResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &ServiceError{Op: "image generation", Cause: "unparseable response body", Err: err}
	}
	if resp.Error != nil {
		return nil, &ServiceError{Op: "image generation", Cause: resp.Error.Message}
	}
	if len(resp.Data) == 0 {
		return nil, &ServiceError{Op: "image generation", Cause: "no images returned"}
	}

	images := make([][]byte, 0, len(resp.Data))
	for _, item := range resp.Data {
		img, err := base64.StdEncoding.DecodeString(item.B64JSON)
		if err != nil {
			return nil, &ServiceError{Op: "image generation", Cause: "undecodable image payload", Err: err}
		}
		images = append(images, img)
	}
	return images, nil
}

// post sends a JSON request with bounded retry. Only rate limits, server
// errors and transport failures are retried; 4xx responses fail immediately.
func (c *Client) post(ctx context.Context, op, path string, payload any) ([]byte, error) {
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return nil, &ServiceError{Op: op, Cause: "marshal request", Err: err}
	}

	var lastErr *ServiceError
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<uint(attempt-1)) * time.Second
			slog.Debug("Retrying model request", "op", op, "attempt", attempt+1, "backoff", backoff)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, &ServiceError{Op: op, Cause: "canceled while waiting to retry", Err: ctx.Err()}
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(reqBody))
		if err != nil {
			return nil, &ServiceError{Op: op, Cause: "create request", Err: err}
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, &ServiceError{Op: op, Cause: "request canceled or timed out", Err: ctx.Err()}
			}
			lastErr = &ServiceError{Op: op, Cause: "request failed", Err: err}
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = &ServiceError{Op: op, Status: resp.StatusCode, Cause: "read response body", Err: err}
			continue
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			return body, nil
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			lastErr = &ServiceError{Op: op, Status: resp.StatusCode, Cause: strings.TrimSpace(string(body))}
			continue
		default:
			return nil, &ServiceError{Op: op, Status: resp.StatusCode, Cause: strings.TrimSpace(string(body))}
		}
	}
	return nil, lastErr
}

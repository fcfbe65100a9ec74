package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrDisabled is returned by every call when no API key is configured.
// The gateway treats it like any other provider failure and degrades to
// its defaults.
var ErrDisabled = errors.New("ai client disabled: no api key configured")

// Client is the generative-text API surface the gateway is built on.
type Client interface {
	// GenerateText returns the model's freeform text reply.
	GenerateText(ctx context.Context, system, user string) (string, error)

	// GenerateJSON requests a JSON-shaped reply and unmarshals it into dest.
	GenerateJSON(ctx context.Context, system, user string, dest interface{}) error
}

type client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// NewClient creates a Gemini REST client. An empty apiKey yields a
// disabled client whose calls all fail with ErrDisabled.
func NewClient(apiKey, model string) Client {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	return &client{
		baseURL: defaultBaseURL,
		apiKey:  strings.TrimSpace(apiKey),
		model:   model,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ===== WIRE TYPES =====

type generateRequest struct {
	SystemInstruction *content         `json:"systemInstruction,omitempty"`
	Contents          []content        `json:"contents"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// ===== CALLS =====

func (c *client) GenerateText(ctx context.Context, system, user string) (string, error) {
	return c.generate(ctx, system, user, "")
}

func (c *client) GenerateJSON(ctx context.Context, system, user string, dest interface{}) error {
	raw, err := c.generate(ctx, system, user, "application/json")
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), dest); err != nil {
		return fmt.Errorf("decode model json: %w", err)
	}
	return nil
}

func (c *client) generate(ctx context.Context, system, user, mimeType string) (string, error) {
	if c.apiKey == "" {
		return "", ErrDisabled
	}

	reqBody := generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: user}}}},
	}
	if system != "" {
		reqBody.SystemInstruction = &content{Parts: []part{{Text: system}}}
	}
	if mimeType != "" {
		reqBody.GenerationConfig = &generationConfig{ResponseMimeType: mimeType}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call provider: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read provider response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("provider returned %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var decoded generateResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", fmt.Errorf("decode provider response: %w", err)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("provider returned no candidates")
	}

	var sb strings.Builder
	for _, p := range decoded.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}

// stripCodeFence removes a ```json ... ``` wrapper some models emit even
// when asked for raw JSON.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientDisabledWithoutKey(t *testing.T) {
	c := NewClient("", "")

	_, err := c.GenerateText(context.Background(), "system", "user")
	if !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}

	var dest map[string]any
	if err := c.GenerateJSON(context.Background(), "system", "user", &dest); !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
}

func TestClientGenerateText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %s", r.Method)
		}
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if len(req.Contents) != 1 || req.Contents[0].Parts[0].Text != "user prompt" {
			t.Errorf("unexpected request contents: %+v", req.Contents)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{
					{"text": "model reply"},
				}}},
			},
		})
	}))
	defer server.Close()

	c := NewClient("test-key", "gemini-1.5-flash").(*client)
	c.baseURL = server.URL

	reply, err := c.GenerateText(context.Background(), "system", "user prompt")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if reply != "model reply" {
		t.Errorf("unexpected reply %q", reply)
	}
}

func TestClientGenerateJSONStripsFence(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{
					{"text": "```json\n{\"score\": 42}\n```"},
				}}},
			},
		})
	}))
	defer server.Close()

	c := NewClient("test-key", "").(*client)
	c.baseURL = server.URL

	var dest struct {
		Score int `json:"score"`
	}
	if err := c.GenerateJSON(context.Background(), "", "prompt", &dest); err != nil {
		t.Fatalf("generate json failed: %v", err)
	}
	if dest.Score != 42 {
		t.Errorf("expected score 42, got %d", dest.Score)
	}
}

func TestClientProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	c := NewClient("test-key", "").(*client)
	c.baseURL = server.URL

	if _, err := c.GenerateText(context.Background(), "", "prompt"); err == nil {
		t.Fatal("expected error from non-200 provider response")
	}
}

package moderation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const moderationURL = "https://api.openai.com/v1/moderations"

type openAIClassifier struct {
	apiKey     string
	httpClient *http.Client
}

// NewOpenAIClassifier creates a Classifier backed by the OpenAI
// moderation endpoint. Returns nil when no API key is configured, which
// callers treat as "no remote moderation".
func NewOpenAIClassifier(apiKey string) Classifier {
	if apiKey == "" {
		return nil
	}
	return &openAIClassifier{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type moderationRequest struct {
	Input string `json:"input"`
}

type moderationResponse struct {
	Results []struct {
		Flagged bool `json:"flagged"`
	} `json:"results"`
}

func (c *openAIClassifier) Classify(ctx context.Context, text string) (bool, error) {
	body, err := json.Marshal(moderationRequest{Input: text})
	if err != nil {
		return false, fmt.Errorf("marshal moderation payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, moderationURL, bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return false, fmt.Errorf("moderation endpoint: HTTP %d: %s", resp.StatusCode, string(data))
	}

	var parsed moderationResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return false, fmt.Errorf("decode moderation response: %w", err)
	}

	if len(parsed.Results) == 0 {
		return false, nil
	}
	return parsed.Results[0].Flagged, nil
}

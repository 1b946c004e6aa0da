package highlight

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const highlightPrompt = `You are a tool that extracts short highlight moments from a video's transcript. Return a JSON array (no extra text) where each item has keys: start (seconds), end (seconds), label (one of: funny, important, sensitive, other) and caption (short Indonesian sentence). Provide up to %d highlights, prioritize moments that would make a good short, and prefer shorter segments (1-10s). Use Indonesian for captions.

Transcript:
---
%s
---`

// Extract asks Gemini for highlight moments in the transcript. Any
// failure, including an unparsable response, yields an empty slice.
func (e *implExtractor) Extract(ctx context.Context, transcriptText string) []Highlight {
	if strings.TrimSpace(transcriptText) == "" {
		return nil
	}

	prompt := fmt.Sprintf(highlightPrompt, e.maxResults, transcriptText)

	text, err := e.callGemini(ctx, prompt)
	if err != nil {
		e.logger.Warn(ctx, "highlight extraction failed, continuing without highlights: %v", err)
		return nil
	}

	return ParseHighlights(text)
}

// callGemini sends the prompt to Gemini and returns the raw response
// text. Rotates API keys on 429 / quota errors.
func (e *implExtractor) callGemini(ctx context.Context, prompt string) (string, error) {
	attempts := len(e.apiKeys)
	var lastErr error

	for range attempts {
		key := e.apiKeys[e.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			e.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, e.model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				e.logger.Warn(ctx, "Key %d rate limited, rotating...", e.currentKey+1)
				e.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (e *implExtractor) rotateKey() {
	e.currentKey = (e.currentKey + 1) % len(e.apiKeys)
}

// Package judge implements LLM-as-a-judge scoring of inference outputs with
// Gemini as the judge model.
package judge

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"google.golang.org/genai"
)

// Judge scores a single VLM response, returning a value in [0, 100].
type Judge interface {
	Score(ctx context.Context, prompt string) (float64, error)
}

type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

func (g *Gemini) Score(ctx context.Context, prompt string) (float64, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0),
		MaxOutputTokens: 50,
		SafetySettings: []*genai.SafetySetting{
			{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockOnlyHigh},
			{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockOnlyHigh},
			{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockOnlyHigh},
			{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockOnlyHigh},
		},
	})
	if err != nil {
		slog.Error("gemini error: generate content failed", "error", err)
		return 0, fmt.Errorf("judge request failed: %w", err)
	}

	return ParseScore(resp.Text())
}

var codeFencePattern = regexp.MustCompile("```json\\s*|\\s*```")

// ParseScore extracts the score from the judge's output, tolerating markdown
// code fences, and clips it to [0, 100].
func ParseScore(output string) (float64, error) {
	cleaned := strings.TrimSpace(codeFencePattern.ReplaceAllString(output, ""))

	var payload struct {
		Score *float64 `json:"score"`
	}
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return 0, fmt.Errorf("judge output is not a score object: %q", output)
	}
	if payload.Score == nil {
		return 0, fmt.Errorf("judge output has no score field: %q", output)
	}

	return ClipScore(*payload.Score), nil
}

// ClipScore bounds a score to the benchmark's 0-100 scale.
func ClipScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

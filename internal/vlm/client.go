// Package vlm wraps the vision-language model API used for benchmark
// inference.
package vlm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/openai/openai-go"
)

// Request is a single multimodal completion request. Images are base64 data
// URLs; image-only task batches carry several per request.
type Request struct {
	System string
	Prompt string
	Images []string
}

type VLM interface {
	Generate(ctx context.Context, req Request) (string, error)
}

type OpenAI struct {
	client      openai.Client
	model       string
	temperature float64
	maxTokens   int64
}

func NewOpenAI(model string, temperature float64, maxTokens int) *OpenAI {
	return &OpenAI{
		client:      openai.NewClient(),
		model:       model,
		temperature: temperature,
		maxTokens:   int64(maxTokens),
	}
}

func (o *OpenAI) Generate(ctx context.Context, req Request) (string, error) {
	parts := make([]openai.ChatCompletionContentPartUnionParam, 0, 1+len(req.Images))
	parts = append(parts, openai.TextContentPart(req.Prompt))
	for _, img := range req.Images {
		parts = append(parts, openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{URL: img}))
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	messages = append(messages, openai.UserMessage(parts))

	res, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages:    messages,
		Model:       o.model,
		Temperature: openai.Float(o.temperature),
		MaxTokens:   openai.Int(o.maxTokens),
	})
	if err != nil {
		slog.Error("openai error: chat completions failed", "error", err)
		return "", fmt.Errorf("vlm generation failed: %w", err)
	}
	if len(res.Choices) == 0 {
		return "", fmt.Errorf("vlm returned no choices")
	}

	return res.Choices[0].Message.Content, nil
}

// Retrying decorates a VLM with fixed-delay retries: a bounded number of
// attempts with a constant pause, then give up and let the caller skip the
// item.
type Retrying struct {
	Inner      VLM
	MaxRetries int
	Delay      time.Duration
}

func (r *Retrying) Generate(ctx context.Context, req Request) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= r.MaxRetries; attempt++ {
		if attempt > 0 {
			slog.Warn("retrying vlm request", "attempt", attempt, "max", r.MaxRetries, "error", lastErr)
			select {
			case <-time.After(r.Delay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		out, err := r.Inner.Generate(ctx, req)
		if err == nil {
			return out, nil
		}
		lastErr = err
	}
	return "", fmt.Errorf("vlm request failed after %d retries: %w", r.MaxRetries, lastErr)
}

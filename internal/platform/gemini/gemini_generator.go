// Package gemini implements the generation.Generator interface using
// Google's Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"text/template"
	"time"

	"google.golang.org/genai"

	"github.com/GioNegri/PedagogIA2/internal/config"
	"github.com/GioNegri/PedagogIA2/internal/domain"
	"github.com/GioNegri/PedagogIA2/internal/generation"
)

// modelCaller abstracts the raw model invocation so the retry and prompt
// logic can be tested without network access.
type modelCaller interface {
	// generateText sends the prompt to the named model and returns the
	// response text.
	generateText(ctx context.Context, model, prompt string) (string, error)
}

// GeminiGenerator implements the generation.Generator interface using
// Google's Gemini API to produce lesson plans, analyses and debates.
type GeminiGenerator struct {
	logger          *slog.Logger
	config          config.LLMConfig
	promptTemplates *template.Template
	caller          modelCaller
}

// NewGeminiGenerator creates a new GeminiGenerator with the provided
// dependencies. The context is used for client initialization only.
func NewGeminiGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	templates, err := loadPromptTemplates()
	if err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return &GeminiGenerator{
		logger:          logger,
		config:          cfg,
		promptTemplates: templates,
		caller:          &genaiCaller{client: client},
	}, nil
}

// Ensure GeminiGenerator implements generation.Generator
var _ generation.Generator = (*GeminiGenerator)(nil)

// Generate implements generation.Generator.Generate
// It renders the prompt for the request kind, calls the model with retry
// for transient failures, and returns the generated text with its derived
// title.
func (g *GeminiGenerator) Generate(ctx context.Context, req generation.Request) (*generation.Result, error) {
	prompt, title, err := buildPrompt(g.promptTemplates, req)
	if err != nil {
		return nil, err
	}

	model := g.modelFor(req.Kind)

	g.logger.DebugContext(ctx, "prompt generated",
		"kind", req.Kind,
		"model", model,
		"prompt_length", len(prompt))

	body, err := g.callWithRetry(ctx, model, prompt)
	if err != nil {
		return nil, err
	}

	return &generation.Result{Title: title, Body: body}, nil
}

// modelFor returns the model used for the given kind. Lesson plans may be
// routed to a stronger model when one is configured.
func (g *GeminiGenerator) modelFor(kind string) string {
	if kind == domain.KindLessonPlan && g.config.LessonPlanModel != "" {
		return g.config.LessonPlanModel
	}
	return g.config.ModelName
}

// callWithRetry invokes the model with exponential backoff and jitter for
// transient errors. Permanent errors (blocked content, malformed response)
// are returned immediately without retrying.
func (g *GeminiGenerator) callWithRetry(ctx context.Context, model, prompt string) (string, error) {
	maxRetries := g.config.MaxRetries
	if maxRetries < 0 {
		g.logger.WarnContext(ctx, "invalid max retries value, using default", "max_retries", 3)
		maxRetries = 3
	}

	baseDelaySeconds := g.config.RetryDelaySeconds
	if baseDelaySeconds < 1 {
		baseDelaySeconds = 2
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for attempt := 0; ; attempt++ {
		g.logger.InfoContext(ctx, "calling Gemini API",
			"model", model,
			"attempt", attempt+1,
			"max_attempts", maxRetries+1)

		text, err := g.caller.generateText(ctx, model, prompt)
		if err == nil {
			g.logger.InfoContext(ctx, "Gemini API call succeeded",
				"attempt", attempt+1,
				"response_length", len(text))
			return text, nil
		}

		g.logger.ErrorContext(ctx, "Gemini API call failed",
			"attempt", attempt+1,
			"error", err)

		// Blocked content and malformed responses do not get better on
		// retry.
		if errors.Is(err, generation.ErrContentBlocked) || errors.Is(err, generation.ErrInvalidResponse) {
			return "", err
		}

		if attempt >= maxRetries {
			return "", fmt.Errorf("%w: exceeded maximum retry attempts (%d): %v",
				generation.ErrTransientFailure, maxRetries, err)
		}

		// delay = baseDelay * 2^attempt * (0.5 + rand(0, 0.5))
		backoffSeconds := float64(baseDelaySeconds) * math.Pow(2, float64(attempt))
		jitterFactor := 0.5 + rng.Float64()*0.5
		delay := time.Duration(backoffSeconds * jitterFactor * float64(time.Second))

		g.logger.InfoContext(ctx, "retrying after delay",
			"attempt", attempt+1,
			"delay", delay)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", fmt.Errorf("%w: %v", generation.ErrTransientFailure, ctx.Err())
		}
	}
}

// genaiCaller is the production modelCaller backed by the genai client.
type genaiCaller struct {
	client *genai.Client
}

// generateText implements modelCaller using the Gemini API.
func (c *genaiCaller) generateText(ctx context.Context, model, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		// API-level failures are assumed transient; the retry loop
		// decides when to give up.
		return "", err
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: finish reason %s", generation.ErrContentBlocked, candidate.FinishReason)
	}

	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	text := ""
	for _, part := range candidate.Content.Parts {
		if part != nil {
			text += part.Text
		}
	}

	if text == "" {
		return "", fmt.Errorf("%w: response contained no text", generation.ErrInvalidResponse)
	}

	return text, nil
}

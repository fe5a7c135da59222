package plangen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yungbote/studyplan-backend/internal/clients/gemini"
	"github.com/yungbote/studyplan-backend/internal/logger"
	"github.com/yungbote/studyplan-backend/internal/types"
)

// Config carries the generation tunables.
type Config struct {
	Temperature     float64
	TopP            float64
	MaxOutputTokens int
}

func DefaultConfig() Config {
	return Config{
		Temperature:     0.7,
		TopP:            0.9,
		MaxOutputTokens: 1200,
	}
}

// Generator orchestrates prompt construction, the generation port, the
// sanitizer and the validator, with one reinforced retry and a
// deterministic fallback.
type Generator struct {
	gen gemini.TextGenerator
	cfg Config
	log *logger.Logger
}

func NewGenerator(gen gemini.TextGenerator, cfg Config, log *logger.Logger) *Generator {
	return &Generator{
		gen: gen,
		cfg: cfg,
		log: log.With("service", "PlanGenerator"),
	}
}

// Generate never fails outward because of upstream unreliability: a usable
// model response wins, otherwise the retry's, otherwise the fallback plan.
// Transport and upstream errors are treated identically to unparseable
// text — the attempt produced nothing usable.
func (g *Generator) Generate(ctx context.Context, subject, level string) *GeneratedPlan {
	content, err := g.attempt(ctx, BuildPrompt(subject, level))
	if err == nil {
		return &GeneratedPlan{PlanContent: *content, Source: types.PlanSourceModel}
	}
	g.log.Warn("First generation attempt unusable, retrying with strict prompt",
		"subject", subject, "level", level, "error", err)

	content, err = g.attempt(ctx, BuildStrictPrompt(subject, level))
	if err == nil {
		return &GeneratedPlan{PlanContent: *content, Source: types.PlanSourceModel}
	}
	g.log.Warn("Retry attempt unusable, falling back to placeholder plan",
		"subject", subject, "level", level, "error", err)

	return &GeneratedPlan{PlanContent: Fallback(subject, level), Source: types.PlanSourceFallback}
}

// attempt runs one generation call through sanitize, parse and validate.
func (g *Generator) attempt(ctx context.Context, prompt string) (*PlanContent, error) {
	raw, err := g.gen.GenerateText(ctx, prompt, gemini.Options{
		Temperature:     g.cfg.Temperature,
		TopP:            g.cfg.TopP,
		MaxOutputTokens: g.cfg.MaxOutputTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("generation call: %w", err)
	}

	cleaned, err := Sanitize(raw)
	if err != nil {
		return nil, err
	}

	var content PlanContent
	if err := json.Unmarshal([]byte(cleaned), &content); err != nil {
		return nil, fmt.Errorf("parse sanitized response: %w", err)
	}

	if problems := Validate(&content); len(problems) > 0 {
		return nil, fmt.Errorf("schema validation failed: %v", problems)
	}

	return &content, nil
}

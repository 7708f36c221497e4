// Package script generates the three receptionist script artifacts
// (greeting, personality, operating script) from a business profile.
// The primary path is a Gemini text-generation call; a deterministic
// local fallback covers missing credentials and every upstream failure,
// so script generation itself never fails.
package script

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"ringly_backend/platform/logger"

	"google.golang.org/genai"
)

// Profile is the business profile the wizard collects.
type Profile struct {
	BusinessName string
	Industry     string
	Hours        string
	Phone        string
	Services     string // comma-separated list
	FAQs         string
	VoiceName    string
	Style        string
}

// Result holds the three generated artifacts.
type Result struct {
	Greeting    string `json:"greeting"`
	Personality string `json:"personality"`
	Script      string `json:"script"`
}

// Generator produces script artifacts, preferring Gemini when configured.
type Generator struct {
	client *genai.Client
	model  string
	log    *logger.Logger
}

// NewGenerator creates a generator. With an empty API key the generator
// runs fallback-only, which is a supported configuration.
func NewGenerator(ctx context.Context, apiKey, model string, log *logger.Logger) (*Generator, error) {
	g := &Generator{model: model, log: log}

	if apiKey != "" {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("create gemini client: %w", err)
		}
		g.client = client
	}

	return g, nil
}

// Generate returns script artifacts for the profile. Upstream failures
// and unparseable model output degrade to the local fallback; the caller
// never sees an error for this step.
func (g *Generator) Generate(ctx context.Context, p Profile) Result {
	if g.client == nil {
		return Fallback(p)
	}

	result, err := g.generate(ctx, p)
	if err != nil {
		g.log.UpstreamError("gemini", "generate_script", err)
		return Fallback(p)
	}

	return result
}

func (g *Generator) generate(ctx context.Context, p Profile) (Result, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		genai.Text(buildPrompt(p)),
		&genai.GenerateContentConfig{
			Temperature:      genai.Ptr[float32](0.7),
			MaxOutputTokens:  1000,
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		return Result{}, fmt.Errorf("gemini generate content: %w", err)
	}

	return parseModelOutput(resp.Text())
}

// parseModelOutput strips surrounding code fences and requires a JSON
// object carrying all three artifact keys.
func parseModelOutput(raw string) (Result, error) {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var result Result
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return Result{}, fmt.Errorf("parse model output: %w", err)
	}
	if result.Greeting == "" || result.Personality == "" || result.Script == "" {
		return Result{}, fmt.Errorf("model output is missing script fields")
	}

	return result, nil
}

func buildPrompt(p Profile) string {
	hours := p.Hours
	if hours == "" {
		hours = "Mon-Fri 9am-5pm"
	}
	phone := p.Phone
	if phone == "" {
		phone = "N/A"
	}
	faqs := p.FAQs
	if faqs == "" {
		faqs = "None provided"
	}
	voiceName := p.VoiceName
	if voiceName == "" {
		voiceName = "Alex"
	}
	style := p.Style
	if style == "" {
		style = "Professional"
	}

	return fmt.Sprintf(`You are creating an AI phone receptionist script for a business. Generate a complete receptionist configuration with three parts.

Business Details:
- Name: %s
- Industry: %s
- Hours: %s
- Phone: %s
- Services: %s
- FAQs: %s
- Voice Name: %s
- Personality Style: %s

Generate a JSON response with exactly these three fields:
1. "greeting" — A natural opening greeting (1-2 sentences) the receptionist says when answering
2. "personality" — A brief personality description (2-3 sentences) defining how the receptionist behaves
3. "script" — A detailed instruction script (10-15 sentences) covering how to handle calls, services info, scheduling, and FAQs

Make the tone match the "%s" personality style. Be specific to the %s industry. Use the voice name "%s" in the greeting.

Respond ONLY with valid JSON, no markdown or extra text.`,
		p.BusinessName, p.Industry, hours, phone, p.Services, faqs, voiceName, style,
		style, p.Industry, voiceName)
}

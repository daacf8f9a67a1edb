package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultModelName is used when no model is configured.
const DefaultModelName = "gemini-2.0-flash"

// TextGenerator produces raw model text for a prompt. The concrete
// implementation talks to Gemini; tests inject fakes.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// GeminiGenerator is the production TextGenerator backed by the Google
// GenAI API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a GenAI-backed generator. An empty apiKey lets
// the SDK fall back to its own environment lookup.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	cfg := &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	}
	if apiKey != "" {
		cfg.APIKey = apiKey
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	if model == "" {
		model = DefaultModelName
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

func (g *GeminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}

// Client implements the two typed capabilities on top of a TextGenerator.
type Client struct {
	gen TextGenerator
}

func NewClient(gen TextGenerator) *Client {
	return &Client{gen: gen}
}

// GenerateInvestmentStrategy asks the model for a personalized strategy.
// The returned error covers input validation, transport failures and output
// schema violations alike; callers surface it as a generic failure.
func (c *Client) GenerateInvestmentStrategy(ctx context.Context, in StrategyInput) (*StrategyOutput, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var out StrategyOutput
	if err := c.generateInto(ctx, strategyPrompt(in), &out); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

// SummarizeMarketReport asks the model for a concise report summary.
func (c *Client) SummarizeMarketReport(ctx context.Context, in SummaryInput) (*SummaryOutput, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var out SummaryOutput
	if err := c.generateInto(ctx, summaryPrompt(in), &out); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) generateInto(ctx context.Context, prompt string, out any) error {
	raw, err := c.gen.GenerateText(ctx, prompt)
	if err != nil {
		return err
	}
	clean := cleanModelJSON(raw)
	if err := json.Unmarshal([]byte(clean), out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	return nil
}

// cleanModelJSON strips Markdown fences and surrounding junk when the model
// ignores the strict-JSON instruction, keeping only the outermost object.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		// Drop the first line (``` or ```json).
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}

	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	s = strings.TrimSpace(s)

	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end != -1 && end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}

	return s
}

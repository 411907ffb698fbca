// Package llm wraps the suggestion provider behind a small interface so
// the merge and prompt layers never touch the network directly. Models
// are addressed by capability tier rather than by name.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// generationTemperature keeps suggestion output stable across runs.
const generationTemperature = 0.1

// Client is the provider surface the suggestion pipeline depends on.
type Client interface {
	// GenerateContent runs a prose prompt on the given tier.
	GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error)
	// GenerateJSON runs a prompt whose response must be parseable JSON.
	// Section suggestion payloads come through here.
	GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error)
	// GetModel resolves a tier to the provider's model name.
	GetModel(tier ModelTier) string
	Close() error
}

// NewClient builds the provider client. A nil config selects the default
// Gemini tier mapping.
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	return newGeminiClient(ctx, config, apiKey)
}

type geminiClient struct {
	client *genai.Client
	config *Config
}

func newGeminiClient(ctx context.Context, config *Config, apiKey string) (*geminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiClient{client: client, config: config}, nil
}

// generate runs one prompt against the tier's model. asJSON forces the
// JSON response MIME type.
func (c *geminiClient) generate(ctx context.Context, prompt string, tier ModelTier, asJSON bool) (string, error) {
	name := c.config.GetModel(tier)
	if name == "" {
		return "", fmt.Errorf("no model configured for tier %s", tier)
	}

	model := c.client.GenerativeModel(name)
	model.SetTemperature(generationTemperature)
	if asJSON {
		model.ResponseMIMEType = "application/json"
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return responseText(resp)
}

func (c *geminiClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return c.generate(ctx, prompt, tier, false)
}

func (c *geminiClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	text, err := c.generate(ctx, prompt, tier, true)
	if err != nil {
		return "", err
	}
	// Models fence JSON in markdown even with the MIME type set.
	return CleanJSONBlock(text), nil
}

func (c *geminiClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

func (c *geminiClient) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var sb strings.Builder
	for _, part := range content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return sb.String(), nil
}

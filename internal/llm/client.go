package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Message roles for instruction sequences.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is one element of an ordered instruction sequence passed to a model.
type Message struct {
	Role    string
	Content string
}

// Client is an abstraction over LLM providers
type Client interface {
	// GenerateContent generates text under an instruction sequence, with a
	// response-length budget in tokens (0 means provider default).
	GenerateContent(ctx context.Context, messages []Message, tier ModelTier, maxTokens int32) (string, error)
	// GenerateJSON generates JSON content under an instruction sequence
	GenerateJSON(ctx context.Context, messages []Message, tier ModelTier, maxTokens int32) (string, error)
	// GetModel returns the underlying provider model for a tier
	GetModel(tier ModelTier) string
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	default:
		return NewGeminiClient(ctx, config, apiKey)
	}
}

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
	}, nil
}

// GenerateContent generates text content using the specified model tier
func (c *GeminiClient) GenerateContent(ctx context.Context, messages []Message, tier ModelTier, maxTokens int32) (string, error) {
	model, err := c.model(tier, maxTokens)
	if err != nil {
		return "", err
	}
	model.SetTemperature(0.5)

	resp, err := model.GenerateContent(ctx, userParts(messages)...)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return extractTextFromResponse(resp)
}

// GenerateJSON generates JSON content using the specified model tier
func (c *GeminiClient) GenerateJSON(ctx context.Context, messages []Message, tier ModelTier, maxTokens int32) (string, error) {
	model, err := c.model(tier, maxTokens)
	if err != nil {
		return "", err
	}
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, userParts(messages)...)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return "", err
	}

	// Clean any markdown code block wrappers
	return CleanJSONBlock(text), nil
}

// model resolves the configured model name for a tier and applies the
// output-token budget when one is set.
func (c *GeminiClient) model(tier ModelTier, maxTokens int32) (*genai.GenerativeModel, error) {
	modelName := c.config.GetModel(tier)
	if modelName == "" {
		return nil, fmt.Errorf("no model configured for tier %s", tier)
	}

	model := c.client.GenerativeModel(modelName)
	if maxTokens > 0 {
		model.SetMaxOutputTokens(maxTokens)
	}
	return model, nil
}

// userParts returns the user-role parts of the sequence. System-role messages
// become the model's system instruction; Gemini takes them separately, so the
// split happens here rather than in callers.
func userParts(messages []Message) []genai.Part {
	var parts []genai.Part
	var system []string
	for _, m := range messages {
		if m.Role == RoleSystem {
			system = append(system, m.Content)
			continue
		}
		parts = append(parts, genai.Text(m.Content))
	}
	// Gemini has no dedicated chat here; prepend system text to preserve order.
	if len(system) > 0 {
		all := make([]genai.Part, 0, len(parts)+1)
		all = append(all, genai.Text(strings.Join(system, "\n\n")))
		all = append(all, parts...)
		return all
	}
	return parts
}

// GetModel returns the model name for a tier
func (c *GeminiClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// extractTextFromResponse extracts text from Gemini API response
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}

package services

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"google.golang.org/genai"

	"github.com/GVKarthik-dev/MCP-PuchAI-Hackathon/internal/config"
	"github.com/GVKarthik-dev/MCP-PuchAI-Hackathon/internal/models"
)

// CompletionClient is the single capability the skills need from the hosted
// model service: one prompt in, one completed text out. Implementations make
// exactly one attempt; any failure or timeout surfaces as model_unavailable.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

func NewCompletionClient(cfg *config.Config) (CompletionClient, error) {
	switch cfg.LLM.Provider {
	case config.ProviderGroq:
		return newGroqClient(cfg)
	case config.ProviderGemini:
		return newGeminiClient(cfg)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.LLM.Provider)
	}
}

// groqClient talks to Groq's OpenAI-compatible completion endpoint.
type groqClient struct {
	llm         *openai.LLM
	temperature float64
	maxTokens   int
}

func newGroqClient(cfg *config.Config) (*groqClient, error) {
	llm, err := openai.New(
		openai.WithToken(cfg.LLM.APIKey),
		openai.WithModel(cfg.LLM.Model),
		openai.WithBaseURL(cfg.LLM.BaseURL),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Groq client: %w", err)
	}

	return &groqClient{
		llm:         llm,
		temperature: cfg.LLM.Temperature,
		maxTokens:   cfg.LLM.MaxTokens,
	}, nil
}

func (c *groqClient) Complete(ctx context.Context, prompt string) (string, error) {
	result, err := llms.GenerateFromSinglePrompt(ctx, c.llm, prompt,
		llms.WithTemperature(c.temperature),
		llms.WithMaxTokens(c.maxTokens),
	)
	if err != nil {
		return "", models.SkillErrorf(models.ErrModelUnavailable, "completion request failed: %v", err)
	}

	return result, nil
}

// geminiClient talks to the Gemini API.
type geminiClient struct {
	client      *genai.Client
	model       string
	temperature float32
	maxTokens   int32
}

func newGeminiClient(cfg *config.Config) (*geminiClient, error) {
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.LLM.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiClient{
		client:      client,
		model:       cfg.LLM.Model,
		temperature: float32(cfg.LLM.Temperature),
		maxTokens:   int32(cfg.LLM.MaxTokens),
	}, nil
}

func (c *geminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	generateConfig := &genai.GenerateContentConfig{
		Temperature:     &c.temperature,
		MaxOutputTokens: c.maxTokens,
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), generateConfig)
	if err != nil {
		return "", models.SkillErrorf(models.ErrModelUnavailable, "completion request failed: %v", err)
	}

	if resp == nil || resp.Text() == "" {
		return "", models.SkillErrorf(models.ErrModelUnavailable, "empty response from model")
	}

	return resp.Text(), nil
}

// AngelaMos | 2026
// client.go

// Package gemini wraps the Google GenAI SDK behind the two calls the
// application needs: plain text generation and image-plus-text generation.
package gemini

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/RajathRavikumar/SmartAgri/internal/config"
)

type Client struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func NewClient(ctx context.Context, cfg config.GoogleConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Client{
		client:  client,
		model:   cfg.GeminiModel,
		timeout: cfg.Timeout,
	}, nil
}

// GenerateText sends a single-turn text prompt and returns the model's
// reply. An empty reply is returned as-is; callers own the defaulting.
func (c *Client) GenerateText(
	ctx context.Context,
	prompt string,
) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Models.GenerateContent(
		ctx,
		c.model,
		genai.Text(prompt),
		nil,
	)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	return resp.Text(), nil
}

// GenerateFromImage sends inline image bytes together with an instruction.
func (c *Client) GenerateFromImage(
	ctx context.Context,
	imageData []byte,
	mimeType, prompt string,
) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	content := genai.NewContentFromParts([]*genai.Part{
		genai.NewPartFromBytes(imageData, mimeType),
		genai.NewPartFromText(prompt),
	}, genai.RoleUser)

	resp, err := c.client.Models.GenerateContent(
		ctx,
		c.model,
		[]*genai.Content{content},
		nil,
	)
	if err != nil {
		return "", fmt.Errorf("generate content from image: %w", err)
	}

	return resp.Text(), nil
}

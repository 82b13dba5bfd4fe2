package backend

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sayhalo/internal/models"

	"google.golang.org/genai"
)

// GeminiClient calls the Gemini API directly.
type GeminiClient struct {
	client *genai.Client
}

func NewGeminiClient(ctx context.Context, apiKey, baseURL string) (*GeminiClient, error) {
	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiClient{client: client}, nil
}

func (c *GeminiClient) Complete(ctx context.Context, req models.ChatRequest) (string, error) {
	result, err := c.client.Models.GenerateContent(ctx, req.Settings.Model, geminiContents(req.History), geminiConfig(req.Settings))
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", &APIError{Status: apiErr.Code, Message: apiErr.Message}
		}
		var apiErrPtr *genai.APIError
		if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
			return "", &APIError{Status: apiErrPtr.Code, Message: apiErrPtr.Message}
		}
		return "", fmt.Errorf("generate content: %w", err)
	}
	if result == nil || len(result.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates", ErrMalformedResponse)
	}
	// A candidate stopped by a safety filter carries no text parts.
	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("%w: candidate has no text (finish reason %q)", ErrMalformedResponse, result.Candidates[0].FinishReason)
	}
	return text, nil
}

func geminiContents(history []models.Turn) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, t := range history {
		if t.Role == models.RoleModel {
			contents = append(contents, genai.NewContentFromText(t.Text, genai.RoleModel))
			continue
		}
		contents = append(contents, genai.NewContentFromText(t.Text, genai.RoleUser))
	}
	return contents
}

func geminiConfig(s models.Settings) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(s.Temperature)),
	}
	if si := strings.TrimSpace(s.SystemInstruction); si != "" {
		cfg.SystemInstruction = genai.NewContentFromText(si, genai.RoleUser)
	}
	return cfg
}

package backend

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sayhalo/internal/models"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const DefaultOpenAIBaseURL = "https://openrouter.ai/api/v1"

// OpenAIClient calls an OpenAI-compatible chat completions API directly.
type OpenAIClient struct {
	client openai.Client
}

func NewOpenAIClient(apiKey, baseURL string, extra ...option.RequestOption) *OpenAIClient {
	if baseURL == "" {
		baseURL = DefaultOpenAIBaseURL
	}
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
		option.WithHeader("X-Title", "SayHalo"),
	}
	opts = append(opts, extra...)
	return &OpenAIClient{client: openai.NewClient(opts...)}
}

func (c *OpenAIClient) Complete(ctx context.Context, req models.ChatRequest) (string, error) {
	var opts []option.RequestOption
	if id := RequestID(ctx); id != "" {
		opts = append(opts, option.WithHeader("X-Request-ID", id))
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       req.Settings.Model,
		Messages:    openAIMessages(req),
		Temperature: openai.Float(req.Settings.Temperature),
	}, opts...)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", &APIError{Status: apiErr.StatusCode, Message: apiErr.Error()}
		}
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty response from model", ErrMalformedResponse)
	}
	return resp.Choices[0].Message.Content, nil
}

// openAIMessages maps the transcript onto chat roles; model turns become
// assistant messages.
func openAIMessages(req models.ChatRequest) []openai.ChatCompletionMessageParamUnion {
	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.History)+1)
	if si := strings.TrimSpace(req.Settings.SystemInstruction); si != "" {
		msgs = append(msgs, openai.SystemMessage(si))
	}
	for _, t := range req.History {
		switch t.Role {
		case models.RoleUser:
			msgs = append(msgs, openai.UserMessage(t.Text))
		case models.RoleModel:
			msgs = append(msgs, openai.AssistantMessage(t.Text))
		}
	}
	return msgs
}

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"sayhalo/internal/models"
)

const maxResponseBytes = 8 << 20

type part struct {
	Text string `json:"text"`
}

// content mirrors the role/parts shape the chat endpoint hands to the model.
type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type settingsPayload struct {
	Temperature       float64 `json:"temperature"`
	Model             string  `json:"model"`
	SystemInstruction string  `json:"systemInstruction"`
}

type chatPayload struct {
	UserMessage string          `json:"userMessage"`
	History     []content       `json:"history"`
	Settings    settingsPayload `json:"settings"`
}

type chatReply struct {
	Response *string         `json:"response"`
	Error    json.RawMessage `json:"error"`
}

func encodeRequest(req models.ChatRequest) chatPayload {
	history := make([]content, 0, len(req.History))
	for _, t := range req.History {
		history = append(history, content{Role: string(t.Role), Parts: []part{{Text: t.Text}}})
	}
	return chatPayload{
		UserMessage: req.UserMessage,
		History:     history,
		Settings: settingsPayload{
			Temperature:       req.Settings.Temperature,
			Model:             req.Settings.Model,
			SystemInstruction: req.Settings.SystemInstruction,
		},
	}
}

// HTTPClient posts the transcript to a chat endpoint.
type HTTPClient struct {
	endpoint string
	client   *http.Client
}

// NewHTTPClient uses http.DefaultClient when hc is nil. Deadlines come from
// the request context.
func NewHTTPClient(endpoint string, hc *http.Client) *HTTPClient {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &HTTPClient{endpoint: endpoint, client: hc}
}

func (c *HTTPClient) Complete(ctx context.Context, req models.ChatRequest) (string, error) {
	body, err := json.Marshal(encodeRequest(req))
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if id := RequestID(ctx); id != "" {
		httpReq.Header.Set("X-Request-ID", id)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("post %s: %w", c.endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	return decodeReply(resp.StatusCode, raw)
}

func decodeReply(status int, raw []byte) (string, error) {
	var reply chatReply
	if err := json.Unmarshal(raw, &reply); err != nil {
		if status < 200 || status > 299 {
			return "", &StatusError{Status: status, Body: truncate(string(raw), 200)}
		}
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if msg, ok := errorMessage(reply.Error); ok {
		apiErr := &APIError{Message: msg}
		if status < 200 || status > 299 {
			apiErr.Status = status
		}
		return "", apiErr
	}
	if status < 200 || status > 299 {
		return "", &StatusError{Status: status, Body: truncate(string(raw), 200)}
	}
	if reply.Response == nil {
		return "", fmt.Errorf("%w: missing response field", ErrMalformedResponse)
	}
	return *reply.Response, nil
}

// errorMessage accepts both {"error": "text"} and structured error objects.
func errorMessage(raw json.RawMessage) (string, bool) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" || trimmed == "false" || trimmed == `""` {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}
	var obj struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && obj.Message != "" {
		return obj.Message, true
	}
	return trimmed, true
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

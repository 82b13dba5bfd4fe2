// Package backend issues the single outbound chat call made for each user
// turn. The default transport posts the transcript to a chat endpoint; the
// openai and gemini transports call a model API directly with the same
// request shape.
package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"sayhalo/internal/chat"
	"sayhalo/internal/models"
)

// Completer returns the raw, unsanitized model text for one request.
type Completer interface {
	Complete(ctx context.Context, req models.ChatRequest) (string, error)
}

const (
	KindHTTP   = "http"
	KindOpenAI = "openai"
	KindGemini = "gemini"
)

var ErrMalformedResponse = errors.New("malformed response")

// APIError is an application-level failure reported by the backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("backend error (status %d): %s", e.Status, e.Message)
	}
	return "backend error: " + e.Message
}

// StatusError is a non-2xx reply that carried no error body.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d %s", e.Status, http.StatusText(e.Status))
}

// Kind buckets an error for logging and display.
type Kind int

const (
	KindNone Kind = iota
	KindValidation
	KindTransport
	KindApplication
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindValidation:
		return "validation"
	case KindTransport:
		return "transport"
	case KindApplication:
		return "application"
	}
	return "unknown"
}

func Classify(err error) Kind {
	if err == nil {
		return KindNone
	}
	if errors.Is(err, chat.ErrEmptyMessage) || errors.Is(err, chat.ErrBusy) {
		return KindValidation
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return KindApplication
	}
	return KindTransport
}

type requestIDKey struct{}

// WithRequestID tags ctx so transports can forward the id upstream.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// Options selects and configures a transport.
type Options struct {
	Kind     string
	Endpoint string
	BaseURL  string
	APIKey   string
}

func New(ctx context.Context, opts Options) (Completer, error) {
	switch opts.Kind {
	case "", KindHTTP:
		if opts.Endpoint == "" {
			return nil, errors.New("http backend requires an endpoint")
		}
		return NewHTTPClient(opts.Endpoint, nil), nil
	case KindOpenAI:
		if opts.APIKey == "" {
			return nil, errors.New("openai backend requires an API key")
		}
		return NewOpenAIClient(opts.APIKey, opts.BaseURL), nil
	case KindGemini:
		if opts.APIKey == "" {
			return nil, errors.New("gemini backend requires an API key")
		}
		return NewGeminiClient(ctx, opts.APIKey, opts.BaseURL)
	}
	return nil, fmt.Errorf("unknown backend %q", opts.Kind)
}

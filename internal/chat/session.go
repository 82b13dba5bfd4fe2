// Package chat holds the submit/receive protocol for a single chat session.
//
// A Session is plain state: it never starts goroutines and never performs
// I/O. The caller issues the outbound request described by Submit and feeds
// the outcome back through Resolve, which keeps every state transition on
// the caller's event loop.
package chat

import (
	"errors"
	"slices"
	"strings"

	"sayhalo/internal/models"
	"sayhalo/internal/sanitize"

	"github.com/google/uuid"
)

var (
	ErrEmptyMessage = errors.New("message is empty")
	ErrBusy         = errors.New("a request is already in flight")
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAwaitingResponse
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAwaitingResponse:
		return "awaiting_response"
	}
	return "unknown"
}

// Request identifies one accepted submission and carries its payload.
type Request struct {
	ID         string
	Generation uint64
	Payload    models.ChatRequest
}

// Result is the explicit outcome of an outbound call.
type Result struct {
	Text string
	Err  error
}

func Success(text string) Result { return Result{Text: text} }
func Failure(err error) Result   { return Result{Err: err} }

func (r Result) OK() bool { return r.Err == nil }

// Outcome reports what Resolve did with a result.
type Outcome struct {
	// Turn is the appended model turn when Applied is true.
	Turn    models.Turn
	Applied bool
	// Stale is set when the transcript was reset while the request was in flight.
	Stale bool
	// Ignored is set when the request is not the one in flight.
	Ignored bool
	Err     error
}

type Session struct {
	transcript []models.Turn
	settings   models.Settings
	pending    *Request
	generation uint64
	newID      func() string
}

func NewSession(settings models.Settings) *Session {
	return &Session{
		transcript: []models.Turn{},
		settings:   settings,
		newID:      uuid.NewString,
	}
}

// Submit appends a user turn and returns the request to send. Empty input
// and submissions while a request is in flight leave the session untouched.
func (s *Session) Submit(text string) (Request, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Request{}, ErrEmptyMessage
	}
	if s.pending != nil {
		return Request{}, ErrBusy
	}

	s.transcript = append(s.transcript, models.UserTurn(text))
	req := Request{
		ID:         s.newID(),
		Generation: s.generation,
		Payload: models.ChatRequest{
			UserMessage: text,
			History:     slices.Clone(s.transcript),
			Settings:    s.settings,
		},
	}
	s.pending = &req
	return req, nil
}

// Resolve applies the result of the in-flight request.
func (s *Session) Resolve(req Request, res Result) Outcome {
	if s.pending == nil || s.pending.ID != req.ID {
		return Outcome{Ignored: true, Err: res.Err}
	}
	s.pending = nil

	if req.Generation != s.generation {
		return Outcome{Stale: true, Err: res.Err}
	}
	if !res.OK() {
		return Outcome{Err: res.Err}
	}

	turn := models.ModelTurn(sanitize.Response(res.Text))
	s.transcript = append(s.transcript, turn)
	return Outcome{Turn: turn, Applied: true}
}

// Reset clears the transcript. An in-flight request keeps the session busy
// until it resolves; its reply is then discarded.
func (s *Session) Reset() {
	s.transcript = []models.Turn{}
	s.generation++
}

func (s *Session) SaveSettings(settings models.Settings) {
	s.settings = settings
}

func (s *Session) Settings() models.Settings {
	return s.settings
}

func (s *Session) Transcript() []models.Turn {
	return slices.Clone(s.transcript)
}

func (s *Session) Len() int {
	return len(s.transcript)
}

func (s *Session) Phase() Phase {
	if s.pending != nil {
		return PhaseAwaitingResponse
	}
	return PhaseIdle
}

func (s *Session) Loading() bool {
	return s.pending != nil
}

// Pending returns the in-flight request, if any.
func (s *Session) Pending() (Request, bool) {
	if s.pending == nil {
		return Request{}, false
	}
	return *s.pending, true
}

// ShowLanding reports whether the landing panel replaces the transcript.
func (s *Session) ShowLanding() bool {
	return len(s.transcript) == 0
}

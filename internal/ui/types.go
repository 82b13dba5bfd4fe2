package ui

import (
	"log/slog"
	"time"

	"sayhalo/internal/backend"
	"sayhalo/internal/chat"
	"sayhalo/internal/models"
	"sayhalo/internal/styles"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
)

const (
	AppName        = "SayHalo"
	AssistantName  = "AssistAI"
	MaxInputHeight = 6
	ClockInterval  = time.Minute
	ClockFormat    = "15:04"

	DefaultModalWidth = 64
	minModalWidth     = 30
)

type ExamplePrompt struct {
	Title    string
	Subtitle string
	Prompt   string
}

var ExamplePrompts = []ExamplePrompt{
	{Title: "Wanderlust Destinations 2025", Subtitle: "Must-Visit Places", Prompt: "Tell me about top travel destinations in 2025."},
	{Title: "AssistAI: What Sets Us Apart", Subtitle: "Key Differentiators", Prompt: "What makes AssistAI special?"},
	{Title: "Design Trends on Instagram 2025", Subtitle: "Trending Now", Prompt: "What are trending design styles on Instagram in 2025?"},
}

// ResponseMsg carries the outcome of the outbound call for Request.
type ResponseMsg struct {
	Request chat.Request
	Result  chat.Result
}

type ClockMsg time.Time

type themeSavedMsg struct {
	Theme models.Theme
	Err   error
}

// ThemeStore persists the theme name between runs.
type ThemeStore interface {
	LoadTheme() (string, bool, error)
	SaveTheme(theme string) error
}

type Options struct {
	Completer backend.Completer
	Settings  models.Settings
	Theme     models.Theme
	Themes    ThemeStore
	Logger    *slog.Logger
	// RequestTimeout bounds each outbound call; zero disables the deadline.
	RequestTimeout time.Duration
	ShowErrors     bool
	Now            func() time.Time
}

type Model struct {
	Session        *chat.Session
	Completer      backend.Completer
	Themes         ThemeStore
	Log            *slog.Logger
	RequestTimeout time.Duration
	ShowErrors     bool
	Now            func() time.Time

	Viewport  viewport.Model
	TextInput textarea.Model
	Spinner   spinner.Model
	Renderer  *glamour.TermRenderer
	Styles    styles.Styles
	Keys      KeyMap

	SettingsPanel SettingsPanel
	SettingsOpen  bool
	HelpOpen      bool
	DarkMode      bool

	Clock          time.Time
	SelectedPrompt int
	LastErr        error

	WindowWidth  int
	WindowHeight int
	// ModalWidth and ContentWidth size the overlays; resize derives them
	// from the window.
	ModalWidth   int
	ContentWidth int
}

package ui

import (
	"io"
	"log/slog"
	"time"

	"sayhalo/internal/chat"
	"sayhalo/internal/models"
	"sayhalo/internal/styles"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// TypingDots is the three-dot typing indicator.
var TypingDots = spinner.Spinner{
	Frames: []string{"●∙∙", "∙●∙", "∙∙●", "∙∙∙"},
	FPS:    time.Second / 4,
}

// ResolveTheme prefers the persisted theme and falls back when the store is
// missing, empty or unreadable.
func ResolveTheme(store ThemeStore, fallback models.Theme, log *slog.Logger) models.Theme {
	if store == nil {
		return fallback
	}
	raw, ok, err := store.LoadTheme()
	if err != nil {
		if log != nil {
			log.Warn("load theme preference", "error", err)
		}
		return fallback
	}
	if !ok {
		return fallback
	}
	theme, valid := models.ParseTheme(raw)
	if !valid {
		if log != nil {
			log.Warn("ignoring unknown theme preference", "value", raw)
		}
		return fallback
	}
	return theme
}

func NewModel(opts Options) *Model {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	theme := opts.Theme
	if theme == "" {
		theme = styles.DetectTheme()
	}

	ti := textarea.New()
	ti.Placeholder = "Type your prompt here..."
	ti.Prompt = "❯ "
	ti.ShowLineNumbers = false
	ti.CharLimit = 0
	ti.MaxHeight = MaxInputHeight
	ti.SetHeight(1)
	ti.SetWidth(80)
	ti.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ti.BlurredStyle.CursorLine = lipgloss.NewStyle()
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = TypingDots

	m := &Model{
		Session:        chat.NewSession(opts.Settings),
		Completer:      opts.Completer,
		Themes:         opts.Themes,
		Log:            log,
		RequestTimeout: opts.RequestTimeout,
		ShowErrors:     opts.ShowErrors,
		Now:            now,
		Viewport:       viewport.New(78, 15),
		TextInput:      ti,
		Spinner:        sp,
		Keys:           DefaultKeyMap(),
		SettingsPanel:  NewSettingsPanel(),
		DarkMode:       theme == models.ThemeDark,
		Clock:          now(),
		SelectedPrompt: -1,
		ModalWidth:     DefaultModalWidth,
		ContentWidth:   DefaultModalWidth - 8,
	}
	m.applyTheme()
	m.resize(80, 24)
	return m
}

func (m *Model) Theme() models.Theme {
	if m.DarkMode {
		return models.ThemeDark
	}
	return models.ThemeLight
}

// applyTheme rebuilds everything that captures theme colors.
func (m *Model) applyTheme() {
	m.Styles = styles.New(styles.ThemeFor(m.Theme()))
	t := m.Styles.Theme

	prompt := lipgloss.NewStyle().Foreground(t.Secondary).Bold(true)
	placeholder := lipgloss.NewStyle().Foreground(t.TextMuted)
	m.TextInput.FocusedStyle.Prompt = prompt
	m.TextInput.BlurredStyle.Prompt = prompt.Foreground(t.TextMuted)
	m.TextInput.FocusedStyle.Placeholder = placeholder
	m.TextInput.BlurredStyle.Placeholder = placeholder
	m.TextInput.FocusedStyle.Text = lipgloss.NewStyle().Foreground(t.TextPrimary)
	m.TextInput.BlurredStyle.Text = lipgloss.NewStyle().Foreground(t.TextSecondary)
	m.Spinner.Style = lipgloss.NewStyle().Foreground(t.Accent)

	m.buildRenderer()
	m.UpdateViewport()
}

func (m *Model) buildRenderer() {
	wrap := m.ContentWidth
	if wrap < 20 {
		wrap = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.Styles.Theme.Markdown),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		m.Log.Warn("build markdown renderer", "error", err)
		m.Renderer = nil
		return
	}
	m.Renderer = r
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		clockTick(),
	)
}

func clockTick() tea.Cmd {
	return tea.Tick(ClockInterval, func(t time.Time) tea.Msg {
		return ClockMsg(t)
	})
}

func NewProgram(m *Model) *tea.Program {
	return tea.NewProgram(m, tea.WithAltScreen())
}

package ui

import (
	"context"
	"fmt"
	"time"

	"sayhalo/internal/backend"
	"sayhalo/internal/chat"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.Session.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		m.UpdateViewport()
		return m, cmd

	case ClockMsg:
		m.Clock = time.Time(msg)
		return m, clockTick()

	case ResponseMsg:
		return m, m.handleResponse(msg)

	case themeSavedMsg:
		if msg.Err != nil {
			m.Log.Warn("save theme preference", "theme", msg.Theme, "error", msg.Err)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.Keys.Quit) {
		return tea.Quit
	}

	if m.SettingsOpen {
		return m.handleSettingsKey(msg)
	}

	if m.HelpOpen {
		switch msg.String() {
		case "esc", "enter", "f1", "ctrl+g", "q":
			m.HelpOpen = false
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.Keys.Settings):
		m.SettingsOpen = true
		m.HelpOpen = false
		return m.SettingsPanel.Open(m.Session.Settings())

	case key.Matches(msg, m.Keys.Help):
		m.HelpOpen = true
		return nil

	case key.Matches(msg, m.Keys.Theme):
		return m.toggleTheme()

	case key.Matches(msg, m.Keys.NewChat):
		m.resetChat()
		return nil

	case key.Matches(msg, m.Keys.ScrollUp), key.Matches(msg, m.Keys.ScrollDown):
		var cmd tea.Cmd
		m.Viewport, cmd = m.Viewport.Update(msg)
		return cmd
	}

	// The composer is disabled while a reply is outstanding.
	if m.Session.Loading() {
		return nil
	}

	if isNewlineShortcut(m.Keys, msg) {
		m.TextInput.InsertString("\n")
		m.updateInputLayout()
		return nil
	}

	landingPick := m.Session.ShowLanding() && m.TextInput.Value() == ""

	switch {
	case key.Matches(msg, m.Keys.Clear):
		if m.TextInput.Value() != "" {
			m.TextInput.Reset()
			m.updateInputLayout()
		}
		m.SelectedPrompt = -1
		return nil

	case landingPick && key.Matches(msg, m.Keys.PrevPrompt):
		m.SelectedPrompt = NextIndex(m.SelectedPrompt, -1, len(ExamplePrompts))
		return nil

	case landingPick && key.Matches(msg, m.Keys.NextPrompt):
		m.SelectedPrompt = NextIndex(m.SelectedPrompt, 1, len(ExamplePrompts))
		return nil

	case key.Matches(msg, m.Keys.Send):
		input := m.TextInput.Value()
		if landingPick && m.SelectedPrompt >= 0 && m.SelectedPrompt < len(ExamplePrompts) {
			return m.submit(ExamplePrompts[m.SelectedPrompt].Prompt)
		}
		if IsResetCommand(input) {
			m.resetChat()
			return nil
		}
		return m.submit(input)
	}

	var cmd tea.Cmd
	m.TextInput, cmd = m.TextInput.Update(msg)
	m.updateInputLayout()
	return cmd
}

func (m *Model) handleSettingsKey(msg tea.KeyMsg) tea.Cmd {
	action, cmd := m.SettingsPanel.Update(msg)
	switch action {
	case settingsCancel:
		m.SettingsOpen = false
		return nil
	case settingsSave:
		settings, err := m.SettingsPanel.Values()
		if err != nil {
			m.SettingsPanel.Err = err.Error()
			return nil
		}
		m.Session.SaveSettings(settings)
		m.SettingsOpen = false
		m.Log.Info("settings saved",
			"model", settings.Model,
			"temperature", settings.Temperature,
		)
		return nil
	}
	return cmd
}

// submit hands text to the session and, when accepted, starts the outbound
// call. Rejected input stays in the composer.
func (m *Model) submit(text string) tea.Cmd {
	req, err := m.Session.Submit(text)
	if err != nil {
		m.Log.Debug("submit rejected", "reason", err, "kind", backend.Classify(err))
		return nil
	}

	m.LastErr = nil
	m.SelectedPrompt = -1
	m.TextInput.Reset()
	m.TextInput.Blur()
	m.updateInputLayout()
	m.UpdateViewport()

	m.Log.Info("request issued",
		"request_id", req.ID,
		"model", req.Payload.Settings.Model,
		"turns", len(req.Payload.History),
		"prompt", PromptPreview(req.Payload.UserMessage, 80),
	)
	return tea.Batch(m.sendCmd(req), m.Spinner.Tick)
}

func (m *Model) sendCmd(req chat.Request) tea.Cmd {
	completer := m.Completer
	timeout := m.RequestTimeout
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = ResponseMsg{Request: req, Result: chat.Failure(fmt.Errorf("backend panic: %v", r))}
			}
		}()

		if completer == nil {
			return ResponseMsg{Request: req, Result: chat.Failure(fmt.Errorf("no backend configured"))}
		}

		ctx := backend.WithRequestID(context.Background(), req.ID)
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		text, err := completer.Complete(ctx, req.Payload)
		if err != nil {
			return ResponseMsg{Request: req, Result: chat.Failure(err)}
		}
		return ResponseMsg{Request: req, Result: chat.Success(text)}
	}
}

func (m *Model) handleResponse(msg ResponseMsg) tea.Cmd {
	out := m.Session.Resolve(msg.Request, msg.Result)
	id := msg.Request.ID

	switch {
	case out.Ignored:
		m.Log.Debug("ignored reply for unknown request", "request_id", id)
	case out.Stale:
		m.Log.Info("discarded reply for a cleared chat", "request_id", id, "error", out.Err)
	case out.Err != nil:
		m.Log.Error("chat request failed",
			"request_id", id,
			"kind", backend.Classify(out.Err).String(),
			"error", out.Err,
		)
		m.LastErr = out.Err
	case out.Applied:
		m.Log.Info("reply received", "request_id", id, "chars", len(out.Turn.Text))
	}

	m.UpdateViewport()
	if m.Session.Loading() {
		return nil
	}
	return m.TextInput.Focus()
}

func (m *Model) resetChat() {
	m.Session.Reset()
	m.LastErr = nil
	m.SelectedPrompt = -1
	m.TextInput.Reset()
	m.updateInputLayout()
	m.UpdateViewport()
	m.Viewport.GotoTop()
	m.Log.Info("new chat started")
}

func (m *Model) toggleTheme() tea.Cmd {
	m.DarkMode = !m.DarkMode
	m.applyTheme()

	theme := m.Theme()
	store := m.Themes
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		return themeSavedMsg{Theme: theme, Err: store.SaveTheme(string(theme))}
	}
}

func (m *Model) resize(width, height int) {
	m.WindowWidth = width
	m.WindowHeight = height

	m.ModalWidth = width - 10
	if m.ModalWidth > DefaultModalWidth {
		m.ModalWidth = DefaultModalWidth
	}
	if m.ModalWidth < minModalWidth {
		m.ModalWidth = minModalWidth
	}
	m.ContentWidth = m.ModalWidth - 8
	m.SettingsPanel.SetWidth(m.ContentWidth - 4)

	m.Viewport.Width = width - 4
	m.updateInputLayout()
	m.buildRenderer()
	m.UpdateViewport()
}

func (m *Model) updateInputLayout() {
	if m.WindowWidth == 0 || m.WindowHeight == 0 {
		return
	}

	inputWidth := m.WindowWidth - 6
	if inputWidth < 20 {
		inputWidth = 20
	}
	contentWidth := inputWidth - 2
	if contentWidth < 1 {
		contentWidth = 1
	}

	lineCount := WrappedLineCount(m.TextInput.Value(), contentWidth)
	if lineCount < 1 {
		lineCount = 1
	}
	if lineCount > MaxInputHeight {
		lineCount = MaxInputHeight
	}

	m.TextInput.MaxHeight = MaxInputHeight
	m.TextInput.SetWidth(inputWidth)
	m.TextInput.SetHeight(lineCount)

	// title, spacers, input border and bottom bar
	reserved := m.TextInput.Height() + 2 + 6
	viewportHeight := m.WindowHeight - reserved
	if viewportHeight < 5 {
		viewportHeight = 5
	}
	m.Viewport.Height = viewportHeight
}

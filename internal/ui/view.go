package ui

import (
	"fmt"
	"strings"

	"sayhalo/internal/models"

	"github.com/charmbracelet/lipgloss"
)

func (m *Model) RenderHelpModal() string {
	title := m.Styles.ModalTitle.Render("Help")
	body := m.renderMarkdown(m.Keys.HelpMarkdown())
	hint := m.Styles.Hint.
		Width(m.ContentWidth).
		PaddingTop(1).
		Render("Esc/Enter: close")
	return lipgloss.JoinVertical(lipgloss.Left, title, body, hint)
}

func (m *Model) RenderBottomBar() string {
	st := m.Styles
	badge := st.BarBadge.Render(strings.ToUpper(AppName))

	settings := m.Session.Settings()
	name := settings.Model
	if mdl, _, ok := models.FindModelByID(settings.Model); ok {
		name = mdl.Name
	}
	if name == "" {
		name = "(no model)"
	}
	model := st.BarModel.Render(TruncateWidth(name, 25))
	temp := st.Info.Render(fmt.Sprintf("temp %.1f", settings.Temperature))

	status := st.Info.Render("ready")
	if m.Session.Loading() {
		status = st.Typing.UnsetPaddingLeft().Render("thinking " + m.Spinner.View())
	}
	theme := st.Info.Render(string(m.Theme()))
	help := st.Hint.Render("Help: F1")

	leftSide := lipgloss.JoinHorizontal(lipgloss.Center, badge, "  ", model, "  ", temp)
	rightSide := lipgloss.JoinHorizontal(lipgloss.Center, status, "  ", theme, "  ", help)

	availableWidth := m.WindowWidth - lipgloss.Width(leftSide) - lipgloss.Width(rightSide) - 2
	if availableWidth < 0 {
		availableWidth = 0
	}
	spacer := strings.Repeat(" ", availableWidth)

	bar := lipgloss.JoinHorizontal(lipgloss.Center, leftSide, spacer, rightSide)

	return lipgloss.NewStyle().
		Width(m.WindowWidth).
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(st.BarBorder).
		Padding(0, 1).
		Render(bar)
}

// UpdateViewport rebuilds the transcript content and scrolls to the newest turn.
func (m *Model) UpdateViewport() {
	st := m.Styles
	width := m.Viewport.Width

	parts := make([]string, 0, m.Session.Len()+2)
	for _, turn := range m.Session.Transcript() {
		parts = append(parts, FormatTurn(st, turn, width))
	}
	if m.Session.Loading() {
		label := st.AiLabel.Render(strings.ToUpper(AssistantName))
		parts = append(parts, label+"\n"+st.Typing.Render(m.Spinner.View()))
	}
	if m.ShowErrors && m.LastErr != nil {
		parts = append(parts, st.Error.Width(width).Render("Error: "+m.LastErr.Error()))
	}

	m.Viewport.SetContent(strings.Join(parts, "\n\n"))
	m.Viewport.GotoBottom()
}

func (m *Model) View() string {
	st := m.Styles

	inputWidth := m.WindowWidth - 4
	box := st.InputBox
	if m.Session.Loading() {
		box = st.InputBoxOff
	}
	inputBox := box.Width(inputWidth).Render(m.TextInput.View())

	var body string
	if m.Session.ShowLanding() {
		body = m.RenderLanding(m.Viewport.Width, m.Viewport.Height)
	} else {
		body = m.Viewport.View()
	}

	chatContent := lipgloss.JoinVertical(lipgloss.Center,
		st.Title.Render(AppName),
		"",
		body,
		"",
		inputBox,
	)
	chatArea := lipgloss.PlaceHorizontal(m.WindowWidth, lipgloss.Center, chatContent)
	content := lipgloss.JoinVertical(lipgloss.Left, chatArea, m.RenderBottomBar())

	switch {
	case m.SettingsOpen:
		return m.overlay(m.SettingsPanel.View(st, m.ContentWidth))
	case m.HelpOpen:
		return m.overlay(m.RenderHelpModal())
	}
	return content
}

func (m *Model) overlay(inner string) string {
	modal := m.Styles.Modal.Width(m.ModalWidth).Render(inner)
	return lipgloss.Place(
		m.WindowWidth,
		m.WindowHeight,
		lipgloss.Center,
		lipgloss.Center,
		modal,
	)
}

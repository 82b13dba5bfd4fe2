package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const landingIntro = "> Ready to assist you with anything you need, from answering questions to providing recommendations. Let's get started!"

func (m *Model) RenderLanding(width, height int) string {
	st := m.Styles

	themeLabel := "☀ light"
	if m.DarkMode {
		themeLabel = "☾ dark"
	}
	status := st.Clock.Render(m.Clock.Format(ClockFormat) + "  ·  " + themeLabel + " (ctrl+t)")

	title := st.HeroTitle.Render("✦ " + AppName)
	greeting := st.HeroGreeting.Render("Hi, I'm " + AssistantName + " - Your Digital Assistant")
	subtitle := st.HeroSubtitle.Render("How can I help you today?")
	intro := m.renderMarkdown(landingIntro)

	cards := make([]string, len(ExamplePrompts))
	for i, p := range ExamplePrompts {
		style := st.Card
		if i == m.SelectedPrompt {
			style = st.CardSelected
		}
		body := lipgloss.JoinVertical(lipgloss.Left,
			st.CardTag.Render(p.Subtitle),
			p.Title,
		)
		cards[i] = style.Render(body)
	}
	cardRow := lipgloss.JoinHorizontal(lipgloss.Top, joinWithGap(cards, " ")...)
	if lipgloss.Width(cardRow) > width {
		cardRow = lipgloss.JoinVertical(lipgloss.Center, cards...)
	}

	hint := st.Hint.Render("↑/↓ pick an example • Enter to send")

	content := lipgloss.JoinVertical(lipgloss.Center,
		status,
		"",
		title,
		"",
		greeting,
		subtitle,
		intro,
		"",
		cardRow,
		"",
		hint,
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) renderMarkdown(md string) string {
	if m.Renderer == nil {
		return md
	}
	out, err := m.Renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}

func joinWithGap(items []string, gap string) []string {
	out := make([]string, 0, len(items)*2)
	for i, it := range items {
		if i > 0 {
			out = append(out, gap)
		}
		out = append(out, it)
	}
	return out
}

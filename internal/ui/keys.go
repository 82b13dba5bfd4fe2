package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type KeyMap struct {
	Send       key.Binding
	Newline    key.Binding
	Clear      key.Binding
	Settings   key.Binding
	Theme      key.Binding
	NewChat    key.Binding
	Help       key.Binding
	PrevPrompt key.Binding
	NextPrompt key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Quit       key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Send: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "Send message"),
		),
		Newline: key.NewBinding(
			key.WithKeys("shift+enter", "shift+return", "alt+enter", "ctrl+j"),
			key.WithHelp("Alt+Enter / Ctrl+J", "Insert newline"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "Clear input"),
		),
		Settings: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("Ctrl+S", "Open settings"),
		),
		Theme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("Ctrl+T", "Toggle light/dark theme"),
		),
		NewChat: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("Ctrl+N", "New chat (also /new)"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1", "ctrl+g"),
			key.WithHelp("F1 / Ctrl+G", "Keyboard shortcuts"),
		),
		PrevPrompt: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "Previous example prompt"),
		),
		NextPrompt: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "Next example prompt"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "Scroll transcript up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "Scroll transcript down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "Quit"),
		),
	}
}

func (k KeyMap) all() []key.Binding {
	return []key.Binding{
		k.Send, k.Newline, k.Clear, k.Settings, k.Theme, k.NewChat,
		k.Help, k.PrevPrompt, k.NextPrompt, k.ScrollUp, k.ScrollDown, k.Quit,
	}
}

// HelpMarkdown lists the bindings as a markdown table for the help modal.
func (k KeyMap) HelpMarkdown() string {
	var sb strings.Builder
	sb.WriteString("# Keyboard Shortcuts\n\n")
	sb.WriteString("| Key | Action |\n|---|---|\n")
	for _, b := range k.all() {
		h := b.Help()
		sb.WriteString(fmt.Sprintf("| %s | %s |\n", h.Key, h.Desc))
	}
	sb.WriteString("\nIn settings: Tab moves between fields, ↑/↓ cycles models, Enter saves, Esc cancels.\n")
	return sb.String()
}

func isNewlineShortcut(k KeyMap, msg tea.KeyMsg) bool {
	return key.Matches(msg, k.Newline)
}

package styles

import "github.com/charmbracelet/lipgloss"

// Styles is the set of lipgloss styles derived from one Theme.
type Styles struct {
	Theme Theme

	Title       lipgloss.Style
	Info        lipgloss.Style
	UserLabel   lipgloss.Style
	UserMsg     lipgloss.Style
	AiLabel     lipgloss.Style
	AiMsg       lipgloss.Style
	Typing      lipgloss.Style
	Error       lipgloss.Style
	InputBox    lipgloss.Style
	InputBoxOff lipgloss.Style

	HeroTitle    lipgloss.Style
	HeroGreeting lipgloss.Style
	HeroSubtitle lipgloss.Style
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardTag      lipgloss.Style
	Clock        lipgloss.Style

	Modal         lipgloss.Style
	ModalTitle    lipgloss.Style
	ModalLabel    lipgloss.Style
	ModalFocused  lipgloss.Style
	FieldBox      lipgloss.Style
	FieldBoxFocus lipgloss.Style

	Hint      lipgloss.Style
	BarModel  lipgloss.Style
	BarBadge  lipgloss.Style
	BarBorder lipgloss.Color
}

func New(t Theme) Styles {
	return Styles{
		Theme: t,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary).
			Padding(0, 1),

		Info: lipgloss.NewStyle().
			Foreground(t.TextMuted),

		UserLabel: lipgloss.NewStyle().
			Foreground(t.TextOnPrimary).
			Background(t.Primary).
			Bold(true).
			Padding(0, 1).
			MarginRight(1),

		UserMsg: lipgloss.NewStyle().
			Foreground(t.TextPrimary).
			PaddingLeft(2).
			BorderLeft(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(t.Primary),

		AiLabel: lipgloss.NewStyle().
			Foreground(t.TextOnPrimary).
			Background(t.Accent).
			Bold(true).
			Padding(0, 1).
			MarginRight(1),

		AiMsg: lipgloss.NewStyle().
			Foreground(t.TextPrimary).
			PaddingLeft(2).
			BorderLeft(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(t.Accent),

		Typing: lipgloss.NewStyle().
			Foreground(t.TextSecondary).
			PaddingLeft(2),

		Error: lipgloss.NewStyle().
			Foreground(t.Error).
			Bold(true),

		InputBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Primary).
			Padding(0, 1),

		InputBoxOff: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),

		HeroTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Secondary),

		HeroGreeting: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary),

		HeroSubtitle: lipgloss.NewStyle().
			Foreground(t.TextSecondary).
			Italic(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Foreground(t.TextPrimary).
			Padding(0, 1).
			Width(34),

		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Accent).
			Foreground(t.TextPrimary).
			Bold(true).
			Padding(0, 1).
			Width(34),

		CardTag: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		Clock: lipgloss.NewStyle().
			Foreground(t.TextMuted),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Secondary).
			Padding(1, 2),

		ModalTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Secondary).
			MarginBottom(1),

		ModalLabel: lipgloss.NewStyle().
			Foreground(t.TextSecondary),

		ModalFocused: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		FieldBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),

		FieldBoxFocus: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(t.Primary).
			Padding(0, 1),

		Hint: lipgloss.NewStyle().
			Foreground(t.TextMuted),

		BarModel: lipgloss.NewStyle().
			Foreground(t.Secondary),

		BarBadge: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.TextOnPrimary).
			Background(t.Primary).
			Padding(0, 1),

		BarBorder: t.Border,
	}
}

package ui

import (
	"fmt"
	"strings"

	"sayhalo/internal/models"
	"sayhalo/internal/styles"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

func WrappedLineCount(value string, width int) int {
	if width <= 0 {
		return 1
	}
	lines := strings.Split(value, "\n")
	if len(lines) == 0 {
		return 1
	}
	count := 0
	for _, line := range lines {
		w := runewidth.StringWidth(line)
		if w == 0 {
			count++
			continue
		}
		count += (w-1)/width + 1
	}
	return count
}

// PromptPreview flattens s to one line for log fields.
func PromptPreview(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	return TruncateWidth(s, max)
}

func TruncateWidth(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= max {
		return s
	}
	return truncate.StringWithTail(s, uint(max), "…")
}

// IsResetCommand reports whether typed input asks for a new chat.
func IsResetCommand(input string) bool {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "/new", "/clear", "/reset":
		return true
	}
	return false
}

func FormatUserMessage(st styles.Styles, content string, width int) string {
	label := st.UserLabel.Render("YOU")
	msg := st.UserMsg.Render(wordwrap.String(content, bodyWidth(width)))
	return fmt.Sprintf("%s\n%s", label, msg)
}

func FormatModelMessage(st styles.Styles, content string, width int) string {
	label := st.AiLabel.Render(strings.ToUpper(AssistantName))
	msg := st.AiMsg.Render(wordwrap.String(content, bodyWidth(width)))
	return fmt.Sprintf("%s\n%s", label, msg)
}

func FormatTurn(st styles.Styles, turn models.Turn, width int) string {
	if turn.Role == models.RoleUser {
		return FormatUserMessage(st, turn.Text, width)
	}
	return FormatModelMessage(st, turn.Text, width)
}

// bodyWidth leaves room for the left border and padding of message bodies.
func bodyWidth(width int) int {
	w := width - 4
	if w < 10 {
		w = 10
	}
	return w
}

// NextIndex steps i through n items, wrapping. A negative i means nothing is
// selected yet.
func NextIndex(i, delta, n int) int {
	if n == 0 {
		return -1
	}
	if i < 0 {
		if delta < 0 {
			return n - 1
		}
		return 0
	}
	return ((i+delta)%n + n) % n
}

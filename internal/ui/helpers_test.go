package ui

import (
	"strings"
	"testing"

	"sayhalo/internal/models"
	"sayhalo/internal/styles"

	"github.com/stretchr/testify/assert"
)

func TestWrappedLineCount(t *testing.T) {
	assert.Equal(t, 1, WrappedLineCount("", 10))
	assert.Equal(t, 1, WrappedLineCount("short", 10))
	assert.Equal(t, 2, WrappedLineCount("exactly ten chars!", 10))
	assert.Equal(t, 3, WrappedLineCount("a\n\nb", 10))
	assert.Equal(t, 1, WrappedLineCount("anything", 0))
}

func TestNextIndex(t *testing.T) {
	assert.Equal(t, 0, NextIndex(-1, 1, 3))
	assert.Equal(t, 2, NextIndex(-1, -1, 3))
	assert.Equal(t, 0, NextIndex(2, 1, 3))
	assert.Equal(t, 2, NextIndex(0, -1, 3))
	assert.Equal(t, -1, NextIndex(0, 1, 0))
}

func TestIsResetCommand(t *testing.T) {
	for _, in := range []string{"/new", "/clear", " /reset ", "/NEW"} {
		assert.True(t, IsResetCommand(in), in)
	}
	for _, in := range []string{"", "new", "/news", "please /clear"} {
		assert.False(t, IsResetCommand(in), in)
	}
}

func TestTruncateWidth(t *testing.T) {
	assert.Equal(t, "short", TruncateWidth("short", 10))
	assert.Equal(t, "", TruncateWidth("short", 0))
	got := TruncateWidth("a much longer model name", 10)
	assert.LessOrEqual(t, len([]rune(got)), 10)
	assert.True(t, strings.HasSuffix(got, "…"))
}

func TestPromptPreview(t *testing.T) {
	assert.Equal(t, "one two three", PromptPreview("  one\ntwo\t three ", 80))
}

func TestFormatTurnWrapsLongText(t *testing.T) {
	st := styles.New(styles.LightTheme)
	long := strings.Repeat("word ", 40)
	out := FormatTurn(st, models.ModelTurn(long), 40)

	lines := strings.Split(out, "\n")
	assert.Greater(t, len(lines), 3)
	assert.Contains(t, lines[0], strings.ToUpper(AssistantName))

	user := FormatTurn(st, models.UserTurn("hi"), 40)
	assert.Contains(t, user, "YOU")
	assert.Contains(t, user, "hi")
}

package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "just text", "just text"},
		{"bold then blank lines", "**Hi!**\n\n\nHow are you?", "Hi!\nHow are you?"},
		{"italic", "an *important* word", "an important word"},
		{"odd asterisks", "***wow***", "wow"},
		{"headers", "## Title\n### Sub", "Title\n Sub"},
		{"code fence", "```go\nfmt.Println()\n```", "go\nfmt.Println()"},
		{"inline code", "use `go test` here", "use go test here"},
		{"surrounding whitespace", "  \n\nhello\n\n  ", "hello"},
		{"only markup", "**##``**", ""},
		{"single newlines kept", "a\nb\nc", "a\nb\nc"},
		{"bullets", "* one\n* two", "one\n two"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Response(tc.in))
		})
	}
}

func TestResponseIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"**Hi!**\n\n\nHow are you?",
		"# Heading\n\n\n\n* a\n* b\n\n```\ncode\n```",
		"\n\n*\n\n#\n\n`\n\n",
		"a * b ** c *** d",
		"tabs\t\n\n\tand spaces",
		"日本語 **太字** ## 見出し",
	}
	for _, in := range inputs {
		once := Response(in)
		assert.Equal(t, once, Response(once), "input %q", in)
	}
}

func TestResponseStripsAllMarkers(t *testing.T) {
	out := Response("**a** *b* # c `d` ```e```")
	assert.NotContains(t, out, "*")
	assert.NotContains(t, out, "#")
	assert.NotContains(t, out, "`")
}

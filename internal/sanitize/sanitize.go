// Package sanitize strips markdown markup from model output before display.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	boldRE      = regexp.MustCompile(`\*\*`)
	asteriskRE  = regexp.MustCompile(`\*`)
	headerRE    = regexp.MustCompile(`#+`)
	codeTicksRE = regexp.MustCompile("`+")
	blankLineRE = regexp.MustCompile(`\n{2,}`)
)

// Response returns raw model text with emphasis markers, header hashes and
// code-fence ticks removed, blank-line runs collapsed to a single newline,
// and surrounding whitespace trimmed. Bold markers go first so no stray
// single asterisks are left behind.
func Response(raw string) string {
	s := boldRE.ReplaceAllString(raw, "")
	s = asteriskRE.ReplaceAllString(s, "")
	s = headerRE.ReplaceAllString(s, "")
	s = codeTicksRE.ReplaceAllString(s, "")
	s = blankLineRE.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}

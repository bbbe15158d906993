// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"regexp"
	"strings"
)

var (
	hyphenBreakRe = regexp.MustCompile(`(\w)-(\s*\n\s*)(\w)`)
	hspaceRunRe   = regexp.MustCompile(`[ \t]{2,}`)
	newlineRunRe  = regexp.MustCompile(`\n{3,}`)
)

// CleanText repairs common extraction artifacts: words hyphenated across a
// line break are rejoined, runs of spaces and tabs collapse to one space,
// three or more newlines collapse to two, and every line is trimmed.
func CleanText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = hyphenBreakRe.ReplaceAllString(text, "$1$3")
	text = hspaceRunRe.ReplaceAllString(text, " ")
	text = newlineRunRe.ReplaceAllString(text, "\n\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

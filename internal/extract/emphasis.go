// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import "regexp"

// Span is one fragment of display text.
type Span struct {
	Text     string `json:"text" yaml:"text"`
	Emphasis bool   `json:"emphasis,omitempty" yaml:"emphasis,omitempty"`
}

// emphasisRe matches the shortest "**...**" pair on a single line.
var emphasisRe = regexp.MustCompile(`\*\*(.*?)\*\*`)

// SplitEmphasis splits text into plain and emphasized spans in original
// order. Paired "**" markers are removed from emphasized spans; unpaired
// markers stay in the plain text. Text without pairs yields a single plain
// span equal to the input.
func SplitEmphasis(text string) []Span {
	matches := emphasisRe.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return []Span{{Text: text}}
	}

	spans := make([]Span, 0, 2*len(matches)+1)
	pos := 0
	for _, m := range matches {
		if m[0] > pos {
			spans = append(spans, Span{Text: text[pos:m[0]]})
		}
		spans = append(spans, Span{Text: text[m[2]:m[3]], Emphasis: true})
		pos = m[1]
	}
	if pos < len(text) {
		spans = append(spans, Span{Text: text[pos:]})
	}
	return spans
}

// PlainText returns text with paired emphasis markers removed.
func PlainText(text string) string {
	return emphasisRe.ReplaceAllString(text, "$1")
}

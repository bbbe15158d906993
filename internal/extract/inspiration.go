// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"

	"github.com/pdiddy/research-assistant/pkg/types"
)

var descriptionRe = regexp.MustCompile(regexp.QuoteMeta(bold(FieldDescription)) + `[ \t]*([\s\S]*)`)

// ParseInspiration treats every block as one topic: the label line is the
// title and the text after "**Description:**" is the description. Blocks
// without a line break or without a description are dropped.
func ParseInspiration(markdown string) []types.InspirationTopic {
	topics := []types.InspirationTopic{}

	for _, blk := range Segment(markdown) {
		if !blk.hasBreak {
			continue
		}
		m := descriptionRe.FindStringSubmatch(blk.Body)
		if m == nil {
			continue
		}
		topics = append(topics, types.InspirationTopic{
			Title:       strings.TrimSpace(stripBrackets(blk.Label)),
			Description: strings.TrimSpace(m[1]),
		})
	}

	return topics
}

var bracketReplacer = strings.NewReplacer("[", "", "]", "")

func stripBrackets(s string) string {
	return bracketReplacer.Replace(s)
}

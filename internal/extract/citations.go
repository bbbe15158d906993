// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// paperRe matches one citation group: four bulleted bold sub-fields in the
// fixed order Title, Authors, Journal/Conference, Year, each on its own line.
// A group missing any of the four labels does not match.
var paperRe = regexp.MustCompile(
	`-\s*` + regexp.QuoteMeta(bold(FieldTitle)) + `\s*(.*?)\n` +
		`\s*-\s*` + regexp.QuoteMeta(bold(FieldAuthors)) + `\s*(.*?)\n` +
		`\s*-\s*` + regexp.QuoteMeta(bold(FieldJournal)) + `\s*(.*?)\n` +
		`\s*-\s*` + regexp.QuoteMeta(bold(FieldYear)) + `\s*(.*)`,
)

// ParsePapers extracts every complete citation group from the body of an
// "Existing Research" block, in document order. Partial groups are dropped;
// an empty sub-field of a matched group becomes "N/A".
func ParsePapers(body string) []types.Paper {
	papers := []types.Paper{}
	for _, m := range paperRe.FindAllStringSubmatch(body, -1) {
		papers = append(papers, types.Paper{
			Title:   orDefault(m[1]),
			Authors: orDefault(m[2]),
			Journal: orDefault(m[3]),
			Year:    orDefault(m[4]),
		})
	}
	return papers
}

// orDefault trims s and substitutes "N/A" when nothing is left.
func orDefault(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return types.NotAvailable
	}
	return s
}

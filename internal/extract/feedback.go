// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// gradeRe takes the first run of digits after "Grade:", skipping any
// non-digits in between (bold markers, spaces).
var gradeRe = regexp.MustCompile(FieldGrade + `:\D*(\d+)`)

// ParseFeedback parses a paper review response.
func ParseFeedback(markdown string) types.FeedbackAnalysis {
	analysis := types.NewFeedbackAnalysis()

	for _, blk := range Segment(markdown) {
		switch {
		case blk.HasLabel(LabelPredictedGrade):
			analysis.Grade = parseGrade(blk.Text())
		case blk.HasLabel(LabelGeneralFeedback):
			analysis.GeneralFeedback = strings.TrimSpace(blk.Body)
		case blk.HasLabel(LabelSpecificFeedback):
			analysis.SpecificFeedback = append(analysis.SpecificFeedback, ParseSpecificFeedback(blk.Body)...)
		}
	}

	return analysis
}

// parseGrade returns the grade in text, or 0 when none is found.
func parseGrade(text string) int {
	m := gradeRe.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	grade, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return grade
}

const (
	quoteMarker     = "- " + "**" + FieldQuote + ":**"
	nextQuoteMarker = "\n" + quoteMarker
)

// commentRe matches the bulleted comment label that ends a quote.
var commentRe = regexp.MustCompile(`\s*-\s*` + regexp.QuoteMeta(bold(FieldComment)) + `\s*`)

// ParseSpecificFeedback extracts quote/comment pairs in document order. A
// quote runs to the first following comment label; a comment runs to the
// next quote entry or the end of the body. Entries without a comment are
// dropped.
func ParseSpecificFeedback(body string) []types.SpecificFeedback {
	items := []types.SpecificFeedback{}

	pos := 0
	for {
		i := strings.Index(body[pos:], quoteMarker)
		if i < 0 {
			break
		}
		quoteStart := pos + i + len(quoteMarker)

		loc := commentRe.FindStringIndex(body[quoteStart:])
		if loc == nil {
			break
		}
		quoteEnd := quoteStart + loc[0]

		// A comment label past the next quote entry belongs to that entry.
		if next := strings.Index(body[quoteStart:quoteEnd], nextQuoteMarker); next >= 0 {
			pos = quoteStart + next + 1
			continue
		}

		commentStart := quoteStart + loc[1]
		if commentStart >= len(body) {
			break
		}
		commentEnd := len(body)
		if next := strings.Index(body[commentStart+1:], nextQuoteMarker); next >= 0 {
			commentEnd = commentStart + 1 + next
		}

		items = append(items, types.SpecificFeedback{
			Quote:   StripQuotes(strings.TrimSpace(body[quoteStart:quoteEnd])),
			Comment: strings.TrimSpace(body[commentStart:commentEnd]),
		})
		pos = commentEnd
	}

	return items
}

// quotePairs are the quotation styles stripped from quotes.
var quotePairs = [][2]string{
	{`"`, `"`},
	{"“", "”"},
	{"'", "'"},
	{"‘", "’"},
}

// StripQuotes removes one layer of surrounding quotation marks when both
// ends use the same style.
func StripQuotes(s string) string {
	for _, p := range quotePairs {
		if len(s) >= len(p[0])+len(p[1]) && strings.HasPrefix(s, p[0]) && strings.HasSuffix(s, p[1]) {
			return s[len(p[0]) : len(s)-len(p[1])]
		}
	}
	return s
}

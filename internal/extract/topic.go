// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// ParseTopicAnalysis parses a topic analysis response. Blocks are classified
// by label prefix; unrecognised blocks are ignored. Sections that are missing
// keep their sentinel defaults.
func ParseTopicAnalysis(markdown string) types.TopicAnalysis {
	analysis := types.NewTopicAnalysis()

	for _, blk := range Segment(markdown) {
		switch {
		case blk.HasLabel(LabelTopicOverview):
			analysis.Overview = parseOverview(blk.Body)
		case blk.HasLabel(LabelExistingResearch):
			analysis.Papers = append(analysis.Papers, ParsePapers(blk.Body)...)
		case blk.HasLabel(LabelViability):
			analysis.Viability = parseViability(blk.Body)
		case blk.HasLabel(LabelPaperStructure):
			analysis.Structure = append(analysis.Structure, parseStructure(blk.Body)...)
		}
	}

	return analysis
}

// overviewSplit introduces a bulleted bold sub-label.
const overviewSplit = "\n- **"

// parseOverview reads the summary paragraph and the Education Level and
// Prerequisites sub-labels, in either order.
func parseOverview(body string) types.TopicOverview {
	parts := strings.Split(strings.TrimSpace(body), overviewSplit)

	overview := types.DefaultOverview()
	overview.Summary = strings.TrimSpace(parts[0])
	if overview.Summary == "" {
		overview.Summary = types.NoOverview
	}

	for _, part := range parts[1:] {
		if v, ok := labelValue(part, FieldEducationLevel); ok {
			overview.EducationLevel = v
		} else if v, ok := labelValue(part, FieldPrerequisites); ok {
			overview.Prerequisites = v
		}
	}
	return overview
}

// labelValue reports whether fragment starts with "<label>:" and returns the
// trimmed text after it, with the closing bold marker removed.
func labelValue(fragment, label string) (string, bool) {
	rest, ok := strings.CutPrefix(fragment, label+":")
	if !ok {
		return "", false
	}
	rest = strings.TrimPrefix(rest, "**")
	return strings.TrimSpace(rest), true
}

// statusRe finds the first viability token as a whole word.
var statusRe = regexp.MustCompile(`\b(` + joinStatuses() + `)\b`)

func joinStatuses() string {
	names := make([]string, len(ViabilityStatuses))
	for i, s := range ViabilityStatuses {
		names[i] = regexp.QuoteMeta(string(s))
	}
	return strings.Join(names, "|")
}

// cutMarkup is the punctuation and markup that may surround the status token.
const cutMarkup = ":*- \t\r\n"

// parseViability finds the first status token; the token and the markup
// around it are removed and the rest becomes the reasoning. Without a token
// the status is UNKNOWN and the whole body is the reasoning.
func parseViability(body string) types.ViabilityAnalysis {
	content := strings.TrimSpace(body)

	loc := statusRe.FindStringIndex(content)
	if loc == nil {
		return types.ViabilityAnalysis{Status: types.ViabilityUnknown, Reasoning: content}
	}

	status := types.ViabilityStatus(content[loc[0]:loc[1]])
	before := strings.TrimRight(content[:loc[0]], "*_ \t")
	tail := content[loc[1]:]
	after := strings.TrimLeft(tail, cutMarkup)

	var reasoning string
	switch {
	case strings.TrimSpace(before) == "":
		reasoning = after
	case after == "":
		reasoning = before
	case strings.ContainsRune(tail[:len(tail)-len(after)], '\n'):
		reasoning = before + "\n\n" + after
	default:
		reasoning = before + " " + after
	}

	return types.ViabilityAnalysis{Status: status, Reasoning: strings.TrimSpace(reasoning)}
}

// sectionRe matches a structure heading line: a "-", "*" or "N." bullet
// followed by a bold known section name.
var sectionRe = regexp.MustCompile(
	`(?m)^\s*(?:-|\*|\d+\.)\s+\*\*(` + quoteAll(StructureSections) + `):\*\*`,
)

// subFieldRe matches any structure sub-label at the start of a line,
// optionally bulleted.
var subFieldRe = regexp.MustCompile(
	`\n\s*-?\s*\*\*(?:` + quoteAll(StructureSubFields) + `):\*\*`,
)

func quoteAll(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = regexp.QuoteMeta(n)
	}
	return strings.Join(quoted, "|")
}

// parseStructure splits the body at recognised section headings. Each
// section runs to the next recognised heading or the end of the body.
func parseStructure(body string) []types.StructureSection {
	sections := []types.StructureSection{}

	matches := sectionRe.FindAllStringSubmatchIndex(body, -1)
	for i, m := range matches {
		end := len(body)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		details := body[m[1]:end]

		sections = append(sections, types.StructureSection{
			Title:            body[m[2]:m[3]],
			CoreContent:      subField(details, FieldCoreContent),
			GuidingQuestions: subField(details, FieldGuidingQuestions),
			ExpertTip:        subField(details, FieldExpertTip),
		})
	}
	return sections
}

// subField captures the text after "**<label>:**" up to the next sub-label
// line or the end of the section. A missing label yields "N/A".
func subField(details, label string) string {
	_, rest, ok := strings.Cut(details, bold(label))
	if !ok {
		return types.NotAvailable
	}
	if loc := subFieldRe.FindStringIndex(rest); loc != nil {
		rest = rest[:loc[0]]
	}
	return strings.TrimSpace(rest)
}

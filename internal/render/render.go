// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render draws parsed advisor records as terminal panels.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pdiddy/research-assistant/internal/extract"
	"github.com/pdiddy/research-assistant/pkg/types"
)

// DefaultWidth is the panel width used when none is configured.
const DefaultWidth = 88

// Renderer writes panels to an io.Writer.
type Renderer struct {
	w     io.Writer
	theme Theme
	width int
}

// New creates a Renderer. A non-positive width uses DefaultWidth.
func New(w io.Writer, cfg types.DisplayConfig) *Renderer {
	width := cfg.Width
	if width <= 0 {
		width = DefaultWidth
	}
	return &Renderer{w: w, theme: NewTheme(cfg.Theme), width: width}
}

// TopicAnalysis renders the overview, viability verdict, related papers,
// and structure guide.
func (r *Renderer) TopicAnalysis(a types.TopicAnalysis) error {
	t := r.theme

	overview := []string{
		t.Title.Render(extract.LabelTopicOverview),
		r.inline(a.Overview.Summary),
		"",
		r.field(extract.FieldEducationLevel, a.Overview.EducationLevel),
		r.field(extract.FieldPrerequisites, a.Overview.Prerequisites),
	}

	badge := lipgloss.NewStyle().Bold(true).Padding(0, 1).
		Foreground(lipgloss.Color("#ffffff")).
		Background(t.statusColor(a.Viability.Status)).
		Render(a.Viability.Status.Label())
	viability := []string{
		t.Title.Render(extract.LabelViability),
		badge,
		"",
		r.inline(a.Viability.Reasoning),
	}

	papers := []string{t.Title.Render(fmt.Sprintf("%s (%d)", extract.LabelExistingResearch, len(a.Papers)))}
	if len(a.Papers) == 0 {
		papers = append(papers, t.Muted.Render("No related papers were found."))
	}
	for i, p := range a.Papers {
		papers = append(papers,
			t.Emphasis.Render(fmt.Sprintf("%d. %s", i+1, extract.PlainText(p.Title))),
			t.Muted.Render(fmt.Sprintf("   %s · %s · %s", p.Authors, p.Journal, p.Year)))
	}

	structure := []string{t.Title.Render(extract.LabelPaperStructure)}
	if len(a.Structure) == 0 {
		structure = append(structure, t.Muted.Render("No structure guide was found."))
	}
	for _, s := range a.Structure {
		structure = append(structure,
			"",
			t.Emphasis.Render(s.Title),
			r.field(extract.FieldCoreContent, s.CoreContent),
			r.field(extract.FieldGuidingQuestions, s.GuidingQuestions),
			r.field(extract.FieldExpertTip, s.ExpertTip))
	}

	return r.panels(overview, viability, papers, structure)
}

// Feedback renders the grade, general feedback, and quote/comment pairs.
func (r *Renderer) Feedback(f types.FeedbackAnalysis) error {
	t := r.theme

	grade := []string{
		t.Title.Render(extract.LabelPredictedGrade),
		lipgloss.NewStyle().Bold(true).Foreground(t.gradeColor(f.Grade)).Render(fmt.Sprintf("%d", f.Grade)) +
			t.Muted.Render("/100"),
	}

	general := []string{t.Title.Render(extract.LabelGeneralFeedback), r.inline(Bullets(f.GeneralFeedback))}

	specific := []string{t.Title.Render(extract.LabelSpecificFeedback)}
	if len(f.SpecificFeedback) == 0 {
		specific = append(specific, t.Muted.Render("No specific feedback points were found."))
	}
	for i, sf := range f.SpecificFeedback {
		if i > 0 {
			specific = append(specific, "")
		}
		specific = append(specific,
			t.Quote.Render("“"+sf.Quote+"”"),
			r.inline(sf.Comment))
	}

	return r.panels(grade, general, specific)
}

// Inspiration renders one panel per topic idea.
func (r *Renderer) Inspiration(topics []types.InspirationTopic) error {
	if len(topics) == 0 {
		_, err := fmt.Fprintln(r.w, r.theme.Muted.Render("No topic ideas were found in the response."))
		return err
	}
	blocks := make([][]string, len(topics))
	for i, topic := range topics {
		blocks[i] = []string{
			r.theme.Title.Render(extract.PlainText(topic.Title)),
			r.inline(topic.Description),
		}
	}
	return r.panels(blocks...)
}

// History renders a compact list of stored items.
func (r *Renderer) History(items []types.HistoryItem) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(r.w, r.theme.Muted.Render("No history yet."))
		return err
	}
	for _, it := range items {
		line := fmt.Sprintf("%s  %s  %-11s  %s",
			r.theme.Muted.Render(it.ID[:min(8, len(it.ID))]),
			r.theme.Muted.Render(it.Timestamp.Local().Format("2006-01-02 15:04")),
			string(it.Kind),
			r.theme.Text.Render(it.Topic))
		if _, err := fmt.Fprintln(r.w, line); err != nil {
			return err
		}
	}
	return nil
}

// Bullets replaces leading "- " and "* " list markers with "• ".
func Bullets(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		indent := line[:len(line)-len(trimmed)]
		for _, marker := range []string{"- ", "* "} {
			if rest, ok := strings.CutPrefix(trimmed, marker); ok {
				lines[i] = indent + "• " + rest
				break
			}
		}
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) field(label, value string) string {
	return r.theme.Label.Render(label+":") + " " + r.inline(value)
}

// inline renders text with "**" pairs shown in bold.
func (r *Renderer) inline(text string) string {
	var b strings.Builder
	for _, span := range extract.SplitEmphasis(text) {
		if span.Emphasis {
			b.WriteString(r.theme.Emphasis.Render(span.Text))
		} else {
			b.WriteString(r.theme.Text.Render(span.Text))
		}
	}
	return b.String()
}

func (r *Renderer) panels(blocks ...[]string) error {
	style := r.theme.Panel.Width(r.width)
	for _, lines := range blocks {
		if _, err := fmt.Fprintln(r.w, style.Render(strings.Join(lines, "\n"))); err != nil {
			return err
		}
	}
	return nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package advisor

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/pdiddy/research-assistant/internal/extract"
	"github.com/pdiddy/research-assistant/pkg/types"
)

// The prompts below request exactly the headings and bold sub-labels that
// internal/extract recognises. Both sides read the same vocabulary table.

const analysisSystem = "You are an expert academic research advisor. Your task is to provide a comprehensive analysis of a given research paper topic, formatted in Markdown as requested in the user prompt."

const inspirationSystem = "You are an expert academic research advisor. Your task is to generate innovative research paper topics based on a field and education level, formatted in Markdown as requested in the user prompt."

const feedbackSystem = "You are a PhD-level academic reviewer. Your task is to provide a rigorous, in-depth critique of a research paper based on its text and the intended academic level. Format your feedback strictly in Markdown as requested."

var promptFuncs = template.FuncMap{
	"bold": func(label string) string { return "**" + label + ":**" },
	"quoteList": func(statuses []types.ViabilityStatus) string {
		quoted := make([]string, len(statuses))
		for i, s := range statuses {
			quoted[i] = `"` + string(s) + `"`
		}
		return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
	},
	"join": strings.Join,
}

var analysisTmpl = template.Must(template.New("analysis").Funcs(promptFuncs).Parse(`
Analyze the following research paper topic: "{{.Topic}}".

Please provide a comprehensive analysis in four distinct sections, formatted in Markdown.

### {{.V.LabelTopicOverview}}
Provide a brief, one-paragraph overview of the topic. Following the overview, use these exact labels on new lines:
- {{bold .V.FieldEducationLevel}} [Specify minimum level, e.g., High School, Undergraduate, Postgraduate, Expert]
- {{bold .V.FieldPrerequisites}} [List any prerequisite materials or knowledge required]

### {{.V.LabelExistingResearch}}
Perform a deep search using Google Search for existing academic papers on this or very similar topics. List between 5 and 10 of the most relevant ones. For each paper, provide only the following details:
- {{bold .V.FieldTitle}} [Title of the paper]
- {{bold .V.FieldAuthors}} [List of authors]
- {{bold .V.FieldJournal}} [Name of the journal or conference]
- {{bold .V.FieldYear}} [Year of publication]

### {{.V.LabelViability}}
Based on your deep search, provide a **strict and critical** recommendation on the viability of this topic for a research paper. Your evaluation should be rigorous. Start the recommendation with one of three labels: {{quoteList .V.Statuses}}.

Use the following strict criteria for your classification:
- **NOVEL_OPPORTUNITY**: Reserve this classification *only* for topics that are genuinely groundbreaking, with minimal to no direct pre-existing research found. The potential for a completely new contribution must be exceptionally high and clearly demonstrable. Be highly critical before assigning this.
- **WISE_CHOICE**: This applies to topics with a solid foundation of existing research that also present a *clear, specific, and achievable* gap for a novel contribution. Do not assign this label if the field is oversaturated or if the potential contribution is merely incremental. The path to a meaningful contribution should be obvious.
- **CAUTION_ADVISED**: This should be your default classification for topics that are very broad, heavily saturated with existing research, or where a novel contribution would be extremely difficult to achieve. If there is any significant challenge, saturation, or ambiguity, choose this label.

After the label, provide detailed reasoning for your recommendation, using bullet points to highlight key arguments regarding research saturation, existing gaps, and the *difficulty* of making a novel contribution.

### {{.V.LabelPaperStructure}}
Provide a highly detailed, expert-level guide on how to structure a paper on this topic. For each standard academic section, provide the following three elements:
1.  {{bold .V.FieldCoreContent}} A clear description of what this section should contain.
2.  {{bold .V.FieldGuidingQuestions}} 2-3 key questions the author should answer within this section to ensure it's comprehensive.
3.  {{bold .V.FieldExpertTip}} A "pro-tip" or a common pitfall to avoid for this specific section, tailored to the research topic.

Structure your response for each section using markdown, for example:
{{range .V.ExampleSections}}- {{bold .}}
  - {{bold $.V.FieldCoreContent}} [Description]
  - {{bold $.V.FieldGuidingQuestions}}
    - [Question 1?]
    - [Question 2?]
  - {{bold $.V.FieldExpertTip}} [Tip or Pitfall]
{{end}}
...and so on for all standard sections: {{join .V.Sections ", "}}. For Experimentation/Data Collection provide detailed, actionable ideas for experiments or data sources.
`))

var inspirationTmpl = template.Must(template.New("inspiration").Funcs(promptFuncs).Parse(`
Generate a list of 5 to 7 innovative and suitable research paper topics for a student with the following profile:

- **Field of Research:** {{.Field}}
- **Education Level:** {{.Level}}

For each topic, provide a compelling title and a 2-3 sentence description explaining the topic's significance, potential research questions, and why it's a good fit for the specified education level.

Format the response in Markdown with each topic as a distinct section. Use the following structure for each topic, and nothing else:

### [Topic Title]
{{bold .V.FieldDescription}} [Your detailed description here]
`))

var feedbackTmpl = template.Must(template.New("feedback").Funcs(promptFuncs).Parse(`
Please provide a rigorous, PhD-level critique of the following research paper text. The paper is intended for the **{{.Level}}** academic level.
{{if .Criteria}}
**Grading Criteria/Rubric:**
You MUST use the following criteria as the primary basis for your grade and feedback.
---
{{.Criteria}}
---
{{end}}
*Important: The provided text has been automatically extracted from a document and may contain formatting artifacts (e.g., broken words, strange spacing). Please do your best to interpret the text and provide feedback despite these potential issues.*

**Paper Text:**
---
{{.Text}}
---

**Your Task:**
Analyze the text and provide feedback in three distinct sections, formatted strictly in Markdown. If a rubric or criteria was provided, explicitly reference it in your feedback.

### {{.V.LabelPredictedGrade}}
Provide a single numerical grade out of 100. Be critical and base the grade on the standards for the specified academic level{{if .Criteria}} and the provided rubric{{end}}.
- {{bold .V.FieldGrade}} [Your numerical grade here]

### {{.V.LabelGeneralFeedback}}
Provide high-level, constructive feedback on the paper's overall quality. Comment on the clarity of the thesis, the strength of the argument, the logical flow, the structure, and the writing style. Use bullet points for your main comments.{{if .Criteria}} Relate your feedback to the provided criteria where applicable.{{end}}

### {{.V.LabelSpecificFeedback}}
Identify specific areas for improvement directly from the text. For each point, provide a direct quote from the paper and your specific comment on how to improve it. List at least 5-10 specific points. Format each point as follows:
- {{bold .V.FieldQuote}} "[The exact quote from the paper text]"
  - {{bold .V.FieldComment}} [Your detailed comment and suggestion for improvement]
`))

// vocabulary exposes the shared label table to the templates.
type vocabulary struct {
	LabelTopicOverview    string
	LabelExistingResearch string
	LabelViability        string
	LabelPaperStructure   string
	LabelPredictedGrade   string
	LabelGeneralFeedback  string
	LabelSpecificFeedback string

	FieldEducationLevel   string
	FieldPrerequisites    string
	FieldTitle            string
	FieldAuthors          string
	FieldJournal          string
	FieldYear             string
	FieldCoreContent      string
	FieldGuidingQuestions string
	FieldExpertTip        string
	FieldGrade            string
	FieldQuote            string
	FieldComment          string
	FieldDescription      string

	Statuses        []types.ViabilityStatus
	Sections        []string
	ExampleSections []string
}

var vocab = vocabulary{
	LabelTopicOverview:    extract.LabelTopicOverview,
	LabelExistingResearch: extract.LabelExistingResearch,
	LabelViability:        extract.LabelViability,
	LabelPaperStructure:   extract.LabelPaperStructure,
	LabelPredictedGrade:   extract.LabelPredictedGrade,
	LabelGeneralFeedback:  extract.LabelGeneralFeedback,
	LabelSpecificFeedback: extract.LabelSpecificFeedback,

	FieldEducationLevel:   extract.FieldEducationLevel,
	FieldPrerequisites:    extract.FieldPrerequisites,
	FieldTitle:            extract.FieldTitle,
	FieldAuthors:          extract.FieldAuthors,
	FieldJournal:          extract.FieldJournal,
	FieldYear:             extract.FieldYear,
	FieldCoreContent:      extract.FieldCoreContent,
	FieldGuidingQuestions: extract.FieldGuidingQuestions,
	FieldExpertTip:        extract.FieldExpertTip,
	FieldGrade:            extract.FieldGrade,
	FieldQuote:            extract.FieldQuote,
	FieldComment:          extract.FieldComment,
	FieldDescription:      extract.FieldDescription,

	Statuses:        extract.ViabilityStatuses,
	Sections:        extract.StructureSections,
	ExampleSections: extract.StructureSections[:2],
}

// renderAnalysisPrompt builds the topic analysis prompt.
func renderAnalysisPrompt(topic string) (string, error) {
	return render(analysisTmpl, struct {
		Topic string
		V     vocabulary
	}{topic, vocab})
}

// renderInspirationPrompt builds the topic inspiration prompt.
func renderInspirationPrompt(field string, level types.EducationLevel) (string, error) {
	return render(inspirationTmpl, struct {
		Field string
		Level types.EducationLevel
		V     vocabulary
	}{field, level, vocab})
}

// renderFeedbackPrompt builds the paper review prompt. text is truncated to
// maxChars bytes on a rune boundary.
func renderFeedbackPrompt(text string, level types.AcademicLevel, criteria string, maxChars int) (string, error) {
	return render(feedbackTmpl, struct {
		Text     string
		Level    types.AcademicLevel
		Criteria string
		V        vocabulary
	}{truncate(text, maxChars), level, strings.TrimSpace(criteria), vocab})
}

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	for n > 0 && !isRuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}

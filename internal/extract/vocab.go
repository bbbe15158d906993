// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import "github.com/pdiddy/research-assistant/pkg/types"

// The vocabulary below is shared by the prompt templates in internal/advisor
// and by the parsers in this package. Changing a label here changes both the
// text requested from the model and the text recognised in its reply; the two
// must never drift apart.

// Block labels emitted as "### <label>" headings.
const (
	LabelTopicOverview    = "Topic Overview"
	LabelExistingResearch = "Existing Research"
	LabelViability        = "Topic Viability Analysis"
	LabelPaperStructure   = "Recommended Paper Structure"

	LabelPredictedGrade   = "Predicted Grade"
	LabelGeneralFeedback  = "General Feedback"
	LabelSpecificFeedback = "Specific Feedback"
)

// Bold sub-labels, written as "**<label>:**" in the response.
const (
	FieldEducationLevel = "Education Level"
	FieldPrerequisites  = "Prerequisites"

	FieldTitle   = "Title"
	FieldAuthors = "Authors"
	FieldJournal = "Journal/Conference"
	FieldYear    = "Year"

	FieldCoreContent      = "Core Content"
	FieldGuidingQuestions = "Guiding Questions"
	FieldExpertTip        = "Expert Tip"

	FieldGrade   = "Grade"
	FieldQuote   = "Quote"
	FieldComment = "Comment"

	FieldDescription = "Description"
)

// ViabilityStatuses is the closed set of verdict tokens, in the order the
// prompt presents them.
var ViabilityStatuses = []types.ViabilityStatus{
	types.NovelOpportunity,
	types.WiseChoice,
	types.CautionAdvised,
}

// StructureSections is the closed, ordered set of paper sections the
// structure guide is requested for. Sections with any other name are not
// recognised.
var StructureSections = []string{
	"Title",
	"Abstract",
	"Introduction",
	"Literature Review",
	"Methodology",
	"Experimentation/Data Collection",
	"Results",
	"Discussion",
	"Conclusion",
}

// StructureSubFields lists the guidance elements requested for each section.
var StructureSubFields = []string{
	FieldCoreContent,
	FieldGuidingQuestions,
	FieldExpertTip,
}

// bold renders a sub-label the way the prompt asks for it: "**Label:**".
func bold(label string) string {
	return "**" + label + ":**"
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the records exchanged between the Markdown
// extractors, the advisor client, the history store, and the renderers.
//
// Every record is a plain value produced in one pass from a single response
// string. Optional fields are never absent: parsers fill them with the
// sentinel defaults declared here so presentation code never branches on
// missing data.
package types

import "strings"

// Sentinel defaults substituted when a sub-field cannot be matched.
const (
	NotAvailable = "N/A"
	NotFound     = "Not found."
	NoOverview   = "No overview provided."
)

// Paper is one citation listed under "Existing Research".
type Paper struct {
	Title   string `json:"title" yaml:"title"`
	Authors string `json:"authors" yaml:"authors"`
	Journal string `json:"journal" yaml:"journal"`
	Year    string `json:"year" yaml:"year"`
}

// TopicOverview summarises the topic and who can realistically tackle it.
type TopicOverview struct {
	Summary        string `json:"summary" yaml:"summary"`
	EducationLevel string `json:"education_level" yaml:"education_level"`
	Prerequisites  string `json:"prerequisites" yaml:"prerequisites"`
}

// DefaultOverview returns the overview used when no overview block is present.
func DefaultOverview() TopicOverview {
	return TopicOverview{
		Summary:        NotFound,
		EducationLevel: NotAvailable,
		Prerequisites:  NotAvailable,
	}
}

// ViabilityStatus is the advisor's verdict on a topic.
type ViabilityStatus string

const (
	WiseChoice       ViabilityStatus = "WISE_CHOICE"
	CautionAdvised   ViabilityStatus = "CAUTION_ADVISED"
	NovelOpportunity ViabilityStatus = "NOVEL_OPPORTUNITY"
	// ViabilityUnknown is a valid terminal state, not an error.
	ViabilityUnknown ViabilityStatus = "UNKNOWN"
)

// Label returns the display form of the status, e.g. "Wise Choice".
func (s ViabilityStatus) Label() string {
	words := strings.Split(strings.ToLower(string(s)), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// ViabilityAnalysis pairs the verdict with the advisor's reasoning.
type ViabilityAnalysis struct {
	Status    ViabilityStatus `json:"status" yaml:"status"`
	Reasoning string          `json:"reasoning" yaml:"reasoning"`
}

// DefaultViability returns the verdict used when no viability block is present.
func DefaultViability() ViabilityAnalysis {
	return ViabilityAnalysis{Status: ViabilityUnknown, Reasoning: NotFound}
}

// StructureSection is the writing guidance for one standard paper section.
type StructureSection struct {
	// Title is one of the fixed academic section names (see extract.StructureSections).
	Title            string `json:"title" yaml:"title"`
	CoreContent      string `json:"core_content" yaml:"core_content"`
	GuidingQuestions string `json:"guiding_questions" yaml:"guiding_questions"`
	ExpertTip        string `json:"expert_tip" yaml:"expert_tip"`
}

// TopicAnalysis is the parsed form of a topic analysis response. Papers and
// Structure follow document order.
type TopicAnalysis struct {
	Papers    []Paper            `json:"papers" yaml:"papers"`
	Overview  TopicOverview      `json:"overview" yaml:"overview"`
	Viability ViabilityAnalysis  `json:"viability" yaml:"viability"`
	Structure []StructureSection `json:"structure" yaml:"structure"`
}

// NewTopicAnalysis returns an analysis holding only sentinel defaults.
func NewTopicAnalysis() TopicAnalysis {
	return TopicAnalysis{
		Papers:    []Paper{},
		Overview:  DefaultOverview(),
		Viability: DefaultViability(),
		Structure: []StructureSection{},
	}
}

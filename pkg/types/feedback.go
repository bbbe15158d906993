// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// AcademicLevel is the level a reviewed paper is graded against.
type AcademicLevel string

const (
	LevelHighSchool    AcademicLevel = "High School"
	LevelUndergraduate AcademicLevel = "Undergraduate"
	LevelPostgraduate  AcademicLevel = "Postgraduate"
	LevelProfessional  AcademicLevel = "Professional"
)

// AcademicLevels lists the accepted review levels in display order.
var AcademicLevels = []AcademicLevel{
	LevelHighSchool,
	LevelUndergraduate,
	LevelPostgraduate,
	LevelProfessional,
}

// ParseAcademicLevel matches s case-insensitively against AcademicLevels.
func ParseAcademicLevel(s string) (AcademicLevel, bool) {
	for _, l := range AcademicLevels {
		if equalFold(string(l), s) {
			return l, true
		}
	}
	return "", false
}

// SpecificFeedback is one quote from the reviewed paper and the reviewer's
// comment on it. Quote has one layer of surrounding quotation marks removed.
type SpecificFeedback struct {
	Quote   string `json:"quote" yaml:"quote"`
	Comment string `json:"comment" yaml:"comment"`
}

// FeedbackAnalysis is the parsed form of a paper review response. A Grade of
// zero means no grade was found.
type FeedbackAnalysis struct {
	Grade            int                `json:"grade" yaml:"grade"`
	GeneralFeedback  string             `json:"general_feedback" yaml:"general_feedback"`
	SpecificFeedback []SpecificFeedback `json:"specific_feedback" yaml:"specific_feedback"`
}

// NewFeedbackAnalysis returns a review holding only sentinel defaults.
func NewFeedbackAnalysis() FeedbackAnalysis {
	return FeedbackAnalysis{
		GeneralFeedback:  NotFound,
		SpecificFeedback: []SpecificFeedback{},
	}
}

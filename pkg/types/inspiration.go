// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// EducationLevel is the student profile used when generating topic ideas.
type EducationLevel string

const (
	EducationHighSchool    EducationLevel = "High School"
	EducationUndergraduate EducationLevel = "Undergraduate"
	EducationPostgraduate  EducationLevel = "Postgraduate"
	EducationExpert        EducationLevel = "Expert"
)

// EducationLevels lists the accepted inspiration levels in display order.
var EducationLevels = []EducationLevel{
	EducationHighSchool,
	EducationUndergraduate,
	EducationPostgraduate,
	EducationExpert,
}

// ParseEducationLevel matches s case-insensitively against EducationLevels.
func ParseEducationLevel(s string) (EducationLevel, bool) {
	for _, l := range EducationLevels {
		if equalFold(string(l), s) {
			return l, true
		}
	}
	return "", false
}

// InspirationTopic is one generated research topic idea.
type InspirationTopic struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

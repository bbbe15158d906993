// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package advisor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/research-assistant/internal/extract"
	"github.com/pdiddy/research-assistant/pkg/types"
)

func TestRenderAnalysisPrompt_UsesVocabulary(t *testing.T) {
	prompt, err := renderAnalysisPrompt("soil carbon")
	require.NoError(t, err)

	for _, label := range []string{
		extract.LabelTopicOverview, extract.LabelExistingResearch,
		extract.LabelViability, extract.LabelPaperStructure,
	} {
		assert.Contains(t, prompt, "### "+label+"\n")
	}
	for _, s := range extract.ViabilityStatuses {
		assert.Contains(t, prompt, `"`+string(s)+`"`)
	}
	for _, f := range extract.StructureSubFields {
		assert.Contains(t, prompt, "**"+f+":**")
	}
	assert.Contains(t, prompt, strings.Join(extract.StructureSections, ", "))
	assert.Contains(t, prompt, "- **Title:**\n  - **Core Content:** [Description]")
}

func TestRenderFeedbackPrompt_Labels(t *testing.T) {
	prompt, err := renderFeedbackPrompt("text", types.LevelHighSchool, "", 100)
	require.NoError(t, err)

	assert.Contains(t, prompt, "### "+extract.LabelPredictedGrade)
	assert.Contains(t, prompt, "### "+extract.LabelGeneralFeedback)
	assert.Contains(t, prompt, "### "+extract.LabelSpecificFeedback)
	assert.Contains(t, prompt, `- **Quote:** "[The exact quote from the paper text]"`)
	assert.Contains(t, prompt, "  - **Comment:**")
	assert.NotContains(t, prompt, "provided rubric")
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"abcdef", 3, "abc"},
		{"abc", 10, "abc"},
		{"abc", 0, "abc"},
		{"aé", 2, "a"},
		{"aéb", 3, "aé"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, truncate(tt.in, tt.n), "truncate(%q, %d)", tt.in, tt.n)
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/research-assistant/pkg/types"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantLabels []string
		wantBodies []string
	}{
		{
			name:       "no delimiter",
			input:      "Just some prose without headings.",
			wantLabels: nil,
		},
		{
			name:       "empty input",
			input:      "",
			wantLabels: nil,
		},
		{
			name:       "preamble discarded",
			input:      "Here is your analysis.\n\n### Topic Overview\n\nBody text.",
			wantLabels: []string{"Topic Overview"},
			wantBodies: []string{"\nBody text."},
		},
		{
			name:       "two blocks",
			input:      "### Predicted Grade\n- **Grade:** 80\n\n### General Feedback\nGood.\n",
			wantLabels: []string{"Predicted Grade", "General Feedback"},
			wantBodies: []string{"- **Grade:** 80\n\n", "Good.\n"},
		},
		{
			name:       "label without line break",
			input:      "### Trailing",
			wantLabels: []string{"Trailing"},
			wantBodies: []string{""},
		},
		{
			name:       "label line with extra words",
			input:      "### Topic Overview (summary)\ntext",
			wantLabels: []string{"Topic Overview (summary)"},
			wantBodies: []string{"text"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := Segment(tt.input)
			require.Len(t, blocks, len(tt.wantLabels))
			for i, blk := range blocks {
				assert.Equal(t, tt.wantLabels[i], blk.Label)
				assert.Equal(t, tt.wantBodies[i], blk.Body)
			}
		})
	}
}

func TestSegment_JoinReconstructsInput(t *testing.T) {
	inputs := []string{
		"### A\nbody one\n### B\nbody two",
		"preamble text\n### A\n\n\n### B",
		"### Only label",
		"### A\n### \n### C\nend\n",
		"x### inline### split\n",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			start := len(in)
			for i := 0; i+len(Delimiter) <= len(in); i++ {
				if in[i:i+len(Delimiter)] == Delimiter {
					start = i
					break
				}
			}
			assert.Equal(t, in[start:], Join(Segment(in)))
		})
	}
}

func TestBlock_HasLabel(t *testing.T) {
	blk := Segment("### Topic Viability Analysis of the field\nbody")[0]
	assert.True(t, blk.HasLabel(LabelViability))
	assert.False(t, blk.HasLabel(LabelTopicOverview))
}

func TestExtractors_NoDelimiterYieldsDefaults(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"## Topic Overview\n- **Education Level:** Undergraduate",
		"- **Grade:** 95\n- **Quote:** \"a\"\n  - **Comment:** b",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, types.NewTopicAnalysis(), ParseTopicAnalysis(in))
			assert.Equal(t, types.NewFeedbackAnalysis(), ParseFeedback(in))
			assert.Empty(t, ParseInspiration(in))
		})
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitEmphasis(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Span
	}{
		{
			name: "no markers",
			in:   "plain text",
			want: []Span{{Text: "plain text"}},
		},
		{
			name: "empty",
			in:   "",
			want: []Span{{Text: ""}},
		},
		{
			name: "one pair in the middle",
			in:   "a **b** c",
			want: []Span{{Text: "a "}, {Text: "b", Emphasis: true}, {Text: " c"}},
		},
		{
			name: "adjacent pairs",
			in:   "**a****b**",
			want: []Span{{Text: "a", Emphasis: true}, {Text: "b", Emphasis: true}},
		},
		{
			name: "non-greedy",
			in:   "**a** and **b**",
			want: []Span{{Text: "a", Emphasis: true}, {Text: " and "}, {Text: "b", Emphasis: true}},
		},
		{
			name: "unpaired marker kept literally",
			in:   "**Grade:** 90 ** bonus",
			want: []Span{{Text: "Grade:", Emphasis: true}, {Text: " 90 ** bonus"}},
		},
		{
			name: "pair does not cross a line break",
			in:   "**open\nclose**",
			want: []Span{{Text: "**open\nclose**"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitEmphasis(tt.in))
		})
	}
}

func TestSplitEmphasis_PreservesText(t *testing.T) {
	in := "x **y** z ** w"
	var b strings.Builder
	for _, s := range SplitEmphasis(in) {
		if s.Emphasis {
			b.WriteString("**" + s.Text + "**")
		} else {
			b.WriteString(s.Text)
		}
	}
	assert.Equal(t, in, b.String())
}

func TestPlainText(t *testing.T) {
	assert.Equal(t, "Grade: 90", PlainText("**Grade:** 90"))
	assert.Equal(t, "a ** b", PlainText("a ** b"))
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/research-assistant/pkg/types"
)

const feedbackReply = `### Predicted Grade
- **Grade:** 82

### General Feedback
- Strong thesis.

### Specific Feedback
- **Quote:** "We prove the theory."
  - **Comment:** Say "support" instead.
`

// execute runs the root command with args and stdin, returning stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestParse_FeedbackJSONFromStdin(t *testing.T) {
	out, err := execute(t, feedbackReply, "parse", "feedback", "-", "--format", "json")
	require.NoError(t, err)

	var got types.FeedbackAnalysis
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 82, got.Grade)
	assert.Equal(t, "- Strong thesis.", got.GeneralFeedback)
	require.Len(t, got.SpecificFeedback, 1)
	assert.Equal(t, "We prove the theory.", got.SpecificFeedback[0].Quote)
}

func TestParse_InspirationYAMLFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reply.md")
	require.NoError(t, os.WriteFile(path, []byte("### Tidal Energy\n**Description:** Model turbine wakes.\n"), 0o644))

	out, err := execute(t, "", "parse", "inspiration", path, "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "title: Tidal Energy")
	assert.Contains(t, out, "description: Model turbine wakes.")
}

func TestParse_SectionsDefaultsToYAML(t *testing.T) {
	out, err := execute(t, "intro\n### One\nbody\n", "parse", "sections", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "label: One")
}

func TestParse_UnknownParser(t *testing.T) {
	_, err := execute(t, "", "parse", "summary", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown parser")
}

func TestParse_BadFormat(t *testing.T) {
	_, err := execute(t, "", "parse", "feedback", "-", "--format", "html")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

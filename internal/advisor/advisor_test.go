// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package advisor

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/research-assistant/pkg/types"
)

func TestMain(m *testing.M) {
	backoffBase = time.Millisecond
	os.Exit(m.Run())
}

// mockBackend replays canned replies and records every request.
type mockBackend struct {
	mu       sync.Mutex
	replies  []string
	errs     []error
	requests []Request
}

func (m *mockBackend) Generate(_ context.Context, req Request) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := len(m.requests)
	m.requests = append(m.requests, req)
	var err error
	if i < len(m.errs) {
		err = m.errs[i]
	}
	if err != nil {
		return "", err
	}
	if i < len(m.replies) {
		return m.replies[i], nil
	}
	if len(m.replies) > 0 {
		return m.replies[len(m.replies)-1], nil
	}
	return "", nil
}

const analysisReply = `### Topic Overview
Microplastics accumulate in rivers.
- **Education Level:** Undergraduate
- **Prerequisites:** Basic chemistry

### Topic Viability Analysis
**WISE_CHOICE**: There is a clear gap.
`

const paperText = "This paper examines the effects of microplastic pollution on freshwater invertebrates in urban rivers."

func TestAnalyzeTopic(t *testing.T) {
	backend := &mockBackend{replies: []string{analysisReply}}
	a := New(backend, types.AdvisorConfig{})

	report, err := a.AnalyzeTopic(context.Background(), "  microplastics in rivers ")
	require.NoError(t, err)

	assert.Equal(t, analysisReply, report.Markdown)
	assert.Equal(t, "Undergraduate", report.Analysis.Overview.EducationLevel)
	assert.Equal(t, types.WiseChoice, report.Analysis.Viability.Status)

	require.Len(t, backend.requests, 1)
	req := backend.requests[0]
	assert.True(t, req.Search)
	assert.InDelta(t, 0.3, req.Temperature, 1e-6)
	assert.Contains(t, req.Prompt, `"microplastics in rivers"`)
	assert.Contains(t, req.Prompt, "### Topic Viability Analysis")
	assert.Contains(t, req.Prompt, "**Journal/Conference:**")
	assert.NotEmpty(t, req.System)
}

func TestAnalyzeTopic_EmptyTopic(t *testing.T) {
	backend := &mockBackend{}
	a := New(backend, types.AdvisorConfig{})

	_, err := a.AnalyzeTopic(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyTopic)
	assert.Empty(t, backend.requests)
}

func TestInspireTopics(t *testing.T) {
	reply := "### Urban Heat Islands\n**Description:** Map surface temperatures.\n"
	backend := &mockBackend{replies: []string{reply}}
	a := New(backend, types.AdvisorConfig{})

	report, err := a.InspireTopics(context.Background(), "Climate Science", types.EducationPostgraduate)
	require.NoError(t, err)

	require.Len(t, report.Topics, 1)
	assert.Equal(t, "Urban Heat Islands", report.Topics[0].Title)

	req := backend.requests[0]
	assert.True(t, req.Search)
	assert.InDelta(t, 0.7, req.Temperature, 1e-6)
	assert.Contains(t, req.Prompt, "**Field of Research:** Climate Science")
	assert.Contains(t, req.Prompt, "**Education Level:** Postgraduate")
}

func TestInspireTopics_EmptyField(t *testing.T) {
	a := New(&mockBackend{}, types.AdvisorConfig{})
	_, err := a.InspireTopics(context.Background(), "", types.EducationExpert)
	assert.ErrorIs(t, err, ErrEmptyField)
}

func TestReviewPaper(t *testing.T) {
	reply := "### Predicted Grade\n- **Grade:** 74\n### General Feedback\n- Tighten the thesis.\n"
	backend := &mockBackend{replies: []string{reply}}
	a := New(backend, types.AdvisorConfig{})

	report, err := a.ReviewPaper(context.Background(), paperText, types.LevelPostgraduate, "Originality 50%")
	require.NoError(t, err)

	assert.Equal(t, 74, report.Feedback.Grade)
	assert.Equal(t, "- Tighten the thesis.", report.Feedback.GeneralFeedback)

	req := backend.requests[0]
	assert.False(t, req.Search)
	assert.InDelta(t, 0.2, req.Temperature, 1e-6)
	assert.Contains(t, req.Prompt, "**Postgraduate**")
	assert.Contains(t, req.Prompt, "Originality 50%")
	assert.Contains(t, req.Prompt, paperText)
}

func TestReviewPaper_WithoutCriteria(t *testing.T) {
	backend := &mockBackend{replies: []string{"### Predicted Grade\nGrade: 80"}}
	a := New(backend, types.AdvisorConfig{})

	_, err := a.ReviewPaper(context.Background(), paperText, "", "  ")
	require.NoError(t, err)
	assert.NotContains(t, backend.requests[0].Prompt, "Grading Criteria")
	assert.Contains(t, backend.requests[0].Prompt, "**Undergraduate**")
}

func TestReviewPaper_TruncatesText(t *testing.T) {
	backend := &mockBackend{replies: []string{"ok"}}
	a := New(backend, types.AdvisorConfig{MaxPaperChars: 60})

	long := paperText + strings.Repeat(" tail-marker", 20)
	_, err := a.ReviewPaper(context.Background(), long, types.LevelProfessional, "")
	require.NoError(t, err)

	prompt := backend.requests[0].Prompt
	assert.Contains(t, prompt, paperText[:60])
	assert.NotContains(t, prompt, "tail-marker")
}

func TestReviewPaper_TooShort(t *testing.T) {
	backend := &mockBackend{}
	a := New(backend, types.AdvisorConfig{})

	_, err := a.ReviewPaper(context.Background(), "   short text   ", types.LevelHighSchool, "")
	assert.ErrorIs(t, err, ErrTextTooShort)
	assert.Empty(t, backend.requests)
}

func TestGenerate_RetriesTransientErrors(t *testing.T) {
	backend := &mockBackend{
		errs:    []error{errors.New("connection reset by peer"), errors.New("429 Too Many Requests")},
		replies: []string{"", "", analysisReply},
	}
	a := New(backend, types.AdvisorConfig{AIConfig: types.AIConfig{MaxRetries: 3}})

	report, err := a.AnalyzeTopic(context.Background(), "topic")
	require.NoError(t, err)
	assert.Equal(t, analysisReply, report.Markdown)
	assert.Len(t, backend.requests, 3)
}

func TestGenerate_EmptyResponse(t *testing.T) {
	backend := &mockBackend{replies: []string{"  \n "}}
	a := New(backend, types.AdvisorConfig{AIConfig: types.AIConfig{MaxRetries: 2}})

	_, err := a.AnalyzeTopic(context.Background(), "topic")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyResponse)
	assert.Len(t, backend.requests, 3)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "topic analysis", reqErr.Op)
}

func TestGenerate_AuthErrorNotRetried(t *testing.T) {
	backend := &mockBackend{errs: []error{errors.New("API key not valid. Please pass a valid API key.")}}
	a := New(backend, types.AdvisorConfig{AIConfig: types.AIConfig{MaxRetries: 3}})

	_, err := a.InspireTopics(context.Background(), "History", types.EducationHighSchool)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuth)
	assert.Len(t, backend.requests, 1)
	assert.Contains(t, UserMessage(err), "Authentication error")
}

func TestGenerate_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	backend := &mockBackend{errs: []error{context.Canceled}}
	a := New(backend, types.AdvisorConfig{})

	_, err := a.AnalyzeTopic(ctx, "topic")
	assert.ErrorIs(t, err, context.Canceled)
	var reqErr *RequestError
	assert.False(t, errors.As(err, &reqErr))
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package advisor requests topic analyses, topic ideas, and paper reviews
// from a generative-text backend and parses the Markdown replies.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/research-assistant/internal/extract"
	"github.com/pdiddy/research-assistant/pkg/types"
)

// MinPaperChars is the shortest paper text accepted for review.
const MinPaperChars = 50

// backoffBase controls the base duration for exponential backoff. Tests
// override this to avoid real sleeps.
var backoffBase = time.Second

// TopicReport is the reply to AnalyzeTopic.
type TopicReport struct {
	Markdown string
	Analysis types.TopicAnalysis
}

// InspirationReport is the reply to InspireTopics.
type InspirationReport struct {
	Markdown string
	Topics   []types.InspirationTopic
}

// FeedbackReport is the reply to ReviewPaper.
type FeedbackReport struct {
	Markdown string
	Feedback types.FeedbackAnalysis
}

// Advisor drives the three request kinds against a Backend.
type Advisor struct {
	backend Backend
	cfg     types.AdvisorConfig
	log     zerolog.Logger
}

// Option configures an Advisor.
type Option func(*Advisor)

// WithLogger sets the diagnostics logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(a *Advisor) { a.log = log }
}

// New creates an Advisor. Zero fields in cfg take their defaults.
func New(backend Backend, cfg types.AdvisorConfig, opts ...Option) *Advisor {
	a := &Advisor{backend: backend, cfg: cfg.WithDefaults(), log: zerolog.Nop()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AnalyzeTopic requests an overview, related papers, a viability verdict,
// and a structure guide for topic.
func (a *Advisor) AnalyzeTopic(ctx context.Context, topic string) (TopicReport, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return TopicReport{}, ErrEmptyTopic
	}
	prompt, err := renderAnalysisPrompt(topic)
	if err != nil {
		return TopicReport{}, fmt.Errorf("rendering analysis prompt: %w", err)
	}

	md, err := a.generate(ctx, "topic analysis", Request{
		System:      analysisSystem,
		Prompt:      prompt,
		Temperature: a.cfg.AnalysisTemperature,
		Search:      true,
	})
	if err != nil {
		return TopicReport{}, err
	}
	return TopicReport{Markdown: md, Analysis: extract.ParseTopicAnalysis(md)}, nil
}

// InspireTopics requests research topic ideas for a field at an education
// level.
func (a *Advisor) InspireTopics(ctx context.Context, field string, level types.EducationLevel) (InspirationReport, error) {
	field = strings.TrimSpace(field)
	if field == "" {
		return InspirationReport{}, ErrEmptyField
	}
	if level == "" {
		level = types.EducationUndergraduate
	}
	prompt, err := renderInspirationPrompt(field, level)
	if err != nil {
		return InspirationReport{}, fmt.Errorf("rendering inspiration prompt: %w", err)
	}

	md, err := a.generate(ctx, "topic ideas", Request{
		System:      inspirationSystem,
		Prompt:      prompt,
		Temperature: a.cfg.InspirationTemperature,
		Search:      true,
	})
	if err != nil {
		return InspirationReport{}, err
	}
	return InspirationReport{Markdown: md, Topics: extract.ParseInspiration(md)}, nil
}

// ReviewPaper requests a grade and critique of paper text. criteria, when
// non-empty, is embedded as the grading rubric.
func (a *Advisor) ReviewPaper(ctx context.Context, text string, level types.AcademicLevel, criteria string) (FeedbackReport, error) {
	if len(strings.TrimSpace(text)) < MinPaperChars {
		return FeedbackReport{}, ErrTextTooShort
	}
	if level == "" {
		level = types.LevelUndergraduate
	}
	prompt, err := renderFeedbackPrompt(text, level, criteria, a.cfg.MaxPaperChars)
	if err != nil {
		return FeedbackReport{}, fmt.Errorf("rendering feedback prompt: %w", err)
	}

	md, err := a.generate(ctx, "paper feedback", Request{
		System:      feedbackSystem,
		Prompt:      prompt,
		Temperature: a.cfg.FeedbackTemperature,
	})
	if err != nil {
		return FeedbackReport{}, err
	}
	return FeedbackReport{Markdown: md, Feedback: extract.ParseFeedback(md)}, nil
}

// generate runs req with retries and wraps failures in a RequestError.
func (a *Advisor) generate(ctx context.Context, op string, req Request) (string, error) {
	start := time.Now()
	a.log.Debug().Str("op", op).Float32("temperature", req.Temperature).
		Bool("search", req.Search).Int("prompt_chars", len(req.Prompt)).Msg("requesting")

	md, err := callWithRetry(ctx, a.backend, req, a.cfg.MaxRetries, a.log)
	if err != nil {
		if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			return "", err
		}
		kind := classify(err)
		a.log.Warn().Err(err).Str("op", op).Str("kind", kind.Error()).Msg("request failed")
		return "", &RequestError{Op: op, Kind: kind, Err: err}
	}

	a.log.Debug().Str("op", op).Dur("elapsed", time.Since(start)).
		Int("response_chars", len(md)).Msg("received")
	return md, nil
}

// callWithRetry calls the backend with exponential backoff. Empty replies
// count as failures. Errors that another attempt cannot fix stop the loop.
func callWithRetry(ctx context.Context, backend Backend, req Request, maxRetries int, log zerolog.Logger) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * backoffBase
			log.Debug().Int("attempt", attempt).Dur("backoff", backoff).Err(lastErr).Msg("retrying")
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
		}

		md, err := backend.Generate(ctx, req)
		if err == nil && strings.TrimSpace(md) == "" {
			err = ErrEmptyResponse
		}
		if err == nil {
			return md, nil
		}
		lastErr = err
		if ctx.Err() != nil || !retryable(classify(err)) {
			return "", err
		}
	}
	return "", fmt.Errorf("after %d retries: %w", maxRetries, lastErr)
}

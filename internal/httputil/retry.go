// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers for the generative-text client.
package httputil

import (
	"context"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// RetryBaseDelay controls the base duration for exponential backoff on
// HTTP 429 responses. Tests override this to avoid real sleeps.
var RetryBaseDelay = 10 * time.Second

const defaultMaxRetries = 5

// RetryTransport is an http.RoundTripper that throttles outgoing requests
// and retries HTTP 429 (Too Many Requests) with exponential backoff. The
// delay starts at RetryBaseDelay and doubles each attempt.
//
// Requests with a body are only retried when GetBody is set, which is the
// case for every request built by http.NewRequest from an in-memory body.
// After exhausting retries the last 429 response is returned so the caller
// can inspect it.
type RetryTransport struct {
	// Base performs the requests. http.DefaultTransport when nil.
	Base http.RoundTripper

	// MaxRetries is the number of retries after the first attempt (default 5).
	MaxRetries int

	// Limiter, when set, gates every attempt including retries.
	Limiter *rate.Limiter

	// Log receives one debug line per backoff.
	Log zerolog.Logger
}

// NewClient returns an http.Client whose transport is t.
func (t *RetryTransport) NewClient() *http.Client {
	return &http.Client{Transport: t}
}

// NewLimiter converts a requests-per-minute budget into a limiter with a
// burst of one. A non-positive rpm disables throttling.
func NewLimiter(rpm int) *rate.Limiter {
	if rpm <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), 1)
}

// RoundTrip implements http.RoundTripper.
func (t *RetryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	maxRetries := t.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	ctx := req.Context()

	for attempt := 0; ; attempt++ {
		if t.Limiter != nil {
			if err := t.Limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		attemptReq, err := rewind(ctx, req, attempt)
		if err != nil {
			return nil, err
		}

		resp, err := base.RoundTrip(attemptReq)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}

		// Exhausted retries, or the body cannot be replayed.
		if attempt >= maxRetries || (req.Body != nil && req.GetBody == nil) {
			return resp, nil
		}

		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		backoff := time.Duration(math.Pow(2, float64(attempt))) * RetryBaseDelay
		t.Log.Debug().
			Str("url", req.URL.Redacted()).
			Dur("backoff", backoff).
			Int("attempt", attempt+1).
			Int("max_retries", maxRetries).
			Msg("rate limited, retrying")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
}

// rewind returns the request to send for the given attempt. The first
// attempt uses req itself; later attempts clone it with a fresh body.
func rewind(ctx context.Context, req *http.Request, attempt int) (*http.Request, error) {
	if attempt == 0 {
		return req, nil
	}
	clone := req.Clone(ctx)
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		clone.Body = body
	}
	return clone, nil
}

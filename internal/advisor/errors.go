// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package advisor

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// Sentinel errors. Failures returned by Advisor methods match exactly one of
// the classification sentinels under errors.Is.
var (
	ErrAuth           = errors.New("authentication failed")
	ErrNetwork        = errors.New("network error")
	ErrRateLimit      = errors.New("rate limit exceeded")
	ErrContentBlocked = errors.New("content blocked by safety filter")
	ErrEmptyResponse  = errors.New("empty response from model")
	ErrRequest        = errors.New("request failed")

	ErrEmptyTopic   = errors.New("topic must not be empty")
	ErrEmptyField   = errors.New("field of research must not be empty")
	ErrTextTooShort = errors.New("paper text is too short")
)

// RequestError records a failed generation request together with its
// classification.
type RequestError struct {
	// Op names what was being fetched, e.g. "topic analysis".
	Op   string
	Kind error
	Err  error
}

func (e *RequestError) Error() string {
	if e.Err == nil || e.Err == e.Kind {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

// Unwrap exposes both the classification and the underlying cause.
func (e *RequestError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// classify maps a backend failure onto one of the sentinels by inspecting
// well-known error types first and the lower-cased message second.
func classify(err error) error {
	switch {
	case errors.Is(err, ErrAuth), errors.Is(err, ErrNetwork), errors.Is(err, ErrRateLimit),
		errors.Is(err, ErrContentBlocked), errors.Is(err, ErrEmptyResponse):
		return kindOf(err)
	case errors.Is(err, context.DeadlineExceeded):
		return ErrNetwork
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return ErrNetwork
	}

	msg := strings.ToLower(err.Error())
	switch {
	case containsAny(msg, "api key", "permission denied", "unauthenticated", "401", "403"):
		return ErrAuth
	case containsAny(msg, "429", "rate limit", "resource exhausted", "resource_exhausted", "quota"):
		return ErrRateLimit
	case containsAny(msg, "content has been blocked", "safety", "blocked"):
		return ErrContentBlocked
	case containsAny(msg, "fetch", "network", "connection", "timeout", "no such host"):
		return ErrNetwork
	}
	return ErrRequest
}

func kindOf(err error) error {
	for _, kind := range []error{ErrAuth, ErrNetwork, ErrRateLimit, ErrContentBlocked, ErrEmptyResponse} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return ErrRequest
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// retryable reports whether another attempt could succeed.
func retryable(kind error) bool {
	return kind == ErrNetwork || kind == ErrRateLimit || kind == ErrRequest || kind == ErrEmptyResponse
}

// UserMessage returns the wording shown to the user for err.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var reqErr *RequestError
	op := "response"
	if errors.As(err, &reqErr) {
		op = reqErr.Op
	}

	switch {
	case errors.Is(err, ErrEmptyTopic):
		return "Please enter a research topic."
	case errors.Is(err, ErrEmptyField):
		return "Please enter a field of research."
	case errors.Is(err, ErrTextTooShort):
		return "The extracted text is too short to provide meaningful feedback. Please upload a more complete document."
	case errors.Is(err, ErrAuth):
		return "Authentication error. Please check that your API key is valid and has the necessary permissions."
	case errors.Is(err, ErrNetwork):
		return "Network error. Please check your internet connection and try again."
	case errors.Is(err, ErrRateLimit):
		return "The service is currently busy due to high demand (rate limit exceeded). Please wait a moment and try again."
	case errors.Is(err, ErrContentBlocked):
		return "The request was blocked due to safety settings. Please modify your input and try again."
	case errors.Is(err, ErrEmptyResponse):
		return fmt.Sprintf("The model returned an empty response for the %s. Please try again.", op)
	}

	cause := err
	if reqErr != nil && reqErr.Err != nil {
		cause = reqErr.Err
	}
	return fmt.Sprintf("An error occurred while fetching the %s: %v", op, cause)
}

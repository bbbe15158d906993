// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HistoryKind identifies which advisor request produced a history item.
type HistoryKind string

const (
	KindAnalysis    HistoryKind = "analysis"
	KindInspiration HistoryKind = "inspiration"
	KindFeedback    HistoryKind = "feedback"
)

// Valid reports whether k is one of the known kinds.
func (k HistoryKind) Valid() bool {
	switch k {
	case KindAnalysis, KindInspiration, KindFeedback:
		return true
	}
	return false
}

// HistoryItem stores the raw response of one advisor request. The parsed
// records are rebuilt from Response on demand; parser internals are never
// persisted.
type HistoryItem struct {
	ID        string      `json:"id" yaml:"id"`
	Kind      HistoryKind `json:"kind" yaml:"kind"`
	Topic     string      `json:"topic" yaml:"topic"`
	Response  string      `json:"response" yaml:"response"`
	Timestamp time.Time   `json:"timestamp" yaml:"timestamp"`
}

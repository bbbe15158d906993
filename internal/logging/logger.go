// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the zerolog logger used for diagnostics. Progress
// lines meant for the user are written directly to the command's output;
// this logger carries everything else.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = "warn"

// ParseLevel maps a level name to a zerolog level. An empty name yields
// DefaultLevel.
func ParseLevel(name string) (zerolog.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultLevel
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q: %w", name, err)
	}
	return level, nil
}

// New returns a logger writing human-readable lines to w at the named level.
func New(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05", NoColor: true}
	return zerolog.New(console).Level(lvl).With().
		Timestamp().
		Str("app", "research-assistant").
		Logger(), nil
}

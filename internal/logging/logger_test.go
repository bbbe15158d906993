// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"", zerolog.WarnLevel},
		{"debug", zerolog.DebugLevel},
		{" INFO ", zerolog.InfoLevel},
		{"error", zerolog.ErrorLevel},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("chatty")
	assert.Error(t, err)
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "info")
	require.NoError(t, err)

	log.Debug().Msg("hidden")
	log.Info().Str("op", "analyze").Msg("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
	assert.Contains(t, out, "op=analyze")
}

func TestNew_BadLevel(t *testing.T) {
	var buf bytes.Buffer
	_, err := New(&buf, "loud")
	assert.Error(t, err)
}

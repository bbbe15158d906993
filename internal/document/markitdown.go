// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/pdiddy/research-assistant/internal/container"
)

// ImageMarkitdown is the container image used for legacy formats.
const ImageMarkitdown = "markitdown:latest"

// MarkitdownConverter converts documents by piping them through the
// markitdown container image.
type MarkitdownConverter struct {
	runtime container.Runtime
}

// NewMarkitdownConverter verifies that the markitdown image exists in rt.
func NewMarkitdownConverter(ctx context.Context, rt container.Runtime) (*MarkitdownConverter, error) {
	if err := rt.ImageExists(ctx, ImageMarkitdown); err != nil {
		return nil, fmt.Errorf("markitdown image not available in %s: %w", rt.Name(), err)
	}
	return &MarkitdownConverter{runtime: rt}, nil
}

// Convert implements Converter.
func (m *MarkitdownConverter) Convert(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var out bytes.Buffer
	if err := m.runtime.Run(ctx, ImageMarkitdown, f, &out); err != nil {
		return "", fmt.Errorf("converting with markitdown: %w", err)
	}
	if out.Len() == 0 {
		return "", fmt.Errorf("markitdown produced empty output")
	}
	return out.String(), nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// ExportYAML writes the items selected by opts to w as a YAML sequence.
// A zero Limit exports everything.
func (s *Store) ExportYAML(ctx context.Context, w io.Writer, opts ListOptions) error {
	items, err := s.exportItems(ctx, opts)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(items); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}

// ExportJSON writes the items selected by opts to w as an indented JSON
// array. A zero Limit exports everything.
func (s *Store) ExportJSON(ctx context.Context, w io.Writer, opts ListOptions) error {
	items, err := s.exportItems(ctx, opts)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return nil
}

func (s *Store) exportItems(ctx context.Context, opts ListOptions) ([]types.HistoryItem, error) {
	if opts.Limit == 0 {
		opts.Limit = -1
	}
	items, err := s.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}
	return items, nil
}

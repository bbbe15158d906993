// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/research-assistant/internal/advisor"
	"github.com/pdiddy/research-assistant/internal/history"
	"github.com/pdiddy/research-assistant/internal/render"
	"github.com/pdiddy/research-assistant/pkg/types"
)

// themeSetting is the settings key holding the saved display theme.
const themeSetting = "theme"

// Output formats accepted by --format.
const (
	formatText     = "text"
	formatMarkdown = "markdown"
	formatJSON     = "json"
	formatYAML     = "yaml"
)

func newAdvisor(ctx context.Context, cfg types.AppConfig) (*advisor.Advisor, error) {
	backend, err := advisor.NewGeminiBackend(ctx, cfg.Advisor.AIConfig, logger)
	if err != nil {
		return nil, err
	}
	return advisor.New(backend, cfg.Advisor, advisor.WithLogger(logger)), nil
}

// newRenderer resolves the theme from configuration, then the saved
// setting, then the light default.
func newRenderer(ctx context.Context, w io.Writer, cfg types.AppConfig, store *history.Store) *render.Renderer {
	display := cfg.Display
	if display.Theme == "" && store != nil {
		if saved, ok, err := store.Setting(ctx, themeSetting); err == nil && ok {
			display.Theme = types.Theme(saved)
		}
	}
	return render.New(w, display)
}

// addOutputFlags registers --format and --no-save on a request command.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().String("format", formatText, "output format: text, markdown, json, or yaml")
	cmd.Flags().Bool("no-save", false, "do not record the reply in history")
}

func outputFormat(cmd *cobra.Command) (string, error) {
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case formatText, formatMarkdown, formatJSON, formatYAML:
		return format, nil
	case "":
		return formatText, nil
	}
	return "", fmt.Errorf("unsupported format %q: use text, markdown, json, or yaml", format)
}

// writeStructured encodes v as JSON or YAML.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported structured format %q", format)
}

// requestRun bundles what every advisor command needs.
type requestRun struct {
	cfg    types.AppConfig
	store  *history.Store
	format string
	save   bool
}

func startRequest(cmd *cobra.Command) (*requestRun, error) {
	format, err := outputFormat(cmd)
	if err != nil {
		return nil, err
	}
	cfg, err := loadAppConfig()
	if err != nil {
		return nil, err
	}
	noSave, _ := cmd.Flags().GetBool("no-save")

	store, err := history.Open(cfg.History)
	if err != nil {
		return nil, err
	}
	return &requestRun{cfg: cfg, store: store, format: format, save: !noSave}, nil
}

func (r *requestRun) Close() error { return r.store.Close() }

// record saves a reply and logs where it went.
func (r *requestRun) record(ctx context.Context, kind types.HistoryKind, topic, markdown string) {
	if !r.save {
		return
	}
	item, err := r.store.Add(ctx, kind, topic, markdown)
	if err != nil {
		logger.Warn().Err(err).Msg("could not save history")
		return
	}
	logger.Info().Str("id", item.ID).Str("kind", string(kind)).Msg("saved to history")
}

// emit writes a parsed record in the requested format. draw renders the
// text form.
func (r *requestRun) emit(cmd *cobra.Command, markdown string, record any, draw func(*render.Renderer) error) error {
	out := cmd.OutOrStdout()
	switch r.format {
	case formatMarkdown:
		_, err := io.WriteString(out, markdown)
		return err
	case formatJSON, formatYAML:
		return writeStructured(out, r.format, record)
	}
	return draw(newRenderer(cmd.Context(), out, r.cfg, r.store))
}

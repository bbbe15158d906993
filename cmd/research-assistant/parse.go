// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-assistant/internal/extract"
	"github.com/pdiddy/research-assistant/internal/render"
	"github.com/pdiddy/research-assistant/pkg/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse <analysis|feedback|inspiration|sections|emphasis> [file|-]",
	Short: "Parse a saved Markdown reply without calling the model",
	Long: `Parse runs one of the reply parsers over Markdown read from a file or
standard input and prints the resulting record. No network access is made.

  analysis     topic overview, papers, viability, structure guide
  feedback     grade, general feedback, quote/comment pairs
  inspiration  topic ideas
  sections     the raw "### " sections
  emphasis     plain and bold text spans`,
	Args:      cobra.RangeArgs(1, 2),
	ValidArgs: []string{"analysis", "feedback", "inspiration", "sections", "emphasis"},
	RunE:      runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	src := "-"
	if len(args) == 2 {
		src = args[1]
	}
	markdown, err := readSource(cmd.InOrStdin(), src)
	if err != nil {
		return err
	}

	var (
		record any
		draw   func(*render.Renderer) error
	)
	switch args[0] {
	case "analysis", "feedback", "inspiration":
		record, draw = parseRecord(types.HistoryKind(args[0]), markdown)
	case "sections":
		record = sectionRecords(extract.Segment(markdown))
	case "emphasis":
		record = extract.SplitEmphasis(markdown)
	default:
		return fmt.Errorf("unknown parser %q: use analysis, feedback, inspiration, sections, or emphasis", args[0])
	}

	out := cmd.OutOrStdout()
	switch {
	case format == formatMarkdown:
		_, err := io.WriteString(out, markdown)
		return err
	case format == formatText && draw != nil:
		cfg, err := loadAppConfig()
		if err != nil {
			return err
		}
		return draw(render.New(out, cfg.Display))
	case format == formatText:
		format = formatYAML
	}
	return writeStructured(out, format, record)
}

type sectionRecord struct {
	Label string `json:"label" yaml:"label"`
	Body  string `json:"body" yaml:"body"`
}

func sectionRecords(blocks []extract.Block) []sectionRecord {
	out := make([]sectionRecord, len(blocks))
	for i, b := range blocks {
		out[i] = sectionRecord{Label: b.Label, Body: b.Body}
	}
	return out
}

func readSource(stdin io.Reader, src string) (string, error) {
	if src == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", src, err)
	}
	return string(data), nil
}

// parseRecord re-parses a stored reply for its kind.
func parseRecord(kind types.HistoryKind, markdown string) (any, func(*render.Renderer) error) {
	switch kind {
	case types.KindAnalysis:
		a := extract.ParseTopicAnalysis(markdown)
		return a, func(r *render.Renderer) error { return r.TopicAnalysis(a) }
	case types.KindFeedback:
		f := extract.ParseFeedback(markdown)
		return f, func(r *render.Renderer) error { return r.Feedback(f) }
	default:
		topics := extract.ParseInspiration(markdown)
		return topics, func(r *render.Renderer) error { return r.Inspiration(topics) }
	}
}

func init() {
	parseCmd.Flags().String("format", formatText, "output format: text, markdown, json, or yaml")
	rootCmd.AddCommand(parseCmd)
}

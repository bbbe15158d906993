// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-assistant/internal/render"
	"github.com/pdiddy/research-assistant/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <topic>",
	Short: "Analyze a research topic",
	Long: `Analyze asks the model for an overview of the topic, five to ten related
papers found through web search, a viability verdict (Wise Choice, Caution
Advised, or Novel Opportunity), and a section-by-section structure guide.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	topic := strings.Join(args, " ")

	run, err := startRequest(cmd)
	if err != nil {
		return err
	}
	defer run.Close()

	adv, err := newAdvisor(cmd.Context(), run.cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Analyzing %q...\n", topic)
	report, err := adv.AnalyzeTopic(cmd.Context(), topic)
	if err != nil {
		return err
	}
	run.record(cmd.Context(), types.KindAnalysis, topic, report.Markdown)

	return run.emit(cmd, report.Markdown, report.Analysis, func(r *render.Renderer) error {
		return r.TopicAnalysis(report.Analysis)
	})
}

func init() {
	addOutputFlags(analyzeCmd)
	rootCmd.AddCommand(analyzeCmd)
}

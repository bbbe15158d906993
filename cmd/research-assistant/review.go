// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/research-assistant/internal/container"
	"github.com/pdiddy/research-assistant/internal/document"
	"github.com/pdiddy/research-assistant/internal/render"
	"github.com/pdiddy/research-assistant/pkg/types"
)

var reviewCmd = &cobra.Command{
	Use:   "review <file>",
	Short: "Grade and critique a paper",
	Long: `Review extracts the text of a paper (PDF, DOCX, TXT, or legacy DOC through
the markitdown container) and asks the model for a predicted grade out of
100, general feedback, and quote-by-quote suggestions.

A grading rubric can be given inline with --criteria or as a document with
--criteria-file.`,
	Args: cobra.ExactArgs(1),
	RunE: runReview,
}

func runReview(cmd *cobra.Command, args []string) error {
	levelFlag, _ := cmd.Flags().GetString("level")
	level, ok := types.ParseAcademicLevel(levelFlag)
	if !ok {
		return fmt.Errorf("unknown academic level %q: use one of %s", levelFlag, joinLevels(types.AcademicLevels))
	}

	run, err := startRequest(cmd)
	if err != nil {
		return err
	}
	defer run.Close()

	ctx := cmd.Context()
	reader, err := newDocumentReader(ctx, run.cfg.Document)
	if err != nil {
		return err
	}

	path := args[0]
	fmt.Fprintf(cmd.ErrOrStderr(), "Reading %s...\n", path)
	text, err := reader.ReadValidated(ctx, path)
	if err != nil {
		return err
	}

	criteria, _ := cmd.Flags().GetString("criteria")
	if criteriaFile, _ := cmd.Flags().GetString("criteria-file"); criteriaFile != "" {
		criteria, err = reader.Read(ctx, criteriaFile)
		if err != nil {
			return fmt.Errorf("reading criteria: %w", err)
		}
	}

	adv, err := newAdvisor(ctx, run.cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Reviewing %d characters at %s level...\n", len(text), level)
	report, err := adv.ReviewPaper(ctx, text, level, criteria)
	if err != nil {
		return err
	}
	run.record(ctx, types.KindFeedback, filepath.Base(path), report.Markdown)

	return run.emit(cmd, report.Markdown, report.Feedback, func(r *render.Renderer) error {
		return r.Feedback(report.Feedback)
	})
}

// newDocumentReader wires the markitdown converter when containers are
// enabled and usable. A missing runtime only disables legacy .doc support.
func newDocumentReader(ctx context.Context, cfg types.DocumentConfig) (*document.Reader, error) {
	if !cfg.UseContainer {
		return document.NewReader(cfg, nil), nil
	}
	rt, err := container.Detect(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("legacy .doc files will be rejected")
		return document.NewReader(cfg, nil), nil
	}
	conv, err := document.NewMarkitdownConverter(ctx, rt)
	if err != nil {
		logger.Warn().Err(err).Msg("legacy .doc files will be rejected")
		return document.NewReader(cfg, nil), nil
	}
	return document.NewReader(cfg, conv), nil
}

func init() {
	reviewCmd.Flags().String("level", string(types.LevelUndergraduate), "academic level: High School, Undergraduate, Postgraduate, Professional")
	reviewCmd.Flags().String("criteria", "", "grading rubric text")
	reviewCmd.Flags().String("criteria-file", "", "document containing the grading rubric")
	reviewCmd.Flags().Bool("use-container", false, "convert legacy .doc files with the markitdown container")
	addOutputFlags(reviewCmd)

	_ = viper.BindPFlag("document.use_container", reviewCmd.Flags().Lookup("use-container"))
	rootCmd.AddCommand(reviewCmd)
}

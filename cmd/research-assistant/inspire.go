// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-assistant/internal/render"
	"github.com/pdiddy/research-assistant/pkg/types"
)

var inspireCmd = &cobra.Command{
	Use:   "inspire [field]",
	Short: "Suggest research topics for a field",
	Long: `Inspire asks the model for five to seven research topic ideas suited to a
field of research and an education level.`,
	RunE: runInspire,
}

func runInspire(cmd *cobra.Command, args []string) error {
	field, _ := cmd.Flags().GetString("field")
	if field == "" {
		field = strings.Join(args, " ")
	}
	levelFlag, _ := cmd.Flags().GetString("level")
	level, ok := types.ParseEducationLevel(levelFlag)
	if !ok {
		return fmt.Errorf("unknown education level %q: use one of %s", levelFlag, joinLevels(types.EducationLevels))
	}

	run, err := startRequest(cmd)
	if err != nil {
		return err
	}
	defer run.Close()

	adv, err := newAdvisor(cmd.Context(), run.cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Finding %s topics in %q...\n", level, field)
	report, err := adv.InspireTopics(cmd.Context(), field, level)
	if err != nil {
		return err
	}
	run.record(cmd.Context(), types.KindInspiration, fmt.Sprintf("%s (%s)", strings.TrimSpace(field), level), report.Markdown)

	return run.emit(cmd, report.Markdown, report.Topics, func(r *render.Renderer) error {
		return r.Inspiration(report.Topics)
	})
}

func joinLevels[T ~string](levels []T) string {
	names := make([]string, len(levels))
	for i, l := range levels {
		names[i] = fmt.Sprintf("%q", string(l))
	}
	return strings.Join(names, ", ")
}

func init() {
	inspireCmd.Flags().String("field", "", "field of research, e.g. \"Marine Biology\"")
	inspireCmd.Flags().String("level", string(types.EducationUndergraduate), "education level: High School, Undergraduate, Postgraduate, Expert")
	addOutputFlags(inspireCmd)
	rootCmd.AddCommand(inspireCmd)
}

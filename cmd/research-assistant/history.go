// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-assistant/internal/history"
	"github.com/pdiddy/research-assistant/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List, show, delete, and export saved replies",
	Long: `History manages the replies saved by analyze, inspire, and review in a
local SQLite database. Items are addressed by ID or by a unique ID prefix of
at least eight characters.`,
}

// --- list subcommand ---

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved replies, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()

		opts, err := listOptsFromFlags(cmd)
		if err != nil {
			return err
		}
		items, err := store.List(cmd.Context(), opts)
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return writeStructured(cmd.OutOrStdout(), formatJSON, items)
		}
		return newRenderer(cmd.Context(), cmd.OutOrStdout(), cfg, store).History(items)
	},
}

// --- show subcommand ---

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a saved reply",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outputFormat(cmd)
		if err != nil {
			return err
		}
		cfg, store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()

		item, err := store.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		record, draw := parseRecord(item.Kind, item.Response)
		switch format {
		case formatMarkdown:
			_, err := io.WriteString(out, item.Response)
			return err
		case formatJSON, formatYAML:
			return writeStructured(out, format, record)
		}
		fmt.Fprintf(out, "%s · %s · %s\n", item.Kind, item.Topic, item.Timestamp.Local().Format("2006-01-02 15:04"))
		return draw(newRenderer(cmd.Context(), out, cfg, store))
	},
}

// --- delete subcommand ---

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved reply",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()

		item, err := store.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if err := store.Delete(cmd.Context(), item.ID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s (%s)\n", item.ID, item.Topic)
		return nil
	},
}

// --- clear subcommand ---

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all saved replies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return fmt.Errorf("refusing to clear history without --yes")
		}
		_, store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()

		kind, _ := cmd.Flags().GetString("kind")
		n, err := store.Clear(cmd.Context(), types.HistoryKind(kind))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d item(s)\n", n)
		return nil
	},
}

// --- export subcommand ---

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export saved replies to YAML or JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()

		opts, err := listOptsFromFlags(cmd)
		if err != nil {
			return err
		}

		var w io.Writer = cmd.OutOrStdout()
		if path, _ := cmd.Flags().GetString("output"); path != "" {
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("creating %s: %w", path, err)
			}
			defer f.Close()
			w = f
		}

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case formatYAML, "":
			return store.ExportYAML(cmd.Context(), w, opts)
		case formatJSON:
			return store.ExportJSON(cmd.Context(), w, opts)
		}
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	},
}

// --- shared helpers ---

func openHistory() (types.AppConfig, *history.Store, error) {
	cfg, err := loadAppConfig()
	if err != nil {
		return cfg, nil, err
	}
	store, err := history.Open(cfg.History)
	return cfg, store, err
}

func listOptsFromFlags(cmd *cobra.Command) (history.ListOptions, error) {
	kind, _ := cmd.Flags().GetString("kind")
	query, _ := cmd.Flags().GetString("query")
	limit, _ := cmd.Flags().GetInt("limit")

	opts := history.ListOptions{Kind: types.HistoryKind(kind), Query: query, Limit: limit}
	if opts.Kind != "" && !opts.Kind.Valid() {
		return opts, fmt.Errorf("unknown kind %q: use analysis, inspiration, or feedback", kind)
	}
	return opts, nil
}

func init() {
	for _, c := range []*cobra.Command{historyListCmd, historyExportCmd} {
		c.Flags().String("kind", "", "filter by kind: analysis, inspiration, feedback")
		c.Flags().String("query", "", "filter by topic substring")
	}
	historyListCmd.Flags().Int("limit", 0, "maximum items (0 = configured default, -1 = all)")
	historyListCmd.Flags().Bool("json", false, "output items as JSON")

	historyShowCmd.Flags().String("format", formatText, "output format: text, markdown, json, or yaml")

	historyClearCmd.Flags().String("kind", "", "only clear one kind")
	historyClearCmd.Flags().Bool("yes", false, "confirm deletion")

	historyExportCmd.Flags().String("format", formatYAML, "export format: yaml or json")
	historyExportCmd.Flags().String("output", "", "write to a file instead of stdout")
	historyExportCmd.Flags().Int("limit", 0, "maximum items to export (0 = all)")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyExportCmd)

	rootCmd.AddCommand(historyCmd)
}

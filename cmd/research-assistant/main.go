// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the research-assistant CLI. It asks a
// Gemini model to analyse research topics, suggest topic ideas, and review
// papers, then renders the Markdown replies as terminal panels.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/research-assistant/internal/advisor"
	"github.com/pdiddy/research-assistant/internal/logging"
	"github.com/pdiddy/research-assistant/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	// loadedSecrets holds credentials loaded from .secrets/ at startup.
	loadedSecrets secrets.Secrets

	// logger carries diagnostics to stderr.
	logger = zerolog.Nop()
)

// rootCmd is the base command for the research-assistant CLI.
var rootCmd = &cobra.Command{
	Use:   "research-assistant",
	Short: "AI research advisor for choosing topics and reviewing papers",
	Long: `research-assistant asks a Gemini model for help with academic research
and renders the replies in the terminal.

  analyze   evaluate a research topic: overview, related papers, viability,
            and a section-by-section structure guide
  inspire   suggest research topics for a field and education level
  review    grade a paper (PDF, DOCX, DOC, TXT) and critique it
  parse     re-parse a saved Markdown reply without calling the model
  history   list, show, delete, and export saved replies

The API key is read from .secrets/gemini-api-key, GEMINI_API_KEY, or API_KEY
(a .env file in the working directory is honoured).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := secrets.LoadEnvFile(".env"); err != nil {
			return err
		}

		log, err := logging.New(os.Stderr, viper.GetString("log_level"))
		if err != nil {
			return err
		}
		logger = log

		s, err := secrets.Load(".secrets/", logger)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			logger.Debug().Strs("keys", keys).Msg("loaded secrets")
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./research-assistant.yaml or ~/.config/research-assistant/research-assistant.yaml)")
	flags.String("log-level", "", "diagnostic log level: debug, info, warn, error (default warn)")
	flags.String("theme", "", "display theme: light or dark (default: saved theme)")
	flags.String("data-dir", "", "directory holding history.db (default ~/.local/share/research-assistant)")

	_ = viper.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("display.theme", flags.Lookup("theme"))
	_ = viper.BindPFlag("history.data_dir", flags.Lookup("data-dir"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("research-assistant")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "research-assistant"))
		}
	}

	setConfigDefaults(viper.GetViper())

	viper.SetEnvPrefix("RESEARCH_ASSISTANT")
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", advisor.UserMessage(err))
		logger.Debug().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/pdiddy/research-assistant/internal/history"
	"github.com/pdiddy/research-assistant/pkg/types"
)

// envKeyReplacer maps nested keys to env names:
// advisor.model -> RESEARCH_ASSISTANT_ADVISOR_MODEL.
var envKeyReplacer = strings.NewReplacer(".", "_")

func setConfigDefaults(v *viper.Viper) {
	d := types.AdvisorConfig{}.WithDefaults()
	v.SetDefault("advisor.model", d.Model)
	v.SetDefault("advisor.max_retries", d.MaxRetries)
	v.SetDefault("advisor.timeout", d.Timeout)
	v.SetDefault("advisor.requests_per_minute", d.RequestsPerMinute)
	v.SetDefault("advisor.analysis_temperature", d.AnalysisTemperature)
	v.SetDefault("advisor.inspiration_temperature", d.InspirationTemperature)
	v.SetDefault("advisor.feedback_temperature", d.FeedbackTemperature)
	v.SetDefault("advisor.max_paper_chars", d.MaxPaperChars)

	v.SetDefault("document.min_chars", 50)
	v.SetDefault("document.use_container", false)

	v.SetDefault("history.data_dir", history.DefaultDataDir())
	v.SetDefault("history.max_results", 20)

	v.SetDefault("display.width", 88)
	v.SetDefault("log_level", "warn")
}

// loadAppConfig decodes the merged flag, env, and file configuration.
func loadAppConfig() (types.AppConfig, error) {
	var cfg types.AppConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding configuration: %w", err)
	}
	cfg.Advisor = cfg.Advisor.WithDefaults()
	if cfg.Advisor.APIKey == "" {
		cfg.Advisor.APIKey, _ = loadedSecrets.GeminiAPIKey()
	}
	if cfg.Display.Theme != "" && cfg.Display.Theme != types.ThemeLight && cfg.Display.Theme != types.ThemeDark {
		return cfg, fmt.Errorf("unknown theme %q: use light or dark", cfg.Display.Theme)
	}
	return cfg, nil
}

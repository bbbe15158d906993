// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// AIConfig holds shared settings for calls to the generative-text service.
type AIConfig struct {
	// Model is the Gemini model identifier (default "gemini-2.5-pro").
	Model string `json:"model" yaml:"model" mapstructure:"model"`

	// APIKey is the authentication key for the Gemini API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`

	// MaxRetries is the number of retry attempts for failed calls (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`

	// Timeout bounds a single generation request (default 5m).
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// RequestsPerMinute throttles outgoing requests (default 10).
	RequestsPerMinute int `json:"requests_per_minute" yaml:"requests_per_minute" mapstructure:"requests_per_minute"`
}

// AdvisorConfig holds per-request generation settings.
type AdvisorConfig struct {
	AIConfig `yaml:",inline" mapstructure:",squash"`

	// AnalysisTemperature is used for topic analysis (default 0.3).
	AnalysisTemperature float32 `json:"analysis_temperature" yaml:"analysis_temperature" mapstructure:"analysis_temperature"`

	// InspirationTemperature is used for topic inspiration (default 0.7).
	InspirationTemperature float32 `json:"inspiration_temperature" yaml:"inspiration_temperature" mapstructure:"inspiration_temperature"`

	// FeedbackTemperature is used for paper reviews (default 0.2).
	FeedbackTemperature float32 `json:"feedback_temperature" yaml:"feedback_temperature" mapstructure:"feedback_temperature"`

	// MaxPaperChars truncates paper text embedded in review prompts (default 30000).
	MaxPaperChars int `json:"max_paper_chars" yaml:"max_paper_chars" mapstructure:"max_paper_chars"`
}

// WithDefaults returns a copy of c with zero values replaced by defaults.
func (c AdvisorConfig) WithDefaults() AdvisorConfig {
	if c.Model == "" {
		c.Model = "gemini-2.5-pro"
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = 3
	}
	if c.Timeout <= 0 {
		c.Timeout = 5 * time.Minute
	}
	if c.RequestsPerMinute <= 0 {
		c.RequestsPerMinute = 10
	}
	if c.AnalysisTemperature == 0 {
		c.AnalysisTemperature = 0.3
	}
	if c.InspirationTemperature == 0 {
		c.InspirationTemperature = 0.7
	}
	if c.FeedbackTemperature == 0 {
		c.FeedbackTemperature = 0.2
	}
	if c.MaxPaperChars <= 0 {
		c.MaxPaperChars = 30000
	}
	return c
}

// DocumentConfig holds settings for reading uploaded papers.
type DocumentConfig struct {
	// MinChars is the minimum length of extracted text (default 50).
	MinChars int `json:"min_chars" yaml:"min_chars" mapstructure:"min_chars"`

	// UseContainer enables the markitdown container for formats without a
	// native reader (legacy .doc).
	UseContainer bool `json:"use_container" yaml:"use_container" mapstructure:"use_container"`
}

// HistoryConfig holds settings for the local history database.
type HistoryConfig struct {
	// DataDir contains history.db (default ~/.local/share/research-assistant).
	DataDir string `json:"data_dir" yaml:"data_dir" mapstructure:"data_dir"`

	// MaxResults is the default number of items listed (default 20).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}

// Theme selects the terminal colour palette.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DisplayConfig holds rendering settings.
type DisplayConfig struct {
	Theme Theme `json:"theme" yaml:"theme" mapstructure:"theme"`

	// Width is the panel width in columns (default 88).
	Width int `json:"width" yaml:"width" mapstructure:"width"`
}

// AppConfig groups every section of research-assistant.yaml.
type AppConfig struct {
	Advisor  AdvisorConfig  `json:"advisor" yaml:"advisor" mapstructure:"advisor"`
	Document DocumentConfig `json:"document" yaml:"document" mapstructure:"document"`
	History  HistoryConfig  `json:"history" yaml:"history" mapstructure:"history"`
	Display  DisplayConfig  `json:"display" yaml:"display" mapstructure:"display"`
	LogLevel string         `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
}

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Gemini      GeminiConfig      `yaml:"gemini"`
	Subtitle    SubtitleConfig    `yaml:"subtitle"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type GeminiConfig struct {
	Model        string   `yaml:"model"`
	PollInterval Duration `yaml:"poll_interval"`
	// PollTimeout bounds the wait for remote media processing.
	// Zero means wait indefinitely.
	PollTimeout Duration `yaml:"poll_timeout"`
}

// Duration decodes YAML strings like "2s" or "500ms".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

type SubtitleConfig struct {
	// Languages is the subtitle preference order passed to yt-dlp.
	Languages []string `yaml:"languages"`
	// MinTranscriptChars is the acceptance threshold for a cleaned
	// transcript. Transcripts at or below this length are treated as
	// empty placeholders and fall through to audio transcription.
	MinTranscriptChars int `yaml:"min_transcript_chars"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Temp   string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash-lite"
	}
	if c.Gemini.PollInterval == 0 {
		c.Gemini.PollInterval = Duration(time.Second)
	}
	if len(c.Subtitle.Languages) == 0 {
		c.Subtitle.Languages = []string{"zh-Hant", "zh-TW", "zh", "en", "en-US"}
	}
	if c.Subtitle.MinTranscriptChars == 0 {
		c.Subtitle.MinTranscriptChars = 50
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}

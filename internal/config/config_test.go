package config

import (
	"os"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Paths: PathsConfig{
					Output: "data/output",
				},
			},
			wantErr: false,
		},
		{
			name:    "missing output path",
			config:  Config{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{Paths: PathsConfig{Output: "data/output"}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Gemini.Model != "gemini-2.5-flash-lite" {
		t.Errorf("Model = %v, want gemini-2.5-flash-lite", cfg.Gemini.Model)
	}
	if cfg.Gemini.PollInterval != Duration(time.Second) {
		t.Errorf("PollInterval = %v, want 1s", cfg.Gemini.PollInterval)
	}
	if cfg.Subtitle.MinTranscriptChars != 50 {
		t.Errorf("MinTranscriptChars = %v, want 50", cfg.Subtitle.MinTranscriptChars)
	}
	if len(cfg.Subtitle.Languages) == 0 || cfg.Subtitle.Languages[0] != "zh-Hant" {
		t.Errorf("Languages = %v, want zh-Hant first", cfg.Subtitle.Languages)
	}
	if cfg.Performance.MaxConcurrent != 2 {
		t.Errorf("MaxConcurrent = %v, want 2", cfg.Performance.MaxConcurrent)
	}
	if cfg.Paths.Temp != "data/temp" {
		t.Errorf("Temp = %v, want data/temp", cfg.Paths.Temp)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
gemini:
  model: "gemini-2.5-flash"
  poll_interval: 2s

subtitle:
  languages: ["en", "en-US"]
  min_transcript_chars: 80

paths:
  input: "data/input"
  output: "data/output"

logging:
  level: "debug"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("Model = %v, want gemini-2.5-flash", cfg.Gemini.Model)
	}
	if cfg.Gemini.PollInterval != Duration(2*time.Second) {
		t.Errorf("PollInterval = %v, want 2s", cfg.Gemini.PollInterval)
	}
	if cfg.Subtitle.MinTranscriptChars != 80 {
		t.Errorf("MinTranscriptChars = %v, want 80", cfg.Subtitle.MinTranscriptChars)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %v, want debug", cfg.Logging.Level)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

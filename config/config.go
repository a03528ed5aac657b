package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"rightorrude/models"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Gemini struct {
		ApiKey string `yaml:"apiKey"`
		Model  string `yaml:"model"`
	} `yaml:"gemini"`

	Deliberation struct {
		// Mode is "panel" (full persona fan-out plus judge synthesis) or
		// "single" (one neutral reviewer, no judge phase).
		Mode             string `yaml:"mode"`
		JudgeMaxAttempts int    `yaml:"judgeMaxAttempts"`
	} `yaml:"deliberation"`

	// Personas overrides the built-in reviewer panel when non-empty.
	Personas []models.Persona `yaml:"personas"`
}

const (
	ModePanel  = "panel"
	ModeSingle = "single"
)

// LoadConfig reads the configuration file and layers environment variables
// underneath it: the file wins, GEMINI_API_KEY / GEMINI_MODEL fill the gaps.
// A missing file is not an error; the environment can carry everything. An
// absent API key is also not an error here; the server still starts and
// surfaces the configuration fault on submission instead.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
		}
	case os.IsNotExist(err):
		// config file is optional
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if cfg.Gemini.ApiKey == "" {
		cfg.Gemini.ApiKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = os.Getenv("GEMINI_MODEL")
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Deliberation.Mode == "" {
		cfg.Deliberation.Mode = ModePanel
	}
	if cfg.Deliberation.JudgeMaxAttempts == 0 {
		cfg.Deliberation.JudgeMaxAttempts = 3
	}

	if cfg.Deliberation.Mode != ModePanel && cfg.Deliberation.Mode != ModeSingle {
		return nil, fmt.Errorf("config: deliberation mode must be %q or %q, got %q", ModePanel, ModeSingle, cfg.Deliberation.Mode)
	}
	if cfg.Deliberation.JudgeMaxAttempts < 1 {
		return nil, fmt.Errorf("config: judgeMaxAttempts must be >= 1, got %d", cfg.Deliberation.JudgeMaxAttempts)
	}
	for _, p := range cfg.Personas {
		if p.Name == "" || p.Instruction == "" {
			return nil, fmt.Errorf("config: every persona needs a name and an instruction")
		}
	}

	return &cfg, nil
}

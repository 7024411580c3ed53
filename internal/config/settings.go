package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/template"

	"github.com/adrg/xdg"
	"github.com/caarlos0/env/v9"
	"gopkg.in/yaml.v3"
)

const (
	appName      = "elia"
	settingsFile = "config.yml"
	themesDir    = "themes"
	envPrefix    = "ELIA_"
)

// Settings is the raw configuration as found in the settings file and the
// environment. Empty values mean "use the default".
type Settings struct {
	DefaultModel     string  `yaml:"default-model" env:"DEFAULT_MODEL"`
	SystemPrompt     string  `yaml:"system-prompt" env:"SYSTEM_PROMPT"`
	MessageCodeTheme string  `yaml:"message-code-theme" env:"MESSAGE_CODE_THEME"`
	Theme            string  `yaml:"theme" env:"THEME"`
	ThemeDirectory   string  `yaml:"theme-directory" env:"THEME_DIRECTORY"`
	Models           []Model `yaml:"models"`
}

// ConfigDir is the directory holding the settings file and user themes.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, appName)
}

// SettingsPath is the location of the settings file.
func SettingsPath() string {
	return filepath.Join(ConfigDir(), settingsFile)
}

// DefaultThemeDirectory is where user themes live unless configured
// otherwise.
func DefaultThemeDirectory() string {
	return filepath.Join(ConfigDir(), themesDir)
}

// LoadSettings reads the settings file at path and overlays the ELIA_*
// environment variables. A missing file is not an error.
func LoadSettings(path string) (Settings, error) {
	var s Settings
	content, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return s, fmt.Errorf("could not read settings file %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(content, &s); err != nil {
			return s, fmt.Errorf("could not parse settings file %s: %w", path, err)
		}
	}
	if err := env.ParseWithOptions(&s, env.Options{Prefix: envPrefix}); err != nil {
		return s, fmt.Errorf("could not parse environment into settings: %w", err)
	}
	return s, nil
}

// Options converts the set values into construction options.
func (s Settings) Options() []Option {
	var opts []Option
	if s.DefaultModel != "" {
		opts = append(opts, WithDefaultModel(s.DefaultModel))
	}
	if s.SystemPrompt != "" {
		opts = append(opts, WithSystemPrompt(s.SystemPrompt))
	}
	if s.MessageCodeTheme != "" {
		opts = append(opts, WithMessageCodeTheme(s.MessageCodeTheme))
	}
	if s.Theme != "" {
		opts = append(opts, WithTheme(s.Theme))
	}
	if s.ThemeDirectory != "" {
		opts = append(opts, WithThemeDirectory(s.ThemeDirectory))
	}
	if len(s.Models) > 0 {
		opts = append(opts, WithModels(s.Models...))
	}
	return opts
}

// Build returns the LaunchConfig described by s, with extra options applied
// last.
func (s Settings) Build(extra ...Option) (LaunchConfig, error) {
	return New(append(s.Options(), extra...)...)
}

// Current loads the settings file and the environment and builds a fresh
// LaunchConfig from them.
func Current(extra ...Option) (LaunchConfig, error) {
	s, err := LoadSettings(SettingsPath())
	if err != nil {
		return LaunchConfig{}, err
	}
	return s.Build(extra...)
}

var help = map[string]string{
	"default-model":      "ID or name of the default model.",
	"system-prompt":      "System prompt sent at the start of every conversation.",
	"message-code-theme": "Syntax highlighting style used for code in messages.",
	"theme":              "Name of the active theme.",
	"theme-directory":    "Directory containing user themes (*.yaml, *.yml).",
	"models":             "Additional models. They take precedence over the builtin ones.",
}

const settingsTemplate = `# {{ index .Help "default-model" }}
default-model: {{ .DefaultModel }}
# {{ index .Help "system-prompt" }}
system-prompt: {{ .SystemPrompt }}
# {{ index .Help "message-code-theme" }}
message-code-theme: {{ .MessageCodeTheme }}
# {{ index .Help "theme" }}
theme: {{ .Theme }}
# {{ index .Help "theme-directory" }}
# theme-directory: ~/.config/elia/themes
# {{ index .Help "models" }}
models:
  # - name: gpt-4o
  #   id: work-gpt-4o
  #   display-name: GPT-4o (work)
  #   provider: OpenAI
  #   api-key:
  #   api-base: https://api.openai.com/v1
  #   organization:
  #   temperature: 1.0
  #   max-retries: 0
`

// WriteSettingsTemplate writes a commented default settings file to w.
func WriteSettingsTemplate(w io.Writer) error {
	tmpl := template.Must(template.New("settings").Parse(settingsTemplate))
	m := struct {
		DefaultModel     string
		SystemPrompt     string
		MessageCodeTheme string
		Theme            string
		Help             map[string]string
	}{
		DefaultModel:     DefaultModelID,
		SystemPrompt:     DefaultSystemPrompt,
		MessageCodeTheme: DefaultMessageCodeTheme,
		Theme:            DefaultTheme,
		Help:             help,
	}
	if err := tmpl.Execute(w, m); err != nil {
		return fmt.Errorf("could not render settings template: %w", err)
	}
	return nil
}

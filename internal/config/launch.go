package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/ccos89/relia/internal/schema"
	xstrings "github.com/charmbracelet/x/exp/strings"
)

// Defaults used when nothing else is configured.
const (
	DefaultModelID          = "elia-gpt-4.1"
	DefaultSystemPrompt     = "You are a helpful assistant named Elia."
	DefaultMessageCodeTheme = "monokai"
	DefaultTheme            = "nebula"

	// SystemPromptEnv overrides DefaultSystemPrompt when set.
	SystemPromptEnv = "ELIA_SYSTEM_PROMPT"
)

// ErrModelNotFound is returned when a model reference matches no model.
var ErrModelNotFound = errors.New("model not found")

// LaunchConfig is the validated configuration of the application at launch.
// It cannot be changed after construction; use [LaunchConfig.With] to derive
// a new one.
type LaunchConfig struct {
	defaultModel     string
	systemPrompt     string
	messageCodeTheme string
	theme            string
	themeDirectory   string
	models           []Model
	builtinModels    []Model
}

// Option customizes a [LaunchConfig] during construction.
type Option func(*LaunchConfig)

// WithDefaultModel sets the id or name of the default model.
func WithDefaultModel(ref string) Option {
	return func(c *LaunchConfig) { c.defaultModel = ref }
}

// WithSystemPrompt sets the system prompt. It must not be blank.
func WithSystemPrompt(prompt string) Option {
	return func(c *LaunchConfig) { c.systemPrompt = prompt }
}

// WithMessageCodeTheme sets the syntax highlighting style used in messages.
func WithMessageCodeTheme(name string) Option {
	return func(c *LaunchConfig) { c.messageCodeTheme = name }
}

// WithModels sets the user declared models. They take precedence over the
// builtin ones.
func WithModels(models ...Model) Option {
	return func(c *LaunchConfig) { c.models = slices.Clone(models) }
}

// WithTheme sets the name of the active theme.
func WithTheme(name string) Option {
	return func(c *LaunchConfig) { c.theme = name }
}

// WithThemeDirectory sets the directory user themes are loaded from.
func WithThemeDirectory(dir string) Option {
	return func(c *LaunchConfig) { c.themeDirectory = dir }
}

// New returns a validated LaunchConfig. Without options every field has its
// default value.
func New(opts ...Option) (LaunchConfig, error) {
	c := LaunchConfig{
		defaultModel:     DefaultModelID,
		systemPrompt:     defaultSystemPrompt(),
		messageCodeTheme: DefaultMessageCodeTheme,
		theme:            DefaultTheme,
		themeDirectory:   DefaultThemeDirectory(),
		builtinModels:    BuiltinModels(),
	}
	return c.With(opts...)
}

func defaultSystemPrompt() string {
	if prompt := os.Getenv(SystemPromptEnv); prompt != "" {
		return prompt
	}
	return DefaultSystemPrompt
}

// With returns a copy of c with opts applied. c itself is left untouched.
func (c LaunchConfig) With(opts ...Option) (LaunchConfig, error) {
	c.models = slices.Clone(c.models)
	c.builtinModels = slices.Clone(c.builtinModels)
	for _, opt := range opts {
		opt(&c)
	}
	if err := c.validate(); err != nil {
		return LaunchConfig{}, err
	}
	return c, nil
}

func (c LaunchConfig) validate() error {
	v := schema.NewCollector("launch config")
	if strings.TrimSpace(c.systemPrompt) == "" {
		v.Add("system-prompt", "must not be empty")
	}
	for i, m := range c.models {
		if _, err := NewModel(m); err != nil {
			v.Add(fmt.Sprintf("models[%d]", i), "%s", err)
		}
	}
	return v.Err()
}

// DefaultModel is the id or name of the default model.
func (c LaunchConfig) DefaultModel() string { return c.defaultModel }

// SystemPrompt is the prompt sent at the start of every conversation.
func (c LaunchConfig) SystemPrompt() string { return c.systemPrompt }

// MessageCodeTheme is the syntax highlighting style used in messages.
func (c LaunchConfig) MessageCodeTheme() string { return c.messageCodeTheme }

// Theme is the name of the active theme.
func (c LaunchConfig) Theme() string { return c.theme }

// ThemeDirectory is where user themes are loaded from.
func (c LaunchConfig) ThemeDirectory() string { return c.themeDirectory }

// Models returns the user declared models.
func (c LaunchConfig) Models() []Model { return slices.Clone(c.models) }

// BuiltinModels returns the models shipped with the app.
func (c LaunchConfig) BuiltinModels() []Model { return slices.Clone(c.builtinModels) }

// AllModels returns the user models followed by the builtin ones.
func (c LaunchConfig) AllModels() []Model {
	return slices.Concat(c.models, c.builtinModels)
}

// DefaultModelObject resolves the default model against all models.
func (c LaunchConfig) DefaultModelObject() (Model, error) {
	return FindModel(c.defaultModel, c.AllModels())
}

// CodeStyle returns the syntax highlighting style named by
// MessageCodeTheme, or the fallback style if there is no such style.
func (c LaunchConfig) CodeStyle() *chroma.Style {
	return styles.Get(c.messageCodeTheme)
}

// FindModel returns the first model whose lookup key is ref, or failing that
// the first model whose name is ref.
func FindModel(ref string, models []Model) (Model, error) {
	for _, m := range models {
		if m.LookupKey() == ref {
			return m, nil
		}
	}
	for _, m := range models {
		if m.Name == ref {
			return m, nil
		}
	}
	keys := make([]string, 0, len(models))
	for _, m := range models {
		keys = append(keys, m.LookupKey())
	}
	if len(keys) == 0 {
		return Model{}, fmt.Errorf("%w: %q", ErrModelNotFound, ref)
	}
	return Model{}, fmt.Errorf("%w: %q, expected one of %s", ErrModelNotFound, ref, xstrings.EnglishJoin(keys, false))
}

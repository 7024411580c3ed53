package config

import (
	"net/url"
	"os"
	"strings"

	"github.com/ccos89/relia/internal/schema"
	"gopkg.in/yaml.v3"
)

// Providers known to the builtin catalog.
const (
	ProviderOpenAI    = "OpenAI"
	ProviderAnthropic = "Anthropic"
	ProviderGoogle    = "Google"
)

var apiKeyEnvs = map[string]string{
	"openai":    "OPENAI_API_KEY",
	"anthropic": "ANTHROPIC_API_KEY",
	"google":    "GEMINI_API_KEY",
}

// Model describes one addressable LLM.
type Model struct {
	// Name must match the model name used by the provider, e.g. gpt-4.1.
	Name string `yaml:"name"`
	// ID tells apart several configured instances of the same model, e.g. a
	// work and a personal gpt-4o with different keys.
	ID          string `yaml:"id,omitempty"`
	DisplayName string `yaml:"display-name,omitempty"`
	Provider    string `yaml:"provider,omitempty"`
	// APIKey, if set, is used instead of the provider's environment variable.
	APIKey Secret `yaml:"api-key,omitempty"`
	// APIBase, if set, replaces the provider's default endpoint.
	APIBase      string  `yaml:"api-base,omitempty"`
	Organization string  `yaml:"organization,omitempty"`
	Description  string  `yaml:"description,omitempty"`
	Product      string  `yaml:"product,omitempty"`
	Temperature  float64 `yaml:"temperature"`
	MaxRetries   int     `yaml:"max-retries"`
}

// DefaultModel returns a model named name with every other field at its
// default.
func DefaultModel(name string) Model {
	return Model{
		Name:        name,
		Temperature: 1.0,
	}
}

// NewModel validates m and returns it, or returns every violation at once.
func NewModel(m Model) (Model, error) {
	c := schema.NewCollector("model")
	c.Required("name", m.Name)
	if m.APIBase != "" && !isHTTPURL(m.APIBase) {
		c.Add("api-base", "must be an absolute http(s) URL, got %q", m.APIBase)
	}
	if err := c.Err(); err != nil {
		return Model{}, err
	}
	return m, nil
}

func isHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// LookupKey is the reference used to resolve the model: the id if set,
// otherwise the name.
func (m Model) LookupKey() string {
	if m.ID != "" {
		return m.ID
	}
	return m.Name
}

// Label is the name to show in the UI.
func (m Model) Label() string {
	if m.DisplayName != "" {
		return m.DisplayName
	}
	return m.LookupKey()
}

// APIKeyEnv returns the environment variable that holds the provider's key,
// or an empty string for unknown providers.
func (m Model) APIKeyEnv() string {
	return apiKeyEnvs[strings.ToLower(m.Provider)]
}

// ResolveAPIKey returns the model's own key, falling back to the provider's
// environment variable.
func (m Model) ResolveAPIKey() Secret {
	if !m.APIKey.IsZero() {
		return m.APIKey
	}
	if env := m.APIKeyEnv(); env != "" {
		return NewSecret(os.Getenv(env))
	}
	return Secret{}
}

// UnmarshalYAML implements yaml.Unmarshaler, filling in defaults for the
// omitted fields.
func (m *Model) UnmarshalYAML(node *yaml.Node) error {
	type rawModel Model
	raw := rawModel(DefaultModel(""))
	if err := node.Decode(&raw); err != nil {
		return err //nolint:wrapcheck
	}
	*m = Model(raw)
	return nil
}

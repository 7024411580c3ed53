// Package theme describes named colour palettes, ships a set of builtin ones
// and loads user defined ones from YAML files.
package theme

import (
	"maps"

	"github.com/ccos89/relia/internal/schema"
	"gopkg.in/yaml.v3"
)

// Theme is a named colour palette. Colours use CSS syntax: hex, rgb(), hsl()
// or a colour name, including the ansi_* names. ANSI 256 indices work too.
type Theme struct {
	Name       string         `yaml:"name" json:"-"`
	Primary    string         `yaml:"primary" json:"primary"`
	Secondary  string         `yaml:"secondary,omitempty" json:"secondary,omitempty"`
	Background string         `yaml:"background,omitempty" json:"background,omitempty"`
	Surface    string         `yaml:"surface,omitempty" json:"surface,omitempty"`
	Panel      string         `yaml:"panel,omitempty" json:"panel,omitempty"`
	Warning    string         `yaml:"warning,omitempty" json:"warning,omitempty"`
	Error      string         `yaml:"error,omitempty" json:"error,omitempty"`
	Success    string         `yaml:"success,omitempty" json:"success,omitempty"`
	Accent     string         `yaml:"accent,omitempty" json:"accent,omitempty"`
	Dark       bool           `yaml:"dark" json:"dark"`
	Variables  map[string]any `yaml:"variables" json:"variables"`
}

// New validates t and returns it with defaults filled in.
func New(t Theme) (Theme, error) {
	c := schema.NewCollector("theme")
	c.Required("name", t.Name)
	c.Required("primary", t.Primary)
	colors := t.colors()
	for _, role := range Roles {
		value := colors[role]
		if value == "" {
			continue
		}
		if _, ok := parseColor(value); !ok {
			c.Add(string(role), "is not a valid colour: %q", value)
		}
	}
	if err := c.Err(); err != nil {
		return Theme{}, err
	}
	if t.Variables == nil {
		t.Variables = map[string]any{}
	}
	return t, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Themes are dark unless stated
// otherwise.
func (t *Theme) UnmarshalYAML(node *yaml.Node) error {
	type rawTheme Theme
	raw := rawTheme{Dark: true, Variables: map[string]any{}}
	if err := node.Decode(&raw); err != nil {
		return err //nolint:wrapcheck
	}
	*t = Theme(raw)
	return nil
}

func (t Theme) clone() Theme {
	t.Variables = maps.Clone(t.Variables)
	return t
}

// colors returns the colour fields keyed by role. Unset colours map to "".
func (t Theme) colors() map[Role]string {
	return map[Role]string{
		Primary:    t.Primary,
		Secondary:  t.Secondary,
		Background: t.Background,
		Surface:    t.Surface,
		Panel:      t.Panel,
		Warning:    t.Warning,
		Error:      t.Error,
		Success:    t.Success,
		Accent:     t.Accent,
	}
}

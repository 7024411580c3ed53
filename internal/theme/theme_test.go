package theme

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/ccos89/relia/internal/schema"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNew(t *testing.T) {
	t.Run("minimal", func(t *testing.T) {
		th, err := New(Theme{Name: "foo", Primary: "#112233", Dark: true})
		require.NoError(t, err)
		require.NotNil(t, th.Variables)
		require.Empty(t, th.Variables)
	})

	t.Run("ansi colours", func(t *testing.T) {
		_, err := New(Theme{Name: "foo", Primary: "208", Accent: "0"})
		require.NoError(t, err)
	})

	t.Run("short hex", func(t *testing.T) {
		_, err := New(Theme{Name: "foo", Primary: "#abc"})
		require.NoError(t, err)
	})

	t.Run("css colours", func(t *testing.T) {
		_, err := New(Theme{
			Name:      "foo",
			Primary:   "red",
			Secondary: "rgb(10, 20, 30)",
			Warning:   "hsl(200,50%,50%)",
			Accent:    "ansi_bright_green",
			Panel:     "#11223344",
		})
		require.NoError(t, err)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := New(Theme{})
		var verr *schema.ValidationError
		require.True(t, errors.As(err, &verr))
		require.Equal(t, []string{"name", "primary"}, verr.Fields())
	})

	t.Run("bad colours", func(t *testing.T) {
		_, err := New(Theme{Name: "foo", Primary: "pinkish", Panel: "256", Error: "112233"})
		var verr *schema.ValidationError
		require.True(t, errors.As(err, &verr))
		require.Equal(t, []string{"primary", "panel", "error"}, verr.Fields())
	})
}

func TestThemeYAML(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var th Theme
		require.NoError(t, yaml.Unmarshal([]byte("name: foo\nprimary: '#112233'\n"), &th))
		require.True(t, th.Dark)
		require.NotNil(t, th.Variables)
		require.Empty(t, th.Secondary)
	})

	t.Run("light", func(t *testing.T) {
		var th Theme
		require.NoError(t, yaml.Unmarshal([]byte("name: foo\nprimary: '#112233'\ndark: false\nvariables:\n  block-cursor: bold\n"), &th))
		require.False(t, th.Dark)
		require.Equal(t, map[string]any{"block-cursor": "bold"}, th.Variables)
	})

	t.Run("json omits name", func(t *testing.T) {
		bts, err := json.Marshal(Builtins()["nebula"])
		require.NoError(t, err)
		require.NotContains(t, string(bts), "nebula")
		require.Contains(t, string(bts), `"primary":"#4169E1"`)
	})
}

func TestBuiltins(t *testing.T) {
	themes := Builtins()
	require.ElementsMatch(t, []string{
		"textual", "monokai", "nautilus", "galaxy", "nebula",
		"alpine", "cobalt", "twilight", "hacker",
	}, Names(themes))

	for name, th := range themes {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, name, th.Name)
			validated, err := New(th)
			require.NoError(t, err)
			require.Equal(t, th, validated)
		})
	}

	t.Run("copies", func(t *testing.T) {
		themes := Builtins()
		themes["nebula"].Variables["x"] = 1
		delete(themes, "hacker")
		require.Empty(t, Builtins()["nebula"].Variables)
		require.Contains(t, Builtins(), "hacker")
	})
}

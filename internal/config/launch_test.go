package config

import (
	"testing"

	"github.com/alecthomas/chroma/v2/styles"
	"github.com/ccos89/relia/internal/schema"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Setenv(SystemPromptEnv, "")

	t.Run("defaults", func(t *testing.T) {
		cfg, err := New()
		require.NoError(t, err)
		require.Equal(t, "elia-gpt-4.1", cfg.DefaultModel())
		require.Equal(t, DefaultSystemPrompt, cfg.SystemPrompt())
		require.Equal(t, "monokai", cfg.MessageCodeTheme())
		require.Equal(t, "nebula", cfg.Theme())
		require.Empty(t, cfg.Models())
		require.Equal(t, BuiltinModels(), cfg.BuiltinModels())
		require.Equal(t, DefaultThemeDirectory(), cfg.ThemeDirectory())

		m, err := cfg.DefaultModelObject()
		require.NoError(t, err)
		require.Equal(t, "elia-gpt-4.1", m.ID)
		require.Equal(t, "gpt-4.1", m.Name)
	})

	t.Run("blank system prompt", func(t *testing.T) {
		for _, prompt := range []string{"", "   ", "\n\t"} {
			_, err := New(WithSystemPrompt(prompt))
			require.ErrorIs(t, err, schema.ErrInvalid, "%q", prompt)
			require.ErrorContains(t, err, "system-prompt must not be empty")
		}
	})

	t.Run("system prompt", func(t *testing.T) {
		cfg, err := New(WithSystemPrompt("hello"))
		require.NoError(t, err)
		require.Equal(t, "hello", cfg.SystemPrompt())
	})

	t.Run("system prompt keeps whitespace", func(t *testing.T) {
		cfg, err := New(WithSystemPrompt("  hello\n"))
		require.NoError(t, err)
		require.Equal(t, "  hello\n", cfg.SystemPrompt())
	})

	t.Run("invalid user model", func(t *testing.T) {
		_, err := New(WithModels(DefaultModel("ok"), Model{APIBase: "nope"}))
		require.ErrorIs(t, err, schema.ErrInvalid)
		require.ErrorContains(t, err, "models[1]")
	})
}

func TestSystemPromptEnv(t *testing.T) {
	t.Run("used when not given", func(t *testing.T) {
		t.Setenv(SystemPromptEnv, "foo")
		cfg, err := New()
		require.NoError(t, err)
		require.Equal(t, "foo", cfg.SystemPrompt())
	})

	t.Run("explicit wins", func(t *testing.T) {
		t.Setenv(SystemPromptEnv, "foo")
		cfg, err := New(WithSystemPrompt("bar"))
		require.NoError(t, err)
		require.Equal(t, "bar", cfg.SystemPrompt())
	})

	t.Run("whitespace env fails", func(t *testing.T) {
		t.Setenv(SystemPromptEnv, "  ")
		_, err := New()
		require.ErrorIs(t, err, schema.ErrInvalid)
	})
}

func TestWith(t *testing.T) {
	t.Setenv(SystemPromptEnv, "")
	cfg, err := New(WithModels(DefaultModel("local")))
	require.NoError(t, err)

	updated, err := cfg.With(WithTheme("hacker"), WithDefaultModel("local"))
	require.NoError(t, err)
	require.Equal(t, "hacker", updated.Theme())
	require.Equal(t, "local", updated.DefaultModel())

	require.Equal(t, "nebula", cfg.Theme())
	require.Equal(t, "elia-gpt-4.1", cfg.DefaultModel())

	_, err = cfg.With(WithSystemPrompt(" "))
	require.Error(t, err)
	require.Equal(t, DefaultSystemPrompt, cfg.SystemPrompt())
}

func TestAccessorsReturnCopies(t *testing.T) {
	t.Setenv(SystemPromptEnv, "")
	models := []Model{DefaultModel("local")}
	cfg, err := New(WithModels(models...))
	require.NoError(t, err)

	models[0].Name = "changed"
	require.Equal(t, "local", cfg.Models()[0].Name)

	got := cfg.Models()
	got[0].Name = "changed"
	require.Equal(t, "local", cfg.Models()[0].Name)

	builtin := cfg.BuiltinModels()
	builtin[0].Name = "changed"
	require.Equal(t, "gpt-4.1", cfg.BuiltinModels()[0].Name)
}

func TestAllModels(t *testing.T) {
	t.Setenv(SystemPromptEnv, "")
	user := Model{ID: "elia-gpt-4.1", Name: "gpt-4.1", Provider: ProviderOpenAI, Temperature: 0.1}
	cfg, err := New(WithModels(user))
	require.NoError(t, err)

	all := cfg.AllModels()
	require.Len(t, all, len(BuiltinModels())+1)
	require.Equal(t, user, all[0])

	m, err := cfg.DefaultModelObject()
	require.NoError(t, err)
	require.InDelta(t, 0.1, m.Temperature, 1e-9)
}

func TestFindModel(t *testing.T) {
	models := []Model{
		{Name: "gpt-4o", ID: "work"},
		{Name: "gpt-4o", ID: "personal"},
		{Name: "work"},
		{Name: "llama3"},
	}

	for ref, expect := range map[string]Model{
		"work":     models[0],
		"personal": models[1],
		"gpt-4o":   models[0],
		"llama3":   models[3],
	} {
		t.Run(ref, func(t *testing.T) {
			m, err := FindModel(ref, models)
			require.NoError(t, err)
			require.Equal(t, expect, m)
		})
	}

	t.Run("not found", func(t *testing.T) {
		_, err := FindModel("gpt-5", models)
		require.ErrorIs(t, err, ErrModelNotFound)
		require.ErrorContains(t, err, `"gpt-5"`)
		require.ErrorContains(t, err, "personal")
	})

	t.Run("empty", func(t *testing.T) {
		_, err := FindModel("gpt-5", nil)
		require.ErrorIs(t, err, ErrModelNotFound)
	})

	t.Run("default not found", func(t *testing.T) {
		t.Setenv(SystemPromptEnv, "")
		cfg, err := New(WithDefaultModel("nope"))
		require.NoError(t, err)
		_, err = cfg.DefaultModelObject()
		require.ErrorIs(t, err, ErrModelNotFound)
	})
}

func TestCodeStyle(t *testing.T) {
	t.Setenv(SystemPromptEnv, "")

	cfg, err := New()
	require.NoError(t, err)
	require.Equal(t, "monokai", cfg.CodeStyle().Name)

	cfg, err = cfg.With(WithMessageCodeTheme("not-a-style"))
	require.NoError(t, err)
	require.Equal(t, styles.Fallback, cfg.CodeStyle())
}

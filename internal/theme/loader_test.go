package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ccos89/relia/internal/schema"
	"github.com/stretchr/testify/require"
)

func writeTheme(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadUserThemes(t *testing.T) {
	t.Run("single file", func(t *testing.T) {
		dir := t.TempDir()
		writeTheme(t, dir, "foo.yaml", "name: foo\nprimary: '#112233'\n")

		themes, err := LoadUserThemes(dir)
		require.NoError(t, err)
		require.Len(t, themes, 1)

		foo := themes["foo"]
		require.Equal(t, "foo", foo.Name)
		require.Equal(t, "#112233", foo.Primary)
		require.Empty(t, foo.Secondary)
		require.Empty(t, foo.Background)
		require.Empty(t, foo.Surface)
		require.Empty(t, foo.Panel)
		require.Empty(t, foo.Warning)
		require.Empty(t, foo.Error)
		require.Empty(t, foo.Success)
		require.Empty(t, foo.Accent)
		require.True(t, foo.Dark)
		require.Empty(t, foo.Variables)
	})

	t.Run("extensions", func(t *testing.T) {
		dir := t.TempDir()
		writeTheme(t, dir, "a.yaml", "name: a\nprimary: '#111111'\n")
		writeTheme(t, dir, "b.yml", "name: b\nprimary: '#222222'\n")
		writeTheme(t, dir, "c.json", `{"name": "c", "primary": "#333333"}`)
		writeTheme(t, dir, "README.md", "not a theme")
		require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.yaml"), 0o755))
		writeTheme(t, filepath.Join(dir, "nested.yaml"), "d.yaml", "name: d\nprimary: '#444444'\n")

		themes, err := LoadUserThemes(dir)
		require.NoError(t, err)
		require.Equal(t, []string{"a", "b"}, Names(themes))
	})

	t.Run("css colours", func(t *testing.T) {
		dir := t.TempDir()
		for name, primary := range map[string]string{
			"named": "red",
			"ansi":  "ansi_bright_green",
			"rgb":   "rgb(10,20,30)",
			"hsl":   "hsl(200,50%,50%)",
			"alpha": "#11223344",
		} {
			writeTheme(t, dir, name+".yaml", "name: "+name+"\nprimary: '"+primary+"'\n")
		}

		themes, err := LoadUserThemes(dir)
		require.NoError(t, err)
		require.Equal(t, []string{"alpha", "ansi", "hsl", "named", "rgb"}, Names(themes))
		require.Equal(t, "rgb(10,20,30)", themes["rgb"].Primary)
		require.Equal(t, "#0a141e", themes["rgb"].ToColorSystem().Hex(Primary))
		require.Equal(t, "#112233", themes["alpha"].ToColorSystem().Hex(Primary))
	})

	t.Run("missing name", func(t *testing.T) {
		dir := t.TempDir()
		path := writeTheme(t, dir, "noname.yaml", "primary: '#112233'\n")

		_, err := LoadUserThemes(dir)
		require.ErrorIs(t, err, ErrMissingName)
		require.ErrorContains(t, err, path)

		var ferr *FileError
		require.ErrorAs(t, err, &ferr)
		require.Equal(t, path, ferr.Path)
	})

	t.Run("empty document", func(t *testing.T) {
		dir := t.TempDir()
		path := writeTheme(t, dir, "empty.yml", "# nothing here\n")

		_, err := LoadUserThemes(dir)
		require.ErrorIs(t, err, ErrMissingName)
		require.ErrorContains(t, err, path)
	})

	t.Run("missing primary", func(t *testing.T) {
		dir := t.TempDir()
		path := writeTheme(t, dir, "foo.yaml", "name: foo\n")

		_, err := LoadUserThemes(dir)
		require.ErrorIs(t, err, schema.ErrInvalid)
		require.ErrorContains(t, err, path)
		require.ErrorContains(t, err, "primary is required")
	})

	t.Run("not a mapping", func(t *testing.T) {
		dir := t.TempDir()
		path := writeTheme(t, dir, "list.yaml", "- name: foo\n")

		_, err := LoadUserThemes(dir)
		require.ErrorContains(t, err, path)
	})

	t.Run("same name", func(t *testing.T) {
		dir := t.TempDir()
		writeTheme(t, dir, "1.yaml", "name: foo\nprimary: '#111111'\n")
		writeTheme(t, dir, "2.yaml", "name: foo\nprimary: '#222222'\n")

		themes, err := LoadUserThemes(dir)
		require.NoError(t, err)
		require.Len(t, themes, 1)
		require.Equal(t, "#222222", themes["foo"].Primary)
	})

	t.Run("missing directory", func(t *testing.T) {
		themes, err := LoadUserThemes(filepath.Join(t.TempDir(), "nope"))
		require.NoError(t, err)
		require.Empty(t, themes)
	})
}

func TestMerge(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "monokai.yaml", "name: monokai\nprimary: '#123456'\ndark: false\n")
	writeTheme(t, dir, "mine.yaml", "name: mine\nprimary: '#654321'\n")

	themes, err := Available(dir)
	require.NoError(t, err)
	require.Len(t, themes, len(Builtins())+1)
	require.Equal(t, "#123456", themes["monokai"].Primary)
	require.False(t, themes["monokai"].Dark)
	require.Equal(t, "#654321", themes["mine"].Primary)
	require.Equal(t, Builtins()["nebula"], themes["nebula"])

	t.Run("inputs untouched", func(t *testing.T) {
		builtin := Builtins()
		user := map[string]Theme{"monokai": {Name: "monokai", Primary: "#000000"}}
		merged := Merge(builtin, user)
		require.Equal(t, "#000000", merged["monokai"].Primary)
		require.Equal(t, "#F92672", builtin["monokai"].Primary)
	})

	t.Run("bad file", func(t *testing.T) {
		writeTheme(t, dir, "broken.yaml", "primary: '#000000'\n")
		_, err := Available(dir)
		require.ErrorIs(t, err, ErrMissingName)
	})
}

func TestSelect(t *testing.T) {
	themes := Builtins()

	th, err := Select(themes, "nebula")
	require.NoError(t, err)
	require.Equal(t, "nebula", th.Name)

	_, err = Select(themes, "solarized")
	require.ErrorIs(t, err, ErrThemeNotFound)
	require.ErrorContains(t, err, "hacker")
}

package theme

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/log"
	xstrings "github.com/charmbracelet/x/exp/strings"
	"gopkg.in/yaml.v3"
)

var (
	// ErrMissingName is wrapped by a FileError for theme files without a name.
	ErrMissingName = errors.New("a `name` is required")

	// ErrThemeNotFound is returned when selecting a theme that does not exist.
	ErrThemeNotFound = errors.New("theme not found")
)

// FileError is a problem with a single theme file.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("invalid theme file %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// LoadFile reads the theme defined in the YAML file at path.
func LoadFile(path string) (Theme, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, &FileError{Path: path, Err: err}
	}

	var fields map[string]any
	if err := yaml.Unmarshal(content, &fields); err != nil {
		return Theme{}, &FileError{Path: path, Err: err}
	}
	if _, ok := fields["name"]; !ok {
		return Theme{}, &FileError{Path: path, Err: ErrMissingName}
	}

	var t Theme
	if err := yaml.Unmarshal(content, &t); err != nil {
		return Theme{}, &FileError{Path: path, Err: err}
	}
	t, err = New(t)
	if err != nil {
		return Theme{}, &FileError{Path: path, Err: err}
	}
	return t, nil
}

// LoadUserThemes loads every *.yaml and *.yml file directly inside dir,
// keyed by theme name. When two files use the same name the one read last
// wins. A missing directory yields no themes.
func LoadUserThemes(dir string) (map[string]Theme, error) {
	themes := map[string]Theme{}
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		log.Debug("theme directory does not exist", "dir", dir)
		return themes, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read theme directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch filepath.Ext(entry.Name()) {
		case ".yaml", ".yml":
		default:
			continue
		}
		path := filepath.Join(dir, entry.Name())
		t, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		log.Debug("loaded user theme", "name", t.Name, "path", path)
		themes[t.Name] = t
	}
	return themes, nil
}

// Merge combines builtin and user themes. User themes replace builtins of
// the same name.
func Merge(builtin, user map[string]Theme) map[string]Theme {
	merged := make(map[string]Theme, len(builtin)+len(user))
	maps.Copy(merged, builtin)
	maps.Copy(merged, user)
	return merged
}

// Available returns the builtin themes merged with the ones in dir.
func Available(dir string) (map[string]Theme, error) {
	user, err := LoadUserThemes(dir)
	if err != nil {
		return nil, err
	}
	return Merge(Builtins(), user), nil
}

// Names returns the theme names in alphabetical order.
func Names(themes map[string]Theme) []string {
	return slices.Sorted(maps.Keys(themes))
}

// Select returns the theme called name.
func Select(themes map[string]Theme, name string) (Theme, error) {
	t, ok := themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("%w: %q, expected one of %s", ErrThemeNotFound, name, xstrings.EnglishJoin(Names(themes), false))
	}
	return t, nil
}

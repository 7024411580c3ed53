package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ccos89/relia/internal/config"
	"github.com/ccos89/relia/internal/theme"
	"github.com/charmbracelet/lipgloss"
	xstrings "github.com/charmbracelet/x/exp/strings"
)

func printSummary(cfg config.LaunchConfig) error {
	model, err := cfg.DefaultModelObject()
	if err != nil {
		return reliaError{err, fmt.Sprintf(
			"Default model %s is not configured.",
			stderrStyles().InlineCode.Render(cfg.DefaultModel()),
		)}
	}
	active, _, err := activeTheme(cfg)
	if err != nil {
		return err
	}
	writeSummary(os.Stdout, stdoutRenderer(), cfg, model, active)
	return nil
}

func writeSummary(w io.Writer, r *lipgloss.Renderer, cfg config.LaunchConfig, model config.Model, active theme.Theme) {
	ts := active.ToColorSystem().Styles(r)
	s := makeStyles(r)

	row := func(key, value string) {
		fmt.Fprintf(w, "  %s %s\n", s.Key.Width(15).Render(key), value)
	}

	describe := model.LookupKey()
	if model.Provider != "" {
		describe += ", " + model.Provider
	}
	fmt.Fprintln(w)
	row("Model", ts.Title.Render(model.Label())+" "+s.Comment.Render("("+describe+")"))
	row("Theme", ts.Highlight.Render(active.Name)+" "+swatch(ts))
	row("Code theme", codeTheme(ts, cfg))
	row("System prompt", ts.Panel.Render(firstLine(cfg.SystemPrompt())))
	if key := model.ResolveAPIKey(); key.IsZero() && model.APIKeyEnv() != "" {
		row("API key", s.Comment.Render("missing, set "+model.APIKeyEnv()))
	}
	fmt.Fprintln(w)
}

// codeTheme names the chroma style used for code blocks, noting when the
// configured one does not exist.
func codeTheme(ts theme.Styles, cfg config.LaunchConfig) string {
	style := cfg.CodeStyle()
	if style.Name == cfg.MessageCodeTheme() {
		return ts.Text.Render(style.Name)
	}
	return ts.Text.Render(style.Name) + " " + ts.Muted.Render(fmt.Sprintf("(%q not found)", cfg.MessageCodeTheme()))
}

func firstLine(s string) string {
	line, _, more := strings.Cut(strings.TrimSpace(s), "\n")
	if more {
		return line + " …"
	}
	return line
}

func swatch(ts theme.Styles) string {
	var b strings.Builder
	for _, role := range theme.Roles {
		b.WriteString(ts.Swatch[role].Render("  "))
	}
	return b.String()
}

func listModels(cfg config.LaunchConfig) error {
	writeModels(os.Stdout, stdoutRenderer(), cfg)
	return nil
}

func writeModels(w io.Writer, r *lipgloss.Renderer, cfg config.LaunchConfig) {
	s := makeStyles(r)
	def, err := cfg.DefaultModelObject()
	hasDefault := err == nil

	user := len(cfg.Models())
	for i, m := range cfg.AllModels() {
		marker := " "
		if hasDefault && i == indexOf(cfg.AllModels(), def) {
			marker = s.Marker.String()
		}
		origin := "builtin"
		if i < user {
			origin = "user"
		}
		fmt.Fprintf(
			w,
			"%s %-40s %-12s %s\n",
			marker,
			m.LookupKey(),
			m.Provider,
			s.Comment.Render(origin+": "+m.Label()),
		)
	}
}

func indexOf(models []config.Model, m config.Model) int {
	for i, candidate := range models {
		if candidate.LookupKey() == m.LookupKey() && candidate.Name == m.Name {
			return i
		}
	}
	return -1
}

func listThemes(cfg config.LaunchConfig) error {
	user, err := theme.LoadUserThemes(cfg.ThemeDirectory())
	if err != nil {
		return reliaError{err, "Could not load your themes."}
	}
	writeThemes(os.Stdout, stdoutRenderer(), theme.Merge(theme.Builtins(), user), user, cfg.Theme(), isOutputTTY())
	return nil
}

func writeThemes(w io.Writer, r *lipgloss.Renderer, themes, user map[string]theme.Theme, active string, colors bool) {
	s := makeStyles(r)
	names := theme.Names(themes)
	for _, name := range names {
		t := themes[name]
		marker := " "
		if name == active {
			marker = s.Marker.String()
		}
		var notes []string
		if _, ok := user[name]; ok {
			notes = append(notes, "user")
		}
		if !t.Dark {
			notes = append(notes, "light")
		}
		line := fmt.Sprintf("%s %-12s", marker, name)
		if colors {
			line += " " + swatch(t.ToColorSystem().Styles(r))
		}
		if len(notes) > 0 {
			line += " " + s.Comment.Render(xstrings.EnglishJoin(notes, false))
		}
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}

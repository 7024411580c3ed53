package main

import (
	"math/rand/v2"
	"regexp"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var examples = map[string]string{
	"Check which model relia will start with": "relia",
	"Try a theme before committing to it":     "relia --theme hacker",
	"Preview every theme you have":            "relia --list-themes",
	"Use a prompt kept in a file":             "relia --system-prompt file://prompts/pirate.txt",
	"See models matching a provider":          "relia --list-models | grep 'Anthropic'",
}

func randomExample() (string, string) {
	keys := make([]string, 0, len(examples))
	for k := range examples {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	desc := keys[rand.IntN(len(keys))] //nolint:gosec
	return desc, examples[desc]
}

var (
	quotedRe = regexp.MustCompile(`'[^']*'`)
	flagRe   = regexp.MustCompile(`(^|\s)(--?[\w-]+)`)
)

// cheapHighlighting colours quotes, flags and pipes of an example command.
func cheapHighlighting(s styles, code string) string {
	code = quotedRe.ReplaceAllStringFunc(code, func(x string) string {
		return s.Quote.Render(x)
	})
	code = flagRe.ReplaceAllStringFunc(code, func(x string) string {
		trimmed := strings.TrimLeft(x, " ")
		return strings.Repeat(" ", len(x)-len(trimmed)) + s.Flag.Render(trimmed)
	})
	return strings.ReplaceAll(code, "|", s.Pipe.Render("|"))
}

// makeGradientText renders str with its foreground going from the default
// theme's primary colour to its accent.
func makeGradientText(baseStyle lipgloss.Style, str string) string {
	const minSize = 3
	runes := []rune(str)
	if len(runes) < minSize {
		return str
	}
	var b strings.Builder
	for i, c := range makeGradientRamp(len(runes)) {
		b.WriteString(baseStyle.Foreground(c).Render(string(runes[i])))
	}
	return b.String()
}

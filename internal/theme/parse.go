package theme

import (
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/exp/ordered"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	"golang.org/x/image/colornames"
)

var ansiNames = []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

const (
	decimal = `(-?\d+\.?\d*)`
	alpha   = `(?:\s*,\s*-?\d+\.?\d*)?`
)

var (
	hexRe = regexp.MustCompile(`^#([0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	rgbRe = regexp.MustCompile(`^rgba?\(\s*` + decimal + `\s*,\s*` + decimal + `\s*,\s*` + decimal + alpha + `\s*\)$`)
	hslRe = regexp.MustCompile(`^hsla?\(\s*` + decimal + `\s*,\s*` + decimal + `%\s*,\s*` + decimal + `%` + alpha + `\s*\)$`)
)

// parseColor parses a colour value. Alpha channels are accepted and dropped.
func parseColor(s string) (colorful.Color, bool) {
	s = strings.TrimSpace(s)
	if c, ok := namedColor(strings.ToLower(s)); ok {
		return c, true
	}
	if m := hexRe.FindStringSubmatch(s); m != nil {
		return parseHex(m[1])
	}
	if m := rgbRe.FindStringSubmatch(s); m != nil {
		r, g, b := toFloat(m[1]), toFloat(m[2]), toFloat(m[3])
		return colorful.Color{R: channel(r), G: channel(g), B: channel(b)}, true
	}
	if m := hslRe.FindStringSubmatch(s); m != nil {
		h := math.Mod(toFloat(m[1]), 360)
		if h < 0 {
			h += 360
		}
		sat := ordered.Clamp(toFloat(m[2])/100, 0, 1)
		light := ordered.Clamp(toFloat(m[3])/100, 0, 1)
		return colorful.Hsl(h, sat, light).Clamped(), true
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n <= 255 {
		return termenv.ConvertToRGB(termenv.ANSI256Color(n)), true
	}
	return colorful.Color{}, false
}

func namedColor(name string) (colorful.Color, bool) {
	if name == "transparent" {
		return colorful.Color{}, true
	}
	if ansi, ok := strings.CutPrefix(name, "ansi_"); ok {
		offset := 0
		if rest, ok := strings.CutPrefix(ansi, "bright_"); ok {
			ansi, offset = rest, len(ansiNames)
		}
		if i := slices.Index(ansiNames, ansi); i >= 0 {
			return termenv.ConvertToRGB(termenv.ANSIColor(i + offset)), true
		}
		return colorful.Color{}, false
	}
	if c, ok := colornames.Map[name]; ok {
		return colorful.MakeColor(c)
	}
	return colorful.Color{}, false
}

// parseHex handles the 3, 4, 6 and 8 digit forms.
func parseHex(digits string) (colorful.Color, bool) {
	if len(digits) <= 4 {
		var b strings.Builder
		for _, d := range digits[:3] {
			b.WriteRune(d)
			b.WriteRune(d)
		}
		digits = b.String()
	}
	c, err := colorful.Hex("#" + digits[:6])
	return c, err == nil
}

func toFloat(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

func channel(v float64) float64 {
	return ordered.Clamp(v, 0, 255) / 255
}

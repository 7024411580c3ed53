package theme

import (
	"maps"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/ordered"
	"github.com/lucasb-eyer/go-colorful"
)

// Role is the purpose a colour serves in the UI.
type Role string

// Colour roles, in display order.
const (
	Primary    Role = "primary"
	Secondary  Role = "secondary"
	Background Role = "background"
	Surface    Role = "surface"
	Panel      Role = "panel"
	Warning    Role = "warning"
	Error      Role = "error"
	Success    Role = "success"
	Accent     Role = "accent"
)

// Roles lists every colour role.
var Roles = []Role{
	Primary, Secondary, Background, Surface, Panel,
	Warning, Error, Success, Accent,
}

// Fields that never carry over to a ColorSystem.
var nonTransferable = []Role{"text_area", "syntax", "variable", "url", "method"}

const (
	darkBackground  = "#121212"
	lightBackground = "#efefef"
	darkSurface     = "#1e1e1e"
	lightSurface    = "#f5f5f5"
	panelBlend      = 0.1
)

// ColorSystem is the colour configuration handed to the renderer.
type ColorSystem struct {
	colors    map[Role]string
	Dark      bool
	Variables map[string]any
}

// ToColorSystem maps the theme's fields, except its name, to a ColorSystem.
func (t Theme) ToColorSystem() ColorSystem {
	colors := t.colors()
	for _, role := range nonTransferable {
		delete(colors, role)
	}
	return ColorSystem{
		colors:    colors,
		Dark:      t.Dark,
		Variables: maps.Clone(t.Variables),
	}
}

// Raw returns the colour configured for role, if any.
func (cs ColorSystem) Raw(role Role) (string, bool) {
	v := cs.colors[role]
	return v, v != ""
}

// Color returns the colour for role. Roles the theme leaves unset are
// derived from the ones it sets.
func (cs ColorSystem) Color(role Role) colorful.Color {
	if v, ok := cs.Raw(role); ok {
		if c, ok := parseColor(v); ok {
			return c
		}
	}
	switch role {
	case Secondary, Warning, Accent:
		return cs.Color(Primary)
	case Error, Success:
		return cs.Color(Secondary)
	case Background:
		return cs.pick(darkBackground, lightBackground)
	case Surface:
		return cs.pick(darkSurface, lightSurface)
	case Panel:
		return cs.Color(Surface).BlendRgb(cs.Color(Primary), panelBlend).Clamped()
	default:
		return colorful.Color{}
	}
}

func (cs ColorSystem) pick(dark, light string) colorful.Color {
	hex := light
	if cs.Dark {
		hex = dark
	}
	c, _ := colorful.Hex(hex)
	return c
}

// Hex returns the colour for role as "#rrggbb".
func (cs ColorSystem) Hex(role Role) string {
	return cs.Color(role).Hex()
}

// Shade returns the colour for role with its lightness moved by delta,
// a value between -1 and 1.
func (cs ColorSystem) Shade(role Role, delta float64) colorful.Color {
	h, s, l := cs.Color(role).Hsl()
	return colorful.Hsl(h, s, ordered.Clamp(l+delta, 0, 1)).Clamped()
}

// Styles are lipgloss styles derived from a ColorSystem.
type Styles struct {
	Title     lipgloss.Style
	Text      lipgloss.Style
	Muted     lipgloss.Style
	Panel     lipgloss.Style
	Swatch    map[Role]lipgloss.Style
	Highlight lipgloss.Style
}

// Styles builds the styles for cs using renderer r.
func (cs ColorSystem) Styles(r *lipgloss.Renderer) Styles {
	const mutedShade = 0.25
	text := lipgloss.Color(cs.Hex(Primary))
	muted := cs.Shade(Background, mutedShade)
	if !cs.Dark {
		muted = cs.Shade(Background, -mutedShade)
	}
	s := Styles{
		Title:     r.NewStyle().Bold(true).Foreground(text),
		Text:      r.NewStyle().Foreground(lipgloss.Color(cs.Hex(Secondary))),
		Muted:     r.NewStyle().Foreground(lipgloss.Color(muted.Hex())),
		Panel:     r.NewStyle().Background(lipgloss.Color(cs.Hex(Panel))).Padding(0, 1),
		Highlight: r.NewStyle().Foreground(lipgloss.Color(cs.Hex(Background))).Background(lipgloss.Color(cs.Hex(Accent))).Bold(true),
		Swatch:    make(map[Role]lipgloss.Style, len(Roles)),
	}
	for _, role := range Roles {
		s.Swatch[role] = r.NewStyle().Background(lipgloss.Color(cs.Hex(role)))
	}
	return s
}

package theme

var builtins = map[string]Theme{
	"textual": {
		Name:      "textual",
		Primary:   "#004578",
		Secondary: "#0178D4",
		Warning:   "#ffa62b",
		Error:     "#ba3c5b",
		Success:   "#4EBF71",
		Accent:    "#ffa62b",
		Dark:      true,
		Variables: map[string]any{},
	},
	"monokai": {
		Name:       "monokai",
		Primary:    "#F92672",
		Secondary:  "#66D9EF",
		Warning:    "#FD971F",
		Error:      "#F92672",
		Success:    "#A6E22E",
		Accent:     "#AE81FF",
		Background: "#272822",
		Surface:    "#3E3D32",
		Panel:      "#3E3D32",
		Dark:       true,
		Variables:  map[string]any{},
	},
	"nautilus": {
		Name:       "nautilus",
		Primary:    "#0077BE",
		Secondary:  "#20B2AA",
		Warning:    "#FFD700",
		Error:      "#FF6347",
		Success:    "#32CD32",
		Accent:     "#FF8C00",
		Background: "#001F3F",
		Surface:    "#003366",
		Panel:      "#005A8C",
		Dark:       true,
		Variables:  map[string]any{},
	},
	"galaxy": {
		Name:       "galaxy",
		Primary:    "#8A2BE2",
		Secondary:  "#a684e8",
		Warning:    "#FFD700",
		Error:      "#FF4500",
		Success:    "#00FA9A",
		Accent:     "#FF69B4",
		Background: "#0F0F1F",
		Surface:    "#1E1E3F",
		Panel:      "#2D2B55",
		Dark:       true,
		Variables:  map[string]any{},
	},
	"nebula": {
		Name:       "nebula",
		Primary:    "#4169E1",
		Secondary:  "#9400D3",
		Warning:    "#FFD700",
		Error:      "#FF1493",
		Success:    "#00FF7F",
		Accent:     "#FF00FF",
		Background: "#0A0A23",
		Surface:    "#1C1C3C",
		Panel:      "#2E2E5E",
		Dark:       true,
		Variables:  map[string]any{},
	},
	"alpine": {
		Name:       "alpine",
		Primary:    "#4A90E2",
		Secondary:  "#81A1C1",
		Warning:    "#EBCB8B",
		Error:      "#BF616A",
		Success:    "#A3BE8C",
		Accent:     "#5E81AC",
		Background: "#2E3440",
		Surface:    "#3B4252",
		Panel:      "#434C5E",
		Dark:       true,
		Variables:  map[string]any{},
	},
	"cobalt": {
		Name:       "cobalt",
		Primary:    "#334D5C",
		Secondary:  "#4878A6",
		Warning:    "#FFAA22",
		Error:      "#E63946",
		Success:    "#4CAF50",
		Accent:     "#D94E64",
		Background: "#1F262A",
		Surface:    "#27343B",
		Panel:      "#2D3E46",
		Dark:       true,
		Variables:  map[string]any{},
	},
	"twilight": {
		Name:       "twilight",
		Primary:    "#367588",
		Secondary:  "#5F9EA0",
		Warning:    "#FFD700",
		Error:      "#FF6347",
		Success:    "#00FA9A",
		Accent:     "#FF7F50",
		Background: "#191970",
		Surface:    "#3B3B6D",
		Panel:      "#4C516D",
		Dark:       true,
		Variables:  map[string]any{},
	},
	"hacker": {
		Name:       "hacker",
		Primary:    "#00FF00",
		Secondary:  "#32CD32",
		Warning:    "#ADFF2F",
		Error:      "#FF4500",
		Success:    "#00FA9A",
		Accent:     "#39FF14",
		Background: "#0D0D0D",
		Surface:    "#1A1A1A",
		Panel:      "#2A2A2A",
		Dark:       true,
		Variables:  map[string]any{},
	},
}

// Builtins returns a copy of the themes shipped with the app, keyed by name.
func Builtins() map[string]Theme {
	themes := make(map[string]Theme, len(builtins))
	for name, t := range builtins {
		themes[name] = t.clone()
	}
	return themes
}

package card

// Theme names accepted in rendering options.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Theme is a fixed palette swapped wholesale by theme selection.
type Theme struct {
	Background string // Card fill
	Border     string // Double-border stroke
	Text       string // Primary text
	Muted      string // Secondary text (bio, bar labels)
	Accent     string // Title, level, bar fills
	BarTrack   string // Empty portion of bars
}

// themes is the static theme registry.
var themes = map[string]Theme{
	ThemeDark: {
		Background: "#1a1b26",
		Border:     "#7aa2f7",
		Text:       "#c0caf5",
		Muted:      "#565f89",
		Accent:     "#9ece6a",
		BarTrack:   "#24283b",
	},
	ThemeLight: {
		Background: "#e1e2e7",
		Border:     "#2e7de9",
		Text:       "#3760bf",
		Muted:      "#848cb5",
		Accent:     "#587539",
		BarTrack:   "#c4c8da",
	},
}

// ThemeByName returns the palette for a theme name, falling back to dark.
func ThemeByName(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[ThemeDark]
}

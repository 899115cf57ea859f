package styles

// ThemeTokens defines the semantic color roles for a container class.
type ThemeTokens struct {
	Background string
	Text       string
	TextMuted  string
	Border     string
	Accent     string
	Focus      string
}

// Theme bundles a palette with the class name it styles.
type Theme struct {
	Name   string
	Tokens ThemeTokens
}

// Themes lists available palettes by class name.
var Themes = map[string]Theme{
	LightTheme.Name: LightTheme,
	DarkTheme.Name:  DarkTheme,
}

// ThemeFor returns the palette for a class name, falling back to LightTheme.
func ThemeFor(name string) Theme {
	if theme, ok := Themes[name]; ok {
		return theme
	}
	return LightTheme
}

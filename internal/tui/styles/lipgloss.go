// Package styles provides the widget style scope and its palettes.
package styles

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Styles contains lipgloss styles derived from theme tokens.
type Styles struct {
	Theme     Theme
	Container lipgloss.Style
	Title     lipgloss.Style
	Text      lipgloss.Style
	Muted     lipgloss.Style
	Button    lipgloss.Style
	ButtonKey lipgloss.Style
}

// BuildStyles converts theme tokens into lipgloss styles.
// Inner styles repeat the background so nested resets keep the fill.
func BuildStyles(theme Theme) Styles {
	tokens := theme.Tokens
	bg := lipgloss.Color(tokens.Background)

	return Styles{
		Theme:     theme,
		Container: lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Background(bg).Padding(1, 1),
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Background(bg).Bold(true),
		Text:      lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Background(bg),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.TextMuted)).Background(bg),
		Button:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Focus)).Background(bg).BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color(tokens.Border)).BorderBackground(bg).Padding(0, 1),
		ButtonKey: lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Accent)).Background(bg).Bold(true),
	}
}

// Scope is the isolated set of class styles owned by one widget instance.
type Scope struct {
	classes map[string]Styles
}

// NewScope builds a scope holding one style set per palette in Themes.
func NewScope() *Scope {
	classes := make(map[string]Styles, len(Themes))
	for name, theme := range Themes {
		classes[name] = BuildStyles(theme)
	}
	return &Scope{classes: classes}
}

// Class returns the styles for a class name. Unknown names resolve to the
// light palette.
func (s *Scope) Class(name string) Styles {
	if styleSet, ok := s.classes[name]; ok {
		return styleSet
	}
	return s.classes[LightTheme.Name]
}

// Has reports whether the scope defines styles for a class name.
func (s *Scope) Has(name string) bool {
	_, ok := s.classes[name]
	return ok
}

// Names returns the class names defined by the scope.
func (s *Scope) Names() []string {
	names := make([]string, 0, len(s.classes))
	for name := range s.classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Chrome holds the host styles drawn around the widget.
type Chrome struct {
	Muted   lipgloss.Style
	Warning lipgloss.Style
}

// DefaultChrome returns host styles that read on any terminal background.
func DefaultChrome() Chrome {
	return Chrome{
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#8B9AAE"}),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#D29922"}),
	}
}

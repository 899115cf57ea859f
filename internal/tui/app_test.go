package tui

import (
	"regexp"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/modetoggle/internal/tui/components"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

type countingLifecycle struct {
	connected    int
	disconnected int
	toggled      int
	attributes   []string
}

func (c *countingLifecycle) Connected(string, string)    { c.connected++ }
func (c *countingLifecycle) Disconnected(string, string) { c.disconnected++ }
func (c *countingLifecycle) AttributeChanged(_, _, _, _, value string) {
	c.attributes = append(c.attributes, value)
}
func (c *countingLifecycle) ModeToggled(string, string, string, string) { c.toggled++ }

func newTestModel(t *testing.T, lifecycle components.Lifecycle) model {
	t.Helper()
	m, err := newModel(Config{Logger: zerolog.Nop(), Lifecycle: lifecycle, Content: "hello"})
	require.NoError(t, err)
	m.Init()
	return m
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(model)
	require.True(t, ok)
	return out, cmd
}

func widgetOf(m model) *components.ModeWidget {
	return m.element.(*components.ModeWidget)
}

func TestModelInitConnects(t *testing.T) {
	lifecycle := &countingLifecycle{}
	m := newTestModel(t, lifecycle)
	require.Equal(t, 1, lifecycle.connected)
	require.True(t, widgetOf(m).IsConnected())
}

func TestModelKeyActivation(t *testing.T) {
	lifecycle := &countingLifecycle{}
	m := newTestModel(t, lifecycle)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, "dark", widgetOf(m).Mode())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	require.Equal(t, "light", widgetOf(m).Mode())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	require.Equal(t, "dark", widgetOf(m).Mode())
	require.Equal(t, 3, lifecycle.toggled)
}

func TestModelMouseActivation(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})

	_, first, _, _ := widgetOf(m).ButtonBounds(60)

	m, _ = update(t, m, tea.MouseMsg{X: 3, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	require.Equal(t, "light", widgetOf(m).Mode(), "click outside the button is ignored")

	m, _ = update(t, m, tea.MouseMsg{X: 3, Y: first, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.Equal(t, "light", widgetOf(m).Mode(), "press alone does not activate")

	m, _ = update(t, m, tea.MouseMsg{X: 3, Y: first, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	require.Equal(t, "dark", widgetOf(m).Mode())
}

func TestModelMouseOutsideButtonColumns(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 20})

	left, top, right, _ := widgetOf(m).ButtonBounds(80)
	release := func(x, y int) tea.MouseMsg {
		return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	}

	m, _ = update(t, m, release(79, top+1))
	require.Equal(t, "light", widgetOf(m).Mode(), "click right of the button is ignored")

	m, _ = update(t, m, release(right+1, top+1))
	require.Equal(t, "light", widgetOf(m).Mode(), "first cell past the border is ignored")

	m, _ = update(t, m, release(left-1, top+1))
	require.Equal(t, "light", widgetOf(m).Mode(), "container padding is ignored")

	m, _ = update(t, m, release(right, top+1))
	require.Equal(t, "dark", widgetOf(m).Mode(), "right border cell activates")
}

func TestModelAttributeKey(t *testing.T) {
	lifecycle := &countingLifecycle{}
	m := newTestModel(t, lifecycle)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	require.Equal(t, []string{"1", "2"}, lifecycle.attributes)
	require.Equal(t, "light", widgetOf(m).Mode())
	require.Contains(t, stripANSI(m.View()), "something=2")
}

func TestModelQuitDisconnects(t *testing.T) {
	lifecycle := &countingLifecycle{}
	m := newTestModel(t, lifecycle)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
	require.Equal(t, 1, lifecycle.disconnected)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, "light", widgetOf(m).Mode(), "activation after teardown does not toggle")
	require.Equal(t, 0, lifecycle.toggled)
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})

	view := stripANSI(m.View())
	require.Contains(t, view, "My Component")
	require.Contains(t, view, "hello")
	require.Contains(t, view, "Toggle dark mode")
	require.Contains(t, view, "toggle mode")
}

func TestModelSmallTerminal(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 5})

	view := stripANSI(m.View())
	require.True(t, strings.Contains(view, "Terminal too small (20x5)."))
	require.Contains(t, view, "Resize to at least 30x8.")
}

func TestModelSmallTerminalIgnoresMouse(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 5})

	left, top, _, _ := widgetOf(m).ButtonBounds(20)
	m, _ = update(t, m, tea.MouseMsg{X: left, Y: top, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	require.Equal(t, "light", widgetOf(m).Mode(), "hidden button does not activate")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, "dark", widgetOf(m).Mode(), "keys still activate")
}

func TestModelInitialAttribute(t *testing.T) {
	lifecycle := &countingLifecycle{}
	m, err := newModel(Config{Logger: zerolog.Nop(), Lifecycle: lifecycle, Something: "seed"})
	require.NoError(t, err)
	m.Init()
	require.Equal(t, []string{"seed"}, lifecycle.attributes)
}

func TestNewModelUnknownTag(t *testing.T) {
	_, err := newModel(Config{Tag: "nope-nope", Logger: zerolog.Nop()})
	require.ErrorIs(t, err, ErrUnknownTag)
}

func TestRender(t *testing.T) {
	lifecycle := &countingLifecycle{}
	cfg := Config{Logger: zerolog.Nop(), Lifecycle: lifecycle}

	out, err := Render(cfg, 0, 40)
	require.NoError(t, err)
	require.Contains(t, stripANSI(out), "Toggle dark mode")

	out, err = Render(cfg, 3, 40)
	require.NoError(t, err)
	require.Contains(t, stripANSI(out), "Toggle light mode")

	require.Equal(t, 2, lifecycle.connected)
	require.Equal(t, 2, lifecycle.disconnected)
	require.Equal(t, 3, lifecycle.toggled)

	_, err = Render(cfg, -1, 40)
	require.Error(t, err)
}
